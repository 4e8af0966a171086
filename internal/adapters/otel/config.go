package otel

// Config holds OTEL exporter configuration.
type Config struct {
	Endpoint string `envconfig:"STRAION_OTEL_ENDPOINT"`
	Enabled  bool   `envconfig:"STRAION_OTEL_ENABLED" default:"false"`
	Insecure bool   `envconfig:"STRAION_OTEL_INSECURE" default:"false"`
}

// Active reports whether metrics should be exported.
func (c Config) Active() bool {
	return c.Enabled && c.Endpoint != ""
}
