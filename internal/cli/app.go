package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/straion/straion-claude-plugin/internal/adapters/otel"
	"github.com/straion/straion-claude-plugin/internal/infrastructure/config"
	"github.com/straion/straion-claude-plugin/internal/logging"
	"github.com/straion/straion-claude-plugin/internal/ports"
)

const metricsFlushTimeout = 2 * time.Second

// testMetricsOverride replaces the metrics exporter in tests.
var testMetricsOverride ports.MetricsExporter

// AppContext holds the dependencies shared by hook commands.
type AppContext struct {
	Config  *config.Hooks
	Logger  *zap.Logger
	Metrics ports.MetricsExporter
}

// NewAppContext always returns a usable AppContext. When the hook settings cannot
// be loaded it falls back to defaults and also returns the load error, so each
// command decides whether a configuration problem is fatal. Bad telemetry
// settings only disable metrics.
func NewAppContext(ctx context.Context, stderr io.Writer, hook string) (*AppContext, error) {
	cfg, cfgErr := config.LoadHooks()
	if cfgErr != nil {
		cfg = config.Default()
	}

	base, levelErr := logging.New(stderr, cfg.LogLevel)
	logger := logging.ForHook(base, hook)
	if levelErr != nil {
		logger.Warn("Using default log level", zap.Error(levelErr))
	}

	otelCfg, otelErr := config.LoadOtel()
	if otelErr != nil {
		logger.Warn("Metrics export disabled", zap.Error(otelErr))
	}
	cfg.Otel = otelCfg

	app := &AppContext{
		Config:  cfg,
		Logger:  logger,
		Metrics: newMetrics(ctx, cfg.Otel, logger),
	}
	if cfgErr != nil {
		return app, fmt.Errorf("failed to load config: %w", cfgErr)
	}
	return app, nil
}

func newMetrics(ctx context.Context, cfg otel.Config, logger *zap.Logger) ports.MetricsExporter {
	if testMetricsOverride != nil {
		return testMetricsOverride
	}
	if !cfg.Active() {
		return otel.NewNoOpExporter()
	}
	exp, err := otel.NewExporter(ctx, cfg)
	if err != nil {
		logger.Warn("Metrics export disabled", zap.Error(err))
		return otel.NewNoOpExporter()
	}
	return exp
}

// Close flushes metrics. Failures are logged, never returned: telemetry must not
// change a hook's outcome.
func (a *AppContext) Close(ctx context.Context) {
	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), metricsFlushTimeout)
	defer cancel()

	if err := a.Metrics.Close(flushCtx); err != nil {
		a.Logger.Warn("Failed to flush metrics", zap.Error(err))
	}
	_ = a.Logger.Sync()
}
