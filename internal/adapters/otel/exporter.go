package otel

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "straion-hooks"
	serviceVersion = "1.0.0"
)

// Exporter exports hook metrics to an OTEL Collector.
type Exporter struct {
	provider      *sdkmetric.MeterProvider
	toolUses      metric.Int64Counter
	sessionStarts metric.Int64Counter
	contextEmits  metric.Int64Counter
	durationHist  metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter pushing over OTLP/gRPC.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Active() {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	return newExporter(ctx, sdkmetric.NewPeriodicReader(exp))
}

// newExporter wires the instruments onto a provider fed by reader.
func newExporter(ctx context.Context, reader sdkmetric.Reader) (*Exporter, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
	meter := provider.Meter(serviceName)

	toolUses, err := meter.Int64Counter(
		"straion_hook_tool_uses_total",
		metric.WithDescription("Tool invocations logged by the post-tool-use hook"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tool uses counter: %w", err)
	}

	sessionStarts, err := meter.Int64Counter(
		"straion_hook_session_starts_total",
		metric.WithDescription("Session starts relayed to the straion CLI"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating session starts counter: %w", err)
	}

	contextEmits, err := meter.Int64Counter(
		"straion_hook_context_emits_total",
		metric.WithDescription("SessionStart context payloads emitted"),
		metric.WithUnit("{payload}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating context emits counter: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"straion_hook_duration_seconds",
		metric.WithDescription("Hook execution time in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return &Exporter{
		provider:      provider,
		toolUses:      toolUses,
		sessionStarts: sessionStarts,
		contextEmits:  contextEmits,
		durationHist:  durationHist,
	}, nil
}

func (e *Exporter) RecordToolUse(ctx context.Context, toolName string, success bool) {
	e.toolUses.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool_name", toolName),
		attribute.Bool("success", success),
	))
}

func (e *Exporter) RecordSessionStart(ctx context.Context, exitCode int) {
	e.sessionStarts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("exit_code", strconv.Itoa(exitCode)),
	))
}

func (e *Exporter) RecordContextEmit(ctx context.Context) {
	e.contextEmits.Add(ctx, 1)
}

func (e *Exporter) RecordDuration(ctx context.Context, hook string, d time.Duration) {
	e.durationHist.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("hook", hook)))
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
