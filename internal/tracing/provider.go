package tracing

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/fx"

	"github.com/go-softwarelab/common/docs/internal/config"
	"github.com/go-softwarelab/common/docs/internal/logger"
	"github.com/go-softwarelab/common/docs/internal/version"
)

var Module = fx.Module("tracing",
	fx.Invoke(Register),
)

// Shutdown flushes and stops a tracer provider.
type Shutdown func(context.Context) error

// Setup installs a global tracer provider exporting to cfg.ExporterEndpoint.
// It returns a no-op shutdown when tracing is disabled.
func Setup(ctx context.Context, cfg config.OtelConfig) (Shutdown, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Enabled() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.ExporterEndpoint),
	)
	if err != nil {
		return noop, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(version.Version),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("build otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRate))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// Register sets tracing up on start and flushes spans on stop.
func Register(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("tracing"))
	var shutdown Shutdown

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s, err := Setup(ctx, cfg.Otel)
			if err != nil {
				return err
			}
			shutdown = s
			if cfg.Otel.Enabled() {
				log.Info("tracing enabled",
					slog.String("endpoint", cfg.Otel.ExporterEndpoint),
					slog.Float64("sampling_rate", cfg.Otel.SamplingRate),
				)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			if err := shutdown(ctx); err != nil {
				log.Warn("tracer shutdown", logger.Error(err))
			}
			return nil
		},
	})
}
