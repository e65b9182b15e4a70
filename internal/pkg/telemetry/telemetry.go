// Package telemetry wires optional OpenTelemetry export for a single
// btcanalyser run. When enabled, traces and metrics are pushed over OTLP gRPC
// using the standard OTEL_EXPORTER_OTLP_* environment variables. When
// disabled, the otel globals keep their no-op providers and instrumented code
// pays nothing.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Settings selects what Init installs.
type Settings struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
}

// ShutdownFunc flushes pending spans and metrics. A short-lived CLI must call
// it before exiting or the batch exporters drop everything.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init registers global tracer and meter providers according to s. The
// returned ShutdownFunc is never nil.
func Init(ctx context.Context, s Settings) (ShutdownFunc, error) {
	if !s.Enabled {
		return noopShutdown, nil
	}

	res, err := newResource(s.ServiceName, s.ServiceVersion)
	if err != nil {
		return noopShutdown, err
	}

	tp, err := newTracerProvider(ctx, res)
	if err != nil {
		return noopShutdown, err
	}

	mp, err := newMeterProvider(ctx, res)
	if err != nil {
		return noopShutdown, errors.Join(err, tp.Shutdown(ctx))
	}

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	return func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}

// newResource describes this process to the backend.
func newResource(name, version string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(name),
			semconv.ServiceVersion(version),
		),
	)
}

func newTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

func newMeterProvider(ctx context.Context, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	), nil
}
