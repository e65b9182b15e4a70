package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func restoreGlobals(t *testing.T) {
	t.Helper()

	tp, mp := otel.GetTracerProvider(), otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(tp)
		otel.SetMeterProvider(mp)
	})
}

func TestNewResource(t *testing.T) {
	t.Run("should carry the service name and version", func(t *testing.T) {
		res, err := newResource("btcanalyser", "1.2.3")
		require.NoError(t, err)

		set := res.Set()

		name, ok := set.Value(semconv.ServiceNameKey)
		require.True(t, ok)
		assert.Equal(t, "btcanalyser", name.AsString())

		version, ok := set.Value(semconv.ServiceVersionKey)
		require.True(t, ok)
		assert.Equal(t, "1.2.3", version.AsString())
	})

	t.Run("should keep the default host attributes", func(t *testing.T) {
		res, err := newResource("btcanalyser", "dev")
		require.NoError(t, err)

		_, ok := res.Set().Value(attribute.Key("telemetry.sdk.language"))
		assert.True(t, ok)
	})
}

func TestInit(t *testing.T) {
	t.Run("should leave the globals alone when disabled", func(t *testing.T) {
		restoreGlobals(t)
		tp, mp := otel.GetTracerProvider(), otel.GetMeterProvider()

		shutdown, err := Init(t.Context(), Settings{ServiceName: "btcanalyser"})

		require.NoError(t, err)
		require.NotNil(t, shutdown)
		assert.NoError(t, shutdown(t.Context()))
		assert.Equal(t, tp, otel.GetTracerProvider())
		assert.Equal(t, mp, otel.GetMeterProvider())
	})

	t.Run("should install providers when enabled", func(t *testing.T) {
		restoreGlobals(t)
		tp := otel.GetTracerProvider()

		shutdown, err := Init(t.Context(), Settings{Enabled: true, ServiceName: "btcanalyser", ServiceVersion: "dev"})

		require.NoError(t, err)
		require.NotNil(t, shutdown)
		assert.NotEqual(t, tp, otel.GetTracerProvider())

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		// No collector is listening, only check that shutdown returns.
		_ = shutdown(ctx)
	})
}
