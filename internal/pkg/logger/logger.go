// Package logger provides a global, Sugared Zap logger that can be enriched
// per context. It emits JSON logs to stderr, keeping stdout free for the
// rendered tables, and adds OpenTelemetry trace and span ids to every entry
// logged under an active span.
package logger

import (
	"context"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxKeyType is the private type of the context key holding a derived logger.
type ctxKeyType struct{}

var (
	// baseLogger is the global SugaredLogger instance. It discards everything
	// until Init is called.
	baseLogger = zap.NewNop().Sugar()

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once

	// ctxKey is the context key under which Derive stores a logger.
	ctxKey = ctxKeyType{}
)

// Init configures the global logger at the given minimum level
// ("debug", "info", "warn", "error"). Calling Init multiple times has no
// effect after the first successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.Lock(os.Stderr),
			lvl,
		)

		baseLogger = zap.New(core).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return baseLogger.Sync()
}

// Derive returns a copy of ctx carrying a logger enriched with the given
// key/value pairs. Every subsequent log call made with the returned context
// includes them.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, fromCtx(ctx).With(keysAndValues...))
}

// WithLogger returns a copy of ctx carrying l. Log calls made with the
// returned context, or a context derived from it, go to l.
func WithLogger(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ctxKey, l)
}

// fromCtx returns the logger stored in ctx, or the global one.
func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger); ok {
		return l
	}

	return baseLogger
}

// deriveFromCtx returns the context logger enriched with the given key/value
// pairs and, when ctx carries a valid span, its trace and span ids.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		keysAndValues = append(keysAndValues,
			"trace_id", sc.TraceID().String(),
			"span_id", sc.SpanID().String(),
		)
	}

	return fromCtx(ctx).With(keysAndValues...)
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}
