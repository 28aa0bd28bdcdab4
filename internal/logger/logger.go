package logger

import (
	"context"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// no-op until Initialize so packages can log from tests without setup
	log = zap.NewNop()
	// nil unless Sentry reporting is configured
	sentryClient *sentry.Client
)

// Config holds logger configuration
type Config struct {
	Debug     bool
	SentryDSN string
	// SentryClient takes precedence over SentryDSN
	SentryClient    *sentry.Client
	BreadcrumbLevel zapcore.Level
	// Tags are attached to every Sentry event, e.g. service=api-server
	Tags map[string]string
}

// Initialize builds the global logger. Errors and above are also reported to Sentry
// when a DSN or client is configured.
func Initialize(cfg Config) error {
	base, err := buildZap(cfg.Debug)
	if err != nil {
		return err
	}

	client, err := newSentryClient(cfg)
	if err != nil {
		return err
	}
	if client == nil {
		log = base
		return nil
	}

	breadcrumbLevel := cfg.BreadcrumbLevel
	if breadcrumbLevel == zapcore.InvalidLevel {
		breadcrumbLevel = zapcore.InfoLevel
	}
	core, err := zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   breadcrumbLevel,
		Tags:              cfg.Tags,
	}, zapsentry.NewSentryClientFromClient(client))
	if err != nil {
		return err
	}

	sentryClient = client
	log = zapsentry.AttachCoreToLogger(core, base)
	return nil
}

func buildZap(debug bool) (*zap.Logger, error) {
	if debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return cfg.Build()
}

func newSentryClient(cfg Config) (*sentry.Client, error) {
	if cfg.SentryClient != nil {
		return cfg.SentryClient, nil
	}
	if cfg.SentryDSN == "" {
		return nil, nil
	}
	return sentry.NewClient(sentry.ClientOptions{
		Dsn:   cfg.SentryDSN,
		Debug: cfg.Debug,
	})
}

// Replace swaps the global logger and returns a func restoring the previous one.
// Tests use it with zaptest/observer to assert on entries.
func Replace(l *zap.Logger) func() {
	previous := log
	log = l
	return func() { log = previous }
}

// Flush syncs buffered entries and waits up to timeout for pending Sentry events
func Flush(timeout time.Duration) {
	_ = log.Sync()
	if sentryClient != nil {
		sentryClient.Flush(timeout)
	}
}

// FromContext returns the logger bound to the Sentry scope carried by ctx
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return log
	}
	return log.With(zapsentry.Context(ctx))
}

// Default returns the global logger
func Default() *zap.Logger {
	return log
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Warn(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Debug(msg, fields...)
}

// Error logs err as the entry message, which is what Sentry groups on
func Error(err error, fields ...zap.Field) {
	log.Error(errorMessage(err), fields...)
}

func ErrorCtx(ctx context.Context, err error, fields ...zap.Field) {
	FromContext(ctx).Error(errorMessage(err), fields...)
}

func errorMessage(err error) string {
	if err == nil {
		return "error occurred"
	}
	return err.Error()
}

// Fatal logs and exits the process
func Fatal(msg string, fields ...zap.Field) {
	log.Fatal(msg, fields...)
}

func FatalCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Fatal(msg, fields...)
}

// FailOpenCtx logs a check that could not complete and was allowed through.
// Entries carry fail_open=true so they can be told apart from real rejections.
func FailOpenCtx(ctx context.Context, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Bool("fail_open", true), zap.Error(err))
	FromContext(ctx).Warn(msg, fields...)
}
