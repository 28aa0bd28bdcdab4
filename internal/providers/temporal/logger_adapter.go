package temporal

import (
	"fmt"

	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
)

// ZapLoggerAdapter adapts zap.Logger to Temporal's log.Logger interface
type ZapLoggerAdapter struct {
	logger *zap.Logger
}

// NewZapLoggerAdapter creates a new zap logger adapter for Temporal
func NewZapLoggerAdapter(logger *zap.Logger) log.Logger {
	return &ZapLoggerAdapter{logger: logger.WithOptions(zap.AddCallerSkip(1))}
}

func (z *ZapLoggerAdapter) Debug(msg string, keyvals ...interface{}) {
	z.logger.Debug(msg, convertKeyvalsToFields(keyvals...)...)
}

func (z *ZapLoggerAdapter) Info(msg string, keyvals ...interface{}) {
	z.logger.Info(msg, convertKeyvalsToFields(keyvals...)...)
}

func (z *ZapLoggerAdapter) Warn(msg string, keyvals ...interface{}) {
	z.logger.Warn(msg, convertKeyvalsToFields(keyvals...)...)
}

func (z *ZapLoggerAdapter) Error(msg string, keyvals ...interface{}) {
	z.logger.Error(msg, convertKeyvalsToFields(keyvals...)...)
}

// With returns a logger that always carries the given key-value pairs
func (z *ZapLoggerAdapter) With(keyvals ...interface{}) log.Logger {
	return &ZapLoggerAdapter{logger: z.logger.With(convertKeyvalsToFields(keyvals...)...)}
}

// convertKeyvalsToFields converts Temporal's key1, val1, key2, val2 pairs to zap fields.
// A trailing key without a value is kept under "extra".
func convertKeyvalsToFields(keyvals ...interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(keyvals)/2+1)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}
	if len(keyvals)%2 != 0 {
		fields = append(fields, zap.Any("extra", keyvals[len(keyvals)-1]))
	}
	return fields
}
