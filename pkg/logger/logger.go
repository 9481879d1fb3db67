// Package logger constructs the sugared zap logger used across the module.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production logger annotated with the service name.
// Falls back to a no-op logger if construction fails, so callers
// never have to branch on logger availability.
func New(service string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	config.InitialFields = map[string]any{"service": service}

	log, err := config.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}

	return log.Sugar()
}
