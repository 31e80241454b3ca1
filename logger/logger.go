package logger

import (
	"github.com/mager/moodring/config"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// ProvideLogger provides a JSON zap logger at the configured level.
func ProvideLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = level
	zcfg.EncoderConfig.MessageKey = "message"

	return zcfg.Build()
}

// ProvideSugaredLogger exposes the sugared form for handlers that log with key/value pairs.
func ProvideSugaredLogger(l *zap.Logger) *zap.SugaredLogger {
	return l.Sugar()
}

// FxLogger routes fx lifecycle events through zap.
func FxLogger(l *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: l}
}

// NewTestLogger returns a new logger and observed logs for testing.
func NewTestLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zap.InfoLevel)
	return zap.New(core).Sugar(), recorded
}

var Options = ProvideLogger
