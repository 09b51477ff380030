package logger

import (
	"go.uber.org/zap"
)

var global = zap.NewNop()

// Setup builds the process-wide logger. Call once at startup, before
// anything logs.
func Setup(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)

	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	global = l

	return l
}

func Logger() *zap.Logger {
	return global
}

func Debug(msg string, fields ...zap.Field) {
	global.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	global.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	global.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	global.Error(msg, fields...)
}
