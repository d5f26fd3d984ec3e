package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var baseLogger *zap.Logger

var (
	serviceName = "liquid_relay"
)

func SetServiceName(newName string) string {
	oldName := serviceName
	serviceName = newName

	return oldName
}

// Init собирает production-логгер с нужным уровнем.
// Повторный вызов заменяет текущий логгер.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, bErr := cfg.Build(zap.AddCallerSkip(1))
	if bErr != nil {
		return bErr
	}
	baseLogger = l
	return nil
}

func base() *zap.Logger {
	if baseLogger == nil {
		// дефолт, чтобы библиотека работала и без явного Init
		baseLogger = zap.Must(zap.NewProduction(zap.AddCallerSkip(1)))
	}
	return baseLogger
}

func Debug(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	base().With(
		zap.String("service", serviceName),
	).Debug(msg)
}

func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	base().With(
		zap.String("service", serviceName),
	).Info(msg)
}

func Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	base().With(
		zap.String("service", serviceName),
	).Warn(msg)
}

func Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	base().With(
		zap.String("service", serviceName),
	).Error(msg)
}

func Fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	base().With(
		zap.String("service", serviceName),
	).Fatal(msg)
}
