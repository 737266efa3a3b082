package logging

import (
	"go.uber.org/zap"
)

// Logger is the interface for leveled logging shared by handles and their children.
type Logger interface {
	// Debug logs a message at DEBUG.
	Debug(msg string, fields ...zap.Field)
	// Info logs a message at INFO.
	Info(msg string, fields ...zap.Field)
	// Warning logs a message at WARNING.
	Warning(msg string, fields ...zap.Field)
	// Error logs a message at ERROR.
	Error(msg string, fields ...zap.Field)
	// Critical logs a message at CRITICAL. It never panics or exits.
	Critical(msg string, fields ...zap.Field)

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
	Criticalf(format string, args ...any)

	// With creates a child logger with additional fields.
	With(fields ...zap.Field) Logger

	// Zap returns the underlying *zap.Logger.
	Zap() *zap.Logger
	// Sugar returns the underlying *zap.SugaredLogger.
	Sugar() *zap.SugaredLogger
	// Sync flushes any buffered log entries.
	Sync() error
}

// zapLogger wraps a *zap.Logger built with one extra frame of caller skip.
type zapLogger struct {
	zl *zap.Logger
	sl *zap.SugaredLogger
}

func newZapLogger(zl *zap.Logger) Logger {
	return &zapLogger{
		zl: zl,
		sl: zl.Sugar(),
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return newZapLogger(zap.NewNop())
}

func (l *zapLogger) Debug(msg string, fields ...zap.Field) {
	l.zl.Debug(msg, fields...)
}

func (l *zapLogger) Info(msg string, fields ...zap.Field) {
	l.zl.Info(msg, fields...)
}

func (l *zapLogger) Warning(msg string, fields ...zap.Field) {
	l.zl.Warn(msg, fields...)
}

func (l *zapLogger) Error(msg string, fields ...zap.Field) {
	l.zl.Error(msg, fields...)
}

func (l *zapLogger) Critical(msg string, fields ...zap.Field) {
	l.zl.DPanic(msg, fields...)
}

func (l *zapLogger) Debugf(format string, args ...any) {
	l.sl.Debugf(format, args...)
}

func (l *zapLogger) Infof(format string, args ...any) {
	l.sl.Infof(format, args...)
}

func (l *zapLogger) Warningf(format string, args ...any) {
	l.sl.Warnf(format, args...)
}

func (l *zapLogger) Errorf(format string, args ...any) {
	l.sl.Errorf(format, args...)
}

func (l *zapLogger) Criticalf(format string, args ...any) {
	l.sl.DPanicf(format, args...)
}

func (l *zapLogger) With(fields ...zap.Field) Logger {
	return newZapLogger(l.zl.With(fields...))
}

func (l *zapLogger) Zap() *zap.Logger {
	return l.zl.WithOptions(zap.AddCallerSkip(-1))
}

func (l *zapLogger) Sugar() *zap.SugaredLogger {
	return l.Zap().Sugar()
}

func (l *zapLogger) Sync() error {
	return l.zl.Sync()
}

// Ensure zapLogger implements Logger.
var _ Logger = (*zapLogger)(nil)
