package logging

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leeforge/clog/json"
)

// Handle is a named logging endpoint owning a console sink and optional file sinks.
// Handles are created by a Factory and live as long as it does.
type Handle struct {
	name  string
	level zap.AtomicLevel
	clock zapcore.Clock

	mu    sync.Mutex // guards sinks
	sinks []Sink

	zl atomic.Pointer[zap.Logger]
}

func newHandle(name string, level Level, clock zapcore.Clock) *Handle {
	h := &Handle{
		name:  name,
		level: zap.NewAtomicLevelAt(level.ZapLevel()),
		clock: clock,
	}
	h.rebuildLocked()
	return h
}

// Name returns the handle name.
func (h *Handle) Name() string { return h.name }

// Level returns the handle minimum severity.
func (h *Handle) Level() Level { return levelFromZap(h.level.Level()) }

// SetLevel changes the handle minimum severity. Sink thresholds are unchanged.
func (h *Handle) SetLevel(level Level) { h.level.SetLevel(level.ZapLevel()) }

// Sinks returns a snapshot of the attached sinks.
func (h *Handle) Sinks() []Sink {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Sink(nil), h.sinks...)
}

// HasConsole reports whether a console sink is attached.
func (h *Handle) HasConsole() bool {
	_, ok := h.consoleSink()
	return ok
}

// HasFile reports whether any file sink is attached.
func (h *Handle) HasFile() bool {
	for _, s := range h.Sinks() {
		if s.Kind() == SinkFile {
			return true
		}
	}
	return false
}

func (h *Handle) consoleSink() (*ConsoleSink, bool) {
	for _, s := range h.Sinks() {
		if cs, ok := s.(*ConsoleSink); ok {
			return cs, true
		}
	}
	return nil, false
}

func (h *Handle) fileSink(path string) (*FileSink, bool) {
	for _, s := range h.Sinks() {
		if fs, ok := s.(*FileSink); ok && fs.Path() == path {
			return fs, true
		}
	}
	return nil, false
}

// attach appends sinks and publishes a logger writing to all of them.
func (h *Handle) attach(sinks ...Sink) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sinks = append(h.sinks, sinks...)
	h.rebuildLocked()
}

// detachFiles removes every file sink and returns them for the caller to close.
func (h *Handle) detachFiles() []Sink {
	h.mu.Lock()
	defer h.mu.Unlock()

	var files []Sink
	kept := h.sinks[:0]
	for _, s := range h.sinks {
		if s.Kind() == SinkFile {
			files = append(files, s)
			continue
		}
		kept = append(kept, s)
	}
	h.sinks = kept
	if len(files) > 0 {
		h.rebuildLocked()
	}
	return files
}

func (h *Handle) rebuildLocked() {
	cores := make([]zapcore.Core, 0, len(h.sinks))
	for _, s := range h.sinks {
		cores = append(cores, s.Core(h.level))
	}
	h.zl.Store(zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.WithClock(h.clock),
	))
}

func (h *Handle) logger() *zap.Logger {
	return h.zl.Load()
}

func (h *Handle) Debug(msg string, fields ...zap.Field) {
	h.logger().Debug(msg, fields...)
}

func (h *Handle) Info(msg string, fields ...zap.Field) {
	h.logger().Info(msg, fields...)
}

func (h *Handle) Warning(msg string, fields ...zap.Field) {
	h.logger().Warn(msg, fields...)
}

func (h *Handle) Error(msg string, fields ...zap.Field) {
	h.logger().Error(msg, fields...)
}

func (h *Handle) Critical(msg string, fields ...zap.Field) {
	h.logger().DPanic(msg, fields...)
}

func (h *Handle) Debugf(format string, args ...any) {
	h.logger().Sugar().Debugf(format, args...)
}

func (h *Handle) Infof(format string, args ...any) {
	h.logger().Sugar().Infof(format, args...)
}

func (h *Handle) Warningf(format string, args ...any) {
	h.logger().Sugar().Warnf(format, args...)
}

func (h *Handle) Errorf(format string, args ...any) {
	h.logger().Sugar().Errorf(format, args...)
}

func (h *Handle) Criticalf(format string, args ...any) {
	h.logger().Sugar().DPanicf(format, args...)
}

// With returns a child logger over the sinks attached at the time of the call.
func (h *Handle) With(fields ...zap.Field) Logger {
	return newZapLogger(h.logger().With(fields...))
}

// Zap returns a *zap.Logger over the currently attached sinks.
func (h *Handle) Zap() *zap.Logger {
	return h.logger().WithOptions(zap.AddCallerSkip(-1))
}

// Sugar returns a *zap.SugaredLogger over the currently attached sinks.
func (h *Handle) Sugar() *zap.SugaredLogger {
	return h.Zap().Sugar()
}

// Sync flushes every sink.
func (h *Handle) Sync() error {
	return h.logger().Sync()
}

// Description is a serializable summary of a handle.
type Description struct {
	Name  string            `json:"name"`
	Level string            `json:"level"`
	Sinks []SinkDescription `json:"sinks"`
}

// Describe summarizes the handle and its sinks.
func (h *Handle) Describe() Description {
	sinks := h.Sinks()
	d := Description{
		Name:  h.name,
		Level: h.Level().String(),
		Sinks: make([]SinkDescription, 0, len(sinks)),
	}
	for _, s := range sinks {
		d.Sinks = append(d.Sinks, s.Describe())
	}
	return d
}

// String renders the description as indented JSON.
func (d Description) String() string {
	b, err := json.MarshalIndent(&d, "", "  ")
	if err != nil {
		return d.Name
	}
	return string(b)
}

// Ensure Handle implements Logger.
var _ Logger = (*Handle)(nil)
