package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SinkKind distinguishes console and file sinks.
type SinkKind string

const (
	SinkConsole SinkKind = "console"
	SinkFile    SinkKind = "file"
)

// Sink is a destination for formatted records with its own level threshold.
type Sink interface {
	// Kind reports whether this is a console or file sink.
	Kind() SinkKind
	// Level returns the sink threshold.
	Level() Level
	// SetLevel changes the sink threshold.
	SetLevel(level Level)
	// Core returns a zapcore.Core writing to this sink. Entries must pass both
	// gate and the sink threshold.
	Core(gate zapcore.LevelEnabler) zapcore.Core
	// Describe summarizes the sink.
	Describe() SinkDescription
	// Close releases resources held by the sink.
	Close() error
}

// SinkDescription is a serializable summary of a sink.
type SinkDescription struct {
	Kind     SinkKind `json:"kind"`
	Level    string   `json:"level"`
	Path     string   `json:"path,omitempty"`
	Mode     Mode     `json:"mode,omitempty"`
	Encoding string   `json:"encoding,omitempty"`
}

type baseSink struct {
	level   zap.AtomicLevel
	encoder zapcore.Encoder
	out     zapcore.WriteSyncer
}

func newBaseSink(level Level, encoder zapcore.Encoder, out zapcore.WriteSyncer) baseSink {
	return baseSink{
		level:   zap.NewAtomicLevelAt(level.ZapLevel()),
		encoder: encoder,
		out:     out,
	}
}

func (s *baseSink) Level() Level {
	return levelFromZap(s.level.Level())
}

func (s *baseSink) SetLevel(level Level) {
	s.level.SetLevel(level.ZapLevel())
}

func (s *baseSink) Core(gate zapcore.LevelEnabler) zapcore.Core {
	enabled := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return gate.Enabled(l) && s.level.Enabled(l)
	})
	return zapcore.NewCore(s.encoder, s.out, enabled)
}

// ConsoleSink writes colored records to the factory's console stream.
type ConsoleSink struct {
	baseSink
}

// NewConsoleSink creates a console sink writing to out.
func NewConsoleSink(level Level, out zapcore.WriteSyncer, scheme ColorScheme) *ConsoleSink {
	return &ConsoleSink{
		baseSink: newBaseSink(level, NewColorRecordEncoder(scheme), out),
	}
}

func (s *ConsoleSink) Kind() SinkKind { return SinkConsole }

func (s *ConsoleSink) Describe() SinkDescription {
	return SinkDescription{Kind: SinkConsole, Level: s.Level().String()}
}

// Close is a no-op: the console stream belongs to the caller.
func (s *ConsoleSink) Close() error {
	return nil
}

// FileSink writes plain records to a file it owns.
type FileSink struct {
	baseSink
	path     string
	mode     Mode
	encoding string
	writer   *fileWriter
}

// OpenFileSink opens the file described by cfg. Open failures are returned unwrapped.
func OpenFileSink(cfg FileConfig) (*FileSink, error) {
	w, err := openFileWriter(cfg.Path(), cfg.Mode, cfg.Encoding)
	if err != nil {
		return nil, err
	}
	return &FileSink{
		baseSink: newBaseSink(cfg.Level, NewRecordEncoder(), w),
		path:     cfg.Path(),
		mode:     cfg.Mode.Normalize(),
		encoding: cfg.Encoding,
		writer:   w,
	}, nil
}

func (s *FileSink) Kind() SinkKind { return SinkFile }

// Path returns the absolute path of the log file.
func (s *FileSink) Path() string { return s.path }

func (s *FileSink) Describe() SinkDescription {
	return SinkDescription{
		Kind:     SinkFile,
		Level:    s.Level().String(),
		Path:     s.path,
		Mode:     s.mode,
		Encoding: s.encoding,
	}
}

// Close flushes and closes the file.
func (s *FileSink) Close() error {
	return s.writer.Close()
}

// Ensure both sinks implement Sink.
var (
	_ Sink = (*ConsoleSink)(nil)
	_ Sink = (*FileSink)(nil)
)
