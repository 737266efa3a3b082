package logging

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// TimeLayout is the record timestamp format, millisecond precision.
const TimeLayout = "2006-01-02 15:04:05.000"

var _pool = buffer.NewPool()

// recordEncoder renders entries as
//
//	[2006-01-02 15:04:05.000] file.go -> Function line:42 [INFO] : message {"k":"v"}
//
// Structured fields are accumulated by the embedded JSON encoder and appended after the
// message. A non-nil scheme wraps the whole line in the level color.
type recordEncoder struct {
	zapcore.Encoder
	scheme ColorScheme
}

// NewRecordEncoder returns the plain encoder used for file sinks.
func NewRecordEncoder() zapcore.Encoder {
	return newRecordEncoder(nil)
}

// NewColorRecordEncoder returns the console encoder; nil scheme selects NewDefaultColorScheme.
func NewColorRecordEncoder(scheme ColorScheme) zapcore.Encoder {
	if scheme == nil {
		scheme = NewDefaultColorScheme()
	}
	return newRecordEncoder(scheme)
}

func newRecordEncoder(scheme ColorScheme) *recordEncoder {
	return &recordEncoder{
		Encoder: zapcore.NewJSONEncoder(fieldEncoderConfig()),
		scheme:  scheme,
	}
}

// fieldEncoderConfig leaves every entry key empty so the JSON encoder emits fields only.
func fieldEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		SkipLineEnding: true,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

func (e *recordEncoder) Clone() zapcore.Encoder {
	return &recordEncoder{
		Encoder: e.Encoder.Clone(),
		scheme:  e.scheme,
	}
}

func (e *recordEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	level := levelFromZap(ent.Level)

	line := _pool.Get()
	var color Color
	if e.scheme != nil {
		color = e.scheme.LevelColor(level)
		line.AppendString(color)
	}

	line.AppendByte('[')
	line.AppendString(ent.Time.Format(TimeLayout))
	line.AppendString("] ")
	line.AppendString(callerFile(ent.Caller))
	line.AppendString(" -> ")
	line.AppendString(callerFunction(ent.Caller))
	line.AppendString(" line:")
	line.AppendInt(int64(ent.Caller.Line))
	line.AppendString(" [")
	line.AppendString(level.String())
	line.AppendString("] : ")
	line.AppendString(ent.Message)

	context, err := e.Encoder.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		line.Free()
		return nil, err
	}
	if context.Len() > len("{}") {
		line.AppendByte(' ')
		_, _ = line.Write(context.Bytes())
	}
	context.Free()

	if ent.Stack != "" {
		line.AppendByte('\n')
		line.AppendString(ent.Stack)
	}
	if color != "" {
		line.AppendString(Reset)
	}
	line.AppendString(zapcore.DefaultLineEnding)
	return line, nil
}

func callerFile(caller zapcore.EntryCaller) string {
	if !caller.Defined || caller.File == "" {
		return "(unknown file)"
	}
	return filepath.Base(caller.File)
}

// callerFunction drops the import path and package name:
// "github.com/acme/svc/api.(*Server).Start" becomes "(*Server).Start".
func callerFunction(caller zapcore.EntryCaller) string {
	fn := caller.Function
	if fn == "" {
		return "(unknown function)"
	}
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	if _, rest, ok := strings.Cut(fn, "."); ok && rest != "" {
		return rest
	}
	return fn
}

// Ensure recordEncoder implements zapcore.Encoder.
var _ zapcore.Encoder = (*recordEncoder)(nil)
