package logging

import (
	"io"
	"os"
	"sort"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apperrors "github.com/leeforge/clog/errors"
)

// Factory creates and manages named handles. Each handle has at most one console
// sink and at most one file sink per path; repeated configuration of the same name
// updates thresholds instead of attaching duplicates.
type Factory struct {
	mu      sync.Mutex
	handles map[string]*Handle

	console zapcore.WriteSyncer
	scheme  ColorScheme
	diag    *zap.Logger
	clock   zapcore.Clock
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithConsole sets the console stream. The default is os.Stderr.
func WithConsole(w io.Writer) FactoryOption {
	return func(f *Factory) {
		f.console = newConsoleWriter(w)
	}
}

// WithColorScheme sets the console color scheme.
func WithColorScheme(scheme ColorScheme) FactoryOption {
	return func(f *Factory) {
		f.scheme = scheme
	}
}

// WithDiagnostics sets the logger receiving the factory's own debug output.
func WithDiagnostics(zl *zap.Logger) FactoryOption {
	return func(f *Factory) {
		f.diag = zl
	}
}

// WithClock sets the clock used to timestamp records.
func WithClock(clock zapcore.Clock) FactoryOption {
	return func(f *Factory) {
		f.clock = clock
	}
}

// NewFactory creates a new Factory.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		handles: make(map[string]*Handle),
		console: newConsoleWriter(os.Stderr),
		scheme:  NewDefaultColorScheme(),
		diag:    zap.NewNop(),
		clock:   zapcore.DefaultClock,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.diag == nil {
		f.diag = zap.NewNop()
	}
	if f.clock == nil {
		f.clock = zapcore.DefaultClock
	}
	return f
}

// GetLogger validates opts and returns the handle it names, attaching a console sink
// and, for file bundles, a file sink.
func (f *Factory) GetLogger(opts Options) (*Handle, error) {
	cfg, err := Validate(opts)
	if err != nil {
		return nil, err
	}
	return f.Configure(cfg)
}

// Configure resolves or creates the handle named by cfg and attaches its sinks.
// Nothing is attached when validation or opening the file fails. Open failures are
// returned as resource errors wrapping the underlying *fs.PathError.
func (f *Factory) Configure(cfg Config) (*Handle, error) {
	if cfg == nil {
		return nil, apperrors.NewArgsCount(0)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := cfg.console()
	fileCfg, wantFile := cfg.fileTarget()

	f.mu.Lock()
	defer f.mu.Unlock()

	h, exists := f.handles[base.Name]

	var opened *FileSink
	var reused *FileSink
	if wantFile {
		f.diag.Debug("file sink requested",
			zap.String("logger", base.Name),
			zap.String("file", fileCfg.File),
			zap.String("mode", string(fileCfg.Mode)),
			zap.String("encoding", fileCfg.Encoding),
		)
		if exists {
			reused, _ = h.fileSink(fileCfg.Path())
		}
		if reused == nil {
			sink, err := OpenFileSink(fileCfg)
			if err != nil {
				return nil, apperrors.NewResource(fileCfg.Path(), err)
			}
			opened = sink
		}
	}

	if !exists {
		h = newHandle(base.Name, base.Level, f.clock)
		f.handles[base.Name] = h
		f.diag.Debug("logger created", zap.String("logger", base.Name))
	}
	h.SetLevel(base.Level)

	var added []Sink
	if cs, ok := h.consoleSink(); ok {
		cs.SetLevel(base.Level)
	} else {
		added = append(added, NewConsoleSink(base.Level, f.console, f.scheme))
	}
	if reused != nil {
		reused.SetLevel(base.Level)
	}
	if opened != nil {
		added = append(added, opened)
	}
	if len(added) > 0 {
		h.attach(added...)
	}

	return h, nil
}

// Lookup returns the handle with the given name if it has been configured.
func (f *Factory) Lookup(name string) (*Handle, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.handles[name]
	return h, ok
}

// Names returns the configured handle names in sorted order.
func (f *Factory) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.handles))
	for name := range f.handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close detaches and closes every file sink. Handles stay registered and keep
// logging to the console; a later Configure may attach new file sinks. Children
// taken earlier through With, Zap or WithHooks silently drop their file output.
func (f *Factory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var err error
	for name, h := range f.handles {
		for _, s := range h.detachFiles() {
			if cerr := s.Close(); cerr != nil {
				err = multierr.Append(err, cerr)
				continue
			}
			f.diag.Debug("file sink closed", zap.String("logger", name), zap.String("file", s.Describe().Path))
		}
	}
	return err
}
