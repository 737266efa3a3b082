package logging

import (
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Hook is a function that is called for each entry a logger writes.
type Hook func(entry zapcore.Entry) error

// hookCore wraps a zapcore.Core and calls hooks for entries the wrapped core
// accepts. Every sink keeps its own threshold.
type hookCore struct {
	zapcore.Core
	hooks []Hook
}

func newHookCore(core zapcore.Core, hooks []Hook) zapcore.Core {
	return &hookCore{
		Core:  core,
		hooks: hooks,
	}
}

// Check implements zapcore.Core. The wrapped core registers the sinks that accept
// the entry; hooks run only when at least one does.
func (c *hookCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if downstream := c.Core.Check(entry, ce); downstream != nil {
		return downstream.AddCore(entry, c)
	}
	return ce
}

// Write implements zapcore.Core. It only runs hooks; the entry itself is written
// by the cores registered in Check.
func (c *hookCore) Write(entry zapcore.Entry, _ []zapcore.Field) error {
	var err error
	for _, hook := range c.hooks {
		err = multierr.Append(err, hook(entry))
	}
	return err
}

// With implements zapcore.Core.
func (c *hookCore) With(fields []zapcore.Field) zapcore.Core {
	return &hookCore{
		Core:  c.Core.With(fields),
		hooks: c.hooks,
	}
}

// WithHooks returns a child of logger that calls hooks for every entry it writes.
// The child keeps the parent's caller reporting.
func WithHooks(logger Logger, hooks ...Hook) Logger {
	if len(hooks) == 0 {
		return logger
	}
	zl := logger.Zap().WithOptions(
		zap.AddCallerSkip(1),
		zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return newHookCore(core, hooks)
		}),
	)
	return newZapLogger(zl)
}

// LevelCounter counts written entries per level.
type LevelCounter struct {
	mu     sync.Mutex
	counts map[Level]int
}

// NewLevelCounter creates an empty LevelCounter.
func NewLevelCounter() *LevelCounter {
	return &LevelCounter{counts: make(map[Level]int)}
}

// Hook returns a Hook feeding the counter.
func (c *LevelCounter) Hook() Hook {
	return func(entry zapcore.Entry) error {
		c.mu.Lock()
		c.counts[levelFromZap(entry.Level)]++
		c.mu.Unlock()
		return nil
	}
}

// Count returns the number of entries seen at level.
func (c *LevelCounter) Count(level Level) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[level]
}

// Total returns the number of entries seen at any level.
func (c *LevelCounter) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}
