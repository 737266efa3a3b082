package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/leeforge/clog/config"
	apperrors "github.com/leeforge/clog/errors"
)

// Settings is the logging section of a configuration file:
//
//	console: stderr
//	loggers:
//	  - {name: svc, level: INFO}
//	  - {name: audit, level: DEBUG, file: logs/audit.log, mode: a, encoding: utf-8}
type Settings struct {
	// Console selects the console stream: "stderr" or "stdout".
	Console string    `mapstructure:"console" json:"console" default:"stderr" validate:"oneof=stderr stdout"`
	Loggers []Options `mapstructure:"loggers" json:"loggers"`
}

// LoadSettings binds Settings from cfg, filling defaults for missing keys.
func LoadSettings(cfg *config.Config) (Settings, error) {
	var s Settings
	if err := cfg.BindWithDefaults(&s); err != nil {
		return Settings{}, err
	}
	if err := validator.Struct(s); err != nil {
		return Settings{}, apperrors.NewArgsName("console", err.Error())
	}
	return s, nil
}

// ConsoleWriter returns the stream named by Console.
func (s Settings) ConsoleWriter() io.Writer {
	if s.Console == "stdout" {
		return os.Stdout
	}
	return os.Stderr
}

// Apply configures every listed logger on f, in order, stopping at the first failure.
func (s Settings) Apply(f *Factory) ([]*Handle, error) {
	handles := make([]*Handle, 0, len(s.Loggers))
	for i, opts := range s.Loggers {
		h, err := f.GetLogger(opts)
		if err != nil {
			return handles, fmt.Errorf("loggers[%d]: %w", i, err)
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// SetupFromConfig builds a factory from cfg and configures every listed logger.
// Extra options are applied after the console chosen by the settings.
func SetupFromConfig(cfg *config.Config, opts ...FactoryOption) (*Factory, []*Handle, error) {
	s, err := LoadSettings(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := NewFactory(append([]FactoryOption{WithConsole(s.ConsoleWriter())}, opts...)...)
	handles, err := s.Apply(f)
	return f, handles, err
}

// WatchSettings re-applies the logger list to f whenever cfg's files change, so
// edited levels and newly listed loggers take effect without a restart. Loggers
// removed from the list keep their sinks, and the console stream is not switched.
// Reload failures go to the factory diagnostics logger.
func WatchSettings(cfg *config.Config, f *Factory) {
	cfg.Watch(func(e fsnotify.Event) {
		s, err := LoadSettings(cfg)
		if err != nil {
			f.diag.Warn("logging settings reload failed", zap.String("file", e.Name), zap.Error(err))
			return
		}
		if _, err := s.Apply(f); err != nil {
			f.diag.Warn("logging settings reload failed", zap.String("file", e.Name), zap.Error(err))
			return
		}
		f.diag.Debug("logging settings reloaded", zap.String("file", e.Name), zap.Int("loggers", len(s.Loggers)))
	})
}
