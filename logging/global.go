package logging

import (
	"sync"
)

var (
	defaultFactory *Factory
	defaultOnce    sync.Once
)

// Default returns the process-wide factory, creating it on first use with the
// default options (console on os.Stderr, default color scheme).
func Default() *Factory {
	defaultOnce.Do(func() {
		defaultFactory = NewFactory()
	})
	return defaultFactory
}

// GetLogger validates opts and configures the named handle on the default factory.
func GetLogger(opts Options) (*Handle, error) {
	return Default().GetLogger(opts)
}

// Configure configures the named handle on the default factory.
func Configure(cfg Config) (*Handle, error) {
	return Default().Configure(cfg)
}

// Shutdown closes every file opened by the default factory.
// Call it once when the process is shutting down.
func Shutdown() error {
	return Default().Close()
}
