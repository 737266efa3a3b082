package config

import (
	"os"
	"strings"
	"sync"
)

// ModeEnvKey selects which environment-specific configuration files are loaded.
const ModeEnvKey = "GO_ENV_MODE"

// Mode is the deployment environment.
type Mode string

const (
	DevMode  Mode = "development"
	ProMode  Mode = "production"
	TestMode Mode = "test"
)

var (
	modeMu      sync.RWMutex
	currentMode Mode
)

// ParseMode normalizes an environment name; unknown or empty values mean DevMode.
func ParseMode(env string) Mode {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "prod", "pro":
		return ProMode
	case "test", "testing":
		return TestMode
	default:
		return DevMode
	}
}

// CurrentMode returns the mode set by SetMode, or the one parsed from GO_ENV_MODE.
func CurrentMode() Mode {
	modeMu.RLock()
	defer modeMu.RUnlock()
	if currentMode != "" {
		return currentMode
	}
	return ParseMode(os.Getenv(ModeEnvKey))
}

// SetMode overrides the mode for this process. An empty mode restores GO_ENV_MODE lookup.
func SetMode(mode Mode) {
	modeMu.Lock()
	defer modeMu.Unlock()
	currentMode = mode
}

// suffixes lists the file name suffixes tried for mode, lowest priority first.
func (m Mode) suffixes() []string {
	switch m {
	case ProMode:
		return []string{"pro", "prod", "production"}
	case TestMode:
		return []string{"test"}
	default:
		return []string{"dev", "development"}
	}
}
