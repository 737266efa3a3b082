package logging

import (
	"os"
	"path/filepath"
)

// Option names recognized in an Options bundle.
const (
	OptionName     = "name"
	OptionLevel    = "level"
	OptionFile     = "file"
	OptionMode     = "mode"
	OptionEncoding = "encoding"
)

// Options is the untyped configuration bundle accepted by GetLogger.
// Every present key counts as a populated option, including keys set to nil.
// The only accepted shapes are {name, level} and {name, level, file, mode, encoding}.
type Options map[string]any

// Config is a validated logger configuration: either ConsoleConfig or FileConfig.
type Config interface {
	// Validate checks the configuration shape and returns an *errors.AppError on failure.
	Validate() error

	console() ConsoleConfig
	fileTarget() (FileConfig, bool)
}

// ConsoleConfig describes a console-only logger.
type ConsoleConfig struct {
	Name  string `json:"name"`
	Level Level  `json:"level" validate:"oneof=10 20 30 40 50"`
}

// FileConfig describes a logger writing to the console and to a file.
type FileConfig struct {
	Name  string `json:"name"`
	Level Level  `json:"level" validate:"oneof=10 20 30 40 50"`
	File  string `json:"file" validate:"required"`
	Mode  Mode   `json:"mode" validate:"required,oneof=a a+ append w w+ overwrite x"`
	// Encoding is a WHATWG encoding label such as "utf-8" or "gbk". Empty means UTF-8.
	Encoding string `json:"encoding"`
}

func (c ConsoleConfig) console() ConsoleConfig { return c }

func (c ConsoleConfig) fileTarget() (FileConfig, bool) { return FileConfig{}, false }

func (c FileConfig) console() ConsoleConfig {
	return ConsoleConfig{Name: c.Name, Level: c.Level}
}

func (c FileConfig) fileTarget() (FileConfig, bool) { return c, true }

// Path returns the absolute file path, which identifies the file sink on its handle.
// Relative and absolute spellings of one file share a sink.
func (c FileConfig) Path() string {
	abs, err := filepath.Abs(c.File)
	if err != nil {
		return filepath.Clean(c.File)
	}
	return abs
}

// Mode is a file-open mode.
type Mode string

const (
	// ModeAppend opens or creates the file and appends to it.
	ModeAppend Mode = "a"
	// ModeOverwrite creates the file or truncates existing content.
	ModeOverwrite Mode = "w"
	// ModeExclusive creates the file and fails if it already exists.
	ModeExclusive Mode = "x"
)

// Normalize folds the accepted spellings onto ModeAppend, ModeOverwrite and ModeExclusive.
func (m Mode) Normalize() Mode {
	switch m {
	case "a", "a+", "append":
		return ModeAppend
	case "w", "w+", "overwrite":
		return ModeOverwrite
	case "x":
		return ModeExclusive
	default:
		return m
	}
}

func (m Mode) flags() int {
	switch m.Normalize() {
	case ModeOverwrite:
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case ModeExclusive:
		return os.O_WRONLY | os.O_CREATE | os.O_EXCL
	default:
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
}
