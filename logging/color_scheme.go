package logging

// ColorScheme maps log levels to console colors.
// Implement this interface to fully customize color behavior.
type ColorScheme interface {
	// LevelColor returns the color for a log level.
	LevelColor(level Level) Color
}

// DefaultColorScheme provides configurable level colors.
// Zero values fall back to the defaults of NewDefaultColorScheme.
type DefaultColorScheme struct {
	LevelDebug    Color
	LevelInfo     Color
	LevelWarning  Color
	LevelError    Color
	LevelCritical Color
}

// NewDefaultColorScheme returns the standard console scheme:
// DEBUG white, INFO green, WARNING yellow, ERROR red, CRITICAL bold red.
func NewDefaultColorScheme() *DefaultColorScheme {
	return &DefaultColorScheme{
		LevelDebug:    White,
		LevelInfo:     Green,
		LevelWarning:  Yellow,
		LevelError:    Red,
		LevelCritical: BoldRed,
	}
}

// NewBackgroundColorScheme returns a scheme using background colors for the severe levels.
func NewBackgroundColorScheme() *DefaultColorScheme {
	return &DefaultColorScheme{
		LevelDebug:    Gray,
		LevelInfo:     BoldGreen,
		LevelWarning:  Combine(Black, BgYellow),
		LevelError:    Combine(BoldWhite, BgRed),
		LevelCritical: Combine(BoldYellow, BgRed),
	}
}

// LevelColor returns the color for a log level.
func (s *DefaultColorScheme) LevelColor(level Level) Color {
	switch {
	case level <= DebugLevel:
		return s.withDefault(s.LevelDebug, White)
	case level <= InfoLevel:
		return s.withDefault(s.LevelInfo, Green)
	case level <= WarningLevel:
		return s.withDefault(s.LevelWarning, Yellow)
	case level <= ErrorLevel:
		return s.withDefault(s.LevelError, Red)
	default:
		return s.withDefault(s.LevelCritical, BoldRed)
	}
}

// withDefault returns the value if not empty, otherwise returns the default.
func (s *DefaultColorScheme) withDefault(value, defaultValue Color) Color {
	if value == "" {
		return defaultValue
	}
	return value
}

// Ensure DefaultColorScheme implements ColorScheme.
var _ ColorScheme = (*DefaultColorScheme)(nil)
