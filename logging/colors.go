package logging

// Color represents a terminal ANSI color escape code.
type Color = string

// Reset code
const (
	Reset Color = "\033[0m"
)

// Foreground colors
const (
	Black  Color = "\033[30m"
	Red    Color = "\033[31m"
	Green  Color = "\033[32m"
	Yellow Color = "\033[33m"
	White  Color = "\033[37m"
	Gray   Color = "\033[90m"
)

// Bold foreground colors
const (
	BoldRed    Color = "\033[1;31m"
	BoldGreen  Color = "\033[1;32m"
	BoldYellow Color = "\033[1;33m"
	BoldWhite  Color = "\033[1;37m"
)

// Background colors
const (
	BgRed    Color = "\033[41m"
	BgYellow Color = "\033[43m"
)

// Colorize wraps text with the given color and reset code.
func Colorize(color Color, text string) string {
	return color + text + Reset
}

// Combine combines multiple colors/styles into one.
// Example: Combine(BoldWhite, BgRed) for bold white text on red background.
func Combine(colors ...Color) Color {
	var result Color
	for _, c := range colors {
		result += c
	}
	return result
}

// StripColors removes ANSI SGR sequences ("\033[...m") from s.
func StripColors(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			i = j
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
