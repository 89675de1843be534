package core

import "strings"

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"black":     ColorGray,
	"blue":      ColorBlue,
	"cyan":      ColorCyan,
	"darkgray":  ColorGray,
	"gray":      ColorGray,
	"green":     ColorGreen,
	"lightgray": ColorWhite,
	"magenta":   ColorMagenta,
	"orange":    ColorOrange,
	"pink":      ColorBrightMagenta,
	"red":       ColorRed,
	"white":     ColorBrightWhite,
	"yellow":    ColorYellow,
}

// ColorByName maps a level file color name to a terminal color.
// Names are case-insensitive; unknown names report false.
func ColorByName(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
