package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorDeepBlue
)

// Scene roles, so the renderer does not hard-code palette entries.
const (
	ColorSea    = ColorDeepBlue
	ColorFoam   = ColorBrightCyan
	ColorRock   = ColorBrown
	ColorBoat   = ColorBrightYellow
	ColorWreck  = ColorBrightRed
	ColorSign   = ColorBrightWhite
	ColorHUD    = ColorWhite
	ColorBorder = ColorGray
)
