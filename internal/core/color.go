package core

// Color is a foreground colour for a screen cell. The platform layer maps
// it onto terminal colours; ColorDefault leaves the terminal default alone.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorGray
	ColorBrightGreen
	ColorBrightRed
	ColorBrightWhite
)
