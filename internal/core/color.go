package core

// Color is a terminal foreground color for a screen cell: an ANSI 256-color
// index such as "33" or a hex value such as "#8B4513".
// The empty string is the terminal default.
type Color string

// Colors used by the platform chrome.
const (
	ColorDefault   Color = ""
	ColorDim       Color = "240"
	ColorMuted     Color = "245"
	ColorBright    Color = "255"
	ColorAccent    Color = "51"
	ColorHighlight Color = "226"
	ColorWarning   Color = "208"
)
