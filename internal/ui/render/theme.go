package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines viewer colors.
type ColorTheme struct {
	Background tcell.Color
	Foreground tcell.Color
	HeadingFg  tcell.Color
	LinkFg     tcell.Color
	ImageFg    tcell.Color
	URLFg      tcell.Color
	FooterBg   tcell.Color
	FooterFg   tcell.Color
}

// GetColorTheme returns the color scheme for name ("dark" or "light").
// Unknown names fall back to the dark scheme.
func GetColorTheme(name string) ColorTheme {
	if name == "light" {
		return ColorTheme{
			Background: tcell.ColorDefault,
			Foreground: tcell.ColorDefault,
			HeadingFg:  tcell.Color25,
			LinkFg:     tcell.Color28,
			ImageFg:    tcell.Color90,
			URLFg:      tcell.Color242,
			FooterBg:   tcell.Color252,
			FooterFg:   tcell.Color235,
		}
	}
	return ColorTheme{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorDefault,
		HeadingFg:  tcell.Color33,
		LinkFg:     tcell.Color44,
		ImageFg:    tcell.Color176,
		URLFg:      tcell.ColorLightSlateGray,
		FooterBg:   tcell.Color236,
		FooterFg:   tcell.Color252,
	}
}
