package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DarkTheme always renders the dark variant with the dashboard's palette
type DarkTheme struct{}

// NewDarkTheme creates a new dark theme
func NewDarkTheme() fyne.Theme {
	return &DarkTheme{}
}

// Color returns theme colors; the requested variant is ignored
func (t *DarkTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return TopBarColor
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x1f, G: 0x6a, B: 0xa5, A: 0xff} // Blue, like the entry focus ring
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 0x34, G: 0x36, B: 0x38, A: 0xff}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	}

	// Use default dark colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *DarkTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DarkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; text is larger than default to match the dashboard look
func (t *DarkTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 18
	case theme.SizeNameHeadingText:
		return 26
	case theme.SizeNameInputRadius:
		return 20 // Rounded search field
	case theme.SizeNameInputBorder:
		return 1
	}

	return theme.DefaultTheme().Size(name)
}
