package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines viewer colors.
type ColorTheme struct {
	Background     tcell.Color
	Foreground     tcell.Color
	LinkFg         tcell.Color
	SelectedLinkBg tcell.Color
	SelectedLinkFg tcell.Color
	StatusBg       tcell.Color
	StatusFg       tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:     tcell.ColorDefault,
		Foreground:     tcell.ColorDefault,
		LinkFg:         tcell.Color33, // blue, matches common terminal link styling
		SelectedLinkBg: tcell.Color33,
		SelectedLinkFg: tcell.ColorWhite,
		StatusBg:       tcell.Color234,
		StatusFg:       tcell.Color252,
	}
}

func (t ColorTheme) textStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.Foreground)
}

func (t ColorTheme) linkStyle(selected bool) tcell.Style {
	if selected {
		return tcell.StyleDefault.Background(t.SelectedLinkBg).Foreground(t.SelectedLinkFg).Underline(true)
	}
	return tcell.StyleDefault.Background(t.Background).Foreground(t.LinkFg).Underline(true)
}

func (t ColorTheme) statusStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.StatusBg).Foreground(t.StatusFg)
}
