package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// AppTheme wraps the default Fyne theme and overrides the colours that the
// content area takes from the colour table.
type AppTheme struct {
	base   fyne.Theme
	colors *Manager
}

// FyneTheme returns a fyne.Theme driven by this manager's colours
func (m *Manager) FyneTheme() fyne.Theme {
	return &AppTheme{
		base:   fynetheme.DefaultTheme(),
		colors: m,
	}
}

func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameBackground:
		return t.colors.Color(ContentBackground)
	case fynetheme.ColorNameForeground:
		return t.colors.Color(ContentText)
	case fynetheme.ColorNamePrimary:
		return t.colors.Color(SidebarSelected)
	case fynetheme.ColorNameHover:
		return t.colors.Color(SidebarHover)
	default:
		return t.base.Color(name, fynetheme.VariantLight)
	}
}

func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case fynetheme.SizeNameHeadingText:
		return 24
	default:
		return t.base.Size(name)
	}
}
