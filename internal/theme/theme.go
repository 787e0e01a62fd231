// Package theme provides the colour table of the application and the
// derived style descriptions used by the sidebar and content area.
package theme

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"text/template"
)

const (
	DefaultThemeName = "default"

	// FallbackColor is returned for colour names the theme does not define
	FallbackColor = "#000000"
)

// Colour names of the built-in theme
const (
	SidebarBackground = "sidebar_bg"
	SidebarHover      = "sidebar_hover"
	SidebarSelected   = "sidebar_selected"
	SidebarText       = "sidebar_text"
	ContentBackground = "content_bg"
	ContentText       = "content_text"
)

var builtinThemes = map[string]map[string]string{
	DefaultThemeName: {
		SidebarBackground: "#2D3250",
		SidebarHover:      "#424769",
		SidebarSelected:   "#676F9D",
		SidebarText:       "#FFFFFF",
		ContentBackground: "#FFFFFF",
		ContentText:       "#000000",
	},
}

var styleTemplates = template.Must(template.New("styles").
	Funcs(template.FuncMap{"color": func(string) string { return FallbackColor }}).
	Parse(`
{{- define "sidebar" -}}
#sidebar {
    background-color: {{ color "sidebar_bg" }};
    color: {{ color "sidebar_text" }};
    border: none;
}
button {
    border: none;
    color: {{ color "sidebar_text" }};
    text-align: left;
}
button:hover {
    background-color: {{ color "sidebar_hover" }};
}
button[selected="true"] {
    background-color: {{ color "sidebar_selected" }};
    border-left: 4px solid {{ color "sidebar_text" }};
}
{{- end -}}
{{- define "content" -}}
#content_area {
    background-color: {{ color "content_bg" }};
    color: {{ color "content_text" }};
}
{{- end -}}
`))

// Manager looks up colours of the theme chosen at construction. Only one
// built-in theme exists; unknown names fall back to it.
type Manager struct {
	name   string
	colors map[string]string
}

func New(name string) *Manager {
	colors, ok := builtinThemes[name]
	if !ok {
		name = DefaultThemeName
		colors = builtinThemes[DefaultThemeName]
	}
	return &Manager{name: name, colors: colors}
}

// Name returns the theme in use
func (m *Manager) Name() string {
	return m.name
}

// GetColor returns the hex value for name, or FallbackColor
func (m *Manager) GetColor(name string) string {
	if c, ok := m.colors[name]; ok {
		return c
	}
	return FallbackColor
}

// Color returns the parsed colour for name
func (m *Manager) Color(name string) color.Color {
	c, err := ParseHex(m.GetColor(name))
	if err != nil {
		return color.Black
	}
	return c
}

// StyleFor renders the style description of a component ("sidebar" or
// "content"). Unknown components yield an empty string.
func (m *Manager) StyleFor(component string) string {
	if styleTemplates.Lookup(component) == nil {
		return ""
	}

	tmpl, err := styleTemplates.Clone()
	if err != nil {
		return ""
	}

	var buf bytes.Buffer
	if err := tmpl.Funcs(template.FuncMap{"color": m.GetColor}).ExecuteTemplate(&buf, component, nil); err != nil {
		return ""
	}
	return buf.String()
}

// ParseHex parses #RRGGBB or #RRGGBBAA
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")

	c := color.NRGBA{A: 0xff}
	var err error
	switch len(s) {
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("invalid colour length %d", len(s))
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return c, nil
}
