package theme

import (
	"image/color"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColor(t *testing.T) {
	m := New(DefaultThemeName)

	assert.Equal(t, "#2D3250", m.GetColor(SidebarBackground))
	assert.Equal(t, "#424769", m.GetColor(SidebarHover))
	assert.Equal(t, "#FFFFFF", m.GetColor(SidebarText))
	assert.Equal(t, FallbackColor, m.GetColor("no_such_color"))
}

func TestNew_UnknownThemeFallsBack(t *testing.T) {
	m := New("solarized")
	assert.Equal(t, DefaultThemeName, m.Name())
	assert.Equal(t, "#2D3250", m.GetColor(SidebarBackground))
}

func TestColor(t *testing.T) {
	m := New(DefaultThemeName)

	assert.Equal(t, color.NRGBA{R: 0x2D, G: 0x32, B: 0x50, A: 0xff}, m.Color(SidebarBackground))
	assert.Equal(t, color.NRGBA{A: 0xff}, m.Color("missing"))
}

func TestStyleFor(t *testing.T) {
	m := New(DefaultThemeName)

	sidebar := m.StyleFor("sidebar")
	assert.True(t, strings.HasPrefix(sidebar, "#sidebar {"))
	assert.Contains(t, sidebar, "background-color: #2D3250;")
	assert.Contains(t, sidebar, "background-color: #424769;")
	assert.Contains(t, sidebar, "border-left: 4px solid #FFFFFF;")

	content := m.StyleFor("content")
	assert.Contains(t, content, "#content_area")
	assert.Contains(t, content, "color: #000000;")

	assert.Empty(t, m.StyleFor("toolbar"))
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#FFFFFF", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"676F9D", color.NRGBA{R: 0x67, G: 0x6F, B: 0x9D, A: 255}, false},
		{"#00000080", color.NRGBA{A: 0x80}, false},
		{"#FFF", color.NRGBA{}, true},
		{"#GGGGGG", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFyneTheme_UsesColorTable(t *testing.T) {
	m := New(DefaultThemeName)
	th := m.FyneTheme()

	assert.Equal(t, m.Color(ContentBackground), th.Color(fynetheme.ColorNameBackground, fynetheme.VariantDark))
	assert.Equal(t, m.Color(SidebarHover), th.Color(fynetheme.ColorNameHover, fynetheme.VariantLight))
	assert.Equal(t, float32(24), th.Size(fynetheme.SizeNameHeadingText))
	assert.NotNil(t, th.Font(fyne.TextStyle{}))
}
