package sidebar

import (
	"testing"

	"flexipy-lite/internal/icons"
	"flexipy-lite/internal/logger"
	"flexipy-lite/internal/theme"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestSection_Objects(t *testing.T) {
	test.NewTempApp(t)
	colors := theme.New(theme.DefaultThemeName)
	resolver := icons.NewResolverWithStrategies(logger.NewNop())

	s := NewSection("configuration")
	s.Add(NewButton("new", "new", "New", false, resolver, colors))
	s.Add(NewButton("edit", "edit", "Edit", false, resolver, colors))

	assert.Equal(t, "configuration", s.Title())
	assert.Len(t, s.Buttons(), 2)

	// buttons only
	assert.Len(t, s.Objects(false, false, colors), 2)

	// leading space + buttons
	first := s.Objects(true, false, colors)
	assert.Len(t, first, 3)
	assert.Equal(t, float32(SectionSpacing), first[0].MinSize().Height)

	// buttons + spacing, divider, spacing
	separated := s.Objects(false, true, colors)
	assert.Len(t, separated, 5)
	divider, ok := separated[3].(*canvas.Rectangle)
	if assert.True(t, ok) {
		assert.Equal(t, float32(SeparatorHeight), divider.MinSize().Height)
		assert.Equal(t, colors.Color(theme.SidebarHover), divider.FillColor)
	}
}
