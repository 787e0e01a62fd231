package sidebar

import (
	"testing"

	"flexipy-lite/internal/icons"
	"flexipy-lite/internal/logger"
	"flexipy-lite/internal/models"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events  []models.Action
	toggles []bool
}

func newTestController(t *testing.T) (*Controller, *recorder) {
	t.Helper()
	test.NewTempApp(t)

	rec := &recorder{}
	c := NewController(Options{
		Resolver: icons.NewResolver(t.TempDir(), logger.NewNop()),
		Logger:   logger.NewNop(),
		OnSelect: func(a models.Action) { rec.events = append(rec.events, a) },
		OnToggle: func(expanded bool) { rec.toggles = append(rec.toggles, expanded) },
	})
	return c, rec
}

func selectedIDs(c *Controller) []string {
	var ids []string
	for _, section := range c.Sections() {
		for _, b := range section.Buttons() {
			if b.Selected() {
				ids = append(ids, b.ID())
			}
		}
	}
	return ids
}

func TestNewController_InitialState(t *testing.T) {
	c, rec := newTestController(t)

	assert.False(t, c.Expanded())
	assert.Equal(t, float32(CollapsedWidth), c.Width())

	selected, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, models.ActionStart, selected)
	assert.Equal(t, []string{"start"}, selectedIDs(c))

	// The default selection is reported through the normal event path
	assert.Equal(t, []models.Action{models.ActionStart}, rec.events)
	assert.Empty(t, rec.toggles)
}

func TestNewController_Manifest(t *testing.T) {
	c, _ := newTestController(t)

	var layout [][]string
	for _, section := range c.Sections() {
		var ids []string
		for _, b := range section.Buttons() {
			ids = append(ids, b.ID())
		}
		layout = append(layout, ids)
	}

	assert.Equal(t, [][]string{
		{"menu"},
		{"start"},
		{"new", "edit", "delete"},
		{"import", "export"},
		{"settings"},
	}, layout)

	toggle, ok := c.Button(models.ToggleID)
	require.True(t, ok)
	assert.Equal(t, ToggleLabel, toggle.Label())

	settings, ok := c.Button("settings")
	require.True(t, ok)
	assert.Equal(t, "Options", settings.Label())
	assert.Equal(t, "settings", settings.IconName())
}

func TestSelect_MostRecentWins(t *testing.T) {
	c, rec := newTestController(t)

	sequence := []string{"edit", "new", "export", "export", "settings", "start", "delete"}
	for _, id := range sequence {
		c.Select(id)

		assert.Equal(t, []string{id}, selectedIDs(c))
		selected, ok := c.Selected()
		require.True(t, ok)
		assert.Equal(t, id, selected.ID())
		assert.Equal(t, id, rec.events[len(rec.events)-1].ID())
	}

	// Re-selecting the current entry still emits
	assert.Len(t, rec.events, len(sequence)+1)
}

func TestSelect_ToggleIDIsNoop(t *testing.T) {
	c, rec := newTestController(t)
	c.Select("edit")
	before := len(rec.events)

	c.Select(models.ToggleID)

	assert.Len(t, rec.events, before)
	selected, _ := c.Selected()
	assert.Equal(t, models.ActionEdit, selected)
	assert.Equal(t, []string{"edit"}, selectedIDs(c))
	assert.False(t, c.Expanded())
}

func TestSelect_UnknownIDIsIgnored(t *testing.T) {
	c, rec := newTestController(t)
	before := len(rec.events)

	c.Select("bogus")

	assert.Len(t, rec.events, before)
	assert.Equal(t, []string{"start"}, selectedIDs(c))

	c.Select("edit")
	c.Select("bogus")
	assert.Equal(t, []string{"edit"}, selectedIDs(c))
	assert.Equal(t, models.ActionEdit, rec.events[len(rec.events)-1])
}

func TestSelectAction_InvalidActionIsIgnored(t *testing.T) {
	c, rec := newTestController(t)
	before := len(rec.events)

	c.SelectAction(models.Action(99))

	assert.Len(t, rec.events, before)
	assert.Equal(t, []string{"start"}, selectedIDs(c))
}

func TestToggle_FlipsExpandedOnly(t *testing.T) {
	c, rec := newTestController(t)
	c.Select("import")
	events := len(rec.events)

	c.Toggle()

	assert.True(t, c.Expanded())
	assert.Equal(t, float32(ExpandedWidth), c.Width())
	for _, section := range c.Sections() {
		for _, b := range section.Buttons() {
			assert.True(t, b.Expanded(), b.ID())
		}
	}
	assert.Len(t, rec.events, events)
	assert.Equal(t, []string{"import"}, selectedIDs(c))
	assert.Equal(t, []bool{true}, rec.toggles)
}

func TestToggle_TwiceRestoresPresentation(t *testing.T) {
	c, _ := newTestController(t)

	snapshot := func() map[string][2]bool {
		state := make(map[string][2]bool)
		for _, section := range c.Sections() {
			for _, b := range section.Buttons() {
				state[b.ID()] = [2]bool{b.Expanded(), b.Selected()}
			}
		}
		return state
	}

	before := snapshot()
	c.Toggle()
	c.Toggle()

	assert.False(t, c.Expanded())
	assert.Equal(t, before, snapshot())
}

func TestTapping_RoutesThroughController(t *testing.T) {
	c, rec := newTestController(t)

	edit, _ := c.Button("edit")
	test.Tap(edit)
	assert.Equal(t, models.ActionEdit, rec.events[len(rec.events)-1])
	assert.True(t, edit.Selected())

	events := len(rec.events)
	toggle, _ := c.Button(models.ToggleID)
	test.Tap(toggle)
	assert.True(t, c.Expanded())
	assert.False(t, toggle.Selected())
	assert.Len(t, rec.events, events)

	test.Tap(toggle)
	assert.False(t, c.Expanded())
}

func TestWidget_TracksWidth(t *testing.T) {
	c, _ := newTestController(t)

	assert.Equal(t, float32(CollapsedWidth), c.Widget().MinSize().Width)
	c.Toggle()
	assert.Equal(t, float32(ExpandedWidth), c.Widget().MinSize().Width)
}

func TestNewController_NilCollaborators(t *testing.T) {
	test.NewTempApp(t)

	c := NewController(Options{})

	selected, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, models.ActionStart, selected)

	b, _ := c.Button("start")
	assert.Equal(t, icons.SourceNone, b.IconSource())
}
