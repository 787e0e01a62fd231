package views

import (
	"errors"
	"testing"

	"flexipy-lite/internal/configs"
	"flexipy-lite/internal/icons"
	"flexipy-lite/internal/logger"
	"flexipy-lite/internal/models"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow(t *testing.T) (*MainWindow, *configs.Manager) {
	t.Helper()
	test.NewTempApp(t)

	manager, err := configs.NewManager(t.TempDir(), logger.NewNop())
	require.NoError(t, err)

	window := test.NewTempWindow(t, nil)
	mw := NewMainWindow(window, Dependencies{
		Configs:  manager,
		Resolver: icons.NewResolver(t.TempDir(), logger.NewNop()),
		Logger:   logger.NewNop(),
	})
	return mw, manager
}

func TestNewMainWindow_InitialState(t *testing.T) {
	mw, _ := newTestWindow(t)

	assert.Equal(t, "Start", mw.Title())
	assert.Equal(t, mw.GetContainer(), mw.GetWindow().Content())
	assert.Empty(t, mw.ConfigTable().Rows())
	assert.Equal(t, "No configurations", mw.StatusBar().GetConfigInfo())

	selected, ok := mw.Controller().Selected()
	require.True(t, ok)
	assert.Equal(t, models.ActionStart, selected)
}

func TestMainWindow_SelectionUpdatesTitle(t *testing.T) {
	mw, _ := newTestWindow(t)

	var handled []models.Action
	mw.SetActionHandler(func(a models.Action) { handled = append(handled, a) })

	for _, action := range models.Actions() {
		mw.Controller().Select(action.ID())
		assert.Equal(t, action.Title(), mw.Title(), action.ID())
	}
	assert.Equal(t, models.Actions(), handled)
}

func TestMainWindow_EditScenario(t *testing.T) {
	mw, _ := newTestWindow(t)

	button, ok := mw.Controller().Button("edit")
	require.True(t, ok)
	test.Tap(button)

	assert.Equal(t, "Edit Configuration", mw.Title())
	assert.Equal(t, "Edit", mw.StatusBar().GetStatus())
}

func TestMainWindow_UnknownAndToggleLeaveTitle(t *testing.T) {
	mw, _ := newTestWindow(t)
	mw.Controller().Select("delete")

	mw.Controller().Select("bogus")
	assert.Equal(t, "Delete Configuration", mw.Title())

	mw.Controller().Select(models.ToggleID)
	assert.Equal(t, "Delete Configuration", mw.Title())

	mw.Controller().Toggle()
	assert.True(t, mw.Controller().Expanded())
	assert.Equal(t, "Delete Configuration", mw.Title())
}

func TestMainWindow_ReloadConfigs(t *testing.T) {
	mw, manager := newTestWindow(t)

	require.True(t, manager.Save("beta", models.ConfigModel{Name: "Beta", Description: "second"}))
	require.True(t, manager.Save("alpha", models.ConfigModel{Description: "unnamed"}))

	mw.ReloadConfigs()

	table := mw.ConfigTable()
	require.Len(t, table.Rows(), 2)

	// Rows follow the sorted storage keys; an empty name falls back to the key
	assert.Equal(t, "alpha", table.CellText(0, 0))
	assert.Equal(t, "unnamed", table.CellText(0, 1))
	assert.Equal(t, "Beta", table.CellText(1, 0))
	assert.Equal(t, "second", table.CellText(1, 1))
	assert.Equal(t, "", table.CellText(2, 0))
	assert.Equal(t, "", table.CellText(0, 2))

	assert.Equal(t, "2 configurations", mw.StatusBar().GetConfigInfo())
}

func TestMainWindow_ReloadClearsSelection(t *testing.T) {
	mw, manager := newTestWindow(t)
	require.True(t, manager.Save("only", models.ConfigModel{Name: "Only"}))
	mw.ReloadConfigs()

	table := mw.ConfigTable()
	table.Select(0)
	row, ok := table.Selected()
	require.True(t, ok)
	assert.Equal(t, "only", row.Key)

	mw.ReloadConfigs()
	_, ok = table.Selected()
	assert.False(t, ok)
	assert.Equal(t, "1 configuration", mw.StatusBar().GetConfigInfo())
}

func TestMainWindow_WithoutManager(t *testing.T) {
	test.NewTempApp(t)

	mw := NewMainWindow(test.NewTempWindow(t, nil), Dependencies{})
	mw.ReloadConfigs()

	assert.Equal(t, "Start", mw.Title())
	assert.Empty(t, mw.ConfigTable().Rows())
	mw.ShowError(errors.New("boom"))
}
