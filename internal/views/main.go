package views

import (
	"flexipy-lite/internal/configs"
	"flexipy-lite/internal/icons"
	"flexipy-lite/internal/logger"
	"flexipy-lite/internal/models"
	"flexipy-lite/internal/sidebar"
	"flexipy-lite/internal/theme"
	"flexipy-lite/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Dependencies groups the collaborators of the main window
type Dependencies struct {
	Configs  *configs.Manager
	Resolver *icons.Resolver
	Theme    *theme.Manager
	Logger   logger.Logger
}

// MainWindow composes the sidebar with the configuration content pane
type MainWindow struct {
	window fyne.Window
	deps   Dependencies

	controller  *sidebar.Controller
	titleLabel  *widget.Label
	configTable *components.ConfigTable
	statusBar   *components.StatusBar

	content       *fyne.Container
	mainContainer *fyne.Container

	actionHandler func(models.Action)
}

// NewMainWindow builds the window content and installs it on window
func NewMainWindow(window fyne.Window, deps Dependencies) *MainWindow {
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}
	if deps.Theme == nil {
		deps.Theme = theme.New(theme.DefaultThemeName)
	}

	mw := &MainWindow{
		window: window,
		deps:   deps,
	}

	mw.initializeComponents()
	mw.buildLayout()
	mw.ReloadConfigs()

	return mw
}

// initializeComponents creates all UI components
func (mw *MainWindow) initializeComponents() {
	// The controller reports the default selection while it is being built,
	// so the title label must exist first.
	mw.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	mw.configTable = components.NewConfigTable()
	mw.statusBar = components.NewStatusBar()

	mw.controller = sidebar.NewController(sidebar.Options{
		Resolver: mw.deps.Resolver,
		Theme:    mw.deps.Theme,
		Logger:   mw.deps.Logger,
		OnSelect: mw.handleSelection,
		OnToggle: mw.handleToggle,
	})
}

// buildLayout constructs the main layout
func (mw *MainWindow) buildLayout() {
	background := canvas.NewRectangle(mw.deps.Theme.Color(theme.ContentBackground))

	header := container.NewVBox(mw.titleLabel, widget.NewSeparator())
	mw.content = container.NewStack(
		background,
		container.NewPadded(container.NewBorder(header, nil, nil, nil, mw.configTable.Widget())),
	)

	mw.mainContainer = container.NewBorder(
		nil,
		mw.statusBar.GetContainer(),
		mw.controller.Widget(),
		nil,
		mw.content,
	)

	if mw.window != nil {
		mw.window.SetContent(mw.mainContainer)
	}
}

func (mw *MainWindow) handleSelection(action models.Action) {
	mw.titleLabel.SetText(action.Title())
	mw.statusBar.SetStatus(action.Label())

	if mw.actionHandler != nil {
		mw.actionHandler(action)
	}
}

func (mw *MainWindow) handleToggle(bool) {
	if mw.mainContainer != nil {
		mw.mainContainer.Refresh()
	}
}

// SetActionHandler registers a callback invoked after the title changes
func (mw *MainWindow) SetActionHandler(handler func(models.Action)) {
	mw.actionHandler = handler
}

// ReloadConfigs re-reads the configuration directory into the table.
// Must run on the UI thread.
func (mw *MainWindow) ReloadConfigs() {
	if mw.deps.Configs == nil {
		mw.configTable.SetRows(nil)
		mw.statusBar.SetConfigInfo(0, "")
		return
	}

	mw.deps.Configs.LoadAll()
	names := mw.deps.Configs.Names()
	rows := make([]components.ConfigRow, 0, len(names))
	for _, name := range names {
		model, ok := mw.deps.Configs.Get(name)
		if !ok {
			continue
		}
		rows = append(rows, components.ConfigRow{Key: name, Model: model})
	}

	mw.configTable.SetRows(rows)
	mw.statusBar.SetConfigInfo(len(rows), mw.deps.Configs.Dir())

	mw.deps.Logger.Debug("MainWindow", "configurations reloaded", map[string]interface{}{
		"count": len(rows),
	})
}

// ShowError displays an error dialog
func (mw *MainWindow) ShowError(err error) {
	if mw.window == nil {
		return
	}
	dialog.ShowError(err, mw.window)
}

// Title returns the current content title
func (mw *MainWindow) Title() string {
	return mw.titleLabel.Text
}

// Controller returns the sidebar controller
func (mw *MainWindow) Controller() *sidebar.Controller {
	return mw.controller
}

// ConfigTable returns the configuration table component
func (mw *MainWindow) ConfigTable() *components.ConfigTable {
	return mw.configTable
}

// StatusBar returns the status bar component
func (mw *MainWindow) StatusBar() *components.StatusBar {
	return mw.statusBar
}

// Content returns the pane to the right of the sidebar
func (mw *MainWindow) Content() *fyne.Container {
	return mw.content
}

// GetContainer returns the root container
func (mw *MainWindow) GetContainer() *fyne.Container {
	return mw.mainContainer
}

// GetWindow returns the hosting window
func (mw *MainWindow) GetWindow() fyne.Window {
	return mw.window
}
