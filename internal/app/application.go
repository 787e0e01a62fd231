package app

import (
	"fmt"

	"flexipy-lite/internal/configs"
	"flexipy-lite/internal/icons"
	"flexipy-lite/internal/logger"
	"flexipy-lite/internal/models"
	"flexipy-lite/internal/settings"
	"flexipy-lite/internal/theme"
	"flexipy-lite/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName      = "FlexiPy Lite"
	AppID        = "com.flexipy.lite"
	WindowWidth  = 1200
	WindowHeight = 800
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	settings   settings.Settings
	logger     logger.Logger
	configs    *configs.Manager
	mainWindow *views.MainWindow
	watcher    *configs.Watcher
	lifecycle  *Lifecycle
}

// NewApplication creates the Fyne application and wires every component
func NewApplication(cfg settings.Settings, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log)
}

func newApplication(fyneApp fyne.App, cfg settings.Settings, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NewNop()
	}

	manager, err := configs.NewManager(cfg.ConfigDir, log)
	if err != nil {
		return nil, fmt.Errorf("open configuration store: %w", err)
	}

	appRoot := cfg.ResolveAppRoot()
	log.Info("Application", "starting application", map[string]interface{}{
		"config_dir": manager.Dir(),
		"app_root":   appRoot,
		"theme":      cfg.Theme,
		"log_level":  cfg.Level().String(),
	})

	colors := theme.New(cfg.Theme)
	fyneApp.Settings().SetTheme(colors.FyneTheme())

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	a := &Application{
		fyneApp:   fyneApp,
		window:    window,
		settings:  cfg,
		logger:    log,
		configs:   manager,
		lifecycle: NewLifecycle(log),
	}

	a.mainWindow = views.NewMainWindow(window, views.Dependencies{
		Configs:  manager,
		Resolver: icons.NewResolver(appRoot, log),
		Theme:    colors,
		Logger:   log,
	})
	a.mainWindow.SetActionHandler(a.handleAction)

	if cfg.Watch() {
		a.startWatcher(manager.Dir())
	}

	log.Info("Application", "initialization complete", nil)
	return a, nil
}

// startWatcher keeps the table in sync with the config directory. A watcher
// failure only disables live reload.
func (a *Application) startWatcher(dir string) {
	watcher, err := configs.NewWatcher(dir, configs.DefaultDebounce, a.logger, func() {
		fyne.Do(a.mainWindow.ReloadConfigs)
	})
	if err != nil {
		a.logger.Warning("Application", "config watcher disabled", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	a.watcher = watcher
	a.lifecycle.Register("config watcher", watcher.Close)
}

func (a *Application) handleAction(action models.Action) {
	a.logger.Info("Application", "action selected", map[string]interface{}{
		"action": action.ID(),
		"title":  action.Title(),
	})
}

// Run shows the window and blocks until the application quits
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.lifecycle.OnSignal(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

// Shutdown releases resources without running the event loop
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}

func (a *Application) MainWindow() *views.MainWindow {
	return a.mainWindow
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) Configs() *configs.Manager {
	return a.configs
}

// Watching reports whether live reload of the config directory is active
func (a *Application) Watching() bool {
	return a.watcher != nil
}
