package main

import (
	"fmt"

	"flexipy-lite/internal/app"
	"flexipy-lite/internal/logger"
	"flexipy-lite/internal/settings"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	settingsPath string
	configDir    string
	appRoot      string
	logLevel     string
	noWatch      bool
}

type runFunc func(cfg settings.Settings, log logger.Logger) error

func newRootCmd(run runFunc) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "flexipy",
		Short: "Desktop shell for managing FlexiPy configurations",
		Long: `FlexiPy Lite shows the configurations stored in the configuration
directory next to a collapsible navigation sidebar.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return run(cfg, logger.NewConsoleLogger(cfg.Level()))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.settingsPath, "settings", "", "Settings file (default ~/.flexipy/settings.yaml)")
	flags.StringVar(&opts.configDir, "config-dir", "", "Configuration directory (default ~/.flexipy/configs)")
	flags.StringVar(&opts.appRoot, "app-root", "", "Directory containing resources/icons (default: executable directory)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&opts.noWatch, "no-watch", false, "Do not reload when the configuration directory changes")

	cmd.Version = version
	cmd.SetVersionTemplate(versionString() + "\n")
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

func versionString() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("flexipy %s\n  commit: %s\n  built:  %s", version, commit, date)
	}
	return fmt.Sprintf("flexipy %s", version)
}

// resolve loads the settings file and applies flags that were set
// explicitly, so flags win over both the file and the environment.
func (o *rootOptions) resolve(cmd *cobra.Command) (settings.Settings, error) {
	path := o.settingsPath
	if path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			return settings.Settings{}, err
		}
		path = p
	}

	cfg, err := settings.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("error loading settings: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("config-dir") {
		cfg.ConfigDir = o.configDir
	}
	if flags.Changed("app-root") {
		cfg.AppRoot = o.appRoot
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if o.noWatch {
		watch := false
		cfg.WatchConfigs = &watch
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runApplication(cfg settings.Settings, log logger.Logger) error {
	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("main", err, nil)
		return fmt.Errorf("error starting application: %w", err)
	}
	return application.Run()
}
