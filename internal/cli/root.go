package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todoscreen/internal/logging"
	"github.com/sandeepkv93/todoscreen/internal/scheduler"
	"github.com/sandeepkv93/todoscreen/internal/update"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath           string
	LogFile              string
	LogLevel             string
	DesktopNotifications bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todoscreen",
		Short:        "Single-screen in-memory todo list",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive screen
  todoscreen

  # Replay palette commands without a terminal UI
  printf 'add Buy milk\ntoggle 1\n' | todoscreen run
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("TODOSCREEN_CONFIG", ""), "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Write JSON logs to this file (rotated)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	cmd.Flags().BoolVar(&app.DesktopNotifications, "desktop-notifications", false, "Mirror notifications to the desktop")

	cmd.AddCommand(newRunCmd(app))
	return cmd
}

// loadConfig applies flags on top of the file and environment layers.
func (a *App) loadConfig(cmd *cobra.Command) (update.RuntimeConfig, error) {
	cfg, err := update.LoadRuntimeConfig(a.ConfigPath)
	if err != nil {
		return update.RuntimeConfig{}, err
	}
	if a.LogFile != "" {
		cfg.LogFile = a.LogFile
	}
	if a.LogLevel != "" {
		cfg.LogLevel = a.LogLevel
	}
	if f := cmd.Flags().Lookup("desktop-notifications"); f != nil && f.Changed {
		cfg.DesktopNotifications = a.DesktopNotifications
	}
	return cfg, nil
}

func (a *App) logger(cfg update.RuntimeConfig) (*logrus.Logger, func(), error) {
	logger, closer, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = closer.Close() }, nil
}

func runTUI(cmd *cobra.Command, app *App) error {
	cfg, err := app.loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := app.logger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()

	opts := []update.Option{
		update.WithScheduler(engine),
		update.WithLogger(logrus.NewEntry(logger)),
	}
	if cfg.DesktopNotifications {
		opts = append(opts, update.WithDesktopNotifier(update.ExecDesktopNotifier{}))
	}

	logger.WithField("busy_delay_ms", cfg.BusyDelayMillis).Info("starting todoscreen")
	program := tea.NewProgram(update.NewModelWithConfig(cfg, opts...))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("todoscreen failed: %w", err)
	}
	if dropped := engine.Dropped(); dropped > 0 {
		logger.WithField("dropped", dropped).Warn("busy expiries dropped")
	}
	return nil
}

func envOr(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}
