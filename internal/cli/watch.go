package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"boardwatch/internal/api"
	"boardwatch/internal/config"
	"boardwatch/internal/errors"
	"boardwatch/internal/monitor"
)

// Command-specific flags
var (
	watchConfigFlag   string
	watchServerFlag   string
	watchIntervalFlag string
	watchStartFlag    bool
)

// watchCmd opens the TUI dashboard.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open the live meeting dashboard",
	Long: `Connect to the meeting service and open the dashboard.

The dashboard polls the service while a meeting is live and renders one
card per board member. Press 's' to start a meeting, 'e' to end the
session, 'c' to clear the event log, and 'q' to quit.

Examples:
  boardwatch watch
  boardwatch watch --server http://meetings.internal:8080
  boardwatch watch --interval 500ms --start`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchConfigFlag, watchServerFlag, watchIntervalFlag, watchStartFlag)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchConfigFlag, "config", "", "Path to config file")
	watchCmd.Flags().StringVar(&watchServerFlag, "server", "", "Meeting service URL (overrides config)")
	watchCmd.Flags().StringVar(&watchIntervalFlag, "interval", "", "Poll interval, e.g. 2s (overrides config)")
	watchCmd.Flags().BoolVar(&watchStartFlag, "start", false, "Start a meeting as soon as the dashboard opens")
}

// watchCommand resolves configuration and runs the dashboard program.
func watchCommand(configFlag, serverFlag, intervalFlag string, start bool) error {
	cfg, err := resolveWatchConfig(configFlag, serverFlag, intervalFlag)
	if err != nil {
		return err
	}

	client := api.NewClient(cfg.Server)
	model := monitor.NewModel(client, cfg.PollInterval, cfg.Experience, start)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// resolveWatchConfig layers flag overrides on top of the loaded (or
// default) config and validates the result.
func resolveWatchConfig(configFlag, serverFlag, intervalFlag string) (*config.Config, error) {
	path, err := config.Find(configFlag)
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if path == "" {
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	if serverFlag != "" {
		cfg.Server = serverFlag
	}
	if intervalFlag != "" {
		d, err := time.ParseDuration(intervalFlag)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Invalid --interval value: "+intervalFlag,
				"Use a duration like 2s or 500ms")
		}
		cfg.PollInterval = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
