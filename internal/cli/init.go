package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"boardwatch/internal/api"
	"boardwatch/internal/config"
	"boardwatch/internal/errors"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .boardwatch.yaml config file",
	Long: `Interactively create a .boardwatch.yaml in the current directory.

Prompts for the meeting service URL and poll interval, checks the service
is reachable, and writes the config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{Overwrite: initForce})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config without asking")
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Server         string // Pre-specified server URL
	Interval       string // Pre-specified poll interval
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use provided values or defaults
	SkipProbe      bool   // Skip the service reachability check
}

// Init creates a new .boardwatch.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	server := opts.Server
	if server == "" {
		server = config.DefaultServer
	}
	interval := opts.Interval
	if interval == "" {
		interval = config.DefaultPollInterval.String()
	}

	if !opts.NonInteractive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Meeting service URL").
					Description("Base URL of the board meeting service").
					Placeholder(config.DefaultServer).
					Value(&server).
					Validate(func(s string) error {
						c := config.DefaultConfig()
						c.Server = strings.TrimSpace(s)
						return c.Validate()
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Poll interval").
					Description("How often to fetch meeting status, e.g. 2s").
					Placeholder("2s").
					Value(&interval).
					Validate(func(s string) error {
						d, err := time.ParseDuration(strings.TrimSpace(s))
						if err != nil {
							return fmt.Errorf("use a duration like 2s or 500ms")
						}
						if d <= 0 {
							return fmt.Errorf("interval must be positive")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility")
		}
	}

	cfg := config.DefaultConfig()
	cfg.Server = strings.TrimSpace(server)
	d, err := time.ParseDuration(strings.TrimSpace(interval))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid poll interval: "+interval,
			"Use a duration like 2s or 500ms")
	}
	cfg.PollInterval = d

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Check the service is reachable before saving. A failed probe is
	// not fatal: the service may simply not be running yet.
	if !opts.SkipProbe {
		fmt.Printf("Checking %s...\n", cfg.Server)
		if err := checkService(cfg.Server, opts.NonInteractive); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# boardwatch configuration
# Run 'boardwatch watch' to open the dashboard

`
	if err := os.WriteFile(configPath, []byte(header+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("✓ Created %s\n\n", configPath)
	fmt.Println("Next steps:")
	fmt.Println("  boardwatch watch          - Open the dashboard")
	fmt.Println("  boardwatch watch --start  - Open and start a meeting")

	return nil
}

// checkService probes the status endpoint. An unreachable service is not
// fatal interactively (the user may want to start it later), but requires
// confirmation before the config is saved.
func checkService(server string, nonInteractive bool) error {
	probeErr := probeServer(server)
	if probeErr == nil {
		fmt.Println("✓ Service reachable")
		return nil
	}

	fmt.Printf("✗ Service not reachable: %v\n", probeErr)
	if nonInteractive {
		return nil
	}

	var saveAnyway bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save config anyway? (You can start the service later)").
				Value(&saveAnyway),
		),
	)
	if err := form.Run(); err != nil || !saveAnyway {
		return errors.WrapWithCode(probeErr, errors.ErrAPI,
			"Meeting service not reachable at "+server,
			"Check the service is running and the URL is correct")
	}
	return nil
}

// probeServer checks the status endpoint responds at all.
func probeServer(server string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := api.NewClient(server)
	_, err := client.MeetingStatus(ctx)
	return err
}
