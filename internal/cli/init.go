package cli

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/invdash/internal/config"
	"github.com/rileyhilliard/invdash/internal/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // directory to write .invdash.yaml into; "" means cwd
	URL            string // pre-specified device URL
	Overwrite      bool   // overwrite existing config without asking
	NonInteractive bool   // skip prompts, use defaults
}

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .invdash.yaml configuration",
	Long: `Create a .invdash.yaml file in the current directory.

On a terminal you're asked for the source type, device URL or broker, and
poll interval. Otherwise defaults are written, using --url when given.

Examples:
  invdash init
  invdash init --url http://192.168.4.1
  invdash init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			URL:            urlFlag,
			Overwrite:      initForce,
			NonInteractive: !term.IsTerminal(int(os.Stdin.Fd())),
		}, os.Stdout)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}

// Init creates a new .invdash.yaml configuration file.
func Init(opts InitOptions, w io.Writer) error {
	configPath := filepath.Join(opts.Dir, config.ConfigFileName)

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
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if opts.URL != "" {
		cfg.Source.URL = opts.URL
	}

	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	content, err := renderConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, content, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Fprintf(w, "Created %s\n\n", configPath)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  invdash           - Open the dashboard")
	fmt.Fprintln(w, "  invdash snapshot  - Poll once and print")
	return nil
}

// promptConfig asks for the settings that differ between installs.
func promptConfig(cfg *config.Config) error {
	interval := strconv.FormatFloat(cfg.Poll.Interval, 'f', -1, 64)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where does status come from?").
				Options(
					huh.NewOption("Device web server (HTTP)", config.SourceHTTP),
					huh.NewOption("MQTT bridge", config.SourceMQTT),
				).
				Value(&cfg.Source.Type),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Device URL").
				Description("Also used to fetch names.json").
				Placeholder("http://192.168.4.1").
				Value(&cfg.Source.URL).
				Validate(validateURL),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("MQTT broker").
				Placeholder("tcp://localhost:1883").
				Value(&cfg.MQTT.Broker),
		).WithHideFunc(func() bool { return cfg.Source.Type != config.SourceMQTT }),
		huh.NewGroup(
			huh.NewInput().
				Title("Poll interval (seconds)").
				Value(&interval).
				Validate(validateInterval),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or pass --url and run without a terminal")
	}

	secs, err := strconv.ParseFloat(strings.TrimSpace(interval), 64)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid poll interval", "Enter a number of seconds, e.g. 15")
	}
	cfg.Poll.Interval = secs
	return nil
}

func validateURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("enter a URL like http://192.168.4.1")
	}
	return nil
}

func validateInterval(s string) error {
	secs, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number of seconds")
	}
	if secs < 0.5 {
		return fmt.Errorf("interval must be at least 0.5 seconds")
	}
	return nil
}

// renderConfig marshals cfg with a header comment.
func renderConfig(cfg *config.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# invdash configuration
# Run 'invdash' to open the dashboard.
# Every key can be overridden with INVDASH_<SECTION>_<KEY>, e.g. INVDASH_SOURCE_URL.

`
	return append([]byte(header), data...), nil
}
