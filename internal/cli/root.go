package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	urlFlag string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "invdash",
	Short: "Live terminal dashboard for an inverter's status endpoint",
	Long: `invdash polls an inverter's JSON status endpoint and shows every section
as a panel of labeled value cards, with names and units taken from the
device's names.json.

Running invdash with no subcommand starts the dashboard.

Examples:
  invdash
  invdash --url http://192.168.4.1
  invdash snapshot --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchOpts)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !machineMode {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.invdash.yaml or ~/.config/invdash/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&urlFlag, "url", "", "device base URL, overrides source.url")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	addWatchFlags(rootCmd)
}
