package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/invdash/internal/dashboard"
	"github.com/rileyhilliard/invdash/internal/errors"
	"github.com/rileyhilliard/invdash/internal/monitor"
	"github.com/rileyhilliard/invdash/internal/poll"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type watchOptions struct {
	interval time.Duration
	plain    bool
}

var watchOpts watchOptions

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show the live dashboard",
	Long: `Poll the status endpoint and show the dashboard.

On a terminal this starts the full-screen dashboard. When stdout is not a
terminal, or with --plain, every poll is printed as plain text instead.

Examples:
  invdash watch
  invdash watch --interval 5s
  invdash watch --plain | tee inverter.log`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchOpts)
	},
}

func addWatchFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&watchOpts.interval, "interval", 0, "poll interval (e.g. 5s), overrides poll.interval")
	cmd.Flags().BoolVar(&watchOpts.plain, "plain", false, "print plain text instead of the full-screen dashboard")
}

func init() {
	addWatchFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

// watchCommand runs the dashboard until interrupted.
func watchCommand(opts watchOptions) error {
	if opts.interval != 0 && opts.interval < poll.MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("--interval must be at least %s", poll.MinInterval),
			"Try --interval 1s")
	}

	tui := !opts.plain && term.IsTerminal(int(os.Stdout.Fd()))

	a, err := newApp(tui, opts.interval)
	if err != nil {
		return err
	}
	defer a.close()

	if tui {
		model := monitor.NewModel(a.ctrl, a.label)
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err = p.Run()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runPlain(ctx, a.ctrl, os.Stdout)
}

// runPlain prints every poll result as text until ctx is done.
func runPlain(ctx context.Context, ctrl *poll.Controller, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var werr error
	err := ctrl.Run(ctx, func(u poll.Update) {
		if u.Skipped || werr != nil {
			return
		}
		if werr = writePlainUpdate(w, u, ctrl.StatusLine()); werr != nil {
			cancel()
		}
	})
	if werr != nil {
		return werr
	}
	return err
}

func writePlainUpdate(w io.Writer, u poll.Update, statusLine string) error {
	if u.Err != nil {
		_, err := fmt.Fprintf(w, "%s: %s\n\n", statusLine, errors.Summary(u.Err))
		return err
	}
	if err := dashboard.WriteText(w, u.Panels); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n\n", statusLine)
	return err
}
