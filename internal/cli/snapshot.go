package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rileyhilliard/invdash/internal/dashboard"
	"github.com/spf13/cobra"
)

var snapshotJSON bool

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Poll once and print the dashboard",
	Long: `Load metadata, fetch the status document once and print the rendered
panels. With --json the panels are wrapped in a JSON envelope.

Examples:
  invdash snapshot
  invdash snapshot --json | jq '.data.panels[0]'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = snapshotJSON
		return snapshotCommand(cmd.Context(), os.Stdout, snapshotJSON)
	},
}

func init() {
	snapshotCmd.Flags().BoolVar(&snapshotJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(snapshotCmd)
}

// SnapshotData is the --json payload.
type SnapshotData struct {
	Updated time.Time         `json:"updated"`
	Panels  []dashboard.Panel `json:"panels"`
}

func snapshotCommand(ctx context.Context, w io.Writer, jsonOut bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(false, 0)
	if err != nil {
		if jsonOut {
			_ = WriteJSONFromError(w, err)
		}
		return err
	}
	defer a.close()

	a.ctrl.Bootstrap(ctx)
	u := a.ctrl.Poll(ctx)
	if u.Err != nil {
		if jsonOut {
			_ = WriteJSONFromError(w, u.Err)
		}
		return u.Err
	}

	if jsonOut {
		return WriteJSONSuccess(w, SnapshotData{Updated: u.At, Panels: u.Panels})
	}
	return dashboard.WriteText(w, u.Panels)
}
