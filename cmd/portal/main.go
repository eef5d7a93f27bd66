// Command portal is a terminal client for the attendance portal API.
package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cmlabs-hris/attendance-portal/internal/pkg/portalclient"
	"github.com/spf13/cobra"
)

const defaultBaseURL = "http://localhost:8080"

type app struct {
	baseURL string
	timeout time.Duration
	verbose bool
	client  *portalclient.Client
	now     func() time.Time
}

func main() {
	if err := newRootCmd(&app{now: time.Now}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	baseURL := os.Getenv("PORTAL_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	cmd := &cobra.Command{
		Use:           "portal",
		Short:         "Browse and edit attendance from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var handler slog.Handler = slog.NewTextHandler(io.Discard, nil)
			if a.verbose {
				handler = slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
			}
			slog.SetDefault(slog.New(handler))

			client, err := portalclient.New(portalclient.Options{BaseURL: a.baseURL, Timeout: a.timeout})
			if err != nil {
				return err
			}
			a.client = client
			slog.Debug("portal client ready", "base_url", a.baseURL, "timeout", a.timeout)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.baseURL, "base-url", baseURL, "Portal API base URL (env PORTAL_BASE_URL)")
	cmd.PersistentFlags().DurationVar(&a.timeout, "timeout", portalclient.DefaultTimeout, "Per-request timeout")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log requests to stderr")

	cmd.AddCommand(
		newEmployeesCmd(a),
		newDayCmd(a),
		newEmployeeCmd(a),
		newExportCmd(a),
		newRecordsCmd(a),
	)
	return cmd
}
