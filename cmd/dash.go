package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"daydash/internal/calendar"
	"daydash/internal/config"
	"daydash/internal/logging"
	"daydash/internal/quotes"
	"daydash/internal/session"
	"daydash/internal/status"
	"daydash/internal/store"
	"daydash/internal/tasks"
	"daydash/internal/ui"
)

func newDashCmd() *cobra.Command {
	var (
		configDir string
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Open the dashboard",
		Long: `Open the interactive dashboard. A persisted session is restored when
still valid; otherwise the sign-in screen is shown first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configDir == "" {
				configDir = config.DefaultDir()
			}

			st, err := store.Open(configDir)
			if err != nil {
				return fmt.Errorf("failed to open data directory: %w", err)
			}

			logger, closeLog, err := logging.Setup(config.LogPath(configDir), debug)
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}
			defer closeLog()

			sess := session.NewManager(st, logger)
			overlay := status.LoadOverlay(st)

			connect := func(ctx context.Context) (ui.Services, error) {
				httpClient, err := sess.HTTPClient(ctx)
				if err != nil {
					return ui.Services{}, err
				}
				calClient, err := calendar.NewClient(ctx, httpClient)
				if err != nil {
					return ui.Services{}, err
				}
				taskClient, err := tasks.NewClient(ctx, httpClient)
				if err != nil {
					return ui.Services{}, err
				}
				return ui.Services{Calendar: calClient, Tasks: taskClient}, nil
			}

			model := ui.New(sess, overlay, connect, quotes.NewClient(), logger)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&configDir, "config-dir", "", "Directory for session data and logs (default: os config dir)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	return cmd
}
