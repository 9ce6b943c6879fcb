package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"daydash/internal/config"
	"daydash/internal/logging"
	"daydash/internal/session"
	"daydash/internal/store"
)

func newLogoutCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and delete the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configDir == "" {
				configDir = config.DefaultDir()
			}

			st, err := store.Open(configDir)
			if err != nil {
				return fmt.Errorf("failed to open data directory: %w", err)
			}

			logger, closeLog, err := logging.Setup(config.LogPath(configDir), false)
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}
			defer closeLog()

			session.NewManager(st, logger).Clear()
			fmt.Println("Signed out.")
			return nil
		},
	}

	cmd.Flags().StringVar(&configDir, "config-dir", "", "Directory for session data and logs (default: os config dir)")
	return cmd
}
