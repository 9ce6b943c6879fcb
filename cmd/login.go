package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"daydash/internal/config"
	"daydash/internal/logging"
	"daydash/internal/session"
	"daydash/internal/store"
)

func newLoginCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with your Google account",
		Long: `Sign in with Google without opening the dashboard. Prints the consent
URL, waits for the authorization code on stdin, and persists the
session for later runs.`,
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

			sess := session.NewManager(st, logger)
			if profile, ok := sess.Restore(); ok {
				fmt.Printf("Already signed in as %s\n", profile.Email)
				return nil
			}

			fmt.Println("Open this URL in a browser and grant access:")
			fmt.Println()
			fmt.Println("  " + sess.AuthURL())
			fmt.Println()
			fmt.Print("Paste the authorization code: ")

			reader := bufio.NewReader(os.Stdin)
			code, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			code = strings.TrimSpace(code)
			if code == "" {
				return fmt.Errorf("no authorization code provided")
			}

			profile, err := sess.Complete(context.Background(), code)
			if err != nil {
				return fmt.Errorf("sign-in failed: %w", err)
			}

			fmt.Printf("Signed in as %s\n", profile.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&configDir, "config-dir", "", "Directory for session data and logs (default: os config dir)")
	return cmd
}
