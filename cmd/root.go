package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the daydash application
var rootCmd = &cobra.Command{
	Use:   "daydash",
	Short: "A personal dashboard for Google Calendar and Google Tasks",
	Long: `daydash is a terminal dashboard for your Google account. It shows the
next 30 days of your primary calendar and lets you work through your
Google Tasks with a three-state workflow: to do, in progress, done.

Your session persists between runs; sign in once with "daydash login"
or directly from the dashboard.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "daydash version %s\n" .Version}}`)

	// If no subcommand is provided, open the dashboard by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "dash")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("daydash version %s\n", version)
		},
	}
}

func init() {
	rootCmd.AddCommand(newDashCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newQuoteCmd())
	rootCmd.AddCommand(newVersionCmd())
}
