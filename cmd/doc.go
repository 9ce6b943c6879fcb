// Package cmd implements the command-line interface for daydash.
//
// This package provides the following commands:
//   - dash: Open the interactive dashboard
//   - login: Sign in with Google from the terminal
//   - logout: Sign out and delete the persisted session
//   - quote: Print a random quote
//   - version: Display version information
//
// The dash command is the default command when no subcommand is specified.
package cmd
