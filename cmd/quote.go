package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daydash/internal/quotes"
)

func newQuoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print a random quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := quotes.NewClient().Random(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch quote: %w", err)
			}
			fmt.Printf("%q\n  - %s\n", q.Quote, q.Author)
			return nil
		},
	}
}
