package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"noodle-feedback/internal/review"
)

func newRecentCmd(app *App) *cobra.Command {
	var flagCount int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printRecent(cmd, app, flagCount)
			return nil
		},
	}

	cmd.Flags().IntVar(&flagCount, "count", 5, "number of reviews to show")
	return cmd
}

func printRecent(cmd *cobra.Command, app *App, count int) {
	out := cmd.OutOrStdout()
	records := app.Store.Recent(count)
	if len(records) == 0 {
		fmt.Fprintln(out, "No reviews found.")
		return
	}

	fmt.Fprintf(out, "Last %d Reviews\n", len(records))
	for _, rec := range records {
		fmt.Fprintf(out, "\nID: %d | Date: %s\n", rec.ID, rec.Date.Format(review.DateLayout))
		fmt.Fprintf(out, "Sentiment: %s\n", strings.ToUpper(string(rec.Sentiment)))
		fmt.Fprintf(out, "Review: %s\n", rec.Text)
		fmt.Fprintf(out, "Response: %s\n", rec.Response)
	}
}
