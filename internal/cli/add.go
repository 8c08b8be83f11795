package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"noodle-feedback/internal/review"
)

func newAddCmd(app *App) *cobra.Command {
	var flagDate string

	cmd := &cobra.Command{
		Use:   "add <review text>",
		Short: "Submit a customer review",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			rec, err := app.Pipeline.Submit(cmd.Context(), text, flagDate)
			if err != nil {
				return err
			}
			printRecord(cmd, rec)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagDate, "date", "", "review date (YYYY-MM-DD, default today)")
	return cmd
}

func printRecord(cmd *cobra.Command, rec review.Record) {
	out := cmd.OutOrStdout()
	color.New(color.FgGreen).Fprintln(out, "Review added successfully!")
	fmt.Fprintf(out, "\nReview ID: %d\n", rec.ID)
	fmt.Fprintf(out, "Date: %s\n", rec.Date.Format(review.DateLayout))
	fmt.Fprintf(out, "Sentiment: %s\n", strings.ToUpper(string(rec.Sentiment)))
	fmt.Fprintf(out, "\nGenerated Response:\n%s\n", rec.Response)
}
