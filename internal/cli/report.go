package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"noodle-feedback/internal/report"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [range expression]",
		Short: "Generate a sentiment trend report",
		Long: `Generate a sentiment trend report and chart for a date range.

Range expressions:
  "last 7 days" (default)
  "last 30 days"
  "YYYY-MM-DD to YYYY-MM-DD"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			if strings.TrimSpace(expr) == "" {
				expr = "last 7 days"
			}
			return runReport(cmd, app, expr)
		},
	}
	return cmd
}

func runReport(cmd *cobra.Command, app *App, expr string) error {
	out := cmd.OutOrStdout()

	series, err := app.Reporter.Report(expr)
	if errors.Is(err, report.ErrNoData) {
		fmt.Fprintln(out, "No reviews in selected date range.")
		return nil
	}
	if err != nil {
		return err
	}

	path, err := app.Renderer.Render(series)
	if err != nil {
		return fmt.Errorf("failed to generate chart: %w", err)
	}

	fmt.Fprintf(out, "Report generated: %s\n\n", path)
	fmt.Fprint(out, series.Summary())
	return nil
}
