package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newMenuCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive feedback menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, app)
		},
	}
}

func runMenu(cmd *cobra.Command, app *App) error {
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	if app.Scheduler != nil {
		if err := app.Scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer app.Scheduler.Stop()
	}

	title := color.New(color.FgCyan, color.Bold)
	title.Fprintln(out, "SteamNoodles Feedback System")
	fmt.Fprintf(out, "Using model: %s\n", app.Model)

	for {
		fmt.Fprintln(out, "\nMain Menu:")
		fmt.Fprintln(out, "1. Add New Review")
		fmt.Fprintln(out, "2. View Recent Reviews")
		fmt.Fprintln(out, "3. Generate Sentiment Report")
		fmt.Fprintln(out, "4. Exit")
		fmt.Fprint(out, "\nEnter your choice (1-4): ")

		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}

		switch strings.TrimSpace(in.Text()) {
		case "1":
			menuAdd(cmd, app, in)
		case "2":
			printRecent(cmd, app, 5)
		case "3":
			menuReport(cmd, app, in)
		case "4":
			fmt.Fprintln(out, "\nThank you for using the feedback system!")
			return nil
		default:
			fmt.Fprintln(out, "\nInvalid choice. Please enter 1-4.")
		}
	}
}

func menuAdd(cmd *cobra.Command, app *App, in *bufio.Scanner) {
	out := cmd.OutOrStdout()

	fmt.Fprint(out, "\nEnter the customer review (blank to cancel): ")
	if !in.Scan() {
		return
	}
	text := strings.TrimSpace(in.Text())
	if text == "" {
		fmt.Fprintln(out, "Review addition cancelled.")
		return
	}

	fmt.Fprint(out, "Enter date (YYYY-MM-DD) or leave blank for today: ")
	if !in.Scan() {
		return
	}
	date := strings.TrimSpace(in.Text())

	fmt.Fprintln(out, "\nProcessing review...")
	rec, err := app.Pipeline.Submit(cmd.Context(), text, date)
	if err != nil {
		color.New(color.FgRed).Fprintf(out, "\nError: %v\n", err)
		return
	}
	fmt.Fprintln(out)
	printRecord(cmd, rec)
}

func menuReport(cmd *cobra.Command, app *App, in *bufio.Scanner) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "\nAvailable date range formats:")
	fmt.Fprintln(out, "- 'last 7 days' (default)")
	fmt.Fprintln(out, "- 'last 30 days'")
	fmt.Fprintln(out, "- 'YYYY-MM-DD to YYYY-MM-DD' (custom range)")
	fmt.Fprint(out, "\nEnter date range: ")

	if !in.Scan() {
		return
	}
	expr := strings.TrimSpace(in.Text())
	if expr == "" {
		expr = "last 7 days"
	}

	fmt.Fprintf(out, "\nGenerating report for %s...\n", expr)
	if err := runReport(cmd, app, expr); err != nil {
		color.New(color.FgRed).Fprintf(out, "Error: %v\n", err)
	}
}
