// Package cli defines the cobra command tree for the feedback engine.
package cli

import (
	"github.com/spf13/cobra"

	"noodle-feedback/internal/chart"
	"noodle-feedback/internal/pipeline"
	"noodle-feedback/internal/report"
	"noodle-feedback/internal/scheduler"
	"noodle-feedback/internal/store"
)

// App bundles the engine collaborators the commands operate on.
type App struct {
	Pipeline  *pipeline.Pipeline
	Reporter  *report.Reporter
	Renderer  *chart.Renderer
	Store     *store.Store
	Scheduler *scheduler.Scheduler // optional, only started by the menu
	Model     string
}

// NewRootCmd creates the root cobra command. Running it without a subcommand
// opens the interactive menu.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "feedback",
		Short:         "Process customer feedback and report sentiment trends",
		Long:          "Ingest customer reviews, classify their sentiment, draft replies, and chart sentiment trends over time.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, app)
		},
	}

	root.AddCommand(
		newAddCmd(app),
		newRecentCmd(app),
		newReportCmd(app),
		newMenuCmd(app),
		newVersionCmd(),
	)

	return root
}
