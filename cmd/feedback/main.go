package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"noodle-feedback/internal/chart"
	"noodle-feedback/internal/cli"
	"noodle-feedback/internal/config"
	"noodle-feedback/internal/llm"
	"noodle-feedback/internal/logging"
	"noodle-feedback/internal/pipeline"
	"noodle-feedback/internal/report"
	"noodle-feedback/internal/scheduler"
	"noodle-feedback/internal/sentiment"
	"noodle-feedback/internal/store"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	st, err := store.Open(cfg.ReviewsFilePath, cfg.SeedSampleReviews)
	if err != nil {
		slog.Error("failed to open review store", "path", cfg.ReviewsFilePath, "error", err)
		os.Exit(1)
	}

	client, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		slog.Error("failed to create llm client", "error", err)
		os.Exit(1)
	}

	clock := clockwork.NewRealClock()
	reporter := report.NewReporter(st, clock)
	renderer := chart.NewRenderer(cfg.ChartDir, clock)

	app := &cli.App{
		Pipeline: pipeline.New(
			st,
			sentiment.NewClassifier(client, cfg.LLMTimeout),
			sentiment.NewResponder(client, cfg.LLMTimeout),
			clock,
		),
		Reporter: reporter,
		Renderer: renderer,
		Store:    st,
		Model:    cfg.OpenAIModel,
	}

	if cfg.DailyReportEnabled {
		sched := scheduler.New()
		sched.SetReportFunction(func(ctx context.Context) error {
			series, err := reporter.Report(cfg.DailyReportRange)
			if errors.Is(err, report.ErrNoData) {
				slog.Info("daily report skipped, no reviews in range", "range", cfg.DailyReportRange)
				return nil
			}
			if err != nil {
				return err
			}
			path, err := renderer.Render(series)
			if err != nil {
				return err
			}
			slog.Info("daily report rendered", "path", path)
			return nil
		})
		app.Scheduler = sched
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
