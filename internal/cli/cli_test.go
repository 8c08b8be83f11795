package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noodle-feedback/internal/chart"
	"noodle-feedback/internal/llm"
	"noodle-feedback/internal/pipeline"
	"noodle-feedback/internal/report"
	"noodle-feedback/internal/sentiment"
	"noodle-feedback/internal/store"
)

type scriptedClient struct{ reply string }

func (c scriptedClient) Generate(context.Context, []llm.Message) (llm.Response, error) {
	return llm.Response{Content: c.reply}, nil
}

func newTestApp(t *testing.T, reply string) *App {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "reviews.csv"), false)
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	client := scriptedClient{reply: reply}

	return &App{
		Pipeline: pipeline.New(
			st,
			sentiment.NewClassifier(client, time.Second),
			sentiment.NewResponder(client, time.Second),
			clock,
		),
		Reporter: report.NewReporter(st, clock),
		Renderer: chart.NewRenderer(t.TempDir(), clock),
		Store:    st,
		Model:    "test-model",
	}
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestAddCommand(t *testing.T) {
	app := newTestApp(t, "positive")

	out, err := execute(t, app, "add", "--date", "2024-06-10", "Great", "noodles!")
	require.NoError(t, err)

	assert.Contains(t, out, "Review ID: 1")
	assert.Contains(t, out, "Date: 2024-06-10")
	assert.Contains(t, out, "Sentiment: POSITIVE")
	assert.Equal(t, 1, app.Store.Size())
}

func TestRecentCommandEmptyStore(t *testing.T) {
	app := newTestApp(t, "neutral")

	out, err := execute(t, app, "recent")
	require.NoError(t, err)
	assert.Contains(t, out, "No reviews found.")
}

func TestReportCommandNoData(t *testing.T) {
	app := newTestApp(t, "neutral")

	out, err := execute(t, app, "report", "last", "7", "days")
	require.NoError(t, err)
	assert.Contains(t, out, "No reviews in selected date range.")
}

func TestReportCommandRejectsMalformedRange(t *testing.T) {
	app := newTestApp(t, "positive")

	_, err := execute(t, app, "add", "Tasty!")
	require.NoError(t, err)

	_, err = execute(t, app, "report", "2024-01-01", "to", "2024-13-40")
	var rerr *report.RangeError
	require.ErrorAs(t, err, &rerr)
}

func TestReportCommandRendersChart(t *testing.T) {
	app := newTestApp(t, "positive")

	_, err := execute(t, app, "add", "Amazing", "dumplings")
	require.NoError(t, err)

	out, err := execute(t, app, "report", "last", "7", "days")
	require.NoError(t, err)
	assert.Contains(t, out, "Report generated:")
	assert.Contains(t, out, "Sentiment Distribution:")
	assert.Contains(t, out, "positive")
}
