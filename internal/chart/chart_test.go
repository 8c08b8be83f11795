package chart

import (
	"os"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noodle-feedback/internal/report"
	"noodle-feedback/internal/review"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestRenderWritesPNG(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC))
	r := NewRenderer(t.TempDir(), clock)

	series := &report.Series{
		Range:  "last 7 days",
		Window: report.Window{From: day(8), To: day(15)},
		Points: map[review.Sentiment][]report.Point{
			review.SentimentPositive: {{Date: day(9), Count: 2}, {Date: day(12), Count: 1}},
			review.SentimentNegative: {{Date: day(10), Count: 3}},
		},
		Totals: map[review.Sentiment]int{
			review.SentimentPositive: 3,
			review.SentimentNegative: 3,
		},
	}

	path, err := r.Render(series)
	require.NoError(t, err)
	assert.Contains(t, path, "sentiment_plot_20240615_093000.png")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderSingleDayWindow(t *testing.T) {
	r := NewRenderer(t.TempDir(), clockwork.NewFakeClockAt(day(15)))

	series := &report.Series{
		Range:  "2024-06-10 to 2024-06-10",
		Window: report.Window{From: day(10), To: day(10)},
		Points: map[review.Sentiment][]report.Point{
			review.SentimentNeutral: {{Date: day(10), Count: 1}},
		},
		Totals: map[review.Sentiment]int{review.SentimentNeutral: 1},
	}

	path, err := r.Render(series)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
