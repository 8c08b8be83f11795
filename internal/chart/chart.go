// Package chart renders sentiment trend series to PNG files. It is the
// engine's rendering sink: its only contract with the rest of the system is
// the report.Series shape.
package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"github.com/wcharczuk/go-chart/v2"

	"noodle-feedback/internal/report"
	"noodle-feedback/internal/review"
)

// Renderer writes trend charts into a target directory.
type Renderer struct {
	dir   string
	clock clockwork.Clock
}

func NewRenderer(dir string, clock clockwork.Clock) *Renderer {
	return &Renderer{dir: dir, clock: clock}
}

// Render draws one line per sentiment present in the series and writes the
// chart to a timestamped PNG. It returns the path of the written file.
func (r *Renderer) Render(series *report.Series) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to ensure chart dir: %w", err)
	}

	var lines []chart.Series
	maxCount := 0
	for _, sentiment := range review.Sentiments() {
		points := series.Points[sentiment]
		if len(points) == 0 {
			continue
		}
		ts := chart.TimeSeries{
			Name:  string(sentiment),
			Style: chart.Style{StrokeWidth: 2, DotWidth: 4},
		}
		for _, p := range points {
			ts.XValues = append(ts.XValues, p.Date)
			ts.YValues = append(ts.YValues, float64(p.Count))
			if p.Count > maxCount {
				maxCount = p.Count
			}
		}
		// go-chart refuses single-value series; repeat the lone point.
		if len(ts.XValues) == 1 {
			ts.XValues = append(ts.XValues, ts.XValues[0])
			ts.YValues = append(ts.YValues, ts.YValues[0])
		}
		lines = append(lines, ts)
	}

	xrange := &chart.ContinuousRange{
		Min: chart.TimeToFloat64(series.Window.From),
		Max: chart.TimeToFloat64(series.Window.To),
	}
	if xrange.Min >= xrange.Max {
		// Single-day window; widen so the x axis has a non-zero span.
		xrange.Max = chart.TimeToFloat64(series.Window.To.AddDate(0, 0, 1))
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Customer Sentiment Trends (%s)", series.Range),
		Width:  1000,
		Height: 600,
		XAxis: chart.XAxis{
			Name:           "Date",
			Range:          xrange,
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Number of Reviews",
			// Fixed range keeps flat series renderable (a zero-delta axis is
			// rejected by go-chart).
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount) + 1},
		},
		Series: lines,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	name := fmt.Sprintf("sentiment_plot_%s.png", r.clock.Now().Format("20060102_150405"))
	path := filepath.Join(r.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	return path, nil
}
