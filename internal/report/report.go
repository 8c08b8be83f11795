// Package report aggregates stored reviews into per-day sentiment trend
// series for rendering and textual summaries.
package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"noodle-feedback/internal/review"
)

// ErrNoData signals that the resolved window contains no reviews. It is a
// normal outcome, not a malformed request; callers show "no data" instead of
// rendering an empty chart.
var ErrNoData = errors.New("no reviews in the requested range")

// Point is one (day, count) sample of a sentiment line.
type Point struct {
	Date  time.Time
	Count int
}

// Series is the renderable result of a trend report: one ordered line of
// points per sentiment present in the window, plus plain totals.
type Series struct {
	Range  string
	Window Window
	Points map[review.Sentiment][]Point
	Totals map[review.Sentiment]int
}

// Summary returns the textual per-sentiment distribution for the series.
func (s *Series) Summary() string {
	var b strings.Builder
	b.WriteString("Sentiment Distribution:\n")
	for _, sentiment := range review.Sentiments() {
		if total, ok := s.Totals[sentiment]; ok {
			fmt.Fprintf(&b, "  %-8s %d\n", sentiment, total)
		}
	}
	return b.String()
}

// Store is the subset of store operations the reporter needs.
type Store interface {
	Query(from, to time.Time) []review.Record
}

// Reporter resolves range expressions and aggregates matching reviews.
type Reporter struct {
	store Store
	clock clockwork.Clock
}

func NewReporter(store Store, clock clockwork.Clock) *Reporter {
	return &Reporter{store: store, clock: clock}
}

// Report resolves expr into a window, selects matching reviews and groups
// them by (day, sentiment). It returns a *RangeError for a malformed
// explicit range and ErrNoData when the selection is empty.
func (r *Reporter) Report(expr string) (*Series, error) {
	window, err := ParseRange(expr, r.clock.Now())
	if err != nil {
		return nil, err
	}

	records := r.store.Query(window.From, window.To)
	if len(records) == 0 {
		return nil, ErrNoData
	}

	counts := make(map[review.Sentiment]map[time.Time]int)
	totals := make(map[review.Sentiment]int)
	for _, rec := range records {
		day := review.Day(rec.Date)
		if counts[rec.Sentiment] == nil {
			counts[rec.Sentiment] = make(map[time.Time]int)
		}
		counts[rec.Sentiment][day]++
		totals[rec.Sentiment]++
	}

	points := make(map[review.Sentiment][]Point, len(counts))
	for sentiment, days := range counts {
		line := make([]Point, 0, len(days))
		for day, count := range days {
			line = append(line, Point{Date: day, Count: count})
		}
		sort.Slice(line, func(i, j int) bool { return line[i].Date.Before(line[j].Date) })
		points[sentiment] = line
	}

	return &Series{
		Range:  expr,
		Window: window,
		Points: points,
		Totals: totals,
	}, nil
}
