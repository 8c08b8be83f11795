// Package pipeline turns raw feedback text into a persisted, answered review
// record.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"noodle-feedback/internal/review"
)

// ErrEmptyText rejects a submission whose text is empty or whitespace-only.
// It is the only failure that surfaces before anything is persisted.
var ErrEmptyText = errors.New("review text cannot be empty")

// Store is the subset of store operations the pipeline needs.
type Store interface {
	NextID() int
	Append(review.Record) error
}

// Classifier labels review text. Implementations must be total: they always
// produce a label, never an error.
type Classifier interface {
	Classify(ctx context.Context, text string) review.Sentiment
}

// Responder drafts a reply. Implementations must be total and never return
// an empty string.
type Responder interface {
	Respond(ctx context.Context, text string, sentiment review.Sentiment) string
}

// Pipeline orchestrates classification, reply drafting and persistence.
type Pipeline struct {
	store      Store
	classifier Classifier
	responder  Responder
	clock      clockwork.Clock
}

func New(store Store, classifier Classifier, responder Responder, clock clockwork.Clock) *Pipeline {
	return &Pipeline{
		store:      store,
		classifier: classifier,
		responder:  responder,
		clock:      clock,
	}
}

// Submit processes one piece of feedback. date is an optional YYYY-MM-DD
// string; empty or unparseable dates resolve to today rather than failing
// the submission. The returned record has already been persisted.
//
// A store write failure is returned as-is: durability is the one thing this
// engine never degrades on.
func (p *Pipeline) Submit(ctx context.Context, text, date string) (review.Record, error) {
	if strings.TrimSpace(text) == "" {
		return review.Record{}, ErrEmptyText
	}

	day := p.resolveDate(date)

	sentiment := p.classifier.Classify(ctx, text)
	response := p.responder.Respond(ctx, text, sentiment)

	rec := review.Record{
		ID:        p.store.NextID(),
		Text:      text,
		Sentiment: sentiment,
		Date:      day,
		Response:  response,
	}
	if err := p.store.Append(rec); err != nil {
		return review.Record{}, fmt.Errorf("failed to persist review: %w", err)
	}
	return rec, nil
}

func (p *Pipeline) resolveDate(date string) time.Time {
	today := review.Day(p.clock.Now())
	if strings.TrimSpace(date) == "" {
		return today
	}
	parsed, err := time.ParseInLocation(review.DateLayout, strings.TrimSpace(date), time.UTC)
	if err != nil {
		slog.Warn("invalid review date, using today instead", "date", date)
		return today
	}
	return parsed
}
