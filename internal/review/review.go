// Package review defines the persisted feedback record and its sentiment label.
package review

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used everywhere a date crosses a
// boundary: the CSV store, the submission interface and the report grammar.
const DateLayout = "2006-01-02"

// Sentiment is the classification label attached to a review.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Sentiments returns all labels in display order.
func Sentiments() []Sentiment {
	return []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}
}

// Valid returns true if s is a known sentiment label.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// ParseSentiment normalizes a raw label. Anything outside the three known
// labels is coerced to neutral; ambiguous output is never guessed at.
func ParseSentiment(raw string) Sentiment {
	s := Sentiment(strings.ToLower(strings.TrimSpace(raw)))
	if s.Valid() {
		return s
	}
	return SentimentNeutral
}

// Record is a single persisted feedback entry.
type Record struct {
	ID        int
	Text      string
	Sentiment Sentiment
	Date      time.Time
	Response  string
}

// Day truncates t to day granularity in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
