package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		raw  string
		want Sentiment
	}{
		{"positive", SentimentPositive},
		{"negative", SentimentNegative},
		{"neutral", SentimentNeutral},
		{" Positive ", SentimentPositive},
		{"NEGATIVE", SentimentNegative},
		{"", SentimentNeutral},
		{"mixed", SentimentNeutral},
		{"positive.", SentimentNeutral},
		{"somewhat positive", SentimentNeutral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSentiment(tt.raw), "raw=%q", tt.raw)
	}
}

func TestSentimentValid(t *testing.T) {
	for _, s := range Sentiments() {
		assert.True(t, s.Valid())
	}
	assert.False(t, Sentiment("angry").Valid())
	assert.False(t, Sentiment("").Valid())
}

func TestDay(t *testing.T) {
	ts := time.Date(2024, 3, 15, 23, 59, 12, 500, time.FixedZone("x", 3600))
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Day(ts))
}
