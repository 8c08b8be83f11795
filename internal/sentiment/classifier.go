// Package sentiment wraps the LLM backend in two total capabilities:
// sentiment classification and reply drafting. Neither ever fails; backend
// errors are absorbed into deterministic local fallbacks and logged.
package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"noodle-feedback/internal/llm"
	"noodle-feedback/internal/review"
)

const classifyPrompt = `Analyze this restaurant review and classify its sentiment as positive, negative, or neutral.
Examples of positive words: amazing, excellent, wonderful, delicious, loved
Examples of negative words: terrible, awful, disgusting, horrible, worst
If unsure, choose neutral.

Review: "%s"

Respond ONLY with one word: positive, negative, or neutral`

// Classifier labels review text via the LLM backend.
type Classifier struct {
	client  llm.Client
	timeout time.Duration
}

func NewClassifier(client llm.Client, timeout time.Duration) *Classifier {
	return &Classifier{client: client, timeout: timeout}
}

// Classify returns the sentiment of text. It never returns an error: a
// backend failure or an off-label reply yields neutral.
func (c *Classifier) Classify(ctx context.Context, text string) review.Sentiment {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Generate(ctx, []llm.Message{
		{Role: llm.RoleUser, Content: fmt.Sprintf(classifyPrompt, text)},
	})
	if err != nil {
		slog.Warn("sentiment classification failed, defaulting to neutral", "error", err)
		return review.SentimentNeutral
	}

	label := review.Sentiment(strings.ToLower(strings.TrimSpace(resp.Content)))
	if !label.Valid() {
		slog.Warn("classifier returned unknown label, coercing to neutral", "label", resp.Content)
		return review.SentimentNeutral
	}
	return label
}
