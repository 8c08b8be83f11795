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

const respondPrompt = `As the manager of SteamNoodles, write a professional 1-2 sentence response to this %s review.
Tone should be: %s

Review: "%s"

Response:`

// tones maps each sentiment to the reply tone the prompt asks for.
var tones = map[review.Sentiment]string{
	review.SentimentPositive: "warm and appreciative",
	review.SentimentNegative: "apologetic and constructive",
	review.SentimentNeutral:  "polite and encouraging",
}

// cannedResponses are the fixed per-sentiment fallbacks used when the backend
// is unavailable. They keep the pipeline total: every submission gets a
// non-empty reply no matter what.
var cannedResponses = map[review.Sentiment]string{
	review.SentimentPositive: "Thank you for your wonderful feedback! We're delighted you enjoyed your experience.",
	review.SentimentNegative: "We sincerely apologize for your experience. Please contact us so we can make this right.",
	review.SentimentNeutral:  "Thank you for your feedback. We appreciate you taking the time to share your thoughts.",
}

// Responder drafts a tone-appropriate reply to a review.
type Responder struct {
	client  llm.Client
	timeout time.Duration
}

func NewResponder(client llm.Client, timeout time.Duration) *Responder {
	return &Responder{client: client, timeout: timeout}
}

// Respond returns a reply to text matching the given sentiment's tone.
// It never fails and never returns an empty string.
func (r *Responder) Respond(ctx context.Context, text string, sentiment review.Sentiment) string {
	if !sentiment.Valid() {
		sentiment = review.SentimentNeutral
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.Generate(ctx, []llm.Message{
		{Role: llm.RoleUser, Content: fmt.Sprintf(respondPrompt, sentiment, tones[sentiment], text)},
	})
	if err != nil {
		slog.Warn("response generation failed, using canned reply", "sentiment", sentiment, "error", err)
		return cannedResponses[sentiment]
	}

	reply := strings.TrimSpace(resp.Content)
	if reply == "" {
		slog.Warn("response generation returned empty reply, using canned reply", "sentiment", sentiment)
		return cannedResponses[sentiment]
	}
	return reply
}
