package store

import (
	"fmt"
	"math/rand"
	"time"

	"noodle-feedback/internal/review"
)

var (
	seedFoods    = []string{"ramen", "dumplings", "sushi", "fried rice"}
	seedServices = []string{"friendly", "slow", "excellent", "terrible"}
)

// sampleRecords generates n plausible reviews spread over the 30 days before
// now, used to seed a brand-new store so reports have something to show.
func sampleRecords(n int, now time.Time) []review.Record {
	sentiments := review.Sentiments()
	base := review.Day(now).AddDate(0, 0, -30)

	out := make([]review.Record, 0, n)
	for i := 0; i < n; i++ {
		sentiment := sentiments[rand.Intn(len(sentiments))]

		var text string
		switch sentiment {
		case review.SentimentPositive:
			text = fmt.Sprintf("The %s was amazing! Service was %s.", pick(seedFoods), pick(seedServices))
		case review.SentimentNegative:
			text = fmt.Sprintf("Terrible %s. The service was %s.", pick(seedFoods), pick(seedServices))
		default:
			text = fmt.Sprintf("The %s was okay. Service was fine.", pick(seedFoods))
		}

		out = append(out, review.Record{
			ID:        i + 1,
			Text:      text,
			Sentiment: sentiment,
			Date:      base.AddDate(0, 0, rand.Intn(30)),
			Response:  fmt.Sprintf("Sample response to %s review", sentiment),
		})
	}
	return out
}

func pick(options []string) string {
	return options[rand.Intn(len(options))]
}
