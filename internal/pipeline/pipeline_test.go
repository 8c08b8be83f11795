package pipeline_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noodle-feedback/internal/llm"
	"noodle-feedback/internal/pipeline"
	"noodle-feedback/internal/review"
	"noodle-feedback/internal/sentiment"
	"noodle-feedback/internal/store"
)

var testNow = time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

type fakeStore struct {
	records   []review.Record
	appendErr error
}

func (s *fakeStore) NextID() int { return len(s.records) + 1 }

func (s *fakeStore) Append(rec review.Record) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.records = append(s.records, rec)
	return nil
}

type fixedClassifier struct{ sentiment review.Sentiment }

func (c fixedClassifier) Classify(context.Context, string) review.Sentiment { return c.sentiment }

type fixedResponder struct{ reply string }

func (r fixedResponder) Respond(context.Context, string, review.Sentiment) string { return r.reply }

func newTestPipeline(st pipeline.Store) *pipeline.Pipeline {
	return pipeline.New(
		st,
		fixedClassifier{sentiment: review.SentimentPositive},
		fixedResponder{reply: "Thank you!"},
		clockwork.NewFakeClockAt(testNow),
	)
}

func TestSubmitRejectsEmptyText(t *testing.T) {
	st := &fakeStore{}
	p := newTestPipeline(st)

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := p.Submit(context.Background(), text, "")
		assert.ErrorIs(t, err, pipeline.ErrEmptyText, "text=%q", text)
		assert.Empty(t, st.records, "store must stay untouched")
	}
}

func TestSubmitPersistsRecord(t *testing.T) {
	st := &fakeStore{}
	p := newTestPipeline(st)

	rec, err := p.Submit(context.Background(), "The ramen was amazing!", "")
	require.NoError(t, err)

	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, "The ramen was amazing!", rec.Text)
	assert.Equal(t, review.SentimentPositive, rec.Sentiment)
	assert.Equal(t, "Thank you!", rec.Response)
	assert.True(t, rec.Date.Equal(review.Day(testNow)))

	require.Len(t, st.records, 1)
	assert.Equal(t, rec, st.records[0])
}

func TestSubmitUsesSuppliedDate(t *testing.T) {
	p := newTestPipeline(&fakeStore{})

	rec, err := p.Submit(context.Background(), "good", "2024-01-05")
	require.NoError(t, err)
	assert.True(t, rec.Date.Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))
}

func TestSubmitFallsBackToTodayOnBadDate(t *testing.T) {
	p := newTestPipeline(&fakeStore{})

	for _, date := range []string{"2024-13-40", "05/01/2024", "yesterday"} {
		rec, err := p.Submit(context.Background(), "good", date)
		require.NoError(t, err, "date=%q", date)
		assert.True(t, rec.Date.Equal(review.Day(testNow)), "date=%q", date)
	}
}

func TestSubmitIDsIncrementByOne(t *testing.T) {
	st := &fakeStore{}
	p := newTestPipeline(st)

	for i := 1; i <= 5; i++ {
		rec, err := p.Submit(context.Background(), "another bowl", "")
		require.NoError(t, err)
		assert.Equal(t, i, rec.ID)
	}
}

func TestSubmitPropagatesStoreFailure(t *testing.T) {
	bang := errors.New("disk full")
	p := newTestPipeline(&fakeStore{appendErr: bang})

	_, err := p.Submit(context.Background(), "good", "")
	assert.ErrorIs(t, err, bang)
}

// downClient simulates the inference service being fully unavailable.
type downClient struct{}

func (downClient) Generate(context.Context, []llm.Message) (llm.Response, error) {
	return llm.Response{}, errors.New("service unavailable")
}

func TestSubmitTotalDespiteServiceFailure(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "reviews.csv"), false)
	require.NoError(t, err)

	p := pipeline.New(
		st,
		sentiment.NewClassifier(downClient{}, 50*time.Millisecond),
		sentiment.NewResponder(downClient{}, 50*time.Millisecond),
		clockwork.NewFakeClockAt(testNow),
	)

	rec, err := p.Submit(context.Background(), "Service was slow but food okay.", "")
	require.NoError(t, err)
	assert.True(t, rec.Sentiment.Valid())
	assert.Equal(t, review.SentimentNeutral, rec.Sentiment)
	assert.NotEmpty(t, rec.Response)
	assert.Equal(t, 1, st.Size())

	_, err = p.Submit(context.Background(), "", "")
	assert.ErrorIs(t, err, pipeline.ErrEmptyText)
	assert.Equal(t, 1, st.Size())
}
