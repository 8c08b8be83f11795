// Package store persists review records as an append-only CSV file.
//
// The file carries a header row and one row per record
// (review_id,text,sentiment,date,response). Existing rows are never rewritten
// or reordered; every successful append goes straight to disk so state
// survives a restart.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"noodle-feedback/internal/review"
)

var header = []string{"review_id", "text", "sentiment", "date", "response"}

// Store is a durable ordered collection of review records.
// Safe for concurrent use within a single process; the engine assumes a
// single writer per file.
type Store struct {
	path string

	mu      sync.Mutex
	records []review.Record
}

// Open loads the CSV file at path, creating it if absent. A freshly created
// store is populated with generated sample reviews when seed is true.
// Rows with unparseable dates are dropped on load rather than failing the
// whole store.
func Open(path string, seed bool) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to ensure data dir: %w", err)
	}

	s := &Store{path: path}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		var seeded []review.Record
		if seed {
			seeded = sampleRecords(10, time.Now())
		}
		if err := s.writeAll(seeded); err != nil {
			return nil, err
		}
		s.records = seeded
		return s, nil
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open read: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	first := true
	line := 0
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read csv: %w", err)
		}
		line++
		if first {
			first = false
			continue
		}
		if len(row) != len(header) {
			slog.Warn("dropping malformed review row", "path", s.path, "line", line)
			continue
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			slog.Warn("dropping review row with bad id", "path", s.path, "line", line)
			continue
		}
		date, err := time.ParseInLocation(review.DateLayout, row[3], time.UTC)
		if err != nil {
			slog.Warn("dropping review row with bad date", "path", s.path, "line", line, "date", row[3])
			continue
		}
		s.records = append(s.records, review.Record{
			ID:        id,
			Text:      row[1],
			Sentiment: review.ParseSentiment(row[2]),
			Date:      date,
			Response:  row[4],
		})
	}
	return nil
}

// writeAll creates the file from scratch with a header plus the given rows.
// Only used at first open; appends never rewrite the file.
func (s *Store) writeAll(records []review.Record) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create store file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(row(rec)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush store file: %w", err)
	}
	return nil
}

// Append persists a record and adds it to the in-memory view. The row is
// written through to disk before Append returns; a write failure leaves the
// in-memory state untouched and is returned to the caller.
func (s *Store) Append(rec review.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open append: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(row(rec)); err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush append: %w", err)
	}

	s.records = append(s.records, rec)
	return nil
}

func row(rec review.Record) []string {
	return []string{
		strconv.Itoa(rec.ID),
		rec.Text,
		string(rec.Sentiment),
		rec.Date.Format(review.DateLayout),
		rec.Response,
	}
}

// Size returns the number of records currently in the store.
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// NextID returns the id the next appended record must carry.
func (s *Store) NextID() int {
	return s.Size() + 1
}

// Query returns copies of all records whose date falls within [from, to],
// both bounds inclusive at day granularity, in insertion order.
func (s *Store) Query(from, to time.Time) []review.Record {
	from = review.Day(from)
	to = review.Day(to)

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []review.Record
	for _, rec := range s.records {
		d := review.Day(rec.Date)
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Recent returns up to n records, newest date first. Records sharing a date
// keep insertion order relative to each other.
func (s *Store) Recent(n int) []review.Record {
	s.mu.Lock()
	out := make([]review.Record, len(s.records))
	copy(out, s.records)
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
