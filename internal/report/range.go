package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"noodle-feedback/internal/review"
)

// Window is an inclusive date range used to select records for a report.
type Window struct {
	From time.Time
	To   time.Time
}

// RangeError rejects a malformed explicit date range. Unlike submission
// dates, an analytical window is never silently substituted: a report over
// the wrong window would mislead rather than degrade.
type RangeError struct {
	Expr  string
	Token string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid date range %q: bad token %q (want %s)", e.Expr, e.Token, review.DateLayout)
}

var lastDaysRe = regexp.MustCompile(`^last\s+(\d+)\s+days?$`)

// ParseRange resolves a range expression against now. Three forms, in order:
//
//	"last N days"              window of the trailing N days ending today
//	"YYYY-MM-DD to YYYY-MM-DD" explicit inclusive window, strictly parsed
//	anything else              the default trailing 7 day window
//
// Only the explicit two-date form can fail.
func ParseRange(expr string, now time.Time) (Window, error) {
	today := review.Day(now)
	trimmed := strings.TrimSpace(expr)

	if m := lastDaysRe.FindStringSubmatch(strings.ToLower(trimmed)); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return Window{From: today.AddDate(0, 0, -n), To: today}, nil
		}
	}

	if before, after, found := strings.Cut(trimmed, " to "); found {
		from, err := time.ParseInLocation(review.DateLayout, strings.TrimSpace(before), time.UTC)
		if err != nil {
			return Window{}, &RangeError{Expr: expr, Token: strings.TrimSpace(before)}
		}
		to, err := time.ParseInLocation(review.DateLayout, strings.TrimSpace(after), time.UTC)
		if err != nil {
			return Window{}, &RangeError{Expr: expr, Token: strings.TrimSpace(after)}
		}
		if to.Before(from) {
			return Window{}, &RangeError{Expr: expr, Token: strings.TrimSpace(after)}
		}
		return Window{From: from, To: to}, nil
	}

	return Window{From: today.AddDate(0, 0, -7), To: today}, nil
}
