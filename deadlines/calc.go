// Package deadlines computes statutory due dates and their urgency
// classification. All arithmetic happens on calendar dates in the
// firm's local zone; times of day never enter the calculation.
package deadlines

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all deadline dates
const DateLayout = "2006-01-02"

// RAG is the traffic-light urgency classification of a deadline
type RAG string

const (
	RAGRed   RAG = "red"
	RAGAmber RAG = "amber"
	RAGGreen RAG = "green"
)

// Classification thresholds, in days remaining until the due date.
// Overdue deadlines are always red.
const (
	redThresholdDays   = 3
	amberThresholdDays = 10
)

// Computation is the result of a deadline calculation
type Computation struct {
	BaseDate        string `json:"baseDate"`
	PeriodDays      int    `json:"periodDays"`
	WorkingDaysOnly bool   `json:"workingDaysOnly"`
	DueDate         string `json:"dueDate"`
}

// Compute derives a due date from a base date and a statutory period.
// With workingDaysOnly set, Saturdays and Sundays do not consume period
// days and a due date landing on a weekend rolls to the next Monday.
func Compute(baseDate string, periodDays int, workingDaysOnly bool) (Computation, error) {
	base, err := time.Parse(DateLayout, baseDate)
	if err != nil {
		return Computation{}, fmt.Errorf("invalid base date %q: %w", baseDate, err)
	}
	if periodDays < 0 {
		return Computation{}, fmt.Errorf("period days must be non-negative, got %d", periodDays)
	}

	var due time.Time
	if workingDaysOnly {
		due = AddWorkingDays(base, periodDays)
	} else {
		due = base.AddDate(0, 0, periodDays)
	}

	return Computation{
		BaseDate:        baseDate,
		PeriodDays:      periodDays,
		WorkingDaysOnly: workingDaysOnly,
		DueDate:         due.Format(DateLayout),
	}, nil
}

// AddWorkingDays advances t by n working days, skipping Saturdays and
// Sundays. With n == 0 the date still rolls forward off a weekend.
func AddWorkingDays(t time.Time, n int) time.Time {
	for i := 0; i < n; i++ {
		t = t.AddDate(0, 0, 1)
		for isWeekend(t) {
			t = t.AddDate(0, 0, 1)
		}
	}
	for isWeekend(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Classify buckets a due date against a reference date, usually today.
// An unparseable due date classifies red so that bad data surfaces on
// the dashboard instead of silently reading as safe.
func Classify(dueDate string, now time.Time) RAG {
	due, err := time.Parse(DateLayout, dueDate)
	if err != nil {
		return RAGRed
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	remaining := int(due.Sub(today).Hours() / 24)

	switch {
	case remaining <= redThresholdDays:
		return RAGRed
	case remaining <= amberThresholdDays:
		return RAGAmber
	}
	return RAGGreen
}

// DaysRemaining returns whole days from now's date to the due date.
// Negative values mean the deadline has passed.
func DaysRemaining(dueDate string, now time.Time) (int, error) {
	due, err := time.Parse(DateLayout, dueDate)
	if err != nil {
		return 0, fmt.Errorf("invalid due date %q: %w", dueDate, err)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(due.Sub(today).Hours() / 24), nil
}
