package deadlines_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lawdesk/legal-practice-api/deadlines"
)

func TestCompute_CalendarDays(t *testing.T) {
	got, err := deadlines.Compute("2026-09-01", 30, false)

	assert.NoError(t, err)
	assert.Equal(t, "2026-10-01", got.DueDate)
	assert.Equal(t, 30, got.PeriodDays)
	assert.False(t, got.WorkingDaysOnly)
}

func TestCompute_WorkingDaysSkipWeekends(t *testing.T) {
	// 2026-09-04 is a Friday; five working days later is the next Friday
	got, err := deadlines.Compute("2026-09-04", 5, true)

	assert.NoError(t, err)
	assert.Equal(t, "2026-09-11", got.DueDate)
}

func TestCompute_WorkingDaysRollOffWeekend(t *testing.T) {
	// 2026-09-05 is a Saturday; even a zero-day period lands on Monday
	got, err := deadlines.Compute("2026-09-05", 0, true)

	assert.NoError(t, err)
	assert.Equal(t, "2026-09-07", got.DueDate)

	// same from a Sunday base
	got, err = deadlines.Compute("2026-09-06", 0, true)

	assert.NoError(t, err)
	assert.Equal(t, "2026-09-07", got.DueDate)
}

func TestCompute_InvalidInputs(t *testing.T) {
	_, err := deadlines.Compute("14-09-2026", 30, false)
	assert.Error(t, err)

	_, err = deadlines.Compute("2026-09-14", -1, false)
	assert.Error(t, err)
}

func TestAddWorkingDays(t *testing.T) {
	friday := time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC)

	next := deadlines.AddWorkingDays(friday, 1)
	assert.Equal(t, time.Monday, next.Weekday())
	assert.Equal(t, 7, next.Day())

	tenOut := deadlines.AddWorkingDays(friday, 10)
	assert.Equal(t, time.Friday, tenOut.Weekday())
	assert.Equal(t, 18, tenOut.Day())
}

func TestClassify(t *testing.T) {
	now := time.Date(2026, time.September, 1, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, deadlines.RAGRed, deadlines.Classify("2026-08-28", now))   // overdue
	assert.Equal(t, deadlines.RAGRed, deadlines.Classify("2026-09-01", now))   // today
	assert.Equal(t, deadlines.RAGRed, deadlines.Classify("2026-09-04", now))   // 3 days out
	assert.Equal(t, deadlines.RAGAmber, deadlines.Classify("2026-09-05", now)) // 4 days out
	assert.Equal(t, deadlines.RAGAmber, deadlines.Classify("2026-09-11", now)) // 10 days out
	assert.Equal(t, deadlines.RAGGreen, deadlines.Classify("2026-09-12", now)) // 11 days out
	assert.Equal(t, deadlines.RAGGreen, deadlines.Classify("2027-01-01", now))

	assert.Equal(t, deadlines.RAGRed, deadlines.Classify("not-a-date", now))
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, time.September, 1, 23, 59, 0, 0, time.UTC)

	d, err := deadlines.DaysRemaining("2026-09-10", now)
	assert.NoError(t, err)
	assert.Equal(t, 9, d)

	d, err = deadlines.DaysRemaining("2026-08-30", now)
	assert.NoError(t, err)
	assert.Equal(t, -2, d)

	_, err = deadlines.DaysRemaining("garbage", now)
	assert.Error(t, err)
}
