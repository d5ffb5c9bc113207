package analytics

import (
	"strings"
	"time"

	"fintrack/internal/models"
)

// DirectionFilter restricts a transaction set to one flow direction.
type DirectionFilter string

const (
	FilterAll     DirectionFilter = "all"
	FilterIncome  DirectionFilter = "income"
	FilterExpense DirectionFilter = "expense"
)

// TimeRange restricts a transaction set to a trailing window relative to
// the moment of filtering.
type TimeRange string

const (
	RangeAll     TimeRange = "all"
	RangeWeek    TimeRange = "week"
	RangeMonth   TimeRange = "month"
	RangeQuarter TimeRange = "quarter"
)

// days returns the length of the trailing window, or 0 for no lower bound.
func (r TimeRange) days() int {
	switch r {
	case RangeWeek:
		return 7
	case RangeMonth:
		return 30
	case RangeQuarter:
		return 90
	default:
		return 0
	}
}

// Criteria holds the user-supplied filters applied before aggregation.
// Empty values mean "no restriction".
type Criteria struct {
	Search    string
	Direction DirectionFilter
	Range     TimeRange
}

// Apply returns the subset of transactions matching every criterion.
// The search term matches case-insensitively as a substring of title or
// category. Time windows are computed against the supplied now so callers
// (and tests) control the clock.
func Apply(transactions []models.Transaction, c Criteria, now time.Time) []models.Transaction {
	term := strings.ToLower(c.Search)

	var cutoff time.Time
	if d := c.Range.days(); d > 0 {
		cutoff = now.AddDate(0, 0, -d)
	}

	filtered := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		t := transactions[i]

		switch c.Direction {
		case FilterIncome:
			if t.Amount < 0 {
				continue
			}
		case FilterExpense:
			if t.Amount >= 0 {
				continue
			}
		}

		if term != "" &&
			!strings.Contains(strings.ToLower(t.Title), term) &&
			!strings.Contains(strings.ToLower(t.Category), term) {
			continue
		}

		if !cutoff.IsZero() && t.Date.Before(cutoff) {
			continue
		}

		filtered = append(filtered, t)
	}
	return filtered
}
