// Package analytics derives dashboard views from a set of transactions.
// Every function is a pure function of its input: the transactions are
// expected to already be owner-scoped (and filtered, see filter.go), and
// no state is held between calls.
//
// Income and expense are derived solely from the sign of the amount. A
// zero amount lands on the income side; there is no third state.
package analytics

import (
	"sort"
	"time"

	"fintrack/internal/models"
)

// Summary holds the overall totals for a transaction set. TotalIncome and
// TotalExpenses are both magnitudes (>= 0); Balance is their difference.
type Summary struct {
	TotalIncome   int64 `json:"total_income"`
	TotalExpenses int64 `json:"total_expenses"`
	Balance       int64 `json:"balance"`
}

// Summarize computes income, expense, and balance totals.
// An empty input yields a zeroed summary.
func Summarize(transactions []models.Transaction) Summary {
	var s Summary
	for i := range transactions {
		amount := transactions[i].Amount
		if amount >= 0 {
			s.TotalIncome += amount
		} else {
			s.TotalExpenses += -amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpenses
	return s
}

// ByCategory maps each category to its total expense magnitude. Only
// negative amounts contribute: this is a spending-distribution view, not a
// cash-flow view. Categories without expenses never appear, so the result
// holds no zero-valued entries.
func ByCategory(transactions []models.Transaction) map[string]int64 {
	totals := make(map[string]int64)
	for i := range transactions {
		if transactions[i].Amount < 0 {
			totals[transactions[i].Category] += -transactions[i].Amount
		}
	}
	return totals
}

// MonthBucket holds the summed income and expense magnitude for one
// calendar month.
type MonthBucket struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Income  int64      `json:"income"`
	Expense int64      `json:"expense"`
}

// ByMonth groups transactions into (year, month) buckets, ordered
// chronologically ascending. Only months that actually hold transactions
// appear; gaps are not filled.
func ByMonth(transactions []models.Transaction) []MonthBucket {
	type key struct {
		year  int
		month time.Month
	}

	buckets := make(map[key]*MonthBucket)
	for i := range transactions {
		t := &transactions[i]
		k := key{year: t.Date.Year(), month: t.Date.Month()}
		b, ok := buckets[k]
		if !ok {
			b = &MonthBucket{Year: k.year, Month: k.month}
			buckets[k] = b
		}
		if t.Amount >= 0 {
			b.Income += t.Amount
		} else {
			b.Expense += -t.Amount
		}
	}

	result := make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].Month < result[j].Month
	})
	return result
}
