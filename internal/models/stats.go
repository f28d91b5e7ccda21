package models

import "github.com/shopspring/decimal"

// Stats is a pure projection of an expense collection: totals and counts,
// recomputed on demand and never stored.
type Stats struct {
	Total          decimal.Decimal
	Count          int
	Pending        int
	Approved       int
	Flagged        int
	CategoryTotals map[string]decimal.Decimal
}

// ComputeStats derives aggregate statistics from the given collection.
func ComputeStats(expenses []Expense) Stats {
	stats := Stats{
		Total:          decimal.Zero,
		Count:          len(expenses),
		CategoryTotals: make(map[string]decimal.Decimal),
	}

	for _, expense := range expenses {
		stats.Total = stats.Total.Add(expense.Amount)
		switch expense.Status {
		case StatusPending:
			stats.Pending++
		case StatusApproved:
			stats.Approved++
		case StatusFlagged:
			stats.Flagged++
		}
		current, ok := stats.CategoryTotals[expense.Category]
		if !ok {
			current = decimal.Zero
		}
		stats.CategoryTotals[expense.Category] = current.Add(expense.Amount)
	}

	return stats
}
