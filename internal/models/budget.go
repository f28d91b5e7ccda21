package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// CategoryBudget pairs the configured budget for a category with the amount
// spent against it.
type CategoryBudget struct {
	Budget decimal.Decimal
	Spent  decimal.Decimal
}

// BudgetSnapshot captures budget status at a point in time. It grounds the
// assistant's chat and insight prompts and their offline fallbacks.
type BudgetSnapshot struct {
	Total      decimal.Decimal
	Spent      decimal.Decimal
	Categories map[string]CategoryBudget
}

// DefaultBudget returns the configured budget baseline: a 45k total with the
// standing per-category allocations and their historical spend.
func DefaultBudget() BudgetSnapshot {
	return BudgetSnapshot{
		Total: decimal.NewFromInt(45000),
		Spent: decimal.NewFromInt(32150),
		Categories: map[string]CategoryBudget{
			CategorySoftware:       {Budget: decimal.NewFromInt(8000), Spent: decimal.NewFromInt(6200)},
			CategoryTravel:         {Budget: decimal.NewFromInt(15000), Spent: decimal.NewFromInt(11250)},
			CategoryEquipment:      {Budget: decimal.NewFromInt(10000), Spent: decimal.NewFromInt(7800)},
			CategoryMarketing:      {Budget: decimal.NewFromInt(5000), Spent: decimal.NewFromInt(3200)},
			CategoryOfficeSupplies: {Budget: decimal.NewFromInt(3000), Spent: decimal.NewFromInt(1900)},
			CategoryMeals:          {Budget: decimal.NewFromInt(2000), Spent: decimal.NewFromInt(1200)},
			CategoryTransportation: {Budget: decimal.NewFromInt(1500), Spent: decimal.NewFromInt(600)},
			CategoryOther:          {Budget: decimal.NewFromInt(500), Spent: decimal.Zero},
		},
	}
}

// WithLiveSpend overlays live category totals from the current collection
// onto the configured budget allocations.
func (b BudgetSnapshot) WithLiveSpend(stats Stats) BudgetSnapshot {
	snapshot := BudgetSnapshot{
		Total:      b.Total,
		Spent:      stats.Total,
		Categories: make(map[string]CategoryBudget, len(b.Categories)),
	}
	for category, entry := range b.Categories {
		spent := decimal.Zero
		if live, ok := stats.CategoryTotals[category]; ok {
			spent = live
		}
		snapshot.Categories[category] = CategoryBudget{Budget: entry.Budget, Spent: spent}
	}
	return snapshot
}

// Remaining returns the unspent portion of the total budget.
func (b BudgetSnapshot) Remaining() decimal.Decimal {
	return b.Total.Sub(b.Spent)
}

// SpentPercent returns the share of the total budget already spent,
// rounded to a whole percentage.
func (b BudgetSnapshot) SpentPercent() int {
	if b.Total.IsZero() {
		return 0
	}
	pct := b.Spent.Div(b.Total).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

// OverBudgetCategories lists categories whose spend exceeds their budget,
// sorted for deterministic output.
func (b BudgetSnapshot) OverBudgetCategories() []string {
	var over []string
	for category, entry := range b.Categories {
		if entry.Spent.GreaterThan(entry.Budget) {
			over = append(over, category)
		}
	}
	sort.Strings(over)
	return over
}

// Breakdown renders the per-category budget lines used in prompts and
// fallback text, one "- Category: $spent / $budget" line per category in
// deterministic order.
func (b BudgetSnapshot) Breakdown() string {
	categories := make([]string, 0, len(b.Categories))
	for category := range b.Categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	lines := make([]string, 0, len(categories))
	for _, category := range categories {
		entry := b.Categories[category]
		lines = append(lines, fmt.Sprintf("- %s: %s / %s",
			category, FormatAmount(entry.Spent), FormatAmount(entry.Budget)))
	}
	return strings.Join(lines, "\n")
}
