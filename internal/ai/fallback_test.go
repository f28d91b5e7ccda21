package ai

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowpay/flowpay/internal/models"
)

func TestFallbackChat(t *testing.T) {
	budget := models.DefaultBudget()

	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{name: "budget topic", message: "How is my budget looking?", expected: "Budget Overview"},
		{name: "duplicate topic", message: "Any duplicate expenses?", expected: "Duplicate Detection"},
		{name: "optimize topic", message: "How can I optimize spending?", expected: "Cost Optimization"},
		{name: "cost topic", message: "Cut my costs", expected: "Cost Optimization"},
		{name: "report topic", message: "Generate a report", expected: "Expense Report Ready"},
		{name: "unknown topic", message: "What's the weather?", expected: "trouble connecting"},
		{name: "case insensitive", message: "BUDGET status please", expected: "Budget Overview"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := FallbackChat(tt.message, budget)
			assert.Contains(t, reply, tt.expected)
		})
	}
}

func TestFallbackChatBudgetFigures(t *testing.T) {
	reply := FallbackChat("budget", models.DefaultBudget())
	assert.Contains(t, reply, "$45000.00")
	assert.Contains(t, reply, "$32150.00")
	assert.Contains(t, reply, "$12850.00")
	assert.Contains(t, reply, "71%")
}

func TestFallbackDuplicates(t *testing.T) {
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		expenses    []models.Expense
		expectedIDs []int
	}{
		{
			name: "same vendor amount and day",
			expenses: []models.Expense{
				{ID: 1, Vendor: "Cafe", Amount: decimal.NewFromInt(20), SubmittedAt: base},
				{ID: 2, Vendor: "Cafe", Amount: decimal.NewFromInt(20), SubmittedAt: base.Add(2 * time.Hour)},
			},
			expectedIDs: []int{2},
		},
		{
			name: "different vendor",
			expenses: []models.Expense{
				{ID: 1, Vendor: "Cafe", Amount: decimal.NewFromInt(20), SubmittedAt: base},
				{ID: 2, Vendor: "Diner", Amount: decimal.NewFromInt(20), SubmittedAt: base},
			},
			expectedIDs: nil,
		},
		{
			name: "amount differs by more than a cent",
			expenses: []models.Expense{
				{ID: 1, Vendor: "Cafe", Amount: decimal.NewFromFloat(20.00), SubmittedAt: base},
				{ID: 2, Vendor: "Cafe", Amount: decimal.NewFromFloat(20.05), SubmittedAt: base},
			},
			expectedIDs: nil,
		},
		{
			name: "amount within a cent",
			expenses: []models.Expense{
				{ID: 1, Vendor: "Cafe", Amount: decimal.NewFromFloat(20.000), SubmittedAt: base},
				{ID: 2, Vendor: "Cafe", Amount: decimal.NewFromFloat(20.005), SubmittedAt: base},
			},
			expectedIDs: []int{2},
		},
		{
			name: "more than 24 hours apart",
			expenses: []models.Expense{
				{ID: 1, Vendor: "Cafe", Amount: decimal.NewFromInt(20), SubmittedAt: base},
				{ID: 2, Vendor: "Cafe", Amount: decimal.NewFromInt(20), SubmittedAt: base.Add(25 * time.Hour)},
			},
			expectedIDs: nil,
		},
		{
			name: "triple reports later two once each",
			expenses: []models.Expense{
				{ID: 1, Vendor: "Cafe", Amount: decimal.NewFromInt(20), SubmittedAt: base},
				{ID: 2, Vendor: "Cafe", Amount: decimal.NewFromInt(20), SubmittedAt: base.Add(time.Hour)},
				{ID: 3, Vendor: "Cafe", Amount: decimal.NewFromInt(20), SubmittedAt: base.Add(2 * time.Hour)},
			},
			expectedIDs: []int{2, 3},
		},
		{
			name: "date fallback when timestamps missing",
			expenses: []models.Expense{
				{ID: 1, Vendor: "Cafe", Amount: decimal.NewFromInt(20), Date: "2024-01-15"},
				{ID: 2, Vendor: "Cafe", Amount: decimal.NewFromInt(20), Date: "2024-01-15"},
			},
			expectedIDs: []int{2},
		},
		{
			name:        "empty collection",
			expenses:    nil,
			expectedIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			duplicates := FallbackDuplicates(tt.expenses)
			var ids []int
			for _, d := range duplicates {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestFallbackAnomalies(t *testing.T) {
	budget := models.DefaultBudget()
	// Software baseline: 6200 / 10 = 620, threshold 1860.

	expenses := []models.Expense{
		{ID: 1, Category: models.CategorySoftware, Amount: decimal.NewFromInt(2850)},
		{ID: 2, Category: models.CategorySoftware, Amount: decimal.NewFromInt(600)},
		{ID: 3, Category: models.CategoryMeals, Amount: decimal.NewFromInt(25)},
	}

	anomalies := FallbackAnomalies(expenses, budget)
	require.Len(t, anomalies, 1)
	assert.Equal(t, 1, anomalies[0].ID)
}

func TestFallbackAnomaliesDefaultBaseline(t *testing.T) {
	// A category without a budget entry gets the $100 default baseline,
	// so anything above $300 is anomalous.
	budget := models.BudgetSnapshot{Categories: map[string]models.CategoryBudget{}}

	expenses := []models.Expense{
		{ID: 1, Category: models.CategoryAccommodation, Amount: decimal.NewFromInt(301)},
		{ID: 2, Category: models.CategoryAccommodation, Amount: decimal.NewFromInt(300)},
	}

	anomalies := FallbackAnomalies(expenses, budget)
	require.Len(t, anomalies, 1)
	assert.Equal(t, 1, anomalies[0].ID)
}

func TestFallbackInsights(t *testing.T) {
	insights := FallbackInsights(models.DefaultBudget())

	assert.Contains(t, insights, "Budget Insights")
	assert.Contains(t, insights, "71%")
	assert.Contains(t, insights, "All categories are within budget")
	assert.Contains(t, insights, "good budget control")
}

func TestFallbackInsightsHighSpend(t *testing.T) {
	budget := models.BudgetSnapshot{
		Total: decimal.NewFromInt(1000),
		Spent: decimal.NewFromInt(900),
		Categories: map[string]models.CategoryBudget{
			models.CategoryTravel: {Budget: decimal.NewFromInt(100), Spent: decimal.NewFromInt(150)},
		},
	}

	insights := FallbackInsights(budget)
	assert.Contains(t, insights, "90%")
	assert.Contains(t, insights, models.CategoryTravel+" are over budget")
	assert.Contains(t, insights, "reviewing remaining expenses")
	assert.False(t, strings.Contains(insights, "good budget control"))
}
