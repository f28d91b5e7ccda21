package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"flowpay/flowpay/internal/models"
)

// Deterministic offline fallbacks. Each mirrors one gateway operation and is
// computed without any network call; the assistant applies them whenever the
// gateway reports AIUnavailableError.

// FallbackChat returns a canned reply keyed on the user's message. Known
// topics (budget, duplicates, optimization, reports) get templated answers
// built from the budget snapshot; anything else gets a redirect.
func FallbackChat(userMessage string, budget models.BudgetSnapshot) string {
	message := strings.ToLower(userMessage)

	switch {
	case strings.Contains(message, "budget"):
		return fmt.Sprintf(`Budget Overview

Your current budget status:
- Total Budget: %s
- Spent: %s (%d%%)
- Remaining: %s

You're %d%% through your budget. Would you like me to analyze any specific category?`,
			models.FormatAmount(budget.Total),
			models.FormatAmount(budget.Spent),
			budget.SpentPercent(),
			models.FormatAmount(budget.Remaining()),
			budget.SpentPercent())

	case strings.Contains(message, "duplicate"):
		return `Duplicate Detection

I can scan your expenses for entries with matching vendors, amounts, and dates. Run the audit to see potential duplicates for review.`

	case strings.Contains(message, "optimize"), strings.Contains(message, "cost"):
		return `Cost Optimization Suggestions

1. Software subscriptions: consider annual plans for 15% savings
2. Travel: book flights 2-3 weeks in advance for better rates
3. Office supplies: bulk purchasing could save 20%

Estimated annual savings: $2,400`

	case strings.Contains(message, "report"):
		return `Expense Report Ready

I can generate a comprehensive report including:
- Category breakdown
- Spending trends
- Budget variance analysis

Export your expenses to CSV or JSON to get started.`

	default:
		return "I'm having trouble connecting to my AI service right now, but I can still help with basic expense management. Try asking about your budget, duplicates, cost optimization, or reports."
	}
}

// FallbackDuplicates flags pairwise duplicates: amounts within one cent,
// vendors matching exactly, and dates within 24 hours of each other. The
// later element of each pair is reported.
func FallbackDuplicates(expenses []models.Expense) []models.Expense {
	oneCent := decimal.NewFromFloat(0.01)
	seen := make(map[int]bool)
	var duplicates []models.Expense

	for i := 0; i < len(expenses); i++ {
		for j := i + 1; j < len(expenses); j++ {
			first, second := expenses[i], expenses[j]
			if first.Amount.Sub(second.Amount).Abs().GreaterThanOrEqual(oneCent) {
				continue
			}
			if first.Vendor != second.Vendor {
				continue
			}
			gap := first.SubmittedOrDate().Sub(second.SubmittedOrDate())
			if gap < 0 {
				gap = -gap
			}
			if gap >= 24*time.Hour {
				continue
			}
			if !seen[second.ID] {
				seen[second.ID] = true
				duplicates = append(duplicates, second)
			}
		}
	}
	return duplicates
}

// FallbackAnomalies flags expenses whose amount exceeds three times the
// per-category average baseline. The baseline is the configured category
// spend divided by an assumed ten expenses, defaulting to $100 for
// categories without a budget entry.
func FallbackAnomalies(expenses []models.Expense, budget models.BudgetSnapshot) []models.Expense {
	ten := decimal.NewFromInt(10)
	three := decimal.NewFromInt(3)
	defaultBaseline := decimal.NewFromInt(100)

	var anomalies []models.Expense
	for _, e := range expenses {
		baseline := defaultBaseline
		if entry, ok := budget.Categories[e.Category]; ok && entry.Spent.IsPositive() {
			baseline = entry.Spent.Div(ten)
		}
		if e.Amount.GreaterThan(baseline.Mul(three)) {
			anomalies = append(anomalies, e)
		}
	}
	return anomalies
}

// FallbackInsights builds a templated narrative from the budget snapshot.
func FallbackInsights(budget models.BudgetSnapshot) string {
	spentPercent := budget.SpentPercent()

	riskLine := "All categories are within budget"
	if over := budget.OverBudgetCategories(); len(over) > 0 {
		riskLine = strings.Join(over, ", ") + " are over budget"
	}

	recommendation := "You have good budget control, continue monitoring regularly"
	if spentPercent > 80 {
		recommendation = "Consider reviewing remaining expenses to stay within budget"
	}

	return fmt.Sprintf(`Budget Insights:

1. Overall Status: You've spent %d%% of your total budget
2. Risk Areas: %s
3. Recommendation: %s`, spentPercent, riskLine, recommendation)
}
