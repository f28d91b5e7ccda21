package ai

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"flowpay/flowpay/internal/experror"
	"flowpay/flowpay/internal/logging"
	"flowpay/flowpay/internal/models"
)

// Gateway wraps one external text-generation call per operation. It never
// applies fallbacks itself: a failed call always surfaces as
// *experror.AIUnavailableError so callers are forced to handle the offline
// branch explicitly.
type Gateway struct {
	client  Client
	timeout time.Duration
	logger  logging.Logger
}

// NewGateway creates a Gateway. A zero timeout defaults to 30s, keeping
// every call bounded even when the caller passes a background context.
func NewGateway(client Client, timeout time.Duration, logger logging.Logger) *Gateway {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Gateway{client: client, timeout: timeout, logger: logger}
}

func (g *Gateway) generate(ctx context.Context, operation, prompt string) (string, error) {
	if g.client == nil {
		return "", &experror.AIUnavailableError{
			Operation: operation,
			Err:       fmt.Errorf("no AI client configured"),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.client.Generate(ctx, prompt)
	if err != nil {
		g.logger.WithError(err).WithField(logging.FieldOperation, operation).Warn("AI call failed")
		return "", &experror.AIUnavailableError{Operation: operation, Err: err}
	}
	return strings.TrimSpace(text), nil
}

// Categorize asks the model to place an expense description into the closed
// category set. A response outside the set normalizes to Other.
func (g *Gateway) Categorize(ctx context.Context, description string, amount decimal.Decimal) (string, error) {
	var amountPart string
	if amount.IsPositive() {
		amountPart = " " + models.FormatAmount(amount)
	}
	prompt := fmt.Sprintf(`Categorize this expense into one of these categories: %s.

Expense: %s%s

Return only the category name.`,
		strings.Join(models.AllCategories, ", "), description, amountPart)

	text, err := g.generate(ctx, "categorize", prompt)
	if err != nil {
		return "", err
	}

	category := strings.TrimSpace(text)
	if !models.IsKnownCategory(category) {
		g.logger.WithField(logging.FieldCategory, category).Debug("Model returned unknown category, using Other")
		return models.CategoryOther, nil
	}
	return models.NormalizeCategory(category), nil
}

// Chat answers a free-text question with the assistant persona, grounding
// the reply in the current budget snapshot.
func (g *Gateway) Chat(ctx context.Context, userMessage string, budget models.BudgetSnapshot) (string, error) {
	systemContext := fmt.Sprintf(`You are FlowPay AI, an intelligent expense management assistant. You help users manage their business expenses, budgets, and financial insights.

Current Budget Status:
- Total Budget: %s
- Spent: %s (%d%%)
- Remaining: %s

Category Breakdown:
%s

Your capabilities include:
- Budget analysis and tracking
- Expense categorization
- Duplicate detection
- Anomaly detection
- Cost optimization recommendations
- Financial reporting

Be helpful, concise, and provide actionable insights.`,
		models.FormatAmount(budget.Total),
		models.FormatAmount(budget.Spent),
		budget.SpentPercent(),
		models.FormatAmount(budget.Remaining()),
		budget.Breakdown())

	prompt := fmt.Sprintf("%s\n\nUser: %s\n\nAssistant:", systemContext, userMessage)
	return g.generate(ctx, "chat", prompt)
}

// DetectDuplicates asks the model to flag likely duplicate expenses and
// matches the flagged ids back to the input list.
func (g *Gateway) DetectDuplicates(ctx context.Context, expenses []models.Expense) ([]models.Expense, error) {
	var lines []string
	for _, e := range expenses {
		lines = append(lines, fmt.Sprintf("%d: %s - %s - %s - %s",
			e.ID, e.Description, models.FormatAmount(e.Amount), e.Vendor, e.Date))
	}

	prompt := fmt.Sprintf(`Analyze these expenses for potential duplicates. Look for similar amounts, descriptions, vendors, and dates.

Expenses:
%s

Return only expense IDs that are likely duplicates, one per line.`,
		strings.Join(lines, "\n"))

	text, err := g.generate(ctx, "detect_duplicates", prompt)
	if err != nil {
		return nil, err
	}

	flagged := make(map[int]bool)
	for _, line := range strings.Split(text, "\n") {
		if id, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			flagged[id] = true
		}
	}

	var duplicates []models.Expense
	for _, e := range expenses {
		if flagged[e.ID] {
			duplicates = append(duplicates, e)
		}
	}
	return duplicates, nil
}

// DetectAnomalies asks the model to flag unusual expenses and matches the
// returned descriptions back to the input list.
func (g *Gateway) DetectAnomalies(ctx context.Context, expenses []models.Expense) ([]models.Expense, error) {
	var lines []string
	for _, e := range expenses {
		lines = append(lines, fmt.Sprintf("%s - %s - %s - %s",
			e.Description, models.FormatAmount(e.Amount), e.Category, e.Vendor))
	}

	prompt := fmt.Sprintf(`Analyze these expenses for anomalies - unusually high amounts, suspicious vendors, or out-of-pattern spending.

Expenses:
%s

Return expense descriptions that seem anomalous, one per line.`,
		strings.Join(lines, "\n"))

	text, err := g.generate(ctx, "detect_anomalies", prompt)
	if err != nil {
		return nil, err
	}

	var descriptions []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			descriptions = append(descriptions, trimmed)
		}
	}

	var anomalies []models.Expense
	for _, e := range expenses {
		for _, desc := range descriptions {
			if strings.Contains(e.Description, desc) {
				anomalies = append(anomalies, e)
				break
			}
		}
	}
	return anomalies, nil
}

// BudgetInsights asks the model for a narrative summary of budget status.
func (g *Gateway) BudgetInsights(ctx context.Context, budget models.BudgetSnapshot) (string, error) {
	prompt := fmt.Sprintf(`Based on this budget data, provide 3 key insights and recommendations:

Total Budget: %s
Spent: %s (%d%%)
Remaining: %s

Category Breakdown:
%s

Focus on trends, risks, and optimization opportunities.`,
		models.FormatAmount(budget.Total),
		models.FormatAmount(budget.Spent),
		budget.SpentPercent(),
		models.FormatAmount(budget.Remaining()),
		budget.Breakdown())

	return g.generate(ctx, "budget_insights", prompt)
}
