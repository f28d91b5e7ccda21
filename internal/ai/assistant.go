package ai

import (
	"context"
	"errors"

	"flowpay/flowpay/internal/experror"
	"flowpay/flowpay/internal/logging"
	"flowpay/flowpay/internal/models"
)

// Assistant composes the Gateway with its offline fallbacks. Every operation
// degrades to the deterministic fallback when the gateway is unavailable, so
// nothing here ever returns an AI failure to the caller.
type Assistant struct {
	gateway *Gateway
	logger  logging.Logger
}

// NewAssistant creates an Assistant over the given gateway.
func NewAssistant(gateway *Gateway, logger logging.Logger) *Assistant {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Assistant{gateway: gateway, logger: logger}
}

func (a *Assistant) fellBack(operation string, err error) {
	var unavailable *experror.AIUnavailableError
	if errors.As(err, &unavailable) {
		a.logger.WithError(err).WithField(logging.FieldOperation, operation).Info("AI unavailable, using offline fallback")
		return
	}
	a.logger.WithError(err).WithField(logging.FieldOperation, operation).Warn("Unexpected AI failure, using offline fallback")
}

// Chat answers a user message, falling back to canned keyword-triggered
// replies when the AI endpoint is unreachable.
func (a *Assistant) Chat(ctx context.Context, userMessage string, budget models.BudgetSnapshot) string {
	reply, err := a.gateway.Chat(ctx, userMessage, budget)
	if err != nil {
		a.fellBack("chat", err)
		return FallbackChat(userMessage, budget)
	}
	return reply
}

// DetectDuplicates flags likely duplicate expenses, falling back to the
// pairwise vendor/amount/date comparison.
func (a *Assistant) DetectDuplicates(ctx context.Context, expenses []models.Expense) []models.Expense {
	duplicates, err := a.gateway.DetectDuplicates(ctx, expenses)
	if err != nil {
		a.fellBack("detect_duplicates", err)
		return FallbackDuplicates(expenses)
	}
	return duplicates
}

// DetectAnomalies flags unusual expenses, falling back to the fixed
// per-category baseline comparison.
func (a *Assistant) DetectAnomalies(ctx context.Context, expenses []models.Expense, budget models.BudgetSnapshot) []models.Expense {
	anomalies, err := a.gateway.DetectAnomalies(ctx, expenses)
	if err != nil {
		a.fellBack("detect_anomalies", err)
		return FallbackAnomalies(expenses, budget)
	}
	return anomalies
}

// BudgetInsights produces a narrative budget summary, falling back to the
// templated snapshot text.
func (a *Assistant) BudgetInsights(ctx context.Context, budget models.BudgetSnapshot) string {
	insights, err := a.gateway.BudgetInsights(ctx, budget)
	if err != nil {
		a.fellBack("budget_insights", err)
		return FallbackInsights(budget)
	}
	return insights
}
