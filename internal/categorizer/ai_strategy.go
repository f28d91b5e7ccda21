package categorizer

import (
	"context"

	"github.com/shopspring/decimal"

	"flowpay/flowpay/internal/ai"
	"flowpay/flowpay/internal/logging"
)

// AIStrategy delegates categorization to the AI gateway. When the gateway
// reports that the service is unavailable, the strategy declines and the
// chain falls through to the keyword strategy.
type AIStrategy struct {
	gateway *ai.Gateway
	logger  logging.Logger
}

// NewAIStrategy creates an AIStrategy over the given gateway. A nil gateway
// yields a strategy that always declines.
func NewAIStrategy(gateway *ai.Gateway, logger logging.Logger) *AIStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &AIStrategy{gateway: gateway, logger: logger}
}

// Name returns the name of this strategy.
func (s *AIStrategy) Name() string {
	return "AI"
}

// Categorize asks the gateway for a category. Failures are logged and
// reported as a decline, never as a chain-stopping error.
func (s *AIStrategy) Categorize(ctx context.Context, description string, amount decimal.Decimal) (string, bool, error) {
	if s.gateway == nil {
		return "", false, nil
	}

	category, err := s.gateway.Categorize(ctx, description, amount)
	if err != nil {
		s.logger.WithError(err).WithField(logging.FieldStrategy, s.Name()).Debug("AI categorization unavailable")
		return "", false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("Expense categorized by AI")
	return category, true, nil
}
