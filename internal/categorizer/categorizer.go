package categorizer

import (
	"context"

	"github.com/shopspring/decimal"

	"flowpay/flowpay/internal/logging"
	"flowpay/flowpay/internal/models"
)

// Categorizer runs the strategy chain in order and returns the first result.
// Because the keyword strategy always produces a category, Categorize never
// fails and is deterministic whenever the AI strategy declines.
type Categorizer struct {
	strategies []Strategy
	logger     logging.Logger
}

// NewCategorizer builds the standard chain: AI first, keyword fallback.
func NewCategorizer(aiStrategy *AIStrategy, keywordStrategy *KeywordStrategy, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{
		strategies: []Strategy{aiStrategy, keywordStrategy},
		logger:     logger,
	}
}

// Categorize assigns a category to the description. The result is always a
// member of the closed category set.
func (c *Categorizer) Categorize(ctx context.Context, description string, amount decimal.Decimal) string {
	for _, strategy := range c.strategies {
		category, found, err := strategy.Categorize(ctx, description, amount)
		if err != nil {
			c.logger.WithError(err).WithField(logging.FieldStrategy, strategy.Name()).Warn("Categorization strategy failed")
			continue
		}
		if found {
			return category
		}
	}
	return models.CategoryOther
}
