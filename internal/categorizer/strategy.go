// Package categorizer assigns expenses to the closed category set using an
// ordered strategy chain: the AI gateway first, then deterministic keyword
// matching. Categorization never fails; the keyword strategy is terminal.
package categorizer

import (
	"context"

	"github.com/shopspring/decimal"
)

// Strategy defines one method for categorizing an expense description.
type Strategy interface {
	// Categorize attempts to categorize the description. It returns the
	// category, whether this strategy produced a result, and any error
	// encountered. An error never aborts the chain; the next strategy runs.
	Categorize(ctx context.Context, description string, amount decimal.Decimal) (string, bool, error)

	// Name returns the strategy name for logging and debugging.
	Name() string
}
