package categorizer

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"flowpay/flowpay/internal/logging"
	"flowpay/flowpay/internal/models"
)

// keywordGroup maps an ordered group of description keywords to a category.
type keywordGroup struct {
	category string
	keywords []string
}

// Fixed keyword groups, tested in order; first match wins.
var builtinGroups = []keywordGroup{
	{models.CategorySoftware, []string{"software", "saas", "subscription"}},
	{models.CategoryTravel, []string{"flight", "hotel", "travel"}},
	{models.CategoryEquipment, []string{"laptop", "computer", "equipment"}},
	{models.CategoryMeals, []string{"lunch", "dinner", "meal"}},
	{models.CategoryTransportation, []string{"uber", "taxi", "transport"}},
}

// GuessCategory is the pure offline heuristic: lower-case the description,
// test the fixed keyword groups in order, return the first match or Other.
func GuessCategory(description string) string {
	desc := strings.ToLower(description)
	for _, group := range builtinGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(desc, keyword) {
				return group.category
			}
		}
	}
	return models.CategoryOther
}

// CategoryRule is a user-supplied keyword rule loaded from the rules YAML.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// KeywordStrategy implements categorization by keyword matching: optional
// user rules first, then the built-in groups. It is the terminal strategy
// in the chain and always produces a category.
type KeywordStrategy struct {
	rules  []CategoryRule
	logger logging.Logger
}

// NewKeywordStrategy creates a KeywordStrategy with optional user rules.
// Rule names outside the closed category set are normalized on match.
func NewKeywordStrategy(rules []CategoryRule, logger logging.Logger) *KeywordStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &KeywordStrategy{rules: rules, logger: logger}
}

// Name returns the name of this strategy.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categorize matches the description against user rules then built-in
// keyword groups, defaulting to Other. It never declines.
func (s *KeywordStrategy) Categorize(ctx context.Context, description string, amount decimal.Decimal) (string, bool, error) {
	desc := strings.ToLower(description)

	for _, rule := range s.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(desc, strings.ToLower(keyword)) {
				category := models.NormalizeCategory(rule.Name)
				s.logger.WithFields(
					logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: category},
				).Debug("Expense categorized by user rule")
				return category, true, nil
			}
		}
	}

	return GuessCategory(description), true, nil
}
