package categorizer

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowpay/flowpay/internal/logging"
	"flowpay/flowpay/internal/models"
)

func TestGuessCategory(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{name: "software keyword", description: "Annual software license", expected: models.CategorySoftware},
		{name: "saas keyword", description: "SaaS renewal", expected: models.CategorySoftware},
		{name: "subscription keyword", description: "Monthly subscription fee", expected: models.CategorySoftware},
		{name: "flight keyword", description: "Flight to Denver", expected: models.CategoryTravel},
		{name: "hotel keyword", description: "Hotel for conference", expected: models.CategoryTravel},
		{name: "laptop keyword", description: "New laptop for hire", expected: models.CategoryEquipment},
		{name: "lunch keyword", description: "Team lunch", expected: models.CategoryMeals},
		{name: "uber keyword", description: "Uber to airport", expected: models.CategoryTransportation},
		{name: "taxi keyword", description: "Taxi from station", expected: models.CategoryTransportation},
		{name: "case insensitive", description: "SOFTWARE PURCHASE", expected: models.CategorySoftware},
		{name: "no match", description: "Mystery purchase", expected: models.CategoryOther},
		{name: "empty", description: "", expected: models.CategoryOther},
		// Group order decides when multiple groups match.
		{name: "software before travel", description: "software for travel agency", expected: models.CategorySoftware},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GuessCategory(tt.description))
		})
	}
}

func TestKeywordStrategyName(t *testing.T) {
	strategy := NewKeywordStrategy(nil, &logging.MockLogger{})
	assert.Equal(t, "Keyword", strategy.Name())
}

func TestKeywordStrategyBuiltins(t *testing.T) {
	strategy := NewKeywordStrategy(nil, &logging.MockLogger{})

	category, found, err := strategy.Categorize(context.Background(), "Dinner with client", decimal.NewFromInt(80))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.CategoryMeals, category)
}

func TestKeywordStrategyUserRulesFirst(t *testing.T) {
	rules := []CategoryRule{
		{Name: "Marketing", Keywords: []string{"linkedin", "ads"}},
		// User rules win over the built-in software group.
		{Name: "Equipment", Keywords: []string{"software dongle"}},
	}
	strategy := NewKeywordStrategy(rules, &logging.MockLogger{})

	category, found, err := strategy.Categorize(context.Background(), "LinkedIn Ads campaign", decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.CategoryMarketing, category)

	category, found, err = strategy.Categorize(context.Background(), "Replacement software dongle", decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.CategoryEquipment, category)
}

func TestKeywordStrategyNormalizesRuleName(t *testing.T) {
	rules := []CategoryRule{{Name: "office", Keywords: []string{"stapler"}}}
	strategy := NewKeywordStrategy(rules, &logging.MockLogger{})

	category, found, err := strategy.Categorize(context.Background(), "Stapler refill", decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.CategoryOfficeSupplies, category)
}

func TestKeywordStrategyAlwaysProduces(t *testing.T) {
	strategy := NewKeywordStrategy(nil, &logging.MockLogger{})

	category, found, err := strategy.Categorize(context.Background(), "completely unmatchable", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.CategoryOther, category)
}
