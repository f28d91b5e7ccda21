package categorizer

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowpay/flowpay/internal/ai"
	"flowpay/flowpay/internal/logging"
	"flowpay/flowpay/internal/models"
)

// stubClient is a canned ai.Client for driving the AI strategy in tests.
type stubClient struct {
	response string
	err      error
}

func (c *stubClient) Generate(ctx context.Context, prompt string) (string, error) {
	return c.response, c.err
}

func newChain(client ai.Client, logger logging.Logger) *Categorizer {
	var gateway *ai.Gateway
	if client != nil {
		gateway = ai.NewGateway(client, 0, logger)
	}
	return NewCategorizer(
		NewAIStrategy(gateway, logger),
		NewKeywordStrategy(nil, logger),
		logger,
	)
}

func TestAIStrategyName(t *testing.T) {
	assert.Equal(t, "AI", NewAIStrategy(nil, &logging.MockLogger{}).Name())
}

func TestAIStrategyNilGatewayDeclines(t *testing.T) {
	strategy := NewAIStrategy(nil, &logging.MockLogger{})

	category, found, err := strategy.Categorize(context.Background(), "Team lunch", decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, category)
}

func TestAIStrategyFailureDeclines(t *testing.T) {
	logger := &logging.MockLogger{}
	gateway := ai.NewGateway(&stubClient{err: errors.New("connection refused")}, 0, logger)
	strategy := NewAIStrategy(gateway, logger)

	category, found, err := strategy.Categorize(context.Background(), "Team lunch", decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, category)
}

func TestCategorizerUsesAIWhenAvailable(t *testing.T) {
	logger := &logging.MockLogger{}
	chain := newChain(&stubClient{response: "Travel"}, logger)

	category := chain.Categorize(context.Background(), "Team lunch", decimal.NewFromInt(40))
	assert.Equal(t, models.CategoryTravel, category)
}

func TestCategorizerFallsBackToKeywords(t *testing.T) {
	logger := &logging.MockLogger{}
	chain := newChain(&stubClient{err: errors.New("service down")}, logger)

	category := chain.Categorize(context.Background(), "Team lunch downtown", decimal.NewFromInt(40))
	assert.Equal(t, models.CategoryMeals, category)
}

func TestCategorizerNoGatewayIsDeterministic(t *testing.T) {
	chain := newChain(nil, &logging.MockLogger{})

	for i := 0; i < 3; i++ {
		assert.Equal(t, models.CategorySoftware,
			chain.Categorize(context.Background(), "Monthly SaaS subscription", decimal.NewFromInt(29)))
	}
	assert.Equal(t, models.CategoryOther,
		chain.Categorize(context.Background(), "Mystery purchase", decimal.NewFromInt(10)))
}

func TestCategorizerNormalizesAIResponse(t *testing.T) {
	logger := &logging.MockLogger{}
	chain := newChain(&stubClient{response: "office"}, logger)

	category := chain.Categorize(context.Background(), "Stapler refill", decimal.NewFromInt(5))
	assert.Equal(t, models.CategoryOfficeSupplies, category)
}

func TestCategorizerUnknownAIResponseBecomesOther(t *testing.T) {
	logger := &logging.MockLogger{}
	chain := newChain(&stubClient{response: "Groceries"}, logger)

	category := chain.Categorize(context.Background(), "Stapler refill", decimal.NewFromInt(5))
	assert.Equal(t, models.CategoryOther, category)
}
