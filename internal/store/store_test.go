package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowpay/flowpay/internal/experror"
	"flowpay/flowpay/internal/logging"
	"flowpay/flowpay/internal/models"
)

func newTestStore(t *testing.T) *ExpenseStore {
	t.Helper()
	return NewExpenseStore(t.TempDir(), "flowpay_expenses", &logging.MockLogger{})
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	expenses := []models.Expense{
		{
			ID:          1,
			Date:        "2024-01-15",
			Vendor:      "Acme",
			Category:    models.CategorySoftware,
			Amount:      decimal.NewFromFloat(123.45),
			Status:      models.StatusApproved,
			Employee:    "John Doe",
			Description: "License renewal",
		},
	}

	require.NoError(t, s.Save(expenses))

	loaded := s.Load()
	require.Len(t, loaded, 1)
	assert.Equal(t, 1, loaded[0].ID)
	assert.Equal(t, "Acme", loaded[0].Vendor)
	assert.Equal(t, models.CategorySoftware, loaded[0].Category)
	assert.True(t, decimal.NewFromFloat(123.45).Equal(loaded[0].Amount))
	assert.Equal(t, models.StatusApproved, loaded[0].Status)
}

func TestLoadMissingFileReturnsSeed(t *testing.T) {
	s := newTestStore(t)

	loaded := s.Load()
	assert.Equal(t, models.SeedExpenses(), loaded)
}

func TestLoadMalformedFileReturnsSeed(t *testing.T) {
	dir := t.TempDir()
	logger := &logging.MockLogger{}
	s := NewExpenseStore(dir, "flowpay_expenses", logger)

	require.NoError(t, os.WriteFile(s.Path(), []byte("not json at all"), 0600))

	loaded := s.Load()
	assert.Equal(t, models.SeedExpenses(), loaded)
	assert.True(t, logger.HasEntry("WARN", "Persisted expenses malformed, using seed data"))
}

func TestClear(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save(models.SeedExpenses()))
	require.NoError(t, s.Clear())

	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))

	// Clearing again is not an error.
	require.NoError(t, s.Clear())
}

func TestSaveUnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	// A file where the data directory should be makes MkdirAll fail.
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0600))

	s := NewExpenseStore(blocked, "flowpay_expenses", &logging.MockLogger{})
	err := s.Save(models.SeedExpenses())
	require.Error(t, err)

	var serr *experror.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "save", serr.Op)
}

func TestDecodeExpenses(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectError   bool
		expectedCount int
	}{
		{
			name:          "valid array",
			input:         `[{"id":1,"vendor":"Acme","amount":"10.00","status":"approved","category":"Software"}]`,
			expectedCount: 1,
		},
		{
			name:          "amount as bare number",
			input:         `[{"id":1,"vendor":"Acme","amount":10.5,"status":"pending","category":"Travel"}]`,
			expectedCount: 1,
		},
		{
			name:          "empty array",
			input:         `[]`,
			expectedCount: 0,
		},
		{
			name:        "not json",
			input:       `not json`,
			expectError: true,
		},
		{
			name:        "object instead of array",
			input:       `{"id":1}`,
			expectError: true,
		},
		{
			name:        "record not expense shaped",
			input:       `[{"id":"not a number"}]`,
			expectError: true,
		},
		{
			name:        "negative amount",
			input:       `[{"id":1,"vendor":"Acme","amount":"-5.00"}]`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenses, err := DecodeExpenses([]byte(tt.input))
			if tt.expectError {
				require.Error(t, err)
				var ierr *experror.ImportError
				assert.ErrorAs(t, err, &ierr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, expenses, tt.expectedCount)
		})
	}
}

func TestDecodeExpensesNormalizes(t *testing.T) {
	input := `[{"id":1,"vendor":"Acme","amount":"10.00","status":"BOGUS","category":"office"}]`

	expenses, err := DecodeExpenses([]byte(input))
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, models.StatusPending, expenses[0].Status)
	assert.Equal(t, models.CategoryOfficeSupplies, expenses[0].Category)
}

func TestEncodeExpensesNilSlice(t *testing.T) {
	data, err := EncodeExpenses(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
