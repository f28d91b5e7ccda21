package store

import "flowpay/flowpay/internal/models"

// MockStore is an in-memory implementation of Store for testing.
type MockStore struct {
	Expenses []models.Expense
	Cleared  bool

	// Error flags for testing error conditions
	SaveError  error
	ClearError error

	SaveCalls int
}

// Save records the collection in memory.
func (m *MockStore) Save(expenses []models.Expense) error {
	m.SaveCalls++
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Expenses = append([]models.Expense(nil), expenses...)
	m.Cleared = false
	return nil
}

// Load returns the recorded collection, or the seed set when nothing has
// been saved, matching the file-backed adapter's contract.
func (m *MockStore) Load() []models.Expense {
	if m.Expenses == nil {
		return models.SeedExpenses()
	}
	return append([]models.Expense(nil), m.Expenses...)
}

// Clear drops the recorded collection.
func (m *MockStore) Clear() error {
	if m.ClearError != nil {
		return m.ClearError
	}
	m.Expenses = nil
	m.Cleared = true
	return nil
}
