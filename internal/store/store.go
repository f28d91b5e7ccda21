// Package store provides the durable mirror of the expense collection.
// The collection is serialized as a JSON array under a single fixed key;
// the key maps to one file in the data directory.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"flowpay/flowpay/internal/experror"
	"flowpay/flowpay/internal/logging"
	"flowpay/flowpay/internal/models"
)

// Store is the persistence contract the expense manager depends on.
// Save failures are reported but never fatal; Load always yields a valid
// collection, falling back to the seed set when the entry is absent or
// malformed.
type Store interface {
	Save(expenses []models.Expense) error
	Load() []models.Expense
	Clear() error
}

// ExpenseStore persists the collection to <dir>/<key>.json.
type ExpenseStore struct {
	dir    string
	key    string
	logger logging.Logger
}

// NewExpenseStore creates a store rooted at dir. An empty dir resolves to
// ~/.flowpay, falling back to the current directory when the home directory
// is unknown.
func NewExpenseStore(dir, key string, logger logging.Logger) *ExpenseStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".flowpay")
		} else {
			dir = "."
		}
	}
	return &ExpenseStore{dir: dir, key: key, logger: logger}
}

// Path returns the file that backs the storage key.
func (s *ExpenseStore) Path() string {
	return filepath.Join(s.dir, s.key+".json")
}

// Save serializes the collection and writes it under the fixed key.
// A failed write leaves in-memory state authoritative; the error is logged
// here and surfaced so the caller can warn the user.
func (s *ExpenseStore) Save(expenses []models.Expense) error {
	data, err := EncodeExpenses(expenses)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to serialize expenses")
		return &experror.StorageError{Op: "save", Path: s.Path(), Err: err}
	}

	if err := os.MkdirAll(s.dir, 0750); err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, s.dir).Warn("Failed to create data directory")
		return &experror.StorageError{Op: "save", Path: s.Path(), Err: err}
	}

	if err := os.WriteFile(s.Path(), data, 0600); err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, s.Path()).Warn("Failed to write expenses")
		return &experror.StorageError{Op: "save", Path: s.Path(), Err: err}
	}

	s.logger.WithField(logging.FieldCount, len(expenses)).Debug("Expenses saved")
	return nil
}

// Load reads the persisted collection, reviving timestamp fields. A missing
// entry or a malformed payload yields the canonical seed set so the
// application always starts from valid state.
func (s *ExpenseStore) Load() []models.Expense {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.WithError(err).WithField(logging.FieldFile, s.Path()).Warn("Failed to read expenses, using seed data")
		}
		return models.SeedExpenses()
	}

	expenses, err := DecodeExpenses(data)
	if err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, s.Path()).Warn("Persisted expenses malformed, using seed data")
		return models.SeedExpenses()
	}

	s.logger.WithField(logging.FieldCount, len(expenses)).Debug("Expenses loaded")
	return expenses
}

// Clear removes the persisted entry entirely. A missing entry is not an error.
func (s *ExpenseStore) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		s.logger.WithError(err).WithField(logging.FieldFile, s.Path()).Warn("Failed to clear persisted expenses")
		return &experror.StorageError{Op: "clear", Path: s.Path(), Err: err}
	}
	return nil
}

// EncodeExpenses renders the collection as the pretty-printed JSON array
// used for both the persisted entry and exported backup files.
func EncodeExpenses(expenses []models.Expense) ([]byte, error) {
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return json.MarshalIndent(expenses, "", "  ")
}

// DecodeExpenses parses a JSON array of expense-shaped records, normalizing
// status and category and tolerating missing timestamps. The error is typed
// so callers can report import failures without crashing.
func DecodeExpenses(data []byte) ([]models.Expense, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &experror.ImportError{Reason: "not a JSON array", Err: err}
	}

	expenses := make([]models.Expense, 0, len(raw))
	for i, record := range raw {
		var expense models.Expense
		if err := json.Unmarshal(record, &expense); err != nil {
			return nil, &experror.ImportError{
				Reason: fmt.Sprintf("record %d is not expense-shaped", i),
				Err:    err,
			}
		}
		expense.Status = models.NormalizeStatus(expense.Status)
		expense.Category = models.NormalizeCategory(expense.Category)
		if expense.Amount.IsNegative() {
			return nil, &experror.ImportError{
				Reason: fmt.Sprintf("record %d has a negative amount", i),
			}
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}
