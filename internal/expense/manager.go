// Package expense owns the canonical expense collection. All mutation and
// derivation passes through the Manager; every applied mutation is flushed
// to the persistence adapter before the operation returns.
package expense

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"flowpay/flowpay/internal/categorizer"
	"flowpay/flowpay/internal/experror"
	"flowpay/flowpay/internal/logging"
	"flowpay/flowpay/internal/models"
	"flowpay/flowpay/internal/store"
)

// Manager is the sole authority over the expense collection. It is
// constructed once per process with an injected store and categorizer;
// initial contents come from the store, and every mutation is persisted
// before the call returns. A mutex serializes mutations because the
// underlying storage is not transactional.
type Manager struct {
	mu          sync.Mutex
	expenses    []models.Expense
	store       store.Store
	categorizer *categorizer.Categorizer
	budget      models.BudgetSnapshot
	employee    string
	logger      logging.Logger
	now         func() time.Time
}

// NewManager creates a Manager and loads the persisted collection.
func NewManager(st store.Store, cat *categorizer.Categorizer, budget models.BudgetSnapshot, employee string, logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if employee == "" {
		employee = "John Doe"
	}
	return &Manager{
		expenses:    st.Load(),
		store:       st,
		categorizer: cat,
		budget:      budget,
		employee:    employee,
		logger:      logger,
		now:         time.Now,
	}
}

// persist flushes the collection. A storage failure never rolls back the
// in-memory mutation; it is logged as a warning and the collection stays
// authoritative.
func (m *Manager) persist() {
	if err := m.store.Save(m.expenses); err != nil {
		m.logger.WithError(err).Warn("Expense mutation applied but not persisted")
	}
}

func (m *Manager) nextID() int {
	maxID := 0
	for _, e := range m.expenses {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

// Add validates and creates a new expense. When no category is supplied the
// categorizer assigns one (AI with deterministic keyword fallback); a
// user-supplied category bypasses categorization but is normalized onto the
// closed set. The new record always starts pending and is prepended so the
// collection stays newest-first.
func (m *Manager) Add(ctx context.Context, data models.NewExpenseData) (models.Expense, error) {
	if err := data.Validate(); err != nil {
		return models.Expense{}, err
	}

	category := strings.TrimSpace(data.Category)
	if category == "" {
		category = m.categorizer.Categorize(ctx, data.Description, data.Amount)
	} else {
		category = models.NormalizeCategory(category)
	}

	date := strings.TrimSpace(data.Date)
	if date == "" {
		date = m.now().Format("2006-01-02")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	expense := models.Expense{
		ID:          m.nextID(),
		Date:        date,
		Vendor:      data.Vendor,
		Category:    category,
		Amount:      data.Amount,
		Status:      models.StatusPending,
		Employee:    m.employee,
		Description: data.Description,
		SubmittedAt: m.now(),
	}

	m.expenses = append([]models.Expense{expense}, m.expenses...)
	m.persist()

	m.logger.WithFields(
		logging.Field{Key: logging.FieldExpenseID, Value: expense.ID},
		logging.Field{Key: logging.FieldVendor, Value: expense.Vendor},
		logging.Field{Key: logging.FieldCategory, Value: expense.Category},
	).Info("Expense added")
	return expense, nil
}

// Update merges the patch into the matching record. An unknown id is a
// silent no-op: nothing changes and no error is returned. The patch cannot
// touch the id; category input is normalized and an invalid status is
// rejected before any mutation.
func (m *Manager) Update(id int, patch models.ExpensePatch) error {
	if patch.Status != nil && !models.ValidStatus(*patch.Status) {
		return &experror.ValidationError{Field: "status", Reason: "must be pending, approved, or flagged"}
	}
	if patch.Vendor != nil && strings.TrimSpace(*patch.Vendor) == "" {
		return &experror.ValidationError{Field: "vendor", Reason: "must not be empty"}
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		return &experror.ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if patch.Amount != nil && patch.Amount.IsNegative() {
		return &experror.ValidationError{Field: "amount", Reason: "must not be negative"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.expenses {
		if m.expenses[i].ID != id {
			continue
		}
		if patch.Date != nil {
			m.expenses[i].Date = *patch.Date
		}
		if patch.Vendor != nil {
			m.expenses[i].Vendor = *patch.Vendor
		}
		if patch.Category != nil {
			m.expenses[i].Category = models.NormalizeCategory(*patch.Category)
		}
		if patch.Amount != nil {
			m.expenses[i].Amount = *patch.Amount
		}
		if patch.Status != nil {
			m.expenses[i].Status = *patch.Status
		}
		if patch.Employee != nil {
			m.expenses[i].Employee = *patch.Employee
		}
		if patch.Description != nil {
			m.expenses[i].Description = *patch.Description
		}
		m.persist()
		m.logger.WithField(logging.FieldExpenseID, id).Info("Expense updated")
		return nil
	}

	m.logger.WithField(logging.FieldExpenseID, id).Debug("Update for unknown expense id ignored")
	return nil
}

// SetStatus is a convenience patch for approval decisions.
func (m *Manager) SetStatus(id int, status string) error {
	return m.Update(id, models.ExpensePatch{Status: &status})
}

// Remove deletes the record with the matching id; unknown ids are a no-op.
func (m *Manager) Remove(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.expenses {
		if m.expenses[i].ID == id {
			m.expenses = append(m.expenses[:i], m.expenses[i+1:]...)
			m.persist()
			m.logger.WithField(logging.FieldExpenseID, id).Info("Expense removed")
			return
		}
	}
	m.logger.WithField(logging.FieldExpenseID, id).Debug("Remove for unknown expense id ignored")
}

// Expenses returns a copy of the current collection, newest-first.
func (m *Manager) Expenses() []models.Expense {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Expense(nil), m.expenses...)
}

// Stats recomputes aggregate statistics from the current collection.
func (m *Manager) Stats() models.Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.ComputeStats(m.expenses)
}

// Recent returns the limit most recently submitted expenses, ordered by
// submission time descending with the calendar date as fallback. Ties keep
// their original relative order.
func (m *Manager) Recent(limit int) []models.Expense {
	expenses := m.Expenses()

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].SubmittedOrDate().After(expenses[j].SubmittedOrDate())
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(expenses) {
		limit = len(expenses)
	}
	return expenses[:limit]
}

// Search returns the expenses whose vendor, description, category, or
// employee contains the term case-insensitively, further narrowed by status
// unless status is empty or "all".
func (m *Manager) Search(term, status string) []models.Expense {
	needle := strings.ToLower(strings.TrimSpace(term))
	filterStatus := status != "" && status != "all"

	var matched []models.Expense
	for _, e := range m.Expenses() {
		if filterStatus && e.Status != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.Vendor), needle) &&
			!strings.Contains(strings.ToLower(e.Description), needle) &&
			!strings.Contains(strings.ToLower(e.Category), needle) &&
			!strings.Contains(strings.ToLower(e.Employee), needle) {
			continue
		}
		matched = append(matched, e)
	}
	return matched
}

// ClearAll empties the collection and removes the persisted entry entirely.
func (m *Manager) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.expenses = []models.Expense{}
	if err := m.store.Clear(); err != nil {
		m.logger.WithError(err).Warn("Failed to clear persisted expenses")
	}
	m.logger.Info("All expenses cleared")
}

// ResetToDefaults replaces the collection with the canonical seed set.
func (m *Manager) ResetToDefaults() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.expenses = models.SeedExpenses()
	m.persist()
	m.logger.WithField(logging.FieldCount, len(m.expenses)).Info("Expenses reset to defaults")
}

// ExportSnapshot serializes the full collection as pretty-printed JSON.
func (m *Manager) ExportSnapshot() (string, error) {
	data, err := store.EncodeExpenses(m.Expenses())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportSnapshot replaces the collection wholesale from a JSON backup.
// On any parse or shape failure the collection is left untouched and the
// typed import error is returned; it never panics into the caller.
func (m *Manager) ImportSnapshot(data string) error {
	imported, err := store.DecodeExpenses([]byte(data))
	if err != nil {
		m.logger.WithError(err).Warn("Snapshot import rejected")
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.expenses = imported
	m.persist()
	m.logger.WithField(logging.FieldCount, len(imported)).Info("Expenses imported from snapshot")
	return nil
}

// Budget returns the configured budget baseline (allocations and standing
// spend figures). Anomaly baselines derive from it, so it stays fixed.
func (m *Manager) Budget() models.BudgetSnapshot {
	return m.budget
}

// BudgetSnapshot overlays live category spend from the current collection
// onto the configured allocations, for assistant prompts and insights.
func (m *Manager) BudgetSnapshot() models.BudgetSnapshot {
	return m.budget.WithLiveSpend(m.Stats())
}

// Total is a convenience for the overall spend across the collection.
func (m *Manager) Total() decimal.Decimal {
	return m.Stats().Total
}
