// Package models defines the core data types for expense management.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"flowpay/flowpay/internal/experror"
)

// Expense statuses. New expenses always start as StatusPending.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusFlagged  = "flagged"
)

// Categories form a closed set. Free text never survives into an Expense:
// anything outside the set normalizes to CategoryOther.
const (
	CategorySoftware       = "Software"
	CategoryTravel         = "Travel"
	CategoryEquipment      = "Equipment"
	CategoryMarketing      = "Marketing"
	CategoryOfficeSupplies = "Office Supplies"
	CategoryMeals          = "Meals"
	CategoryTransportation = "Transportation"
	CategoryAccommodation  = "Accommodation"
	CategoryOther          = "Other"
)

// AllCategories lists the closed category set in presentation order.
var AllCategories = []string{
	CategorySoftware,
	CategoryTravel,
	CategoryEquipment,
	CategoryMarketing,
	CategoryOfficeSupplies,
	CategoryMeals,
	CategoryTransportation,
	CategoryAccommodation,
	CategoryOther,
}

// Expense represents a single recorded spend transaction awaiting or having
// completed an approval decision. Instances are owned exclusively by the
// expense manager; ID and SubmittedAt are assigned once at creation.
type Expense struct {
	ID          int             `json:"id"`
	Date        string          `json:"date"`
	Vendor      string          `json:"vendor"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Employee    string          `json:"employee"`
	Description string          `json:"description"`
	SubmittedAt time.Time       `json:"submittedAt"`
}

// NewExpenseData carries the user-supplied fields for a create operation.
// Category and Date are optional: an empty category triggers automatic
// categorization, an empty date defaults to today.
type NewExpenseData struct {
	Vendor      string
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        string
}

// Validate enforces the submission contract: vendor, description and a
// non-negative amount are required before any mutation happens.
func (d NewExpenseData) Validate() error {
	if strings.TrimSpace(d.Vendor) == "" {
		return &experror.ValidationError{Field: "vendor", Reason: "must not be empty"}
	}
	if strings.TrimSpace(d.Description) == "" {
		return &experror.ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if d.Amount.IsNegative() {
		return &experror.ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	if d.Amount.IsZero() {
		return &experror.ValidationError{Field: "amount", Reason: "must be provided"}
	}
	return nil
}

// ExpensePatch is a typed partial update: nil fields are left untouched.
// The ID of an expense is never patchable.
type ExpensePatch struct {
	Date        *string
	Vendor      *string
	Category    *string
	Amount      *decimal.Decimal
	Status      *string
	Employee    *string
	Description *string
}

// NormalizeCategory maps arbitrary input onto the closed category set.
// Matching is case-insensitive; "Office" is accepted as an alias of
// "Office Supplies". Anything unrecognized becomes CategoryOther.
func NormalizeCategory(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, "Office") {
		return CategoryOfficeSupplies
	}
	for _, category := range AllCategories {
		if strings.EqualFold(trimmed, category) {
			return category
		}
	}
	return CategoryOther
}

// IsKnownCategory reports whether raw is already a member of the closed set
// (or the "Office" alias), without forcing it to Other.
func IsKnownCategory(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, "Office") {
		return true
	}
	for _, category := range AllCategories {
		if strings.EqualFold(trimmed, category) {
			return true
		}
	}
	return false
}

// NormalizeStatus coerces arbitrary input to a valid status, defaulting to
// pending. Used on load paths where the serialized form is untrusted.
func NormalizeStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case StatusApproved:
		return StatusApproved
	case StatusFlagged:
		return StatusFlagged
	default:
		return StatusPending
	}
}

// ValidStatus reports whether raw is exactly one of the three statuses.
func ValidStatus(raw string) bool {
	switch raw {
	case StatusPending, StatusApproved, StatusFlagged:
		return true
	}
	return false
}

// ParseAmount converts a string to a decimal amount, returning zero for
// unparseable input.
func ParseAmount(raw string) decimal.Decimal {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// FormatAmount renders an amount as a dollar string with two decimals,
// matching the export format ($X.XX).
func FormatAmount(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// SubmittedOrDate returns the best available ordering instant for an
// expense: SubmittedAt when set, otherwise midnight of its calendar date.
func (e Expense) SubmittedOrDate() time.Time {
	if !e.SubmittedAt.IsZero() {
		return e.SubmittedAt
	}
	if t, err := time.Parse("2006-01-02", e.Date); err == nil {
		return t
	}
	return time.Time{}
}
