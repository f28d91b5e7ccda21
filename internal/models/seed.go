package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeedExpenses returns the canonical seed set used when no persisted state
// exists or when the user resets to defaults. Callers receive a fresh slice
// on every call; mutating it never affects later loads.
func SeedExpenses() []Expense {
	return []Expense{
		{
			ID:          1,
			Date:        "2024-01-15",
			Vendor:      "Amazon Web Services",
			Category:    CategorySoftware,
			Amount:      decimal.NewFromFloat(2850.00),
			Status:      StatusApproved,
			Employee:    "Sarah Chen",
			Description: "Cloud hosting services",
			SubmittedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Date:        "2024-01-14",
			Vendor:      "Delta Airlines",
			Category:    CategoryTravel,
			Amount:      decimal.NewFromFloat(1245.50),
			Status:      StatusPending,
			Employee:    "Mike Johnson",
			Description: "Flight to client meeting",
			SubmittedAt: time.Date(2024, 1, 14, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:          3,
			Date:        "2024-01-14",
			Vendor:      "Office Depot",
			Category:    CategoryOfficeSupplies,
			Amount:      decimal.NewFromFloat(89.99),
			Status:      StatusFlagged,
			Employee:    "Emma Davis",
			Description: "Printer paper and supplies",
			SubmittedAt: time.Date(2024, 1, 14, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:          4,
			Date:        "2024-01-13",
			Vendor:      "Starbucks",
			Category:    CategoryMeals,
			Amount:      decimal.NewFromFloat(24.50),
			Status:      StatusApproved,
			Employee:    "John Smith",
			Description: "Client coffee meeting",
			SubmittedAt: time.Date(2024, 1, 13, 11, 45, 0, 0, time.UTC),
		},
		{
			ID:          5,
			Date:        "2024-01-13",
			Vendor:      "Adobe",
			Category:    CategorySoftware,
			Amount:      decimal.NewFromFloat(599.99),
			Status:      StatusPending,
			Employee:    "Lisa Wong",
			Description: "Creative Suite license",
			SubmittedAt: time.Date(2024, 1, 13, 16, 30, 0, 0, time.UTC),
		},
		{
			ID:          6,
			Date:        "2024-01-12",
			Vendor:      "Uber",
			Category:    CategoryTravel,
			Amount:      decimal.NewFromFloat(45.00),
			Status:      StatusApproved,
			Employee:    "Tom Brown",
			Description: "Airport transfer",
			SubmittedAt: time.Date(2024, 1, 12, 18, 20, 0, 0, time.UTC),
		},
	}
}
