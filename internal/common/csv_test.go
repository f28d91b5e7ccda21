package common

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowpay/flowpay/internal/models"
)

func sampleExpenses() []models.Expense {
	return []models.Expense{
		{
			ID:          1,
			Date:        "2024-01-15",
			Vendor:      "Amazon Web Services",
			Category:    models.CategorySoftware,
			Amount:      decimal.NewFromFloat(2850.00),
			Status:      models.StatusApproved,
			Employee:    "Sarah Chen",
			Description: "Cloud hosting services",
		},
		{
			ID:          2,
			Date:        "2024-01-14",
			Vendor:      `Quotes "R" Us`,
			Category:    models.CategoryOfficeSupplies,
			Amount:      decimal.NewFromFloat(9.99),
			Status:      models.StatusPending,
			Employee:    "John Doe",
			Description: "Supplies, assorted",
		},
	}
}

func TestWriteExpensesToCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExpensesToCSV(sampleExpenses(), &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, `"Date","Vendor","Category","Amount","Status","Submitted By","Description"`, lines[0])
	assert.Equal(t, `"2024-01-15","Amazon Web Services","Software","$2850.00","approved","Sarah Chen","Cloud hosting services"`, lines[1])
	// Embedded quotes double, commas stay inside the quoted field.
	assert.Equal(t, `"2024-01-14","Quotes ""R"" Us","Office Supplies","$9.99","pending","John Doe","Supplies, assorted"`, lines[2])
}

func TestWriteExpensesToCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExpensesToCSV(nil, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"Date"`)
}

func TestWriteExpensesToCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "expenses.csv")
	require.NoError(t, WriteExpensesToCSVFile(sampleExpenses(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Amazon Web Services")
	assert.Contains(t, string(data), "$2850.00")
}
