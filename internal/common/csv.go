// Package common provides shared output helpers, currently CSV export.
package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"flowpay/flowpay/internal/fileutils"
	"flowpay/flowpay/internal/logging"
	"flowpay/flowpay/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// ExpenseCSVRow maps one expense to the export columns.
type ExpenseCSVRow struct {
	Date        string `csv:"Date"`
	Vendor      string `csv:"Vendor"`
	Category    string `csv:"Category"`
	Amount      string `csv:"Amount"`
	Status      string `csv:"Status"`
	SubmittedBy string `csv:"Submitted By"`
	Description string `csv:"Description"`
}

// quotedWriter wraps an io.Writer and quotes every field, matching the
// backup format where all fields are quoted regardless of content.
type quotedWriter struct {
	w   io.Writer
	err error
}

func (q *quotedWriter) Write(row []string) error {
	if q.err != nil {
		return q.err
	}
	quoted := make([]string, len(row))
	for i, field := range row {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	_, q.err = fmt.Fprintln(q.w, strings.Join(quoted, ","))
	return q.err
}

func (q *quotedWriter) Flush() {}

func (q *quotedWriter) Error() error { return q.err }

// WriteExpensesToCSV writes expenses to w with the columns Date, Vendor,
// Category, Amount, Status, Submitted By, Description. Amounts render as
// $X.XX and every field is quoted.
func WriteExpensesToCSV(expenses []models.Expense, w io.Writer) error {
	rows := make([]ExpenseCSVRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, ExpenseCSVRow{
			Date:        e.Date,
			Vendor:      e.Vendor,
			Category:    e.Category,
			Amount:      models.FormatAmount(e.Amount),
			Status:      e.Status,
			SubmittedBy: e.Employee,
			Description: e.Description,
		})
	}

	writer := &quotedWriter{w: w}
	if err := gocsv.MarshalCSV(&rows, writer); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	return writer.Error()
}

// WriteExpensesToCSVFile writes expenses to the given file, creating parent
// directories as needed.
func WriteExpensesToCSVFile(expenses []models.Expense, csvFile string) error {
	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(expenses)},
	).Info("Writing expenses to CSV file")

	if dir := filepath.Dir(csvFile); dir != "." {
		if err := fileutils.EnsureDirectoryExists(dir); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return WriteExpensesToCSV(expenses, file)
}
