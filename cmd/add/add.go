// Package add handles expense submission.
package add

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"flowpay/flowpay/cmd/root"
	"flowpay/flowpay/internal/dateutils"
	"flowpay/flowpay/internal/models"
)

var (
	vendor      string
	amount      string
	category    string
	description string
	date        string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Submit a new expense",
	Long: `Submit a new expense. When no category is given, the expense is
categorized automatically with the Gemini model, falling back to keyword
matching when the model is unavailable.`,
	RunE: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&vendor, "vendor", "v", "", "Vendor name")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Expense amount, e.g. 42.50")
	Cmd.Flags().StringVarP(&description, "description", "m", "", "Expense description")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category (optional, assigned automatically when omitted)")
	Cmd.Flags().StringVarP(&date, "date", "t", "", "Expense date (optional, defaults to today)")
	_ = Cmd.MarkFlagRequired("vendor")
	_ = Cmd.MarkFlagRequired("amount")
	_ = Cmd.MarkFlagRequired("description")
}

func addFunc(cmd *cobra.Command, args []string) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	date, err := dateutils.NormalizeDate(date)
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	expense, err := root.Manager().Add(cmd.Context(), models.NewExpenseData{
		Vendor:      vendor,
		Amount:      parsedAmount,
		Category:    category,
		Description: description,
		Date:        date,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added expense #%d: %s %s (%s, %s)\n",
		expense.ID, expense.Vendor, models.FormatAmount(expense.Amount),
		expense.Category, expense.Status)
	return nil
}
