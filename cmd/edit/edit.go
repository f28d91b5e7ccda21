// Package edit handles partial updates to an existing expense.
package edit

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"flowpay/flowpay/cmd/root"
	"flowpay/flowpay/internal/dateutils"
	"flowpay/flowpay/internal/models"
)

var (
	id          int
	vendor      string
	amount      string
	category    string
	description string
	date        string
	status      string
)

// Cmd represents the edit command
var Cmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit fields of an existing expense",
	Long: `Edit any subset of an expense's fields by id. Only the flags you
pass are changed; an unknown id leaves the collection untouched.`,
	RunE: editFunc,
}

func init() {
	Cmd.Flags().IntVarP(&id, "id", "i", 0, "Expense id")
	Cmd.Flags().StringVarP(&vendor, "vendor", "v", "", "New vendor name")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "New amount")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	Cmd.Flags().StringVarP(&description, "description", "m", "", "New description")
	Cmd.Flags().StringVarP(&date, "date", "t", "", "New date")
	Cmd.Flags().StringVarP(&status, "status", "f", "", "New status (pending, approved, flagged)")
	_ = Cmd.MarkFlagRequired("id")
}

func editFunc(cmd *cobra.Command, args []string) error {
	var patch models.ExpensePatch

	if cmd.Flags().Changed("vendor") {
		patch.Vendor = &vendor
	}
	if cmd.Flags().Changed("amount") {
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", amount, err)
		}
		patch.Amount = &parsed
	}
	if cmd.Flags().Changed("category") {
		patch.Category = &category
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &description
	}
	if cmd.Flags().Changed("date") {
		normalized, err := dateutils.NormalizeDate(date)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		patch.Date = &normalized
	}
	if cmd.Flags().Changed("status") {
		patch.Status = &status
	}

	if err := root.Manager().Update(id, patch); err != nil {
		return err
	}

	fmt.Printf("Expense #%d updated.\n", id)
	return nil
}
