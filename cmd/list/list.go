// Package list handles listing and filtering expenses.
package list

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"flowpay/flowpay/cmd/root"
	"flowpay/flowpay/internal/models"
)

var (
	searchTerm   string
	statusFilter string
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	Long:  `List expenses, optionally filtered by a search term and status.`,
	Run:   listFunc,
}

func init() {
	Cmd.Flags().StringVarP(&searchTerm, "search", "s", "", "Filter by vendor, description, category, or employee")
	Cmd.Flags().StringVarP(&statusFilter, "status", "f", "all", "Filter by status (pending, approved, flagged, all)")
}

func listFunc(cmd *cobra.Command, args []string) {
	expenses := root.Manager().Search(searchTerm, statusFilter)
	if len(expenses) == 0 {
		fmt.Println("No expenses found.")
		return
	}

	PrintExpenses(expenses)
}

// PrintExpenses renders expenses as an aligned table.
func PrintExpenses(expenses []models.Expense) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tVENDOR\tCATEGORY\tAMOUNT\tSTATUS\tEMPLOYEE\tDESCRIPTION")
	for _, e := range expenses {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Date, e.Vendor, e.Category,
			models.FormatAmount(e.Amount), e.Status, e.Employee, e.Description)
	}
	_ = w.Flush()
}
