// Package recent lists the most recently submitted expenses.
package recent

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowpay/flowpay/cmd/list"
	"flowpay/flowpay/cmd/root"
)

var limit int

// Cmd represents the recent command
var Cmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recently submitted expenses",
	Run:   recentFunc,
}

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "n", 5, "Number of expenses to show")
}

func recentFunc(cmd *cobra.Command, args []string) {
	expenses := root.Manager().Recent(limit)
	if len(expenses) == 0 {
		fmt.Println("No expenses found.")
		return
	}
	list.PrintExpenses(expenses)
}
