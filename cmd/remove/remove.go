// Package remove handles expense deletion.
package remove

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowpay/flowpay/cmd/root"
)

var id int

// Cmd represents the remove command
var Cmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete an expense by id",
	Run:   removeFunc,
}

func init() {
	Cmd.Flags().IntVarP(&id, "id", "i", 0, "Expense id")
	_ = Cmd.MarkFlagRequired("id")
}

func removeFunc(cmd *cobra.Command, args []string) {
	root.Manager().Remove(id)
	fmt.Printf("Expense #%d removed (if it existed).\n", id)
}
