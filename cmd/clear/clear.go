// Package clear empties the expense collection.
package clear

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowpay/flowpay/cmd/root"
)

var yes bool

// Cmd represents the clear command
var Cmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all expenses and the persisted data file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !yes {
			return fmt.Errorf("refusing to clear without --yes")
		}
		root.Manager().ClearAll()
		fmt.Println("All expenses cleared.")
		return nil
	},
}

func init() {
	Cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion of all expenses")
}
