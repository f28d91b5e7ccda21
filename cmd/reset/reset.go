// Package reset restores the canonical seed expenses.
package reset

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowpay/flowpay/cmd/root"
)

// Cmd represents the reset command
var Cmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace all expenses with the default sample data",
	Run: func(cmd *cobra.Command, args []string) {
		root.Manager().ResetToDefaults()
		fmt.Println("Expenses reset to defaults.")
	},
}
