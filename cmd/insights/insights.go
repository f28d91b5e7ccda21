// Package insights produces a narrative budget summary.
package insights

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowpay/flowpay/cmd/root"
)

// Cmd represents the insights command
var Cmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate budget insights and recommendations",
	Run: func(cmd *cobra.Command, args []string) {
		text := root.Assistant().BudgetInsights(cmd.Context(), root.Manager().BudgetSnapshot())
		fmt.Println(text)
	},
}
