// Package audit scans the collection for duplicates and anomalies.
package audit

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowpay/flowpay/cmd/list"
	"flowpay/flowpay/cmd/root"
)

var (
	duplicatesOnly bool
	anomaliesOnly  bool
)

// Cmd represents the audit command
var Cmd = &cobra.Command{
	Use:   "audit",
	Short: "Scan expenses for likely duplicates and anomalies",
	Long: `Scan the expense collection for likely duplicates and unusual
amounts. The AI service is consulted when available; otherwise deterministic
comparisons against vendor, amount, date, and category baselines are used.`,
	Run: auditFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&duplicatesOnly, "duplicates", "d", false, "Only report duplicates")
	Cmd.Flags().BoolVarP(&anomaliesOnly, "anomalies", "x", false, "Only report anomalies")
}

func auditFunc(cmd *cobra.Command, args []string) {
	mgr := root.Manager()
	assistant := root.Assistant()
	expenses := mgr.Expenses()

	if !anomaliesOnly {
		duplicates := assistant.DetectDuplicates(cmd.Context(), expenses)
		if len(duplicates) == 0 {
			fmt.Println("No likely duplicates found.")
		} else {
			fmt.Printf("Likely duplicates (%d):\n", len(duplicates))
			list.PrintExpenses(duplicates)
		}
	}

	if !duplicatesOnly {
		anomalies := assistant.DetectAnomalies(cmd.Context(), expenses, mgr.Budget())
		if len(anomalies) == 0 {
			fmt.Println("No anomalies found.")
		} else {
			fmt.Printf("Anomalies (%d):\n", len(anomalies))
			list.PrintExpenses(anomalies)
		}
	}
}
