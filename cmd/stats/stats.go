// Package stats reports aggregate expense statistics.
package stats

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"flowpay/flowpay/cmd/root"
	"flowpay/flowpay/internal/models"
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate expense statistics",
	Run:   statsFunc,
}

func statsFunc(cmd *cobra.Command, args []string) {
	s := root.Manager().Stats()

	fmt.Printf("Total spend:  %s\n", models.FormatAmount(s.Total))
	fmt.Printf("Expenses:     %d\n", s.Count)
	fmt.Printf("Pending:      %d\n", s.Pending)
	fmt.Printf("Approved:     %d\n", s.Approved)
	fmt.Printf("Flagged:      %d\n", s.Flagged)

	if len(s.CategoryTotals) == 0 {
		return
	}

	categories := make([]string, 0, len(s.CategoryTotals))
	for category := range s.CategoryTotals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	fmt.Println("\nBy category:")
	for _, category := range categories {
		fmt.Printf("  %-16s %s\n", category, models.FormatAmount(s.CategoryTotals[category]))
	}
}
