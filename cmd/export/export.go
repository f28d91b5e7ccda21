// Package export writes expenses to CSV or JSON backup files.
package export

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"flowpay/flowpay/cmd/root"
	"flowpay/flowpay/internal/common"
	"flowpay/flowpay/internal/dateutils"
	"flowpay/flowpay/internal/fileutils"
)

var (
	format       string
	output       string
	searchTerm   string
	statusFilter string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export expenses to a CSV or JSON file",
	Long: `Export expenses to a file. CSV exports honor the same search and
status filters as list; JSON exports a full snapshot suitable for import.`,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "F", "csv", "Export format (csv or json)")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to expenses_<date>.<format>)")
	Cmd.Flags().StringVarP(&searchTerm, "search", "s", "", "Filter by vendor, description, category, or employee (csv only)")
	Cmd.Flags().StringVarP(&statusFilter, "status", "f", "all", "Filter by status (csv only)")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	if output == "" {
		output = fmt.Sprintf("expenses_%s.%s", dateutils.ToISODate(time.Now()), format)
	}

	switch format {
	case "csv":
		expenses := root.Manager().Search(searchTerm, statusFilter)
		if err := common.WriteExpensesToCSVFile(expenses, output); err != nil {
			return err
		}
		fmt.Printf("Exported %d expenses to %s\n", len(expenses), output)

	case "json":
		snapshot, err := root.Manager().ExportSnapshot()
		if err != nil {
			return err
		}
		if err := fileutils.WriteFile(output, []byte(snapshot), 0600); err != nil {
			return fmt.Errorf("error writing snapshot: %w", err)
		}
		fmt.Printf("Exported snapshot to %s\n", output)

	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
	return nil
}
