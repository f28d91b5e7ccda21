// Package importcmd restores the expense collection from a JSON backup.
package importcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowpay/flowpay/cmd/root"
	"flowpay/flowpay/internal/fileutils"
)

var input string

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the expense collection from a JSON backup file",
	Long: `Replace the expense collection wholesale from a JSON backup. A
malformed file is rejected and the current collection is left unchanged.`,
	RunE: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "", "Backup file to import")
	_ = Cmd.MarkFlagRequired("input")
}

func importFunc(cmd *cobra.Command, args []string) error {
	data, err := fileutils.ReadFile(input)
	if err != nil {
		return fmt.Errorf("error reading backup file: %w", err)
	}

	if err := root.Manager().ImportSnapshot(string(data)); err != nil {
		return err
	}

	fmt.Printf("Imported expenses from %s\n", input)
	return nil
}
