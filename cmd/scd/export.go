// Export command serializes the state for cross-vendor handoff.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write the payload to a file instead of stdout")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the state as a verified handoff payload",
	Long: `Export snapshots the current entries, revision and checksum into the
handoff wire format. The payload can be imported by any other ledger
instance, which will verify the checksum before accepting it.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	payload, err := led.Export()
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if exportOutput != "" {
		if err := os.WriteFile(exportOutput, []byte(payload), 0o644); err != nil {
			return fmt.Errorf("write payload: %w", err)
		}
		fmt.Printf("Exported revision %d to %s\n", led.Revision(), exportOutput)
		return nil
	}

	fmt.Println(payload)
	return nil
}
