// Import command adopts a verified handoff payload.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrordna/scd-go/handoff"
)

var importCmd = &cobra.Command{
	Use:   "import [payload-file]",
	Short: "Import a handoff payload, replacing the current state",
	Long: `Import parses a payload (from a file, or stdin when no argument is
given), recomputes its checksum and rejects it on any mismatch. On
success the current entries and revision are replaced wholesale.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	if err := led.Import(string(data)); err != nil {
		switch {
		case errors.Is(err, handoff.ErrChecksumMismatch):
			return fmt.Errorf("import rejected: drift detected (checksum mismatch)")
		case errors.Is(err, handoff.ErrMalformedPayload):
			return fmt.Errorf("import rejected: %w", err)
		default:
			return fmt.Errorf("import: %w", err)
		}
	}

	fmt.Printf("Imported revision %d\n", led.Revision())
	fmt.Printf("Checksum: %s\n", led.Checksum())
	return nil
}
