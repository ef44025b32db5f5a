// Supersede command applies a JSON delta to the ledger.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mirrordna/scd-go/ledger"
)

var supersedeCmd = &cobra.Command{
	Use:   "supersede <json-delta>",
	Short: "Atomically apply a delta to the state",
	Long: `Supersede merges a JSON delta into the current state, recomputes the
checksum and records an audit entry. A key mapped to null is removed
instead of set.

Example:
  scd supersede '{"project":"MyApp","mode":"production"}'
  scd supersede '{"debug":null}'`,
	Args: cobra.ExactArgs(1),
	RunE: runSupersede,
}

func runSupersede(cmd *cobra.Command, args []string) error {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader([]byte(args[0])))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("parse delta: %w", err)
	}

	sum, err := led.Supersede(ledger.DeltaFromMap(raw))
	if err != nil {
		return fmt.Errorf("supersede: %w", err)
	}

	fmt.Printf("Revision: %d\n", led.Revision())
	fmt.Printf("Checksum: %s\n", sum)
	return nil
}
