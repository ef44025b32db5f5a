// History command lists the audit trail.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var historyJSON bool

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output audit entries as JSON")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the audit trail of applied changes",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	history := led.History()

	if historyJSON {
		out, err := json.MarshalIndent(history, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal history: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(history) == 0 {
		fmt.Println("No audit entries in this session.")
		return nil
	}
	for _, e := range history {
		fmt.Printf("%s  rev=%d  %-9s  %s\n", e.Timestamp.Format("2006-01-02T15:04:05Z07:00"), e.Revision, e.Action, e.Checksum)
	}
	return nil
}
