// Checksum command prints the current state checksum.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checksumCmd = &cobra.Command{
	Use:   "checksum",
	Short: "Print the checksum of the current state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(led.Checksum())
		return nil
	},
}
