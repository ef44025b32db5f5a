// Package main provides the scd CLI, a thin external caller over the state
// ledger's public operations: supersede, checksum, context, export, import
// and history.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	scd "github.com/mirrordna/scd-go"
	"github.com/mirrordna/scd-go/ledger"
	"github.com/mirrordna/scd-go/logging"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// stateFileFlag overrides the configured state file path.
	stateFileFlag string

	// led is the ledger instance shared by all subcommands, initialized on
	// startup from the configured state file.
	led *ledger.Ledger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scd",
	Short: "scd is a checksum-verified state ledger for AI-agent sessions",
	Long: `scd manages a deterministic, checksum-verified key-value state ledger,
letting independent AI-agent sessions exchange a shared state blob and
detect tampering or divergence. State is snapshotted to a flat file and
every mutation is recorded in an audit trail.`,
	SilenceUsage:      true,
	PersistentPreRunE: initLedger,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: .scd.yaml or ~/.scd/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&stateFileFlag, "state-file", "", "state snapshot file (overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(supersedeCmd)
	rootCmd.AddCommand(checksumCmd)
	rootCmd.AddCommand(contextCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(historyCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("scd v0.1.0")
	},
}

// initLedger loads config and constructs the shared ledger instance.
func initLedger(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	stateFile := cfg.GetString(cfgKeyStateFile)
	if stateFileFlag != "" {
		stateFile = stateFileFlag
	}

	led = scd.New(func(o *scd.Options) {
		o.StateFile = stateFile
		o.Logger = logging.NewSlogLoggerTo(os.Stderr, parseLogLevel(cfg.GetString(cfgKeyLogLevel)), cfg.GetString(cfgKeyLogFormat))
	})
	return nil
}

func parseLogLevel(s string) logging.LogLevel {
	switch s {
	case "debug":
		return logging.LogLevelDebug
	case "info":
		return logging.LogLevelInfo
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelWarn
	}
}
