// Package logging provides a minimal logging interface and adapters for the
// SCD ledger.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the ledger uses for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text")
//	led := ledger.New(func(o *ledger.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal so callers can plug
// any structured logger without vendor lock-in.
package logging
