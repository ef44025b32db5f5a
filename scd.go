// Package scd provides a high-level façade over the state ledger and its
// supporting packages (canonical encoding, checksums, handoff codec &
// logging), implementing the SCD protocol: deterministic, checksum-verified
// state exchange between independent AI-agent sessions. Most applications
// interact with this package by:
//  1. Creating a ledger via New() (optionally with a snapshot file and logger)
//  2. Mutating state with Supersede and reading it back via Entries,
//     Checksum and ContextString
//  3. Handing state to another session with Export, and adopting it on the
//     other side with Import, which rejects any payload whose checksum does
//     not recompute
//
// The façade delegates to ledger.Ledger while keeping setup ergonomics
// concise. All defaults are safe for local development and testing;
// long-lived deployments typically supply a snapshot file and a structured
// logger.
package scd

import (
	"time"

	"github.com/mirrordna/scd-go/canonical"
	"github.com/mirrordna/scd-go/ledger"
	"github.com/mirrordna/scd-go/logging"
)

// Options configures the ledger created by New.
type Options struct {
	// StateFile enables flat-file snapshotting when non-empty.
	StateFile string

	// Logger receives operational log records (defaults to NoOp logger).
	Logger logging.Logger

	// Clock supplies timestamps; override in tests for determinism.
	Clock func() time.Time
}

// New creates a state ledger with optional overrides.
func New(optFns ...func(o *Options)) *ledger.Ledger {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return ledger.New(func(o *ledger.Options) {
		o.StateFile = opts.StateFile
		if opts.Logger != nil {
			o.Logger = opts.Logger
		}
		if opts.Clock != nil {
			o.Clock = opts.Clock
		}
	})
}

// Checksum computes the ASHA-256 checksum for an arbitrary entries mapping
// without constructing a ledger.
func Checksum(entries map[string]any) (string, error) {
	return canonical.Checksum(entries)
}

// Verify reports whether the claimed checksum recomputes from the entries.
// It is pure and usable without a ledger instance.
func Verify(entries map[string]any, claimed string) bool {
	return canonical.Verify(entries, claimed)
}
