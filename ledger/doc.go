// Package ledger implements the deterministic state container at the center
// of the SCD protocol: an entries mapping, a monotonic revision counter and
// an append-only audit trail of applied changes.
//
// All mutation funnels through Supersede, which merges a Delta into the
// entries, recomputes the ASHA-256 checksum and records an audit entry, or
// through Import, which replaces the state wholesale with a verified handoff
// payload. Both are atomic: either the ledger, its snapshot file and the
// audit trail all update, or nothing changes.
//
// A Ledger is owned by a single goroutine. It carries no internal locking;
// callers sharing one across goroutines must serialize access externally.
package ledger
