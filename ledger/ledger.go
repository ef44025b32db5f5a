package ledger

import (
	"fmt"
	"time"

	"github.com/mirrordna/scd-go/canonical"
	"github.com/mirrordna/scd-go/handoff"
	"github.com/mirrordna/scd-go/logging"
)

// ErrInvalidDeltaValue is returned when a delta carries a value that cannot
// be represented in the canonical encoding. The ledger and its history are
// left unchanged.
var ErrInvalidDeltaValue = fmt.Errorf("ledger: invalid delta value")

// Options configures a Ledger instance.
type Options struct {
	// StateFile, when non-empty, enables flat-file snapshotting: the ledger
	// loads a verified snapshot on construction and rewrites it after every
	// successful supersede or import.
	StateFile string

	// Logger receives operational log records (defaults to NoOpLogger).
	Logger logging.Logger

	// Clock supplies timestamps for audit entries and exported payloads.
	// Override in tests for deterministic output.
	Clock func() time.Time
}

// Ledger holds the entries mapping, the monotonic revision counter and the
// audit trail. Construct with New; the zero value is not usable.
type Ledger struct {
	revision uint64
	entries  map[string]any
	checksum string
	history  []AuditEntry

	stateFile string
	logger    logging.Logger
	now       func() time.Time
}

// New creates a ledger with optional overrides. With no options the ledger
// starts at revision 0 with empty entries and no snapshot file.
func New(optFns ...func(o *Options)) *Ledger {
	opts := Options{
		Logger: logging.NoOpLogger{},
		Clock:  time.Now,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	l := &Ledger{
		entries:   map[string]any{},
		stateFile: opts.StateFile,
		logger:    opts.Logger,
		now:       opts.Clock,
	}
	// An empty mapping always canonicalizes.
	l.checksum, _ = canonical.Checksum(l.entries)

	if l.stateFile != "" {
		l.loadSnapshot()
	}
	return l
}

// Supersede atomically merges the delta into the entries, recomputes the
// checksum and appends an audit entry, returning the new checksum. Keys with
// a Remove change are deleted (absent keys are ignored); all others are set
// or overwritten. An empty delta is a legal no-op that still increments the
// revision and is recorded, so every call leaves a trace in the history.
//
// On error nothing changes: an unencodable value yields ErrInvalidDeltaValue
// before any mutation, and a snapshot write failure leaves the in-memory
// state at the previous revision.
func (l *Ledger) Supersede(delta Delta) (string, error) {
	next := canonical.CloneEntries(l.entries)
	for k, c := range delta {
		if c.IsRemove() {
			delete(next, k)
		} else {
			next[k] = canonical.CloneValue(c.Value())
		}
	}

	sum, err := canonical.Checksum(next)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDeltaValue, err)
	}

	entry := AuditEntry{
		ID:        NewID(),
		Revision:  l.revision + 1,
		Action:    ActionSupersede,
		Delta:     delta.wire(),
		Checksum:  sum,
		Timestamp: l.now().UTC(),
	}

	if err := l.persist(next, l.revision+1); err != nil {
		return "", err
	}

	l.entries = next
	l.revision++
	l.checksum = sum
	l.history = append(l.history, entry)
	l.logger.Debug("state superseded", "revision", l.revision, "checksum", sum, "delta_keys", len(delta))
	return sum, nil
}

// Export snapshots the current entries, revision and checksum into the
// handoff wire format and serializes it to a transport string.
func (l *Ledger) Export() (string, error) {
	p, err := handoff.New(l.entries, l.revision, l.now())
	if err != nil {
		return "", err
	}
	s, err := p.Encode()
	if err != nil {
		return "", err
	}
	l.logger.Debug("state exported", "revision", l.revision, "checksum", p.Checksum, "bytes", len(s))
	return s, nil
}

// Import parses and verifies a handoff payload, then replaces the entries
// and revision wholesale (not merged) and appends a single audit entry
// marking the import. On any decode or verification failure the ledger is
// left untouched and the error reports the cause: handoff.ErrMalformedPayload
// for unparseable input, handoff.ErrChecksumMismatch for drift.
func (l *Ledger) Import(payload string) error {
	p, err := handoff.Decode(payload)
	if err != nil {
		l.logger.Error("import rejected", "error", err)
		return err
	}

	entry := AuditEntry{
		ID:        NewID(),
		Revision:  p.Revision,
		Action:    ActionImport,
		Checksum:  p.Checksum,
		Timestamp: l.now().UTC(),
	}

	if err := l.persist(p.Entries, p.Revision); err != nil {
		return err
	}

	l.entries = p.Entries
	l.revision = p.Revision
	l.checksum = p.Checksum
	l.history = append(l.history, entry)
	l.logger.Info("state imported", "revision", l.revision, "checksum", l.checksum)
	return nil
}

// Checksum returns the ASHA-256 checksum of the current entries.
func (l *Ledger) Checksum() string { return l.checksum }

// Revision returns the current revision counter.
func (l *Ledger) Revision() uint64 { return l.revision }

// Entries returns a deep copy of the current entries mapping so callers
// cannot mutate internal state.
func (l *Ledger) Entries() map[string]any { return canonical.CloneEntries(l.entries) }

// History returns a copy of the audit trail in application order.
func (l *Ledger) History() []AuditEntry {
	history := make([]AuditEntry, len(l.history))
	copy(history, l.history)
	return history
}

// persist writes a snapshot of the prospective state before it is committed
// in memory, so a write failure cannot leave the two out of sync.
func (l *Ledger) persist(entries map[string]any, revision uint64) error {
	if l.stateFile == "" {
		return nil
	}
	p, err := handoff.New(entries, revision, l.now())
	if err != nil {
		return err
	}
	if err := writeSnapshot(l.stateFile, p); err != nil {
		return fmt.Errorf("write state snapshot: %w", err)
	}
	return nil
}
