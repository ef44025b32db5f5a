package testutil

import (
	"time"

	"github.com/mirrordna/scd-go/ledger"
)

// FixedClock returns a Clock function that always reports the same instant,
// making audit entries and exported payloads byte-stable across runs.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// LedgerBuilder constructs ledgers with fluent chaining for tests.
// Example:
//
//	led := NewLedgerBuilder().Set("k", "v").Set("n", 1).Build(t)
type LedgerBuilder struct {
	stateFile string
	clock     func() time.Time
	deltas    []ledger.Delta
}

// NewLedgerBuilder creates a builder for an in-memory ledger. Use chainable
// methods (Set, Remove, Delta, StateFile, Clock) then call Build.
func NewLedgerBuilder() *LedgerBuilder {
	return &LedgerBuilder{
		clock: FixedClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)),
	}
}

// StateFile enables snapshotting at the given path (chainable).
func (b *LedgerBuilder) StateFile(path string) *LedgerBuilder {
	b.stateFile = path
	return b
}

// Clock overrides the deterministic default clock (chainable).
func (b *LedgerBuilder) Clock(clock func() time.Time) *LedgerBuilder {
	b.clock = clock
	return b
}

// Set applies key=value in its own supersede call (chainable).
func (b *LedgerBuilder) Set(key string, value any) *LedgerBuilder {
	b.deltas = append(b.deltas, ledger.Delta{key: ledger.Set(value)})
	return b
}

// Remove deletes a key in its own supersede call (chainable).
func (b *LedgerBuilder) Remove(key string) *LedgerBuilder {
	b.deltas = append(b.deltas, ledger.Delta{key: ledger.Remove()})
	return b
}

// Delta appends a full delta applied as one supersede call (chainable).
func (b *LedgerBuilder) Delta(d ledger.Delta) *LedgerBuilder {
	b.deltas = append(b.deltas, d)
	return b
}

// Build constructs the ledger and applies the queued deltas, failing the
// test on any error.
func (b *LedgerBuilder) Build(t testingT) *ledger.Ledger {
	t.Helper()
	led := ledger.New(func(o *ledger.Options) {
		o.StateFile = b.stateFile
		o.Clock = b.clock
	})
	for _, d := range b.deltas {
		if _, err := led.Supersede(d); err != nil {
			t.Fatalf("testutil: supersede failed: %v", err)
		}
	}
	return led
}

// testingT is the subset of *testing.T the builder needs, kept as an
// interface so the package does not import testing.
type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}
