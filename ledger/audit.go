package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded in the trail.
const (
	ActionSupersede = "supersede"
	ActionImport    = "import"
)

// AuditEntry records one applied change. Entries are append-only: once
// created they are never mutated or removed.
type AuditEntry struct {
	ID        string         `json:"id"`
	Revision  uint64         `json:"revision"`
	Action    string         `json:"action"`
	Delta     map[string]any `json:"delta,omitempty"`
	Checksum  string         `json:"checksum"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewID generates a unique identifier for audit entries.
func NewID() string { return uuid.NewString() }
