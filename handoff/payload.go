package handoff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mirrordna/scd-go/canonical"
)

var (
	// ErrMalformedPayload is returned when a transport string cannot be
	// parsed as the expected payload structure.
	ErrMalformedPayload = fmt.Errorf("handoff: malformed payload")

	// ErrChecksumMismatch is returned when the checksum recomputed from a
	// payload's entries disagrees with the embedded checksum.
	ErrChecksumMismatch = fmt.Errorf("handoff: checksum mismatch")
)

// Payload is an immutable full-state snapshot plus the metadata needed to
// verify it on the receiving side. Treat it as read-only once produced.
type Payload struct {
	Entries     map[string]any `json:"entries"`
	Revision    uint64         `json:"revision"`
	Checksum    string         `json:"checksum"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// New builds a verified payload from a snapshot of entries. The entries are
// deep-copied so later mutation of the source cannot invalidate the embedded
// checksum.
func New(entries map[string]any, revision uint64, generatedAt time.Time) (Payload, error) {
	snapshot := canonical.CloneEntries(entries)
	sum, err := canonical.Checksum(snapshot)
	if err != nil {
		return Payload{}, err
	}
	return Payload{
		Entries:     snapshot,
		Revision:    revision,
		Checksum:    sum,
		GeneratedAt: generatedAt.UTC(),
	}, nil
}

// Encode serializes the payload to its transport string.
func (p Payload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	return string(data), nil
}

// Decode parses a transport string and verifies it. It returns
// ErrMalformedPayload when the text does not parse as the expected structure
// and ErrChecksumMismatch when the recomputed checksum disagrees with the
// embedded one. The returned payload is only valid when err is nil.
func Decode(s string) (Payload, error) {
	var p Payload

	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	if err := dec.Decode(&p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if dec.More() {
		return Payload{}, fmt.Errorf("%w: trailing data after payload object", ErrMalformedPayload)
	}

	if !canonical.WellFormed(p.Checksum) {
		return Payload{}, fmt.Errorf("%w: checksum %q is not an ASHA-256 value", ErrMalformedPayload, p.Checksum)
	}
	if p.Entries == nil {
		p.Entries = map[string]any{}
	}
	for k, v := range p.Entries {
		// Top-level nulls are deletion markers, never persisted state.
		if v == nil {
			return Payload{}, fmt.Errorf("%w: entry %q is null", ErrMalformedPayload, k)
		}
	}

	if !canonical.Verify(p.Entries, p.Checksum) {
		return Payload{}, ErrChecksumMismatch
	}
	return p, nil
}
