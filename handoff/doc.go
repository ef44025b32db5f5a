// Package handoff serializes full state snapshots for transfer between
// independent ledger instances and verifies them on receipt. The codec
// depends only on the canonical package; transport (file, message, HTTP
// body) is the caller's responsibility.
//
// Wire format is a JSON object with exactly these keys:
//
//	{
//	  "entries": { ... },
//	  "revision": <non-negative integer>,
//	  "checksum": "ASHA-256:<64 lowercase hex chars>",
//	  "generated_at": "<RFC 3339 timestamp>"
//	}
//
// Decode recomputes the checksum over the embedded entries and rejects the
// payload on any mismatch. A mismatch is drift: the codec cannot distinguish
// accidental mutation, serialization bugs and intentional tampering, it can
// only flag that the claimed and recomputed checksums disagree.
package handoff
