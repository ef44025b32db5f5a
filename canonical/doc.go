// Package canonical turns a key/value entries mapping into a byte-stable
// representation and derives ASHA-256 checksums from it. Two mappings with
// identical content but different insertion order always canonicalize to the
// same bytes, which makes the checksum a reliable drift detector across
// processes, platforms and vendors.
//
// The canonical encoding is compact JSON with mapping keys sorted
// lexicographically by their exact string bytes at every nesting level.
// Sequences preserve element order. Numbers follow a single fixed rule (see
// Canonicalize) so that the same logical value never hashes differently
// depending on how a host decoder happened to type it.
package canonical
