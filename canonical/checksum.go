package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Prefix is the fixed literal tag identifying the checksum scheme: SHA-256
// over the alphabetically sorted canonical form.
const Prefix = "ASHA-256:"

// Checksum computes the ASHA-256 checksum of the entries mapping. The result
// is the Prefix followed by 64 lowercase hex characters. Same entries always
// yield the same checksum regardless of process, platform or prior history.
func Checksum(entries map[string]any) (string, error) {
	data, err := Canonicalize(entries)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return Prefix + hex.EncodeToString(sum[:]), nil
}

// Verify recomputes the checksum of entries and compares it to claimed by
// exact string equality. Any mismatch, including entries that cannot be
// canonicalized, reports false.
func Verify(entries map[string]any, claimed string) bool {
	sum, err := Checksum(entries)
	if err != nil {
		return false
	}
	return sum == claimed
}

// WellFormed reports whether s has the shape of an ASHA-256 checksum: the
// Prefix followed by exactly 64 lowercase hex characters. It does not verify
// the checksum against any entries.
func WellFormed(s string) bool {
	rest, ok := strings.CutPrefix(s, Prefix)
	if !ok || len(rest) != 64 {
		return false
	}
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
