package ledger

import "github.com/mirrordna/scd-go/canonical"

// Change is one element of a Delta: either a Set carrying a new value or a
// Remove marking the key for deletion. The zero Change is Set(nil), which is
// treated as Remove so the entries mapping can never hold a null marker.
type Change struct {
	value  any
	remove bool
}

// Set returns a Change that writes v to the key. Set(nil) is equivalent to
// Remove().
func Set(v any) Change { return Change{value: v} }

// Remove returns a Change that deletes the key. Removing an absent key is
// not an error.
func Remove() Change { return Change{remove: true} }

// IsRemove reports whether the change deletes its key.
func (c Change) IsRemove() bool { return c.remove || c.value == nil }

// Value returns the value written by a Set change, or nil for a Remove.
func (c Change) Value() any {
	if c.IsRemove() {
		return nil
	}
	return c.value
}

// Delta describes the set of changes applied by one Supersede call.
type Delta map[string]Change

// DeltaFromMap converts the dynamic wire form of a delta, where a nil value
// is the deletion sentinel, into the typed form. This is the shape produced
// by decoding a JSON delta whose removals are spelled as null.
func DeltaFromMap(m map[string]any) Delta {
	d := make(Delta, len(m))
	for k, v := range m {
		if v == nil {
			d[k] = Remove()
		} else {
			d[k] = Set(v)
		}
	}
	return d
}

// wire returns the delta in its dynamic form for audit records: removed keys
// map to nil, set values are deep-copied so the record stays immutable.
func (d Delta) wire() map[string]any {
	m := make(map[string]any, len(d))
	for k, c := range d {
		if c.IsRemove() {
			m[k] = nil
		} else {
			m[k] = canonical.CloneValue(c.Value())
		}
	}
	return m
}
