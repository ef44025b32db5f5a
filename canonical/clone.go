package canonical

// CloneEntries returns a deep copy of the entries mapping. Nested mappings
// and sequences are copied recursively; scalar values are shared, which is
// safe because every supported scalar kind is immutable.
func CloneEntries(entries map[string]any) map[string]any {
	if entries == nil {
		return map[string]any{}
	}
	clone := make(map[string]any, len(entries))
	for k, v := range entries {
		clone[k] = CloneValue(v)
	}
	return clone
}

// CloneValue deep-copies a single canonical value.
func CloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CloneEntries(val)
	case []any:
		clone := make([]any, len(val))
		for i, el := range val {
			clone[i] = CloneValue(el)
		}
		return clone
	default:
		return v
	}
}
