package ledger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mirrordna/scd-go/canonical"
)

// ContextString renders the current state for LLM context injection. The
// output is stable for identical entries: keys are sorted and values use the
// canonical encoding, so two ledgers with the same state produce the same
// preamble byte for byte.
//
// Example output:
//
//	[SCD STATE]
//	Revision: 2
//	Checksum: ASHA-256:abc123...
//	State:
//	  project: "MyApp"
//	  rate_limit: 25
func (l *Ledger) ContextString() string {
	var b strings.Builder
	b.WriteString("[SCD STATE]\n")
	fmt.Fprintf(&b, "Revision: %d\n", l.revision)
	fmt.Fprintf(&b, "Checksum: %s\n", l.checksum)

	if len(l.entries) == 0 {
		b.WriteString("State: {}\n")
		return b.String()
	}

	keys := make([]string, 0, len(l.entries))
	for k := range l.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString("State:\n")
	for _, k := range keys {
		enc, err := canonical.EncodeValue(l.entries[k])
		if err != nil {
			// Entries are validated on the way in, so this is unreachable;
			// fall back to fmt rather than dropping the key.
			enc = []byte(fmt.Sprintf("%v", l.entries[k]))
		}
		fmt.Fprintf(&b, "  %s: %s\n", k, enc)
	}
	return b.String()
}
