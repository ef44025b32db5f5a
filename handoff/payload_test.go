package handoff

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/mirrordna/scd-go/canonical"
)

var generatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNew_ComputesChecksumOverSnapshot(t *testing.T) {
	entries := map[string]any{"vendor": "claude", "step": 3}
	p, err := New(entries, 7, generatedAt)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), p.Revision)
	assert.True(t, canonical.Verify(p.Entries, p.Checksum))

	// Mutating the source after New must not affect the payload.
	entries["vendor"] = "other"
	assert.Equal(t, "claude", p.Entries["vendor"])
	assert.True(t, canonical.Verify(p.Entries, p.Checksum))
}

func TestNew_UnencodableEntries(t *testing.T) {
	_, err := New(map[string]any{"bad": make(chan int)}, 0, generatedAt)
	assert.ErrorIs(t, err, canonical.ErrUnsupportedType)
}

func TestEncode_WireFieldNames(t *testing.T) {
	p, err := New(map[string]any{"k": "v"}, 2, generatedAt)
	require.NoError(t, err)
	s, err := p.Encode()
	require.NoError(t, err)

	assert.True(t, gjson.Get(s, "entries").Exists())
	assert.Equal(t, int64(2), gjson.Get(s, "revision").Int())
	assert.Equal(t, p.Checksum, gjson.Get(s, "checksum").String())
	assert.Equal(t, "2026-03-01T12:00:00Z", gjson.Get(s, "generated_at").String())
}

func TestDecode_RoundTrip(t *testing.T) {
	p, err := New(map[string]any{
		"task":     "write research paper",
		"sections": []any{"introduction", "methodology"},
		"budget":   25,
	}, 4, generatedAt)
	require.NoError(t, err)

	s, err := p.Encode()
	require.NoError(t, err)

	got, err := Decode(s)
	require.NoError(t, err)
	assert.Equal(t, p.Revision, got.Revision)
	assert.Equal(t, p.Checksum, got.Checksum)
	assert.True(t, got.GeneratedAt.Equal(p.GeneratedAt))

	// Numbers come back as json.Number; the checksum must still recompute
	// identically thanks to the fixed numeric canonicalization rule.
	sum, err := canonical.Checksum(got.Entries)
	require.NoError(t, err)
	assert.Equal(t, p.Checksum, sum)
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":          "not valid json",
		"wrong type":        `[1,2,3]`,
		"trailing data":     `{"entries":{},"revision":0,"checksum":"x"} garbage`,
		"negative revision": `{"entries":{},"revision":-1,"checksum":"` + mustChecksum(t, nil) + `"}`,
		"missing checksum":  `{"entries":{},"revision":0}`,
		"bad checksum tag":  `{"entries":{},"revision":0,"checksum":"SHA-256:abc"}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(payload)
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestDecode_NullEntryRejected(t *testing.T) {
	payload := `{"entries":{"gone":null},"revision":1,"checksum":"` + mustChecksum(t, nil) + `"}`
	_, err := Decode(payload)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestDecode_ChecksumMismatch(t *testing.T) {
	sum := mustChecksum(t, map[string]any{"other": true})
	payload := `{"entries":{"k":"v"},"revision":1,"checksum":"` + sum + `"}`
	_, err := Decode(payload)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

// Mutating any byte of the entries field without updating the checksum must
// cause Decode to fail with a mismatch.
func TestDecode_TamperedEntries(t *testing.T) {
	p, err := New(map[string]any{"project": "MirrorDNA", "rate_limit": 25}, 3, generatedAt)
	require.NoError(t, err)
	s, err := p.Encode()
	require.NoError(t, err)

	tampered, err := sjson.Set(s, "entries.project", "EvilDNA")
	require.NoError(t, err)
	_, err = Decode(tampered)
	assert.ErrorIs(t, err, ErrChecksumMismatch)

	tampered, err = sjson.Set(s, "entries.rate_limit", 26)
	require.NoError(t, err)
	_, err = Decode(tampered)
	assert.ErrorIs(t, err, ErrChecksumMismatch)

	tampered, err = sjson.Delete(s, "entries.rate_limit")
	require.NoError(t, err)
	_, err = Decode(tampered)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestDecode_MissingEntriesBehavesAsEmpty(t *testing.T) {
	sum := mustChecksum(t, map[string]any{})
	payload := `{"revision":0,"checksum":"` + sum + `","generated_at":"2026-03-01T12:00:00Z"}`
	p, err := Decode(payload)
	require.NoError(t, err)
	assert.Empty(t, p.Entries)
}

func TestPayload_JSONShapeIsStable(t *testing.T) {
	// The wire format has exactly the four documented keys.
	p, err := New(map[string]any{"k": "v"}, 1, generatedAt)
	require.NoError(t, err)
	s, err := p.Encode()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(s), &raw))
	assert.Len(t, raw, 4)
	for _, key := range []string{"entries", "revision", "checksum", "generated_at"} {
		assert.Contains(t, raw, key)
	}
}

func mustChecksum(t *testing.T, entries map[string]any) string {
	t.Helper()
	sum, err := canonical.Checksum(entries)
	require.NoError(t, err)
	return sum
}
