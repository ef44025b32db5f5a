package scd_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scd "github.com/mirrordna/scd-go"
	"github.com/mirrordna/scd-go/ledger"
)

func TestNew_Defaults(t *testing.T) {
	led := scd.New()
	assert.Equal(t, uint64(0), led.Revision())
	assert.Empty(t, led.Entries())
}

func TestChecksumAndVerify(t *testing.T) {
	entries := map[string]any{
		"project_name": "MirrorDNA",
		"rate_limit":   25,
		"endpoint":     "staging",
	}
	sum, err := scd.Checksum(entries)
	require.NoError(t, err)

	assert.True(t, scd.Verify(entries, sum))

	flipped := "0"
	if sum[len(sum)-1] == '0' {
		flipped = "1"
	}
	assert.False(t, scd.Verify(entries, sum[:len(sum)-1]+flipped))
}

func TestEndToEnd_CrossSessionHandoff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	first := scd.New(func(o *scd.Options) { o.StateFile = path })
	_, err := first.Supersede(ledger.Delta{
		"vendor": ledger.Set("claude"),
		"task":   ledger.Set("write research paper"),
	})
	require.NoError(t, err)

	exported, err := first.Export()
	require.NoError(t, err)

	second := scd.New()
	require.NoError(t, second.Import(exported))

	assert.Equal(t, first.Checksum(), second.Checksum())
	assert.Equal(t, first.Revision(), second.Revision())
	assert.Equal(t, first.ContextString(), second.ContextString())

	// The receiving session keeps working; checksums diverge from there.
	_, err = second.Supersede(ledger.Delta{"vendor": ledger.Set("chatgpt")})
	require.NoError(t, err)
	assert.NotEqual(t, first.Checksum(), second.Checksum())
}
