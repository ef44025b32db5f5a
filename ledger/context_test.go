package ledger_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirrordna/scd-go/internal/testutil"
	"github.com/mirrordna/scd-go/ledger"
)

func TestContextString_Format(t *testing.T) {
	led := testutil.NewLedgerBuilder().
		Delta(ledger.DeltaFromMap(map[string]any{
			"project":    "MyApp",
			"rate_limit": 25,
			"flags":      []any{"fast", true},
		})).
		Build(t)

	want := fmt.Sprintf(`[SCD STATE]
Revision: 1
Checksum: %s
State:
  flags: ["fast",true]
  project: "MyApp"
  rate_limit: 25
`, led.Checksum())
	assert.Equal(t, want, led.ContextString())
}

func TestContextString_EmptyState(t *testing.T) {
	led := ledger.New()
	ctx := led.ContextString()

	assert.True(t, strings.HasPrefix(ctx, "[SCD STATE]\n"))
	assert.Contains(t, ctx, "Revision: 0\n")
	assert.Contains(t, ctx, "State: {}\n")
}

func TestContextString_StableForIdenticalEntries(t *testing.T) {
	led1 := ledger.New()
	_, err := led1.Supersede(ledger.DeltaFromMap(map[string]any{"a": 1, "b": 2}))
	require.NoError(t, err)

	led2 := ledger.New()
	_, err = led2.Supersede(ledger.DeltaFromMap(map[string]any{"b": 2, "a": 1}))
	require.NoError(t, err)

	assert.Equal(t, led1.ContextString(), led2.ContextString())
}

func TestContextString_DoesNotMutate(t *testing.T) {
	led := testutil.NewLedgerBuilder().Set("k", "v").Build(t)
	before := led.Checksum()
	revBefore := led.Revision()

	_ = led.ContextString()
	_ = led.ContextString()

	assert.Equal(t, before, led.Checksum())
	assert.Equal(t, revBefore, led.Revision())
	assert.Len(t, led.History(), 1)
}
