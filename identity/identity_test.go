package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSAndHFormRoundTrip(t *testing.T) {
	id := NewRandom()
	s := id.S()
	require.Len(t, s, 32)

	parsedS, err := Parse(s)
	require.NoError(t, err)
	assert.Equal(t, id, parsedS)

	h := id.H()
	parsedH, err := Parse(h)
	require.NoError(t, err)
	assert.Equal(t, id, parsedH)
}

func TestHashIDDeterminism(t *testing.T) {
	build := func(name string) ID {
		return NewHash("Environment").AddString("app").AddString(name).Sum()
	}
	a1 := build("MyApp")
	a2 := build("MyApp")
	b := build("OtherApp")

	assert.Equal(t, a1, a2, "hashing the same components twice must yield the same id")
	assert.NotEqual(t, a1, b, "changing a component must change the id")
}

func TestCanonicalFloatTrimsTrailingZeros(t *testing.T) {
	assert.Equal(t, "1", CanonicalFloat(1.0))
	assert.Equal(t, "1.5", CanonicalFloat(1.5))
	assert.Equal(t, "0.123457", CanonicalFloat(0.1234567))
	assert.Equal(t, "0", CanonicalFloat(0.0))
}

func TestOptionalComponentsAdvanceSeparator(t *testing.T) {
	withValue := NewHash("T").AddString("x").AddOptionalString(strPtr("y")).Sum()
	manual := NewHash("T").AddString("x").AddString("y").Sum()
	assert.Equal(t, manual, withValue)

	withNil := NewHash("T").AddString("x").AddOptionalString(nil).Sum()
	manualEmpty := NewHash("T").AddString("x").AddString("").Sum()
	assert.Equal(t, manualEmpty, withNil)
	assert.NotEqual(t, withValue, withNil)
}

func strPtr(s string) *string { return &s }
