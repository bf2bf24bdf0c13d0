package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allUnitsByFamily = map[Unit][]Unit{
	M:   {M, CM, MM, IN, PT, PC, DIP},
	S:   {S, MS, NS},
	RAD: {RAD, DEG},
	N:   {N},
}

func TestRoundTripWithinFamily(t *testing.T) {
	for _, group := range allUnitsByFamily {
		for _, u1 := range group {
			for _, u2 := range group {
				v := 3.25
				out, err := Convert(u1, u2, v)
				require.NoError(t, err)
				back, err := Convert(u2, u1, out)
				require.NoError(t, err)
				assert.InDelta(t, v, back, 1e-9)
			}
		}
	}
}

func TestCrossFamilyRejected(t *testing.T) {
	_, err := Convert(M, S, 1.0)
	assert.Error(t, err)
}

func TestDIPIsOneOverNinetySixInch(t *testing.T) {
	dip, err := Convert(IN, DIP, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 96.0, dip, 1e-9)
}

func TestPercentageAndLogicalAreIdentity(t *testing.T) {
	v, err := Convert(PERCENTAGE, PERCENTAGE, 42)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	v, err = Convert(LOGICAL, LOGICAL, 7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}
