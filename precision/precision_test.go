package precision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackUnpack(t *testing.T) {
	s := New(2, 1, 0, 0, 0)
	assert.EqualValues(t, 2, s.Get(Position))
	assert.EqualValues(t, 1, s.Get(Size))
	assert.EqualValues(t, 0, s.Get(Rotation))
	assert.False(t, s.IsZero())
	assert.Equal(t, 100.0, s.Scale(Position))
	assert.Equal(t, 10.0, s.Scale(Size))
}

func TestZeroSchemeHasNoScaling(t *testing.T) {
	assert.True(t, Zero.IsZero())
	assert.Equal(t, 1.0, Zero.Scale(Position))
}

func TestFieldsDoNotOverlap(t *testing.T) {
	s := New(63, 63, 63, 63, 63)
	assert.EqualValues(t, 63, s.Get(Position))
	assert.EqualValues(t, 63, s.Get(Offset))
}
