package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityTransformIsNoOp(t *testing.T) {
	p := Point3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, p, Ident.Transform(p))
	assert.True(t, Ident.IsIdentity())
}

func TestFlatRoundTrip(t *testing.T) {
	m := Matrix{{2, 0, 0, 5}, {0, 2, 0, 6}, {0, 0, 2, 7}, {0, 0, 0, 1}}
	got := FromFlat(m.Flat())
	assert.Equal(t, m, got)
}

func TestMultiplyComposesScaleAndTranslate(t *testing.T) {
	scale := Matrix{{2, 0, 0, 0}, {0, 2, 0, 0}, {0, 0, 2, 0}, {0, 0, 0, 1}}
	translate := Matrix{{1, 0, 0, 10}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
	combined := translate.Multiply(scale)
	got := combined.Transform(Point3{X: 1, Y: 1, Z: 1})
	assert.Equal(t, Point3{X: 12, Y: 2, Z: 2}, got)
}
