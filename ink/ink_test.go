package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wacom-Developer/universal-ink-library/precision"
)

func TestLayoutMaskStrideAndOffsets(t *testing.T) {
	mask := NewLayoutMask(X, Y, SIZE)
	assert.Equal(t, 3, mask.Stride())
	assert.Equal(t, 0, mask.OffsetOf(X))
	assert.Equal(t, 1, mask.OffsetOf(Y))
	assert.Equal(t, 2, mask.OffsetOf(SIZE))
	assert.Equal(t, -1, mask.OffsetOf(ROTATION))
}

func TestSplineSampleCountMatchesStride(t *testing.T) {
	mask := NewLayoutMask(X, Y, SIZE)
	spline, err := BuildSpline(mask, [][]float64{
		{10, 10, 1},
		{20, 10, 1},
		{20, 20, 1},
	}, 0, 1)
	require.NoError(t, err)
	n, err := spline.SampleCount()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Len(t, spline.PackedValues, mask.Stride()*n)
}

func TestMissingAttributePolicy(t *testing.T) {
	mask := NewLayoutMask(X, Y)
	spline, err := BuildSpline(mask, [][]float64{{1, 2}}, 0, 1)
	require.NoError(t, err)

	v, err := spline.At(0, SIZE, FillWithZeros)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	v, err = spline.At(0, SIZE, FillWithNaN)
	require.NoError(t, err)
	assert.True(t, v != v, "expected NaN")

	_, err = spline.At(0, SIZE, Throw)
	assert.Error(t, err)
}

func TestColorByteRoundHalfToEven(t *testing.T) {
	// 0.5/255 boundary cases aren't exact; pick values that land on a
	// genuine .5 boundary in byte space instead.
	assert.EqualValues(t, 128, ColorByteFromFloat(128.5/255.0))
	assert.InDelta(t, 0.5, ColorFloatFromByte(ColorByteFromFloat(0.5)), 0.01)
	assert.EqualValues(t, 0, ColorByteFromFloat(-1))
	assert.EqualValues(t, 255, ColorByteFromFloat(2))
}

func TestAttributeStreamRoundTrip(t *testing.T) {
	mask := NewLayoutMask(X, Y)
	rows := make([][]float64, 1000)
	for i := range rows {
		rows[i] = []float64{float64(i) * 0.0175, 0}
	}
	spline, err := BuildSpline(mask, rows, 0, 1)
	require.NoError(t, err)

	scheme := precision.New(2, 1, 0, 0, 0)
	deltas, ok := EncodeAttributeStream(spline, X, scheme)
	require.True(t, ok)

	decoded := DecodeAttributeStream(deltas, X, scheme)
	require.Len(t, decoded, 1000)
	for i, v := range decoded {
		assert.InDelta(t, rows[i][0], v, 0.005)
	}
}

func TestBrushRepositoryNameUniqueness(t *testing.T) {
	repo := NewBrushRepository()
	require.NoError(t, repo.AddVectorBrush(VectorBrush{Name: "app://x/brush"}))
	err := repo.AddRasterBrush(RasterBrush{Name: "app://x/brush"})
	assert.Error(t, err)
}

func TestRemoveUnknownBrushIsNoOp(t *testing.T) {
	repo := NewBrushRepository()
	assert.NotPanics(t, func() {
		repo.RemoveVectorBrush("does-not-exist")
		repo.RemoveRasterBrush("does-not-exist")
	})
}

func TestRasterBrushRejectsMixedTextures(t *testing.T) {
	b := RasterBrush{
		Name: "app://x/raster",
		ShapeTextures: []TextureRef{
			{Kind: TextureInline, Bytes: []byte{1, 2, 3}},
			{Kind: TextureURI, URI: "app://x/tex.png"},
		},
	}
	assert.Error(t, b.Validate())
}
