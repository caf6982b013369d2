package effect

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imgedit/pkg/raster"
)

func TestBlur_Quad(t *testing.T) {
	img := quad(t)

	out, err := Blur().Apply(img)
	require.NoError(t, err)

	want := map[[2]int]int{
		{0, 0}: 90,
		{1, 0}: 95,
		{0, 1}: 95,
		{1, 1}: 80,
	}
	for at, v := range want {
		assert.Equal(t, [3]int{v, v, v}, channels(t, out, at[0], at[1]), "(%d,%d)", at[0], at[1])
	}

	// input untouched
	assert.Equal(t, [3]int{100, 100, 100}, channels(t, img, 0, 0))
}

func TestSharpen_QuadClamps(t *testing.T) {
	out, err := Sharpen().Apply(quad(t))
	require.NoError(t, err)

	assert.Equal(t, [3]int{237, 237, 237}, channels(t, out, 0, 0))
	assert.Equal(t, [3]int{255, 255, 255}, channels(t, out, 1, 0))
	assert.Equal(t, [3]int{255, 255, 255}, channels(t, out, 0, 1))
	assert.Equal(t, [3]int{200, 200, 200}, channels(t, out, 1, 1))
}

func TestNeighborhood_ZeroPaddedBorders(t *testing.T) {
	img := solid(t, 5, 5, 100, 100, 100)

	blurred, err := Blur().Apply(img)
	require.NoError(t, err)
	assert.Equal(t, [3]int{100, 100, 100}, channels(t, blurred, 2, 2))
	// corner: 2 inner, 1 diagonal neighbour in bounds
	assert.Equal(t, [3]int{56, 56, 56}, channels(t, blurred, 0, 0))

	sharpened, err := Sharpen().Apply(img)
	require.NoError(t, err)
	assert.Equal(t, [3]int{100, 100, 100}, channels(t, sharpened, 2, 2))
	assert.Equal(t, 5, sharpened.Width())
	assert.Equal(t, 5, sharpened.Height())
}

func TestNeighborhood_OuterRing(t *testing.T) {
	require.Len(t, outerRing, 16)
	assert.Contains(t, outerRing, offset{-2, -2})
	assert.Contains(t, outerRing, offset{2, 2})
	assert.Contains(t, outerRing, offset{0, -2})
	assert.NotContains(t, outerRing, offset{1, 1})

	// only the outer ring is weighted, so the center of a 5x5 block sees 16
	// neighbours of 10
	out, err := Neighborhood("outer", Weights{Outer: 1}).Apply(solid(t, 5, 5, 10, 10, 10))
	require.NoError(t, err)
	assert.Equal(t, [3]int{160, 160, 160}, channels(t, out, 2, 2))
	assert.Equal(t, [3]int{50, 50, 50}, channels(t, out, 0, 0))
}

func TestNeighborhood_NilImage(t *testing.T) {
	for _, e := range []Effect{Blur(), Sharpen()} {
		_, err := e.Apply(nil)
		assert.True(t, errors.Is(err, raster.ErrInvalidArgument), e.Name())
	}
}
