package effect

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"imgedit/pkg/raster"
)

// photoRows is a 10x10 crop of a photograph, indexed [y][x].
var photoRows = [10][10][3]int{
	{{8, 20, 42}, {17, 30, 49}, {18, 33, 52}, {27, 44, 62}, {36, 54, 76}, {32, 50, 74}, {35, 51, 76}, {46, 61, 84}, {48, 59, 81}, {45, 60, 81}},
	{{7, 19, 41}, {15, 30, 49}, {22, 39, 55}, {33, 52, 69}, {36, 57, 78}, {33, 51, 75}, {34, 50, 75}, {38, 53, 76}, {46, 58, 80}, {47, 62, 83}},
	{{11, 26, 45}, {11, 28, 46}, {19, 38, 53}, {32, 54, 68}, {36, 59, 77}, {34, 55, 76}, {41, 57, 80}, {47, 62, 85}, {44, 59, 80}, {42, 59, 79}},
	{{14, 29, 48}, {11, 28, 44}, {18, 40, 53}, {42, 66, 78}, {51, 72, 89}, {39, 60, 79}, {37, 54, 74}, {39, 54, 75}, {42, 57, 76}, {38, 56, 76}},
	{{25, 33, 52}, {18, 31, 48}, {15, 33, 47}, {32, 54, 67}, {48, 67, 82}, {41, 60, 77}, {37, 52, 71}, {38, 53, 72}, {34, 51, 69}, {26, 47, 64}},
	{{17, 25, 44}, {16, 29, 46}, {10, 29, 43}, {18, 40, 53}, {35, 57, 70}, {42, 61, 76}, {40, 55, 74}, {36, 51, 70}, {36, 55, 72}, {26, 47, 64}},
	{{11, 27, 43}, {15, 34, 49}, {9, 36, 47}, {11, 39, 50}, {24, 48, 60}, {37, 59, 72}, {42, 59, 75}, {33, 50, 66}, {29, 50, 67}, {28, 49, 66}},
	{{12, 29, 47}, {15, 37, 51}, {14, 40, 53}, {15, 43, 54}, {22, 46, 58}, {37, 56, 70}, {47, 63, 79}, {36, 53, 69}, {28, 49, 66}, {34, 55, 72}},
	{{15, 30, 51}, {24, 41, 59}, {24, 46, 60}, {16, 38, 52}, {25, 44, 58}, {51, 67, 82}, {57, 70, 87}, {39, 55, 71}, {29, 50, 67}, {28, 51, 67}},
	{{7, 24, 44}, {38, 56, 76}, {23, 44, 61}, {16, 38, 52}, {19, 37, 51}, {86, 102, 117}, {72, 85, 102}, {39, 54, 73}, {32, 50, 72}, {30, 51, 70}},
}

func photo(t *testing.T) *raster.Image {
	t.Helper()
	bd, err := raster.NewBuilder(10, 10)
	require.NoError(t, err)
	for y, row := range photoRows {
		for x, c := range row {
			bd.Set(x, y, c[0], c[1], c[2])
		}
	}
	return bd.Build()
}

// quad is the 2x2 image with corners 100, 250, 250, 50 on every channel.
func quad(t *testing.T) *raster.Image {
	t.Helper()
	img, err := raster.New(2, 2, []raster.Pixel{
		{X: 0, Y: 0, R: 100, G: 100, B: 100},
		{X: 1, Y: 0, R: 250, G: 250, B: 250},
		{X: 0, Y: 1, R: 250, G: 250, B: 250},
		{X: 1, Y: 1, R: 50, G: 50, B: 50},
	})
	require.NoError(t, err)
	return img
}

func solid(t *testing.T, w, h, r, g, b int) *raster.Image {
	t.Helper()
	bd, err := raster.NewBuilder(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bd.Set(x, y, r, g, b)
		}
	}
	return bd.Build()
}

func channels(t *testing.T, img *raster.Image, x, y int) [3]int {
	t.Helper()
	r, g, b, ok := img.Channels(x, y)
	require.True(t, ok, "(%d,%d) outside image", x, y)
	return [3]int{r, g, b}
}

func seeded() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
