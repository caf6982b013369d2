package effect

import (
	"imgedit/pkg/raster"
)

// Matrix maps [r g b] to [r' g' b'], one row per output channel.
type Matrix [3][3]float64

var (
	GreyscaleMatrix = Matrix{
		{0.2126, 0.7152, 0.0722},
		{0.2126, 0.7152, 0.0722},
		{0.2126, 0.7152, 0.0722},
	}
	SepiaMatrix = Matrix{
		{0.393, 0.769, 0.189},
		{0.349, 0.686, 0.168},
		{0.272, 0.534, 0.131},
	}
)

func Greyscale() Effect {
	return &colorMatrix{name: "greyscale", m: GreyscaleMatrix}
}

func Sepia() Effect {
	return &colorMatrix{name: "sepia", m: SepiaMatrix}
}

// ColorMatrix builds a per-pixel effect from a 3x3 matrix.
func ColorMatrix(name string, m Matrix) Effect {
	return &colorMatrix{name: name, m: m}
}

type colorMatrix struct {
	name string
	m    Matrix
}

func (e *colorMatrix) Name() string {
	return e.name
}

func (e *colorMatrix) Apply(img *raster.Image) (*raster.Image, error) {
	if img == nil {
		return nil, raster.Invalid("nil image")
	}

	bd, err := raster.NewBuilder(img.Width(), img.Height())
	if err != nil {
		return nil, err
	}

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, g, b, _ := img.Channels(x, y)
			bd.Set(x, y, e.m.row(0, r, g, b), e.m.row(1, r, g, b), e.m.row(2, r, g, b))
		}
	}

	return bd.Build(), nil
}

func (m Matrix) row(i, r, g, b int) int {
	return int(m[i][0]*float64(r) + m[i][1]*float64(g) + m[i][2]*float64(b))
}
