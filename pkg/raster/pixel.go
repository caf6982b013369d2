package raster

import (
	"github.com/lucasb-eyer/go-colorful"
)

// NewPixel clamps the channels; negative coordinates fail.
func NewPixel(x, y, r, g, b int) (Pixel, error) {
	if x < 0 || y < 0 {
		return Pixel{}, Invalid("pixel coordinate (%d,%d)", x, y)
	}
	return Pixel{X: x, Y: y, R: Clamp(r), G: Clamp(g), B: Clamp(b)}, nil
}

// Pixel is a single RGB sample. Channels are always within [0,255].
type Pixel struct {
	X, Y    int
	R, G, B uint8
}

// Clamp limits a channel value to [0,255].
func Clamp(v int) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// RGB returns the packed form 65536*r + 256*g + b.
func (p Pixel) RGB() int {
	return 65536*int(p.R) + 256*int(p.G) + int(p.B)
}

// SameColor compares channels only.
func (p Pixel) SameColor(o Pixel) bool {
	return p.R == o.R && p.G == o.G && p.B == o.B
}

// Hex formats the color as #rrggbb.
func (p Pixel) Hex() string {
	c := colorful.Color{
		R: float64(p.R) / 255,
		G: float64(p.G) / 255,
		B: float64(p.B) / 255,
	}
	return c.Hex()
}
