package raster

import (
	"fmt"
	"image"
	"image/color"
)

// New builds an image from a pixel list. Every pixel is stored at its own
// coordinate; positions the list does not cover stay black.
func New(width, height int, pixels []Pixel) (*Image, error) {
	if pixels == nil {
		return nil, Invalid("nil pixel list")
	}

	bd, err := NewBuilder(width, height)
	if err != nil {
		return nil, err
	}

	for _, p := range pixels {
		if p.X < 0 || p.Y < 0 || p.X >= width || p.Y >= height {
			return nil, Invalid("pixel (%d,%d) outside %dx%d", p.X, p.Y, width, height)
		}
		bd.img.pix[p.Y*width+p.X] = p
	}

	return bd.Build(), nil
}

// Image is an immutable raster stored row-major, so lookups by coordinate
// are O(1). It implements image.Image.
type Image struct {
	width  int
	height int
	pix    []Pixel
}

func (m *Image) Width() int {
	return m.width
}

func (m *Image) Height() int {
	return m.height
}

func (m *Image) NumPixels() int {
	return len(m.pix)
}

// PixelAt returns the pixel at (x, y) and whether the coordinate is inside
// the image.
func (m *Image) PixelAt(x, y int) (Pixel, bool) {
	if !m.inside(x, y) {
		return Pixel{}, false
	}
	return m.pix[y*m.width+x], true
}

// Channels returns the channel values at (x, y) widened to int. Out of
// bounds coordinates report ok == false and zero channels.
func (m *Image) Channels(x, y int) (r, g, b int, ok bool) {
	if !m.inside(x, y) {
		return 0, 0, 0, false
	}
	p := m.pix[y*m.width+x]
	return int(p.R), int(p.G), int(p.B), true
}

// Pixels returns a row-major copy of the pixel array.
func (m *Image) Pixels() []Pixel {
	out := make([]Pixel, len(m.pix))
	copy(out, m.pix)
	return out
}

// Clone returns an identical, independent image.
func (m *Image) Clone() *Image {
	return &Image{width: m.width, height: m.height, pix: m.Pixels()}
}

// Equal reports whether both images have the same size and colors.
func (m *Image) Equal(o *Image) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.width != o.width || m.height != o.height {
		return false
	}
	for i := range m.pix {
		if !m.pix[i].SameColor(o.pix[i]) {
			return false
		}
	}
	return true
}

func (m *Image) String() string {
	return fmt.Sprintf("Width: %d Height: %d Pixel Count: %d", m.width, m.height, len(m.pix))
}

func (m *Image) inside(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// At implements the image.Image interface. There is no alpha channel, so
// every pixel is opaque.
func (m *Image) At(x, y int) color.Color {
	p, ok := m.PixelAt(x, y)
	if !ok {
		return color.RGBA{}
	}
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}

// FromImage copies any image.Image into a raster anchored at (0,0).
func FromImage(src image.Image) (*Image, error) {
	if src == nil {
		return nil, Invalid("nil source image")
	}

	r := src.Bounds()
	bd, err := NewBuilder(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			bd.Set(x-r.Min.X, y-r.Min.Y, int(c.R), int(c.G), int(c.B))
		}
	}

	return bd.Build(), nil
}
