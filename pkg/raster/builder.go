package raster

import "math"

// MaxPixels bounds width*height of any image.
const MaxPixels = math.MaxInt32

// NewBuilder allocates a black width x height image to be filled with Set.
func NewBuilder(width, height int) (*Builder, error) {
	if width <= 0 || height <= 0 {
		return nil, Invalid("image size %dx%d", width, height)
	}
	if width > MaxPixels/height {
		return nil, Invalid("image size %dx%d exceeds %d pixels", width, height, MaxPixels)
	}

	pix := make([]Pixel, width*height)
	for i := range pix {
		pix[i].X = i % width
		pix[i].Y = i / width
	}

	return &Builder{img: &Image{width: width, height: height, pix: pix}}, nil
}

// Builder fills a fresh image. It must not be used after Build.
type Builder struct {
	img *Image
}

// Set stores a clamped color at (x, y). Coordinates outside the image are
// ignored.
func (bd *Builder) Set(x, y, r, g, b int) {
	if !bd.img.inside(x, y) {
		return
	}
	bd.img.pix[y*bd.img.width+x] = Pixel{X: x, Y: y, R: Clamp(r), G: Clamp(g), B: Clamp(b)}
}

// Build returns the filled image and invalidates the builder.
func (bd *Builder) Build() *Image {
	img := bd.img
	bd.img = nil
	return img
}
