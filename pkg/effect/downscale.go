package effect

import (
	"math"

	"imgedit/pkg/raster"
)

// Downscale returns the effect that halves both dimensions.
func Downscale() *Downscaler {
	return &Downscaler{}
}

// DownscaleTo returns the effect that resamples to a fixed size.
func DownscaleTo(width, height int) *Downscaler {
	return &Downscaler{width: width, height: height, fixed: true}
}

type Downscaler struct {
	width  int
	height int
	fixed  bool
}

func (d *Downscaler) Name() string {
	return "downscale"
}

func (d *Downscaler) Apply(img *raster.Image) (*raster.Image, error) {
	if img == nil {
		return nil, raster.Invalid("nil image")
	}
	if d.fixed {
		return d.ApplySpecific(img, d.width, d.height)
	}
	return d.ApplySpecific(img, img.Width()/2, img.Height()/2)
}

// ApplySpecific resamples img to width x height. The target may not be
// larger than the source, and a zero target is rejected.
func (d *Downscaler) ApplySpecific(img *raster.Image, width, height int) (*raster.Image, error) {
	if img == nil {
		return nil, raster.Invalid("nil image")
	}
	if width < 0 || height < 0 || width > img.Width() || height > img.Height() {
		return nil, raster.Invalid("downscale %dx%d to %dx%d", img.Width(), img.Height(), width, height)
	}
	if width == 0 || height == 0 {
		return nil, raster.Invalid("downscale to empty size %dx%d", width, height)
	}

	bd, err := raster.NewBuilder(width, height)
	if err != nil {
		return nil, err
	}

	for ny := 0; ny < height; ny++ {
		for nx := 0; nx < width; nx++ {
			sx := float64(nx) / float64(width) * float64(img.Width())
			sy := float64(ny) / float64(height) * float64(img.Height())
			r, g, b := sample(img, sx, sy)
			bd.Set(nx, ny, r, g, b)
		}
	}

	return bd.Build(), nil
}

// sample reads the source at a real-valued position. A position that is
// integral on either axis is copied; anything else is interpolated from the
// four surrounding pixels with truncation at every step.
func sample(img *raster.Image, sx, sy float64) (r, g, b int) {
	x0, y0 := math.Floor(sx), math.Floor(sy)
	if sx == x0 || sy == y0 {
		r, g, b, _ = img.Channels(int(sx), int(sy))
		return r, g, b
	}

	x1 := math.Min(math.Ceil(sx), float64(img.Width()-1))
	y1 := math.Min(math.Ceil(sy), float64(img.Height()-1))
	fx, fy := sx-x0, sy-y0
	gx, gy := math.Ceil(sx)-sx, math.Ceil(sy)-sy

	ar, ag, ab, _ := img.Channels(int(x0), int(y0))
	br, bg, bb, _ := img.Channels(int(x1), int(y0))
	cr, cg, cb, _ := img.Channels(int(x0), int(y1))
	dr, dg, db, _ := img.Channels(int(x1), int(y1))

	lerp := func(p00, p10, p01, p11 int) int {
		m := int(float64(p10)*fx + float64(p00)*gx)
		n := int(float64(p11)*fx + float64(p01)*gx)
		return int(float64(n)*fy + float64(m)*gy)
	}

	return lerp(ar, br, cr, dr), lerp(ag, bg, cg, dg), lerp(ab, bb, cb, db)
}
