package effect

import (
	"imgedit/pkg/raster"
)

// Weights are the multipliers for the rings around a filtered pixel.
type Weights struct {
	Center   float64
	Inner    float64 // orthogonal neighbours at distance 1
	Diagonal float64 // diagonal neighbours at distance 1
	Outer    float64 // the 16 positions at Chebyshev distance 2
}

var (
	BlurWeights    = Weights{Center: 0.25, Inner: 0.125, Diagonal: 0.0625, Outer: 0}
	SharpenWeights = Weights{Center: 1, Inner: 0.25, Diagonal: 0.25, Outer: -0.125}
)

type offset struct{ dx, dy int }

var (
	innerRing    = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalRing = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	outerRing    = chebyshevRing(2)
)

func chebyshevRing(d int) []offset {
	var ring []offset
	for dy := -d; dy <= d; dy++ {
		for dx := -d; dx <= d; dx++ {
			if abs(dx) == d || abs(dy) == d {
				ring = append(ring, offset{dx, dy})
			}
		}
	}
	return ring
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func Blur() Effect {
	return &neighborhood{name: "blur", w: BlurWeights}
}

func Sharpen() Effect {
	return &neighborhood{name: "sharpen", w: SharpenWeights}
}

// Neighborhood builds a filter effect from arbitrary ring weights.
func Neighborhood(name string, w Weights) Effect {
	return &neighborhood{name: name, w: w}
}

type neighborhood struct {
	name string
	w    Weights
}

func (e *neighborhood) Name() string {
	return e.name
}

func (e *neighborhood) Apply(img *raster.Image) (*raster.Image, error) {
	return applyNeighborhood(img, e.w)
}

// applyNeighborhood computes every output channel as the sum of each ring's
// weighted total, truncated ring by ring. Neighbours outside the image count
// as zero, so borders come out darker.
func applyNeighborhood(img *raster.Image, w Weights) (*raster.Image, error) {
	if img == nil {
		return nil, raster.Invalid("nil image")
	}

	bd, err := raster.NewBuilder(img.Width(), img.Height())
	if err != nil {
		return nil, err
	}

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			cr, cg, cb, _ := img.Channels(x, y)
			center := [3]int{cr, cg, cb}
			inner := ringSum(img, x, y, innerRing)
			diag := ringSum(img, x, y, diagonalRing)
			outer := ringSum(img, x, y, outerRing)

			var out [3]int
			for c := range out {
				out[c] = int(float64(inner[c])*w.Inner) +
					int(float64(diag[c])*w.Diagonal) +
					int(float64(outer[c])*w.Outer) +
					int(w.Center*float64(center[c]))
			}
			bd.Set(x, y, out[0], out[1], out[2])
		}
	}

	return bd.Build(), nil
}

func ringSum(img *raster.Image, x, y int, ring []offset) [3]int {
	var sum [3]int
	for _, o := range ring {
		r, g, b, ok := img.Channels(x+o.dx, y+o.dy)
		if !ok {
			continue
		}
		sum[0] += r
		sum[1] += g
		sum[2] += b
	}
	return sum
}
