package effect

import (
	"math/rand"
	"sync"
	"time"

	"imgedit/pkg/raster"
)

type MosaicOption func(m *Mosaicker)

// WithRand sets the source used to draw seeds.
func WithRand(r *rand.Rand) MosaicOption {
	return func(m *Mosaicker) {
		m.rand = r
	}
}

// Mosaic returns the effect that clusters an image around a tenth of its
// pixels.
func Mosaic(opts ...MosaicOption) *Mosaicker {
	return newMosaicker(-1, opts)
}

// MosaicSeeds returns the effect that clusters around a fixed number of
// seeds.
func MosaicSeeds(seeds int, opts ...MosaicOption) *Mosaicker {
	return newMosaicker(seeds, opts)
}

func newMosaicker(seeds int, opts []MosaicOption) *Mosaicker {
	m := &Mosaicker{seeds: seeds}
	for _, opt := range opts {
		opt(m)
	}
	if m.rand == nil {
		m.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return m
}

type Mosaicker struct {
	mu    sync.Mutex
	rand  *rand.Rand
	seeds int // negative means NumPixels/10
}

func (m *Mosaicker) Name() string {
	return "mosaic"
}

func (m *Mosaicker) Apply(img *raster.Image) (*raster.Image, error) {
	if img == nil {
		return nil, raster.Invalid("nil image")
	}
	if m.seeds < 0 {
		return m.ApplySpecific(img, img.NumPixels()/10)
	}
	return m.ApplySpecific(img, m.seeds)
}

// ApplySpecific draws seeds pixels without replacement, assigns every pixel
// to its closest seed and paints each cluster with its mean color.
func (m *Mosaicker) ApplySpecific(img *raster.Image, seeds int) (*raster.Image, error) {
	if img == nil {
		return nil, raster.Invalid("nil image")
	}
	n := img.NumPixels()
	if seeds < 0 || seeds > n {
		return nil, raster.Invalid("mosaic of %d seeds over %d pixels", seeds, n)
	}
	if seeds == 0 {
		return img.Clone(), nil
	}

	return cluster(img, m.draw(n, seeds))
}

// cluster paints every pixel with the mean color of the pixels sharing its
// nearest seed. picked holds row-major seed indices; on a distance tie the
// seed listed first wins.
func cluster(img *raster.Image, picked []int) (*raster.Image, error) {
	n, w := img.NumPixels(), img.Width()

	owner := make([]int, n)
	sums := make([][3]int, len(picked))
	counts := make([]int, len(picked))

	for i := 0; i < n; i++ {
		x, y := i%w, i/w
		best, bestDist := 0, -1
		for k, s := range picked {
			dx, dy := x-s%w, y-s/w
			if d := dx*dx + dy*dy; bestDist < 0 || d < bestDist {
				best, bestDist = k, d
			}
		}
		owner[i] = best

		r, g, b, _ := img.Channels(x, y)
		sums[best][0] += r
		sums[best][1] += g
		sums[best][2] += b
		counts[best]++
	}

	bd, err := raster.NewBuilder(w, img.Height())
	if err != nil {
		return nil, err
	}

	for i, k := range owner {
		c := counts[k]
		bd.Set(i%w, i/w, sums[k][0]/c, sums[k][1]/c, sums[k][2]/c)
	}

	return bd.Build(), nil
}

// draw returns k distinct row-major pixel indices in draw order. Each draw
// is uniform over the pixels not yet taken.
func (m *Mosaicker) draw(n, k int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := 0; i < k; i++ {
		j := i + m.rand.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
