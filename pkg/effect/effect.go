package effect

import (
	"sort"

	"github.com/samber/lo"

	"imgedit/pkg/raster"
)

// Effect turns an image into a new image. Implementations never modify
// their input.
type Effect interface {
	Name() string
	Apply(img *raster.Image) (*raster.Image, error)
}

var catalogue = map[string]func() Effect{
	"blur":      func() Effect { return Blur() },
	"sharpen":   func() Effect { return Sharpen() },
	"greyscale": func() Effect { return Greyscale() },
	"sepia":     func() Effect { return Sepia() },
	"downscale": func() Effect { return Downscale() },
	"mosaic":    func() Effect { return Mosaic() },
}

// Lookup returns the default variant of a named effect.
func Lookup(name string) (Effect, bool) {
	fn, ok := catalogue[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// Names lists the catalogue in lexical order.
func Names() []string {
	names := lo.Keys(catalogue)
	sort.Strings(names)
	return names
}
