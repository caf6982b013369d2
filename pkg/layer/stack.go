package layer

import (
	"github.com/samber/lo"

	"imgedit/pkg/effect"
	"imgedit/pkg/raster"
)

// NewStack returns a stack holding the given images bottom to top, all
// visible.
func NewStack(images ...*raster.Image) (*Stack, error) {
	s := &Stack{}
	for i, img := range images {
		if img == nil {
			return nil, raster.Invalid("nil image at %d", i)
		}
		s.records = append(s.records, record{img: img, visible: true})
	}
	return s, nil
}

type record struct {
	img     *raster.Image
	visible bool
}

// Stack is an ordered list of layers. Index 0 is the bottom layer and can
// never be hidden. Not safe for concurrent use.
type Stack struct {
	records []record
}

func (s *Stack) Len() int {
	return len(s.records)
}

func (s *Stack) check(i int) error {
	if i < 0 || i >= len(s.records) {
		return raster.Invalid("layer %d out of range [0,%d)", i, len(s.records))
	}
	return nil
}

// Layer returns the image at index i.
func (s *Stack) Layer(i int) (*raster.Image, error) {
	if err := s.check(i); err != nil {
		return nil, err
	}
	return s.records[i].img, nil
}

// ApplyEffect replaces layer i with the result of e. A failing effect
// leaves the stack as it was.
func (s *Stack) ApplyEffect(e effect.Effect, i int) error {
	if e == nil {
		return raster.Invalid("nil effect")
	}
	if err := s.check(i); err != nil {
		return err
	}

	out, err := e.Apply(s.records[i].img)
	if err != nil {
		return err
	}

	s.records[i].img = out
	return nil
}

// Import appends img as the new visible top layer.
func (s *Stack) Import(img *raster.Image) error {
	if img == nil {
		return raster.Invalid("nil image")
	}
	s.records = append(s.records, record{img: img, visible: true})
	return nil
}

func (s *Stack) SetVisibility(i int, visible bool) error {
	if err := s.check(i); err != nil {
		return err
	}
	if i == 0 && !visible {
		return raster.Invalid("bottom layer must stay visible")
	}
	s.records[i].visible = visible
	return nil
}

// Remove drops layer i. A lone survivor is made visible.
func (s *Stack) Remove(i int) error {
	if err := s.check(i); err != nil {
		return err
	}

	s.records = append(s.records[:i], s.records[i+1:]...)
	if len(s.records) == 1 {
		s.records[0].visible = true
	}
	return nil
}

// MoveToTop moves layer i to the top keeping its visibility. A hidden layer
// cannot be moved when that would put it at index 0.
func (s *Stack) MoveToTop(i int) error {
	if err := s.check(i); err != nil {
		return err
	}

	r := s.records[i]
	if len(s.records) == 1 && !r.visible {
		return raster.Invalid("layer %d would become a hidden bottom layer", i)
	}

	if err := s.Remove(i); err != nil {
		return err
	}
	s.records = append(s.records, record{img: r.img, visible: true})
	return s.SetVisibility(len(s.records)-1, r.visible)
}

// TopVisibleIndex returns the highest visible index, or 0 when there is
// none.
func (s *Stack) TopVisibleIndex() int {
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].visible {
			return i
		}
	}
	return 0
}

// ExportTop returns the highest visible layer.
func (s *Stack) ExportTop() (*raster.Image, error) {
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].visible {
			return s.records[i].img, nil
		}
	}
	return nil, raster.Invalid("no visible layer")
}

// ExportAll returns the layers bottom to top. The slice is a copy.
func (s *Stack) ExportAll() []*raster.Image {
	return lo.Map(s.records, func(r record, _ int) *raster.Image {
		return r.img
	})
}

// Visibilities returns the visibility flags bottom to top. The slice is a
// copy.
func (s *Stack) Visibilities() []bool {
	return lo.Map(s.records, func(r record, _ int) bool {
		return r.visible
	})
}
