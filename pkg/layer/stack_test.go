package layer

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imgedit/pkg/effect"
	"imgedit/pkg/raster"
)

func solid(t *testing.T, v int) *raster.Image {
	t.Helper()
	bd, err := raster.NewBuilder(2, 2)
	require.NoError(t, err)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			bd.Set(x, y, v, v, v)
		}
	}
	return bd.Build()
}

func abc(t *testing.T) (*Stack, []*raster.Image) {
	t.Helper()
	imgs := []*raster.Image{solid(t, 10), solid(t, 20), solid(t, 30)}
	s, err := NewStack(imgs...)
	require.NoError(t, err)
	return s, imgs
}

func invalid(t *testing.T, err error) {
	t.Helper()
	assert.True(t, errors.Is(err, raster.ErrInvalidArgument), "got %v", err)
}

type failing struct{}

func (failing) Name() string { return "failing" }

func (failing) Apply(*raster.Image) (*raster.Image, error) {
	return nil, errors.New("boom")
}

func TestNewStack(t *testing.T) {
	s, err := NewStack()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.TopVisibleIndex())

	_, err = s.ExportTop()
	invalid(t, err)

	_, err = NewStack(solid(t, 1), nil)
	invalid(t, err)
}

func TestStack_ImportAndVisibility(t *testing.T) {
	s, _ := abc(t)

	assert.Equal(t, []bool{true, true, true}, s.Visibilities())
	invalid(t, s.SetVisibility(0, false))
	invalid(t, s.SetVisibility(3, true))
	invalid(t, s.SetVisibility(-1, true))
	invalid(t, s.Import(nil))

	require.NoError(t, s.SetVisibility(2, false))
	assert.Equal(t, []bool{true, true, false}, s.Visibilities())
	assert.Equal(t, 1, s.TopVisibleIndex())

	require.NoError(t, s.SetVisibility(0, true))
}

func TestStack_ExportTop(t *testing.T) {
	s, imgs := abc(t)

	top, err := s.ExportTop()
	require.NoError(t, err)
	assert.Same(t, imgs[2], top)

	require.NoError(t, s.SetVisibility(2, false))
	require.NoError(t, s.SetVisibility(1, false))

	top, err = s.ExportTop()
	require.NoError(t, err)
	assert.Same(t, imgs[0], top)
	assert.Equal(t, 0, s.TopVisibleIndex())
}

func TestStack_ApplyEffect(t *testing.T) {
	s, imgs := abc(t)
	require.NoError(t, s.SetVisibility(1, false))

	require.NoError(t, s.ApplyEffect(effect.Greyscale(), 1))

	got, err := s.Layer(1)
	require.NoError(t, err)
	assert.NotSame(t, imgs[1], got)
	assert.Equal(t, []bool{true, false, true}, s.Visibilities())

	invalid(t, s.ApplyEffect(effect.Blur(), 3))
	invalid(t, s.ApplyEffect(nil, 0))
}

func TestStack_ApplyEffectFailureKeepsLayer(t *testing.T) {
	s, imgs := abc(t)

	assert.Error(t, s.ApplyEffect(failing{}, 0))
	assert.Error(t, s.ApplyEffect(effect.DownscaleTo(5, 5), 0))

	assert.Equal(t, imgs, s.ExportAll())
	assert.Equal(t, []bool{true, true, true}, s.Visibilities())
}

func TestStack_Remove(t *testing.T) {
	s, imgs := abc(t)
	require.NoError(t, s.SetVisibility(2, false))

	require.NoError(t, s.Remove(0))
	assert.Equal(t, []*raster.Image{imgs[1], imgs[2]}, s.ExportAll())
	assert.Equal(t, []bool{true, false}, s.Visibilities())

	require.NoError(t, s.Remove(0))
	assert.Equal(t, []*raster.Image{imgs[2]}, s.ExportAll())
	// the only remaining layer is forced visible
	assert.Equal(t, []bool{true}, s.Visibilities())

	invalid(t, s.Remove(1))
	require.NoError(t, s.Remove(0))
	assert.Equal(t, 0, s.Len())
	invalid(t, s.Remove(0))
}

func TestStack_MoveToTop(t *testing.T) {
	s, imgs := abc(t)
	require.NoError(t, s.SetVisibility(1, false))

	require.NoError(t, s.MoveToTop(0))
	assert.Equal(t, []*raster.Image{imgs[1], imgs[2], imgs[0]}, s.ExportAll())
	assert.Equal(t, []bool{false, true, true}, s.Visibilities())
	assert.Equal(t, 2, s.TopVisibleIndex())

	require.NoError(t, s.MoveToTop(2))
	assert.Equal(t, []*raster.Image{imgs[1], imgs[2], imgs[0]}, s.ExportAll())

	invalid(t, s.MoveToTop(3))
	invalid(t, s.MoveToTop(-1))
}

func TestStack_MoveHiddenToTop(t *testing.T) {
	s, imgs := abc(t)
	require.NoError(t, s.SetVisibility(1, false))

	require.NoError(t, s.MoveToTop(1))
	assert.Equal(t, []*raster.Image{imgs[0], imgs[2], imgs[1]}, s.ExportAll())
	assert.Equal(t, []bool{true, true, false}, s.Visibilities())
	assert.Equal(t, 1, s.TopVisibleIndex())
}

func TestStack_DefensiveCopies(t *testing.T) {
	s, imgs := abc(t)

	all := s.ExportAll()
	all[0] = nil
	vis := s.Visibilities()
	vis[1] = false

	assert.Equal(t, imgs, s.ExportAll())
	assert.Equal(t, []bool{true, true, true}, s.Visibilities())
}
