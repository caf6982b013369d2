package store

import (
	"bytes"
	"fmt"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"imgedit/pkg/codec"
	"imgedit/pkg/raster"
)

const snapshotDir = "snapshots"

var ErrNotFound = errors.New("not found")

func New(fs afero.Fs, logger *zap.Logger) *Store {
	return &Store{fs: fs, log: logger}
}

// NewOs roots a store at an existing directory of the host filesystem.
func NewOs(dir string, logger *zap.Logger) (*Store, error) {
	fs, err := newFs(dir)
	if err != nil {
		return nil, errors.Wrap(err, "create store failed")
	}
	return New(fs, logger), nil
}

func newFs(dir string) (afero.Fs, error) {
	fs := afero.NewOsFs()
	if exists, err := afero.DirExists(fs, dir); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.Errorf("dir %s not exists", dir)
	}
	return afero.NewBasePathFs(fs, dir), nil
}

// Store keeps images and scripts as files named <name>.<ext>.
type Store struct {
	fs  afero.Fs
	log *zap.Logger
}

func (s *Store) filename(name string, f codec.Format) string {
	return fmt.Sprintf("%s.%s", name, f.Ext())
}

func (s *Store) Exists(name string, f codec.Format) (bool, error) {
	return afero.Exists(s.fs, s.filename(name, f))
}

func (s *Store) Load(name string, f codec.Format) (*raster.Image, error) {
	file := s.filename(name, f)

	bs, err := s.read(file)
	if err != nil {
		return nil, err
	}

	img, err := codec.Decode(bytes.NewReader(bs), f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", file)
	}

	s.log.With(zap.String("file", file), zap.Stringer("image", img)).Debug("image loaded")
	return img, nil
}

func (s *Store) Save(name string, f codec.Format, img *raster.Image) error {
	var buf bytes.Buffer
	if err := codec.Encode(&buf, img, f); err != nil {
		return err
	}

	file := s.filename(name, f)
	if err := s.write(file, buf.Bytes()); err != nil {
		return err
	}

	s.log.With(zap.String("file", file), zap.Int("bytes", buf.Len())).Debug("image saved")
	return nil
}

// Snapshot saves img under a fresh unique name and returns that name
// without extension.
func (s *Store) Snapshot(img *raster.Image, f codec.Format) (string, error) {
	name := path.Join(snapshotDir, xid.New().String())
	if err := s.Save(name, f, img); err != nil {
		return "", err
	}
	return name, nil
}

func (s *Store) LoadText(name string) (string, error) {
	bs, err := s.read(name + ".txt")
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

func (s *Store) SaveText(name, text string) error {
	file := name + ".txt"
	if err := s.write(file, []byte(text)); err != nil {
		return err
	}

	s.log.With(zap.String("file", file)).Debug("script saved")
	return nil
}

func (s *Store) read(file string) ([]byte, error) {
	bs, err := afero.ReadFile(s.fs, file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrNotFound, file)
		}
		return nil, errors.Wrapf(err, "read %s", file)
	}
	return bs, nil
}

func (s *Store) write(file string, bs []byte) error {
	dir := path.Dir(file)

	if exists, err := afero.DirExists(s.fs, dir); err != nil {
		return err
	} else if !exists {
		if err2 := s.fs.MkdirAll(dir, 0755); err2 != nil {
			return errors.Wrapf(err2, "mkdir %s", dir)
		}
	}

	return errors.Wrapf(afero.WriteFile(s.fs, file, bs, 0644), "write %s", file)
}
