package codec

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/webp"

	"imgedit/pkg/raster"
)

type Format int

const (
	PPM Format = iota
	PNG
	JPEG
	GIF
	BMP
	TIFF
	WEBP
)

var formatNames = map[string]Format{
	"ppm":  PPM,
	"png":  PNG,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"gif":  GIF,
	"bmp":  BMP,
	"tif":  TIFF,
	"tiff": TIFF,
	"webp": WEBP,
}

var formatExts = map[Format]string{
	PPM:  "ppm",
	PNG:  "png",
	JPEG: "jpg",
	GIF:  "gif",
	BMP:  "bmp",
	TIFF: "tiff",
	WEBP: "webp",
}

var bitmapFormats = map[Format]imaging.Format{
	PNG:  imaging.PNG,
	JPEG: imaging.JPEG,
	GIF:  imaging.GIF,
	BMP:  imaging.BMP,
	TIFF: imaging.TIFF,
}

var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseFormat accepts a format name or file extension, with or without the
// leading dot.
func ParseFormat(s string) (Format, error) {
	f, ok := formatNames[strings.ToLower(strings.TrimPrefix(s, "."))]
	if !ok {
		return 0, errors.Wrapf(ErrUnsupportedFormat, "format %q", s)
	}
	return f, nil
}

// FormatOf picks the format from a file name extension.
func FormatOf(filename string) (Format, error) {
	return ParseFormat(filepath.Ext(filename))
}

// Ext is the canonical file extension, without the dot.
func (f Format) Ext() string {
	return formatExts[f]
}

func (f Format) String() string {
	return f.Ext()
}

// CanEncode reports whether images can be written in this format.
func (f Format) CanEncode() bool {
	_, ok := bitmapFormats[f]
	return ok || f == PPM
}

func Decode(r io.Reader, f Format) (*raster.Image, error) {
	switch f {
	case PPM:
		return DecodePPM(r)
	case WEBP:
		img, err := webp.Decode(r)
		if err != nil {
			return nil, errors.Wrap(err, "decode webp")
		}
		return raster.FromImage(img)
	}

	if _, ok := bitmapFormats[f]; !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "decode %d", f)
	}

	img, err := imaging.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", f)
	}
	return raster.FromImage(img)
}

func Encode(w io.Writer, img *raster.Image, f Format) error {
	if img == nil {
		return raster.Invalid("nil image")
	}

	if f == PPM {
		return EncodePPM(w, img)
	}

	format, ok := bitmapFormats[f]
	if !ok {
		return errors.Wrapf(ErrUnsupportedFormat, "encode %s", f)
	}

	if err := imaging.Encode(w, img, format, imaging.JPEGQuality(95)); err != nil {
		return errors.Wrapf(err, "encode %s", f)
	}
	return nil
}

// DecodeBytes decodes a payload of unknown format. Plain PPM is recognised
// by its magic number, everything else is left to the registered image
// decoders.
func DecodeBytes(bs []byte) (*raster.Image, error) {
	if bytes.HasPrefix(bytes.TrimLeft(bs, " \t\r\n"), []byte(ppmMagic)) {
		return DecodePPM(bytes.NewReader(bs))
	}

	img, err := imaging.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}
	return raster.FromImage(img)
}
