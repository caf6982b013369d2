package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"imgedit/pkg/raster"
)

const ppmMagic = "P3"

var ErrMalformedPPM = errors.New("malformed ppm")

// DecodePPM reads a plain (P3) portable pixmap. Lines starting with '#' are
// skipped. Channel values are clamped but not rescaled by the max value.
func DecodePPM(r io.Reader) (*raster.Image, error) {
	tokens, err := ppmTokens(r)
	if err != nil {
		return nil, err
	}

	if len(tokens) < 4 || tokens[0] != ppmMagic {
		return nil, errors.Wrap(ErrMalformedPPM, "missing P3 header")
	}

	header, err := atois(tokens[1:4])
	if err != nil {
		return nil, err
	}
	width, height := header[0], header[1]
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrMalformedPPM, "size %dx%d", width, height)
	}

	// width*height may overflow, compare by division
	body := tokens[4:]
	if width > len(body)/3/height {
		return nil, errors.Wrapf(ErrMalformedPPM, "%d values for %dx%d pixels", len(body), width, height)
	}

	bd, err := raster.NewBuilder(width, height)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedPPM, "size %dx%d", width, height)
	}

	values, err := atois(body[:3*width*height])
	if err != nil {
		return nil, err
	}

	for i := 0; i < width*height; i++ {
		bd.Set(i%width, i/width, values[3*i], values[3*i+1], values[3*i+2])
	}

	return bd.Build(), nil
}

func ppmTokens(r io.Reader) ([]string, error) {
	var tokens []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, strings.Fields(line)...)
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read ppm")
	}
	return tokens, nil
}

func atois(ss []string) ([]int, error) {
	out := make([]int, len(ss))
	for i, s := range ss {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedPPM, "value %q", s)
		}
		out[i] = v
	}
	return out, nil
}

// EncodePPM writes img as a plain pixmap with one "r g b" line per pixel.
func EncodePPM(w io.Writer, img *raster.Image) error {
	if img == nil {
		return raster.Invalid("nil image")
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n255\n", ppmMagic, img.Width(), img.Height())

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, g, b, _ := img.Channels(x, y)
			fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
		}
	}

	return errors.Wrap(bw.Flush(), "write ppm")
}
