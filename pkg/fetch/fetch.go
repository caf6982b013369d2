package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"imgedit/pkg/codec"
	"imgedit/pkg/raster"
)

var (
	ErrStatus   = errors.New("unexpected status")
	ErrTooLarge = errors.New("payload too large")
)

const defaultMaxSize = 64 << 20

func New(logger *zap.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{
		cli:     resty.New().SetDoNotParseResponse(true),
		log:     logger,
		maxSize: defaultMaxSize,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetcher downloads images over HTTP.
type Fetcher struct {
	cli      *resty.Client
	log      *zap.Logger
	progress io.Writer
	maxSize  int64
}

// Get downloads url and returns the body. Statuses outside 2xx fail.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	log := f.log.With(zap.String("url", url))

	resp, err := f.cli.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", url)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if !resp.IsSuccess() {
		log.With(zap.Int("status", resp.StatusCode())).Debug("download rejected")
		return nil, errors.Wrapf(ErrStatus, "get %s: %s", url, resp.Status())
	}

	size := resp.RawResponse.ContentLength
	if f.maxSize > 0 && size > f.maxSize {
		return nil, errors.Wrapf(ErrTooLarge, "get %s: %d bytes", url, size)
	}

	var body io.Reader = resp.RawBody()
	if f.maxSize > 0 {
		body = io.LimitReader(body, f.maxSize+1)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(f.sink(&buf, size, url), body); err != nil {
		return nil, errors.Wrapf(err, "read %s", url)
	}
	if f.maxSize > 0 && int64(buf.Len()) > f.maxSize {
		return nil, errors.Wrapf(ErrTooLarge, "get %s: over %d bytes", url, f.maxSize)
	}

	log.With(zap.Int("bytes", buf.Len())).Debug("downloaded")
	return buf.Bytes(), nil
}

func (f *Fetcher) sink(buf *bytes.Buffer, size int64, url string) io.Writer {
	if f.progress == nil {
		return buf
	}

	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(f.progress),
		progressbar.OptionSetDescription(fmt.Sprintf("Downloading %s", url)),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(10),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
	)
	return io.MultiWriter(buf, bar)
}

// Image downloads url and decodes it as PPM or any registered bitmap
// format.
func (f *Fetcher) Image(ctx context.Context, url string) (*raster.Image, error) {
	bs, err := f.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	img, err := codec.DecodeBytes(bs)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", url)
	}

	f.log.With(zap.String("url", url), zap.Stringer("image", img)).Info("image fetched")
	return img, nil
}
