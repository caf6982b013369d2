package fetch

import (
	"io"
	"time"
)

type Option func(f *Fetcher)

// WithProgress draws a download progress bar on w. A nil writer disables
// it.
func WithProgress(w io.Writer) Option {
	return func(f *Fetcher) {
		f.progress = w
	}
}

func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.cli.SetTimeout(d)
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.cli.SetHeader("User-Agent", ua)
	}
}

// WithMaxSize caps the accepted body size in bytes. Zero or less removes
// the cap.
func WithMaxSize(max int64) Option {
	return func(f *Fetcher) {
		f.maxSize = max
	}
}
