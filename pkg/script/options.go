package script

import (
	"imgedit/pkg/effect"
	"imgedit/pkg/fetch"
)

type Option func(in *Interpreter)

// WithFetcher enables the fetch command.
func WithFetcher(f *fetch.Fetcher) Option {
	return func(in *Interpreter) {
		in.fetcher = f
	}
}

// WithEffect replaces the default variant of the effects with the same
// names.
func WithEffect(e ...effect.Effect) Option {
	return func(in *Interpreter) {
		for _, eff := range e {
			in.effects[eff.Name()] = eff
		}
	}
}

// WithMaxDepth limits how deeply file commands may nest.
func WithMaxDepth(depth int) Option {
	return func(in *Interpreter) {
		in.maxDepth = depth
	}
}
