package script

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"imgedit/pkg/effect"
	"imgedit/pkg/fetch"
	"imgedit/pkg/layer"
	"imgedit/pkg/store"
)

var errQuit = errors.New("quit")

type handler func(ctx context.Context, t *tokens) error

func New(stack *layer.Stack, st *store.Store, out io.Writer, logger *zap.Logger, opts ...Option) *Interpreter {
	in := &Interpreter{
		stack:    stack,
		store:    st,
		out:      out,
		log:      logger,
		effects:  make(map[string]effect.Effect),
		handlers: make(map[string]handler),
		maxDepth: 16,
	}

	for _, name := range effect.Names() {
		e, _ := effect.Lookup(name)
		in.effects[name] = e
	}

	for _, opt := range opts {
		opt(in)
	}

	in.handleIO()
	in.handleEffects()
	in.handleLayers()
	in.handleExtras()

	return in
}

// Interpreter runs editing scripts against a layer stack. Commands are
// executed one at a time; a failing command is reported and the script
// goes on.
type Interpreter struct {
	stack    *layer.Stack
	store    *store.Store
	fetcher  *fetch.Fetcher
	out      io.Writer
	log      *zap.Logger
	effects  map[string]effect.Effect
	handlers map[string]handler
	maxDepth int
	depth    int
	werr     error
}

func (in *Interpreter) handle(name string, h handler) {
	in.handlers[name] = h
}

// Run executes the script read from r. Unknown tokens are skipped and quit
// ends the current script. The returned error reports a broken reader or
// output writer, or a cancelled context.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	if r == nil {
		return errors.New("nil script")
	}

	t := newTokens(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tok, ok := t.next()
		if !ok {
			break
		}

		h, ok := in.handlers[tok]
		if !ok {
			in.log.With(zap.String("token", tok)).Debug("skip unknown token")
			continue
		}

		if err := h(ctx, t); err == errQuit {
			break
		} else if err != nil {
			return err
		}

		if in.werr != nil {
			return in.werr
		}
	}

	if err := t.err(); err != nil {
		return errors.Wrap(err, "read script")
	}
	return in.werr
}

func (in *Interpreter) say(format string, args ...interface{}) {
	if in.werr != nil {
		return
	}
	if _, err := fmt.Fprintf(in.out, format+"\n", args...); err != nil {
		in.werr = errors.Wrap(err, "write output")
	}
}

func (in *Interpreter) status() {
	if in.stack.Len() == 0 {
		in.say("CURRENT LAYER: 0 of 0")
		return
	}
	in.say("CURRENT LAYER: %d of %d", in.stack.TopVisibleIndex()+1, in.stack.Len())
}

// report prints ok or failed depending on err, then the status line.
func (in *Interpreter) report(cmd string, err error, ok, failed string) {
	if err != nil {
		in.log.With(zap.String("cmd", cmd), zap.Error(err)).Debug("command failed")
		in.say("%s", failed)
	} else {
		in.say("%s", ok)
	}
	in.status()
}

// file runs a stored script in the same interpreter.
func (in *Interpreter) file(ctx context.Context, name string) error {
	if in.depth >= in.maxDepth {
		return errors.Errorf("script nesting deeper than %d", in.maxDepth)
	}

	text, err := in.store.LoadText(name)
	if err != nil {
		return err
	}

	in.depth++
	defer func() {
		in.depth--
	}()

	return in.Run(ctx, strings.NewReader(text))
}
