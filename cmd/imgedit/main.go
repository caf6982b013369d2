package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"imgedit/pkg/fetch"
	"imgedit/pkg/layer"
	"imgedit/pkg/script"
	"imgedit/pkg/store"
)

var root = flag.String("root", "res", "directory images and scripts are read from and written to")
var scriptName = flag.String("script", "", "script to run from root, without .txt (default stdin)")
var debug = flag.Bool("debug", false, "set debug")
var quiet = flag.Bool("quiet", false, "hide download progress")
var maxFetch = flag.Int64("max-fetch", 64<<20, "largest accepted download in bytes, 0 for no limit")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			newLogger,
			func(logger *zap.Logger) (*store.Store, error) {
				return store.NewOs(*root, logger)
			},
			func(logger *zap.Logger) *fetch.Fetcher {
				return fetch.New(logger,
					fetch.WithProgress(lo.Ternary[io.Writer](*quiet, nil, os.Stderr)),
					fetch.WithMaxSize(*maxFetch),
				)
			},
			func() (*layer.Stack, error) {
				return layer.NewStack()
			},
			func(stack *layer.Stack, st *store.Store, f *fetch.Fetcher, logger *zap.Logger) *script.Interpreter {
				return script.New(stack, st, os.Stdout, logger, script.WithFetcher(f))
			},
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.WithOptions(zap.IncreaseLevel(zap.WarnLevel))}
		}),
		fx.Invoke(run),
	).Run()
}

func newLogger() (*zap.Logger, error) {
	if *debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(in *script.Interpreter, st *store.Store, logger *zap.Logger, lifecycle fx.Lifecycle, shutdowner fx.Shutdowner) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			src, err := source(st)
			if err != nil {
				return err
			}

			go func() {
				defer close(done)

				if err := in.Run(ctx, src); err != nil && !errors.Is(err, context.Canceled) {
					logger.With(zap.Error(err)).Info("script failed")
				}
				if err := shutdowner.Shutdown(); err != nil {
					logger.With(zap.Error(err)).Info("shutdown failed")
				}
			}()

			return nil
		},
		OnStop: func(stop context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stop.Done():
				return stop.Err()
			}
		},
	})
}

func source(st *store.Store) (io.Reader, error) {
	if *scriptName == "" {
		return os.Stdin, nil
	}

	text, err := st.LoadText(*scriptName)
	if err != nil {
		return nil, errors.Wrap(err, "load script")
	}
	return strings.NewReader(text), nil
}
