package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"imgedit/pkg/codec"
	"imgedit/pkg/effect"
	"imgedit/pkg/raster"
)

func (in *Interpreter) handleIO() {
	in.handle("load", func(ctx context.Context, t *tokens) error {
		name, ok := t.next()
		if !ok {
			return nil
		}
		typ, ok := t.next()
		if !ok {
			return nil
		}
		visible, ok := t.nextBool()
		if !ok {
			return nil
		}

		err := in.load(name, typ, visible)
		in.report("load", err, fmt.Sprintf("Loaded %s.%s", name, typ), "Load unsuccessful.")
		return nil
	})

	in.handle("save", func(ctx context.Context, t *tokens) error {
		name, ok := t.next()
		if !ok {
			return nil
		}
		typ, ok := t.next()
		if !ok {
			return nil
		}

		err := in.save(name, typ)
		in.report("save", err, fmt.Sprintf("Saved %s.%s", name, typ), "Save unsuccessful.")
		return nil
	})

	in.handle("exportAll", func(ctx context.Context, t *tokens) error {
		name, ok := t.next()
		if !ok {
			return nil
		}

		err := in.exportAll(name)
		in.report("exportAll", err, "Exported all layers.", "Could not export all layers.")
		return nil
	})

	in.handle("file", func(ctx context.Context, t *tokens) error {
		name, ok := t.next()
		if !ok {
			return nil
		}

		err := in.file(ctx, name)
		if in.werr != nil {
			return in.werr
		}
		in.report("file", err, fmt.Sprintf("Script %s.txt loaded", name), "Script load unsuccessful.")
		return nil
	})

	in.handle("quit", func(ctx context.Context, t *tokens) error {
		in.say("Program quitting..")
		return errQuit
	})
}

func (in *Interpreter) load(name, typ string, visible bool) error {
	f, err := codec.ParseFormat(typ)
	if err != nil {
		return err
	}

	img, err := in.store.Load(name, f)
	if err != nil {
		return err
	}

	if err := in.stack.Import(img); err != nil {
		return err
	}
	return in.stack.SetVisibility(in.stack.Len()-1, visible)
}

func (in *Interpreter) save(name, typ string) error {
	f, err := codec.ParseFormat(typ)
	if err != nil {
		return err
	}

	img, err := in.stack.ExportTop()
	if err != nil {
		return err
	}
	return in.store.Save(name, f, img)
}

// exportAll writes every layer as <name><i>.ppm plus a <name>.txt script
// that loads them back with their visibility.
func (in *Interpreter) exportAll(name string) error {
	layers := in.stack.ExportAll()
	visible := in.stack.Visibilities()

	lines := lo.Map(layers, func(_ *raster.Image, i int) string {
		return fmt.Sprintf("load %s%d ppm %t\n", name, i, visible[i])
	})

	for i, img := range layers {
		if err := in.store.Save(fmt.Sprintf("%s%d", name, i), codec.PPM, img); err != nil {
			return err
		}
	}

	return in.store.SaveText(name, strings.Join(lines, ""))
}

func (in *Interpreter) handleEffects() {
	for _, name := range effect.Names() {
		name := name
		in.handle(name, func(ctx context.Context, t *tokens) error {
			err := in.stack.ApplyEffect(in.effects[name], in.stack.TopVisibleIndex())
			in.report(name, err, "Effect applied.", "Effect could not be applied.")
			return nil
		})
	}
}

func (in *Interpreter) handleLayers() {
	in.handle("remove", func(ctx context.Context, t *tokens) error {
		err := in.stack.Remove(in.stack.TopVisibleIndex())
		in.report("remove", err, "Layer removed.", "Layer could not be removed.")
		return nil
	})

	in.handle("invisible", func(ctx context.Context, t *tokens) error {
		i, ok := t.nextInt()
		if !ok {
			return nil
		}

		err := in.stack.SetVisibility(i, false)
		in.report("invisible", err, fmt.Sprintf("Layer %d made invisible.", i+1), "Layer could not be made invisible.")
		return nil
	})

	in.handle("visible", func(ctx context.Context, t *tokens) error {
		i, ok := t.nextInt()
		if !ok {
			return nil
		}

		err := in.stack.SetVisibility(i, true)
		in.report("visible", err, fmt.Sprintf("Layer %d made visible.", i+1), "Layer could not be made visible.")
		return nil
	})

	in.handle("toTop", func(ctx context.Context, t *tokens) error {
		i, ok := t.nextInt()
		if !ok {
			return nil
		}

		err := in.stack.MoveToTop(i)
		in.report("toTop", err, fmt.Sprintf("Layer %d moved to top.", i+1), "Layer could not be moved.")
		return nil
	})
}

func (in *Interpreter) handleExtras() {
	in.handle("fetch", func(ctx context.Context, t *tokens) error {
		url, ok := t.next()
		if !ok {
			return nil
		}
		visible, ok := t.nextBool()
		if !ok {
			return nil
		}

		err := in.fetch(ctx, url, visible)
		in.report("fetch", err, fmt.Sprintf("Fetched %s", url), "Fetch unsuccessful.")
		return nil
	})

	in.handle("rainbow", func(ctx context.Context, t *tokens) error {
		dim, ok := t.nextInt()
		if !ok {
			return nil
		}

		err := in.generate(raster.Rainbow(dim))
		in.report("rainbow", err, "Generated rainbow.", "Generation unsuccessful.")
		return nil
	})

	in.handle("checkerboard", func(ctx context.Context, t *tokens) error {
		dim, ok := t.nextInt()
		if !ok {
			return nil
		}
		squares, ok := t.nextInt()
		if !ok {
			return nil
		}

		err := in.generate(raster.Checkerboard(dim, squares))
		in.report("checkerboard", err, "Generated checkerboard.", "Generation unsuccessful.")
		return nil
	})

	in.handle("info", func(ctx context.Context, t *tokens) error {
		img, err := in.stack.ExportTop()
		msg := ""
		if err == nil {
			msg = fmt.Sprintf("%s Size: %s", img, bytesize.New(float64(3*img.NumPixels())))
		}
		in.report("info", err, msg, "No visible layer.")
		return nil
	})

	in.handle("sample", func(ctx context.Context, t *tokens) error {
		x, ok := t.nextInt()
		if !ok {
			return nil
		}
		y, ok := t.nextInt()
		if !ok {
			return nil
		}

		hex, err := in.sample(x, y)
		in.report("sample", err, fmt.Sprintf("Pixel (%d,%d): %s", x, y, hex), "Pixel could not be sampled.")
		return nil
	})

	in.handle("snapshot", func(ctx context.Context, t *tokens) error {
		typ, ok := t.next()
		if !ok {
			return nil
		}

		name, err := in.snapshot(typ)
		in.report("snapshot", err, fmt.Sprintf("Snapshot saved as %s.%s", name, typ), "Snapshot unsuccessful.")
		return nil
	})
}

func (in *Interpreter) fetch(ctx context.Context, url string, visible bool) error {
	if in.fetcher == nil {
		return errors.New("fetching disabled")
	}

	img, err := in.fetcher.Image(ctx, url)
	if err != nil {
		return err
	}

	if err := in.stack.Import(img); err != nil {
		return err
	}
	return in.stack.SetVisibility(in.stack.Len()-1, visible)
}

func (in *Interpreter) generate(img *raster.Image, err error) error {
	if err != nil {
		return err
	}
	if err := in.stack.Import(img); err != nil {
		return err
	}

	in.log.With(zap.Stringer("image", img)).Debug("layer generated")
	return nil
}

func (in *Interpreter) sample(x, y int) (string, error) {
	img, err := in.stack.ExportTop()
	if err != nil {
		return "", err
	}

	p, ok := img.PixelAt(x, y)
	if !ok {
		return "", raster.Invalid("pixel (%d,%d) outside %dx%d", x, y, img.Width(), img.Height())
	}
	return p.Hex(), nil
}

func (in *Interpreter) snapshot(typ string) (string, error) {
	f, err := codec.ParseFormat(typ)
	if err != nil {
		return "", err
	}

	img, err := in.stack.ExportTop()
	if err != nil {
		return "", err
	}

	name, err := in.store.Snapshot(img, f)
	if err != nil {
		return "", err
	}

	in.log.With(zap.String("name", name)).Info("snapshot saved")
	return name, nil
}
