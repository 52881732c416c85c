package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/gogpu/collage/interact"
	"github.com/gogpu/collage/recipe"
	"github.com/gogpu/collage/render"
)

// runRecipe implements the recipe subcommand.
func runRecipe(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("recipe", flag.ContinueOnError)
	var c common
	c.register(fs)
	size := fs.String("size", "", "resize the replayed layout to WIDTHxHEIGHT")
	out := fs.String("o", "", "render the replayed layout to this PNG file")
	convert := fs.String("convert", "", "save the replayed layout to this recipe file (.json, .yaml)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := c.setup()
	if err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("recipe file required")
	}

	path := fs.Arg(0)
	format, err := recipe.FormatFor(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	rec, err := recipe.DecodeRecord(f, format)
	f.Close()
	if err != nil {
		return err
	}
	l, err := rec.Layout()
	if err != nil {
		return err
	}

	s := interact.NewSession(l, interact.WithConfig(cfg))
	if err := fill(s, fs.Args()[1:]); err != nil {
		return err
	}
	if *size != "" {
		bounds, err := canvas(*size)
		if err != nil {
			return err
		}
		if err := s.Resize(nil, bounds); err != nil {
			return err
		}
	}

	p := c.printer()
	b := s.Layout().Bounds()
	p.Fprintf(w, "%s layout, %d steps, %d areas, %.0f×%.0f\n",
		rec.Kind, len(rec.Steps), s.Layout().AreaCount(), b.Width(), b.Height())

	if *out != "" {
		if err := writeFrame(render.FrameOf(s, nil), cfg, *out); err != nil {
			return err
		}
		p.Fprintf(w, "wrote %s\n", *out)
	}
	if *convert != "" {
		if err := writeRecipe(s.Layout(), *convert); err != nil {
			return err
		}
		p.Fprintf(w, "wrote %s\n", *convert)
	}
	return nil
}
