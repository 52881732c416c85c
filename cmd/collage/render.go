package main

import (
	"errors"
	"flag"
	"io"

	"github.com/gogpu/collage/interact"
	"github.com/gogpu/collage/layout"
	"github.com/gogpu/collage/render"
	"github.com/gogpu/collage/theme"
)

// runRender implements the render subcommand.
func runRender(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	var c common
	c.register(fs)
	kindName := fs.String("kind", "straight", "layout kind, straight or slant")
	pieces := fs.Int("pieces", 0, "piece count; defaults to the number of images")
	index := fs.Int("theme", 0, "theme index within the piece count")
	ratio := fs.Float64("ratio", -1, "split ratio for the first two two-piece straight themes")
	size := fs.String("size", "1200x800", "canvas size WIDTHxHEIGHT")
	out := fs.String("o", "collage.png", "output PNG file")
	recipeOut := fs.String("recipe", "", "also save the layout recipe (.json, .yaml)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := c.setup()
	if err != nil {
		return err
	}

	var kind layout.Kind
	if err := kind.UnmarshalText([]byte(*kindName)); err != nil {
		return err
	}
	bounds, err := canvas(*size)
	if err != nil {
		return err
	}
	images := fs.Args()
	n := *pieces
	if n == 0 {
		n = len(images)
	}
	if n == 0 {
		return errors.New("no images and no -pieces given")
	}

	var l *layout.Layout
	if kind == layout.Straight && n == 2 && *ratio >= 0 {
		l, err = theme.TwoWithRatio(*index, *ratio, bounds)
	} else {
		l, err = theme.Build(kind, n, *index, bounds)
	}
	if err != nil {
		return err
	}

	s := interact.NewSession(l, interact.WithConfig(cfg))
	if err := fill(s, images); err != nil {
		return err
	}
	if err := writeFrame(render.FrameOf(s, nil), cfg, *out); err != nil {
		return err
	}
	p := c.printer()
	p.Fprintf(w, "wrote %s (%d×%d, %d pieces)\n", *out, int(bounds.Width()), int(bounds.Height()), len(s.Pieces()))

	if *recipeOut != "" {
		if err := writeRecipe(s.Layout(), *recipeOut); err != nil {
			return err
		}
		p.Fprintf(w, "wrote %s\n", *recipeOut)
	}
	return nil
}
