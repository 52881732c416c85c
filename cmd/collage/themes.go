package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/gogpu/collage/theme"
)

// runThemes implements the themes subcommand.
func runThemes(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("themes", flag.ContinueOnError)
	var c common
	c.register(fs)
	kindName := fs.String("kind", "", "layout kind, straight or slant; empty lists both")
	pieces := fs.Int("pieces", 0, "piece count; 0 lists every count")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := c.setup(); err != nil {
		return err
	}
	kinds, err := parseKinds(*kindName)
	if err != nil {
		return err
	}

	p := c.printer()
	total := 0
	for _, k := range kinds {
		counts := theme.PieceCounts(k)
		if *pieces > 0 {
			counts = []int{*pieces}
		}
		for _, n := range counts {
			themes := theme.Themes(k, n)
			if len(themes) == 0 {
				return fmt.Errorf("%w: %s with %d pieces", theme.ErrNoThemes, k, n)
			}
			p.Fprintf(w, "%s, %d pieces: %d themes\n", k, n, len(themes))
			for i, t := range themes {
				p.Fprintf(w, "  %2d  %s\n", i, t.Name)
			}
			total += len(themes)
		}
	}
	p.Fprintf(w, "%d themes\n", total)
	return nil
}
