package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/config"
	"github.com/gogpu/collage/interact"
	"github.com/gogpu/collage/layout"
	"github.com/gogpu/collage/render"
	"github.com/gogpu/collage/theme"
)

// job is one theme of the catalog.
type job struct {
	kind   layout.Kind
	pieces int
	index  int
	name   string
}

func (j job) filename() string {
	return fmt.Sprintf("%s-%d-%02d-%s.png", j.kind, j.pieces, j.index, j.name)
}

func catalogJobs(kinds []layout.Kind, pieces int) []job {
	var jobs []job
	for _, k := range kinds {
		counts := theme.PieceCounts(k)
		if pieces > 0 {
			counts = []int{pieces}
		}
		for _, n := range counts {
			for i, name := range theme.List(k, n) {
				jobs = append(jobs, job{kind: k, pieces: n, index: i, name: name})
			}
		}
	}
	return jobs
}

// runCatalog implements the catalog subcommand. Every theme is rendered
// with placeholder content into its own PNG file.
func runCatalog(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	var c common
	c.register(fs)
	kindName := fs.String("kind", "", "layout kind, straight or slant; empty renders both")
	pieces := fs.Int("pieces", 0, "piece count; 0 renders every count")
	size := fs.String("size", "600x400", "canvas size WIDTHxHEIGHT")
	dir := fs.String("o", "catalog", "output directory")
	jobsFlag := fs.Int("j", runtime.GOMAXPROCS(0), "number of themes rendered in parallel")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := c.setup()
	if err != nil {
		return err
	}
	kinds, err := parseKinds(*kindName)
	if err != nil {
		return err
	}
	bounds, err := canvas(*size)
	if err != nil {
		return err
	}
	jobs := catalogJobs(kinds, *pieces)
	if len(jobs) == 0 {
		return fmt.Errorf("%w: %s", theme.ErrNoThemes, *kindName)
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*jobsFlag, 1))
	for _, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return renderTheme(j, cfg, bounds, filepath.Join(*dir, j.filename()))
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	st := images.Stats()
	collage.Logger().Debug("collage: content cache", "images", st.Len, "hits", st.Hits, "misses", st.Misses)

	c.printer().Fprintf(w, "rendered %d themes into %s\n", len(jobs), *dir)
	return nil
}

func renderTheme(j job, cfg *config.Config, bounds collage.Rect, path string) error {
	l, err := theme.Build(j.kind, j.pieces, j.index, bounds)
	if err != nil {
		return err
	}
	s := interact.NewSession(l, interact.WithConfig(cfg))
	if err := fill(s, nil); err != nil {
		return err
	}
	if err := writeFrame(render.FrameOf(s, nil), cfg, path); err != nil {
		return fmt.Errorf("%s: %w", j.filename(), err)
	}
	collage.Logger().Debug("collage: theme rendered", "file", path)
	return nil
}
