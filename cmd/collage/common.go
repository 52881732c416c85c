package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/config"
	"github.com/gogpu/collage/layout"
	"github.com/gogpu/collage/recipe"
	"github.com/gogpu/collage/render"
)

var errBadSize = errors.New("size must be WIDTHxHEIGHT")

// common holds the flags shared by every subcommand.
type common struct {
	verbose    bool
	configPath string
	lang       string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "v", false, "verbose (debug) logging on stderr")
	fs.StringVar(&c.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&c.lang, "lang", "en", "language used for number formatting")
}

// setup loads the configuration and installs the logger.
func (c *common) setup() (*config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return nil, err
		}
	}
	switch {
	case c.verbose:
		collage.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	case c.configPath != "":
		collage.SetLogger(cfg.Logging.NewLogger(os.Stderr))
	}
	return cfg, nil
}

func (c *common) printer() *message.Printer {
	tag, err := language.Parse(c.lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// parseSize parses "WIDTHxHEIGHT".
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", errBadSize, s)
	}
	if w, err = strconv.Atoi(ws); err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", errBadSize, s)
	}
	if h, err = strconv.Atoi(hs); err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", errBadSize, s)
	}
	return w, h, nil
}

func canvas(s string) (collage.Rect, error) {
	w, h, err := parseSize(s)
	if err != nil {
		return collage.Rect{}, err
	}
	return collage.RectXYWH(0, 0, float64(w), float64(h)), nil
}

// parseKinds returns the named kind, or both kinds for an empty name.
func parseKinds(name string) ([]layout.Kind, error) {
	if name == "" {
		return []layout.Kind{layout.Straight, layout.Slant}, nil
	}
	var k layout.Kind
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return nil, err
	}
	return []layout.Kind{k}, nil
}

// writeFrame renders f to a PNG file.
func writeFrame(f render.Frame, cfg *config.Config, path string) (err error) {
	r, err := render.NewRenderer(cfg.Draw)
	if err != nil {
		return err
	}
	img, err := r.Image(f)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return render.WritePNG(out, img)
}

// writeRecipe saves l in the format chosen by the file extension.
func writeRecipe(l *layout.Layout, path string) (err error) {
	format, err := recipe.FormatFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return recipe.Encode(out, l, format)
}
