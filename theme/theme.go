package theme

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/layout"
)

// ErrNoThemes is returned when the catalog has no themes for a piece count.
var ErrNoThemes = errors.New("theme: no themes for piece count")

// Theme is a named arrangement.
type Theme struct {
	Name  string
	Steps []layout.Step
}

// Pieces returns the number of areas the theme produces.
func (t Theme) Pieces() int {
	l := layout.New(layout.Straight, collage.RectXYWH(0, 0, 1, 1))
	for _, s := range t.Steps {
		if err := l.Apply(s); err != nil {
			return 0
		}
	}
	return l.AreaCount()
}

func catalog(kind layout.Kind) map[int][]Theme {
	if kind == layout.Slant {
		return slantThemes
	}
	return straightThemes
}

// Themes returns the themes for the given kind and piece count.
// The returned slice must not be modified.
func Themes(kind layout.Kind, pieces int) []Theme {
	return catalog(kind)[pieces]
}

// Count returns the number of themes for the given kind and piece count.
func Count(kind layout.Kind, pieces int) int {
	return len(Themes(kind, pieces))
}

// List returns the theme names for the given kind and piece count.
func List(kind layout.Kind, pieces int) []string {
	themes := Themes(kind, pieces)
	names := make([]string, len(themes))
	for i, th := range themes {
		names[i] = th.Name
	}
	return names
}

// PieceCounts returns the piece counts with at least one theme, ascending.
func PieceCounts(kind layout.Kind) []int {
	counts := make([]int, 0, len(catalog(kind)))
	for n := range catalog(kind) {
		counts = append(counts, n)
	}
	slices.Sort(counts)
	return counts
}

// Build creates the layout for theme index of the given kind and piece
// count inside bounds. An index outside the catalog is clamped to the
// nearest valid theme.
func Build(kind layout.Kind, pieces, index int, bounds collage.Rect) (*layout.Layout, error) {
	themes := Themes(kind, pieces)
	if len(themes) == 0 {
		return nil, fmt.Errorf("%w: %s %d", ErrNoThemes, kind, pieces)
	}
	if clamped := max(0, min(index, len(themes)-1)); clamped != index {
		collage.Logger().Warn("theme: index clamped",
			"kind", kind, "pieces", pieces, "index", index, "clamped", clamped)
		index = clamped
	}
	return build(kind, themes[index].Steps, bounds)
}

// TwoWithRatio builds a straight two-piece layout. Themes 0 and 1 place
// their single line at ratio instead of one half; the other themes ignore
// ratio. A ratio outside [0, 1] is clamped.
func TwoWithRatio(index int, ratio float64, bounds collage.Rect) (*layout.Layout, error) {
	if ratio < 0 || ratio > 1 {
		collage.Logger().Warn("theme: ratio clamped", "ratio", ratio)
		ratio = max(0, min(ratio, 1))
	}
	themes := straightThemes[2]
	index = max(0, min(index, len(themes)-1))
	steps := themes[index].Steps
	if index <= 1 {
		steps = []layout.Step{line(0, steps[0].Direction, ratio)}
	}
	return build(layout.Straight, steps, bounds)
}

func build(kind layout.Kind, steps []layout.Step, bounds collage.Rect) (*layout.Layout, error) {
	l := layout.New(kind, bounds)
	for i, s := range steps {
		if err := l.Apply(s); err != nil {
			return nil, fmt.Errorf("theme: step %d: %w", i, err)
		}
	}
	return l, nil
}
