package layout

import (
	"fmt"
	"slices"

	"github.com/gogpu/collage"
)

// LineInfo holds the endpoints of one interior line.
type LineInfo struct {
	Start, End collage.Point
}

// Info is everything needed to rebuild an edited layout: the recipe, the
// final endpoints of every interior line in creation order, and the
// appearance settings.
type Info struct {
	Kind    Kind
	Steps   []Step
	Lines   []LineInfo
	Padding float64
	Radian  float64
	Color   uint32
	Bounds  collage.Rect
}

// Info captures the layout, including any line drags made after it was
// built.
func (l *Layout) Info() Info {
	info := Info{
		Kind:    l.kind,
		Steps:   make([]Step, len(l.steps)),
		Lines:   make([]LineInfo, len(l.lines)),
		Padding: l.padding,
		Radian:  l.radian,
		Color:   l.color,
		Bounds:  l.bounds,
	}
	for i, s := range l.steps {
		s.Ratios = slices.Clone(s.Ratios)
		info.Steps[i] = s
	}
	for i, ln := range l.lines {
		info.Lines[i] = LineInfo{Start: ln.Start(), End: ln.End()}
	}
	return info
}

// Parse rebuilds a layout from info: the steps are replayed against the
// outer bounds, the appearance is applied, and every interior line is
// moved to its recorded endpoints. A record without line endpoints yields
// the layout as freshly cut.
func Parse(info Info) (*Layout, error) {
	if info.Kind != Straight && info.Kind != Slant {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, info.Kind)
	}
	l := New(info.Kind, info.Bounds)
	for i, s := range info.Steps {
		if err := l.Apply(s); err != nil {
			return nil, fmt.Errorf("layout: step %d: %w", i, err)
		}
	}

	l.SetColor(info.Color)
	l.SetRadian(info.Radian)
	l.SetPadding(info.Padding)

	if len(info.Lines) > 0 {
		if len(info.Lines) != len(l.lines) {
			return nil, fmt.Errorf("%w: recorded %d, replayed %d", ErrLineCount, len(info.Lines), len(l.lines))
		}
		for i, li := range info.Lines {
			ln := l.lines[i]
			l.pts.set(ln.start, li.Start)
			l.pts.set(ln.end, li.End)
		}
	}
	l.Update()
	l.SortAreas()
	return l, nil
}
