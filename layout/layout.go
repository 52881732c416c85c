package layout

import (
	"cmp"
	"math"
	"slices"

	"github.com/gogpu/collage"
)

// sortTolerance absorbs float noise when comparing area edges.
const sortTolerance = 1e-6

// Layout owns the areas and lines of one canvas.
type Layout struct {
	kind   Kind
	bounds collage.Rect
	pts    *arena

	outer     [4]*Line
	outerArea *Area
	lines     []*Line
	areas     []*Area
	steps     []Step

	padding float64
	radian  float64
	color   uint32
}

// New returns a layout of the given kind seeded with one area covering
// bounds.
func New(kind Kind, bounds collage.Rect) *Layout {
	l := &Layout{kind: kind}
	l.SetOuterBounds(bounds)
	return l
}

// SetOuterBounds resets the layout and re-seeds it with a single area
// spanning r. Padding, radian and color are kept.
func (l *Layout) SetOuterBounds(r collage.Rect) {
	l.bounds = r
	l.Reset()
}

// Reset drops every cut and recorded step.
func (l *Layout) Reset() {
	l.pts = &arena{}
	l.lines = nil
	l.steps = nil

	c := l.bounds.Corners()
	lt := l.pts.add(c[0])
	rt := l.pts.add(c[1])
	rb := l.pts.add(c[2])
	lb := l.pts.add(c[3])

	left := newLine(l.pts, collage.Vertical, lt, lb)
	top := newLine(l.pts, collage.Horizontal, lt, rt)
	right := newLine(l.pts, collage.Vertical, rt, rb)
	bottom := newLine(l.pts, collage.Horizontal, lb, rb)
	l.outer = [4]*Line{left, top, right, bottom}

	l.outerArea = &Area{
		pts:     l.pts,
		kind:    l.kind,
		left:    left,
		top:     top,
		right:   right,
		bottom:  bottom,
		corners: [4]pointID{lt, rt, rb, lb},
		radius:  l.radian,
	}
	l.areas = []*Area{l.outerArea.clone()}
	if l.padding != 0 {
		l.SetPadding(l.padding)
	}
}

// Kind returns the layout kind.
func (l *Layout) Kind() Kind { return l.kind }

// Bounds returns the outer bounds.
func (l *Layout) Bounds() collage.Rect { return l.bounds }

// Width returns the outer bounds width.
func (l *Layout) Width() float64 { return l.bounds.Width() }

// Height returns the outer bounds height.
func (l *Layout) Height() float64 { return l.bounds.Height() }

// AreaCount returns the number of areas.
func (l *Layout) AreaCount() int { return len(l.areas) }

// Area returns the area at index i in sorted order.
func (l *Layout) Area(i int) *Area { return l.areas[i] }

// Areas returns the areas in sorted order. The slice must not be modified.
func (l *Layout) Areas() []*Area { return l.areas }

// AreaIndex returns the sorted index of a, or -1.
func (l *Layout) AreaIndex(a *Area) int { return slices.Index(l.areas, a) }

// OuterArea returns the area spanning the outer lines.
func (l *Layout) OuterArea() *Area { return l.outerArea }

// Lines returns the interior lines in creation order.
func (l *Layout) Lines() []*Line { return l.lines }

// OuterLines returns the outer lines: left, top, right, bottom.
func (l *Layout) OuterLines() [4]*Line { return l.outer }

// Steps returns the recorded recipe.
func (l *Layout) Steps() []Step { return l.steps }

// Padding returns the layout padding.
func (l *Layout) Padding() float64 { return l.padding }

// SetPadding sets the padding of every area and insets the outer lines by
// the same amount, so gaps between neighbours match the outer margin.
func (l *Layout) SetPadding(p float64) {
	l.padding = p
	for _, a := range l.areas {
		a.SetPadding(p)
	}
	l.outerArea.SetPadding(p)

	inner := l.bounds.Inset(p).Corners()
	for i, id := range l.outerArea.corners {
		l.pts.set(id, inner[i])
	}
	l.Update()
}

// Radian returns the corner rounding radius applied to every area.
func (l *Layout) Radian() float64 { return l.radian }

// SetRadian sets the corner rounding radius of every area.
func (l *Layout) SetRadian(r float64) {
	l.radian = r
	for _, a := range l.areas {
		a.SetRadius(r)
	}
	l.outerArea.SetRadius(r)
}

// Color returns the background color as 0xAARRGGBB.
func (l *Layout) Color() uint32 { return l.color }

// SetColor sets the background color as 0xAARRGGBB.
func (l *Layout) SetColor(c uint32) { l.color = c }

// Update recomputes every crossover point: interior line endpoints from
// their attach lines and area corners from their bounding lines.
func (l *Layout) Update() {
	l.pts.recomputeAll()
}

// SortAreas orders areas by top edge, then left edge, using the left-top
// corner.
func (l *Layout) SortAreas() {
	slices.SortStableFunc(l.areas, func(a, b *Area) int {
		pa, pb := a.Corner(LeftTop), b.Corner(LeftTop)
		if math.Abs(pa.Y-pb.Y) > sortTolerance {
			return cmp.Compare(pa.Y, pb.Y)
		}
		if math.Abs(pa.X-pb.X) > sortTolerance {
			return cmp.Compare(pa.X, pb.X)
		}
		return 0
	})
}

// updateLineLimit narrows every interior line's lower and upper neighbour
// to the nearest same-direction line on each side. Candidates share both
// attach lines; straight layouts also accept any line whose span overlaps.
func (l *Layout) updateLineLimit() {
	for _, line := range l.lines {
		for _, o := range l.lines {
			if o == line || o.dir != line.dir || !l.neighbours(line, o) {
				continue
			}
			if o.lowEdge() > line.lower.highEdge() && o.highEdge() < line.lowEdge() {
				line.lower = o
			}
			if o.highEdge() < line.upper.lowEdge() && o.lowEdge() > line.highEdge() {
				line.upper = o
			}
		}
	}
}

func (l *Layout) neighbours(line, o *Line) bool {
	if o.attachStart == line.attachStart && o.attachEnd == line.attachEnd {
		return true
	}
	return l.kind == Straight && line.overlaps(o)
}

// replace swaps area for its replacement pieces, then refreshes the line
// limits and the area order.
func (l *Layout) replace(area *Area, pieces ...*Area) {
	i := slices.Index(l.areas, area)
	l.areas = slices.Delete(l.areas, i, i+1)
	l.areas = append(l.areas, pieces...)
	l.updateLineLimit()
	l.SortAreas()
}
