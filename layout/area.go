package layout

import (
	"math"

	"github.com/gogpu/collage"
)

// Corner indexes the four corners of an area, clockwise from the top-left.
type Corner int

// Area corners.
const (
	LeftTop Corner = iota
	RightTop
	RightBottom
	LeftBottom
)

// Area is a four-sided cell bounded by one line on each side. Its corners
// are the crossovers of adjacent bounding lines.
type Area struct {
	pts  *arena
	kind Kind

	left, top, right, bottom *Line
	corners                  [4]pointID

	padLeft, padTop, padRight, padBottom float64
	radius                               float64
}

func (a *Area) clone() *Area {
	c := *a
	return &c
}

// LineLeft returns the line bounding the left side.
func (a *Area) LineLeft() *Line { return a.left }

// LineTop returns the line bounding the top side.
func (a *Area) LineTop() *Line { return a.top }

// LineRight returns the line bounding the right side.
func (a *Area) LineRight() *Line { return a.right }

// LineBottom returns the line bounding the bottom side.
func (a *Area) LineBottom() *Line { return a.bottom }

// Lines returns the bounding lines in left, top, right, bottom order.
func (a *Area) Lines() [4]*Line {
	return [4]*Line{a.left, a.top, a.right, a.bottom}
}

// HasLine reports whether l bounds the area.
func (a *Area) HasLine(l *Line) bool {
	return a.left == l || a.top == l || a.right == l || a.bottom == l
}

// Corner returns one corner point, without padding.
func (a *Area) Corner(c Corner) collage.Point {
	return a.pts.at(a.corners[c])
}

// Corners returns the four corner points clockwise from the top-left,
// without padding.
func (a *Area) Corners() [4]collage.Point {
	return [4]collage.Point{
		a.pts.at(a.corners[LeftTop]),
		a.pts.at(a.corners[RightTop]),
		a.pts.at(a.corners[RightBottom]),
		a.pts.at(a.corners[LeftBottom]),
	}
}

// Left returns the padded left edge of the area's bounding box.
func (a *Area) Left() float64 {
	return math.Min(a.Corner(LeftTop).X, a.Corner(LeftBottom).X) + a.padLeft
}

// Top returns the padded top edge of the area's bounding box.
func (a *Area) Top() float64 {
	return math.Min(a.Corner(LeftTop).Y, a.Corner(RightTop).Y) + a.padTop
}

// Right returns the padded right edge of the area's bounding box.
func (a *Area) Right() float64 {
	return math.Max(a.Corner(RightTop).X, a.Corner(RightBottom).X) - a.padRight
}

// Bottom returns the padded bottom edge of the area's bounding box.
func (a *Area) Bottom() float64 {
	return math.Max(a.Corner(LeftBottom).Y, a.Corner(RightBottom).Y) - a.padBottom
}

// Bounds returns the padded bounding box.
func (a *Area) Bounds() collage.Rect {
	return collage.RectLTRB(a.Left(), a.Top(), a.Right(), a.Bottom())
}

// Width returns the padded bounding box width.
func (a *Area) Width() float64 { return a.Right() - a.Left() }

// Height returns the padded bounding box height.
func (a *Area) Height() float64 { return a.Bottom() - a.Top() }

// Center returns the center of the padded bounding box.
func (a *Area) Center() collage.Point { return a.Bounds().Center() }

// Contains reports whether p lies strictly inside the quad formed by the
// corner points. Points on a shared edge belong to neither area.
func (a *Area) Contains(p collage.Point) bool {
	return collage.QuadContains(a.Corners(), p)
}

// Padding returns the per-side padding.
func (a *Area) Padding() (left, top, right, bottom float64) {
	return a.padLeft, a.padTop, a.padRight, a.padBottom
}

// SetPadding sets the same padding on every side.
func (a *Area) SetPadding(p float64) {
	a.SetPaddings(p, p, p, p)
}

// SetPaddings sets the padding of each side.
func (a *Area) SetPaddings(left, top, right, bottom float64) {
	a.padLeft, a.padTop, a.padRight, a.padBottom = left, top, right, bottom
}

// Radius returns the corner rounding radius.
func (a *Area) Radius() float64 { return a.radius }

// SetRadius sets the corner rounding radius.
func (a *Area) SetRadius(r float64) { a.radius = r }

// paddedCorners returns the corners moved inwards by the padding.
func (a *Area) paddedCorners() [4]collage.Point {
	c := a.Corners()
	return [4]collage.Point{
		c[LeftTop].Add(collage.Pt(a.padLeft, a.padTop)),
		c[RightTop].Add(collage.Pt(-a.padRight, a.padTop)),
		c[RightBottom].Add(collage.Pt(-a.padRight, -a.padBottom)),
		c[LeftBottom].Add(collage.Pt(a.padLeft, -a.padBottom)),
	}
}

// Path returns the drawable outline. Straight areas are rounded
// rectangles over the padded bounds; slant areas are the padded quad with
// each corner replaced by a quadratic curve of the area's radius.
func (a *Area) Path() *collage.Path {
	p := collage.NewPath()
	if a.kind == Straight {
		b := a.Bounds()
		p.RoundedRectangle(b.Min.X, b.Min.Y, b.Width(), b.Height(), a.radius)
		return p
	}

	q := a.paddedCorners()
	if a.radius <= 0 {
		p.Polygon(q[:]...)
		return p
	}
	for i := 0; i < 4; i++ {
		c := q[i]
		prev, next := q[(i+3)%4], q[(i+1)%4]
		in := towards(c, prev, a.radius)
		out := towards(c, next, a.radius)
		if i == 0 {
			p.MoveTo(in.X, in.Y)
		} else {
			p.LineTo(in.X, in.Y)
		}
		p.QuadraticTo(c.X, c.Y, out.X, out.Y)
	}
	p.Close()
	return p
}

// towards returns the point at distance d from c in the direction of to,
// capped at half the edge length.
func towards(c, to collage.Point, d float64) collage.Point {
	l := c.Distance(to)
	if l == 0 {
		return c
	}
	return c.Lerp(to, math.Min(d/l, 0.5))
}

// HandleBarPoints returns the two anchors of the drag handle drawn on the
// side bounded by l, at a quarter and three quarters of that side. ok is
// false if l does not bound the area.
func (a *Area) HandleBarPoints(l *Line) (pts [2]collage.Point, ok bool) {
	var (
		from, to Corner
		offset   collage.Point
	)
	switch l {
	case a.left:
		from, to, offset = LeftTop, LeftBottom, collage.Pt(a.padLeft, 0)
	case a.top:
		from, to, offset = LeftTop, RightTop, collage.Pt(0, a.padTop)
	case a.right:
		from, to, offset = RightTop, RightBottom, collage.Pt(-a.padRight, 0)
	case a.bottom:
		from, to, offset = LeftBottom, RightBottom, collage.Pt(0, -a.padBottom)
	default:
		return pts, false
	}
	s, e := a.Corner(from), a.Corner(to)
	pts[0] = collage.PointOnSegment(s, e, l.dir, 0.25).Add(offset)
	pts[1] = collage.PointOnSegment(s, e, l.dir, 0.75).Add(offset)
	return pts, true
}
