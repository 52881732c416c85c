package layout

import (
	"math"

	"github.com/gogpu/collage"
)

// Line is a cut line or one of the four outer edges of a layout.
//
// Interior lines are attached at both ends to a perpendicular line; their
// endpoints are the crossovers with those lines. lowerLine and upperLine
// are the nearest same-direction neighbours and bound how far the line may
// be dragged.
type Line struct {
	pts *arena
	dir collage.Direction

	start, end pointID

	attachStart, attachEnd *Line
	lower, upper           *Line

	prevStart, prevEnd collage.Point
}

func newLine(pts *arena, dir collage.Direction, start, end pointID) *Line {
	return &Line{pts: pts, dir: dir, start: start, end: end}
}

// Direction returns the line orientation.
func (l *Line) Direction() collage.Direction { return l.dir }

// Start returns the start point: the left end of a horizontal line or the
// top end of a vertical one.
func (l *Line) Start() collage.Point { return l.pts.at(l.start) }

// End returns the end point.
func (l *Line) End() collage.Point { return l.pts.at(l.end) }

// Segment returns the line as a segment from Start to End.
func (l *Line) Segment() collage.Segment {
	return collage.Seg(l.Start(), l.End())
}

// Length returns the distance between the endpoints.
func (l *Line) Length() float64 { return l.Segment().Length() }

// Slope returns dy/dx of the line.
func (l *Line) Slope() float64 { return l.Segment().Slope() }

// AttachStart returns the perpendicular line the start point lies on.
// It is nil for outer lines.
func (l *Line) AttachStart() *Line { return l.attachStart }

// AttachEnd returns the perpendicular line the end point lies on.
func (l *Line) AttachEnd() *Line { return l.attachEnd }

// LowerLine returns the neighbour with smaller coordinates (above a
// horizontal line, left of a vertical one).
func (l *Line) LowerLine() *Line { return l.lower }

// UpperLine returns the neighbour with larger coordinates.
func (l *Line) UpperLine() *Line { return l.upper }

// Outer reports whether the line is one of the layout's outer edges.
func (l *Line) Outer() bool { return l.attachStart == nil }

// MinX returns the smaller x of the two endpoints.
func (l *Line) MinX() float64 { return math.Min(l.Start().X, l.End().X) }

// MaxX returns the larger x of the two endpoints.
func (l *Line) MaxX() float64 { return math.Max(l.Start().X, l.End().X) }

// MinY returns the smaller y of the two endpoints.
func (l *Line) MinY() float64 { return math.Min(l.Start().Y, l.End().Y) }

// MaxY returns the larger y of the two endpoints.
func (l *Line) MaxY() float64 { return math.Max(l.Start().Y, l.End().Y) }

// Contains reports whether p lies within extra of the line, measured
// perpendicular to it.
func (l *Line) Contains(p collage.Point, extra float64) bool {
	return collage.QuadContains(l.Segment().Inflate(extra), p)
}

// PrepareMove snapshots the endpoints. Offsets passed to Move are relative
// to this snapshot.
func (l *Line) PrepareMove() {
	l.prevStart = l.Start()
	l.prevEnd = l.End()
}

// Move shifts the line by offset from the position recorded by PrepareMove:
// along y for a horizontal line, along x for a vertical one. The move is
// rejected, leaving the line untouched, if either endpoint would come
// within margin of the lower or upper neighbour. Outer lines never move.
//
// After a successful move the owning layout must be updated so crossovers
// on this line follow it.
func (l *Line) Move(offset, margin float64) bool {
	if l.lower == nil || l.upper == nil {
		return false
	}

	if l.dir == collage.Horizontal {
		lo, hi := l.lower.MaxY()+margin, l.upper.MinY()-margin
		sy, ey := l.prevStart.Y+offset, l.prevEnd.Y+offset
		if sy < lo || sy > hi || ey < lo || ey > hi {
			collage.Logger().Debug("layout: line move rejected",
				"direction", l.dir, "offset", offset, "min", lo, "max", hi)
			return false
		}
		l.pts.set(l.start, collage.Pt(l.Start().X, sy))
		l.pts.set(l.end, collage.Pt(l.End().X, ey))
		return true
	}

	lo, hi := l.lower.MaxX()+margin, l.upper.MinX()-margin
	sx, ex := l.prevStart.X+offset, l.prevEnd.X+offset
	if sx < lo || sx > hi || ex < lo || ex > hi {
		collage.Logger().Debug("layout: line move rejected",
			"direction", l.dir, "offset", offset, "min", lo, "max", hi)
		return false
	}
	l.pts.set(l.start, collage.Pt(sx, l.Start().Y))
	l.pts.set(l.end, collage.Pt(ex, l.End().Y))
	return true
}

// overlaps reports whether the spans of two same-direction lines overlap
// along their direction.
func (l *Line) overlaps(o *Line) bool {
	if l.dir == collage.Horizontal {
		return !(o.MaxX() <= l.MinX() || l.MaxX() <= o.MinX())
	}
	return !(o.MaxY() <= l.MinY() || l.MaxY() <= o.MinY())
}

// lowEdge and highEdge return the line's extent across its direction.
func (l *Line) lowEdge() float64 {
	if l.dir == collage.Horizontal {
		return l.MinY()
	}
	return l.MinX()
}

func (l *Line) highEdge() float64 {
	if l.dir == collage.Horizontal {
		return l.MaxY()
	}
	return l.MaxX()
}
