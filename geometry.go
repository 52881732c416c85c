package collage

import "math"

// Direction is the orientation of a cut line.
type Direction uint8

const (
	// Horizontal lines run left to right and split an area into top and bottom.
	Horizontal Direction = iota
	// Vertical lines run top to bottom and split an area into left and right.
	Vertical
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Perpendicular returns the other direction.
func (d Direction) Perpendicular() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "horizontal", "h", "0":
		*d = Horizontal
	case "vertical", "v", "1":
		*d = Vertical
	default:
		return &DirectionError{Value: string(text)}
	}
	return nil
}

// DirectionError reports an unknown direction name.
type DirectionError struct {
	Value string
}

func (e *DirectionError) Error() string {
	return "collage: unknown direction " + `"` + e.Value + `"`
}

// Segment is a directed segment between two points. Intersection treats it
// as the infinite line through both points.
type Segment struct {
	Start, End Point
}

// Seg is a convenience function to create a Segment.
func Seg(start, end Point) Segment {
	return Segment{Start: start, End: end}
}

func (s Segment) horizontal() bool { return s.Start.Y == s.End.Y }
func (s Segment) vertical() bool   { return s.Start.X == s.End.X }

// Slope returns the slope dy/dx. A vertical segment reports +Inf.
func (s Segment) Slope() float64 {
	if s.vertical() {
		return math.Inf(1)
	}
	return (s.End.Y - s.Start.Y) / (s.End.X - s.Start.X)
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Inflate returns the quad enclosing every point within extra of the
// segment, measured perpendicular to it. The corners are in winding order
// usable by QuadContains.
func (s Segment) Inflate(extra float64) [4]Point {
	d := s.End.Sub(s.Start)
	l := d.Length()
	if l == 0 {
		e := Pt(extra, extra)
		return Rect{Min: s.Start.Sub(e), Max: s.Start.Add(e)}.Corners()
	}
	n := Pt(-d.Y/l*extra, d.X/l*extra)
	return [4]Point{
		s.Start.Sub(n),
		s.End.Sub(n),
		s.End.Add(n),
		s.Start.Add(n),
	}
}

// Intersect returns the point where the infinite lines through a and b
// cross. Axis-aligned pairs are resolved by direct substitution so straight
// layouts stay exact. ok is false when the lines are parallel or either
// segment is degenerate; the returned point is then the origin.
func Intersect(a, b Segment) (p Point, ok bool) {
	if a.Start == a.End || b.Start == b.End {
		return Point{}, false
	}

	switch {
	case a.horizontal() && b.vertical():
		return Pt(b.Start.X, a.Start.Y), true
	case a.vertical() && b.horizontal():
		return Pt(a.Start.X, b.Start.Y), true
	case a.vertical() && b.vertical(), a.horizontal() && b.horizontal():
		return Point{}, false
	case a.vertical():
		return Pt(a.Start.X, yAt(b, a.Start.X)), true
	case b.vertical():
		return Pt(b.Start.X, yAt(a, b.Start.X)), true
	}

	k1, k2 := a.Slope(), b.Slope()
	if k1 == k2 {
		return Point{}, false
	}
	b1 := a.Start.Y - k1*a.Start.X
	b2 := b.Start.Y - k2*b.Start.X
	x := (b2 - b1) / (k1 - k2)
	return Pt(x, k1*x+b1), true
}

// yAt evaluates the non-vertical line through s at x.
func yAt(s Segment, x float64) float64 {
	if s.horizontal() {
		return s.Start.Y
	}
	return s.Start.Y + (x-s.Start.X)*s.Slope()
}

// PointOnSegment returns the point at ratio along the segment from start to
// end. For Horizontal the ratio is measured along x from the endpoint with
// the smaller x; for Vertical along y from the endpoint with the smaller y.
// The other coordinate follows the segment.
func PointOnSegment(start, end Point, dir Direction, ratio float64) Point {
	if dir == Horizontal {
		if start.X > end.X {
			start, end = end, start
		}
	} else if start.Y > end.Y {
		start, end = end, start
	}
	return start.Lerp(end, ratio)
}

// QuadContains reports whether p lies strictly inside the quadrilateral
// given in winding order. The four edge cross products must share a sign.
func QuadContains(quad [4]Point, p Point) bool {
	var pos, neg int
	for i := 0; i < 4; i++ {
		a, b := quad[i], quad[(i+1)%4]
		c := b.Sub(a).Cross(p.Sub(a))
		switch {
		case c > 0:
			pos++
		case c < 0:
			neg++
		}
	}
	return pos == 4 || neg == 4
}
