package collage

import "math"

// Path operations over the flattened outline: area, containment, bounds.

const defaultTolerance = 0.1

// areaTolerance keeps the flattening error of Area well under one unit
// for curves of canvas size.
const areaTolerance = 0.01

// Flatten converts all curves to line segments with the given tolerance.
// Each closed subpath ends with its start point repeated.
func (p *Path) Flatten(tolerance float64) []Point {
	if len(p.elements) == 0 {
		return nil
	}
	points := make([]Point, 0, len(p.elements)*4)
	p.FlattenCallback(tolerance, func(pt Point) {
		points = append(points, pt)
	})
	return points
}

// FlattenCallback calls fn for each point in the flattened path.
func (p *Path) FlattenCallback(tolerance float64, fn func(pt Point)) {
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}
	tolSq := tolerance * tolerance

	var current, start Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			fn(e.Point)
			start, current = e.Point, e.Point
		case LineTo:
			fn(e.Point)
			current = e.Point
		case QuadTo:
			flattenQuad(current, e.Control, e.Point, tolSq, fn)
			current = e.Point
		case CubicTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolSq, fn)
			current = e.Point
		case Close:
			if current != start {
				fn(start)
			}
			current = start
		}
	}
}

func flattenQuad(p0, p1, p2 Point, tolSq float64, fn func(pt Point)) {
	mid := Midpoint(p0, p2)
	d := p1.Sub(mid)
	if d.X*d.X+d.Y*d.Y <= tolSq {
		fn(p2)
		return
	}
	p01 := Midpoint(p0, p1)
	p12 := Midpoint(p1, p2)
	m := Midpoint(p01, p12)
	flattenQuad(p0, p01, m, tolSq, fn)
	flattenQuad(m, p12, p2, tolSq, fn)
}

func flattenCubic(p0, p1, p2, p3 Point, tolSq float64, fn func(pt Point)) {
	// Control point deviation from the chord thirds bounds the flatness.
	u := p1.Mul(3).Sub(p0.Mul(2)).Sub(p3)
	v := p2.Mul(3).Sub(p3.Mul(2)).Sub(p0)
	flat := math.Max(u.X*u.X, v.X*v.X) + math.Max(u.Y*u.Y, v.Y*v.Y)
	if flat <= tolSq*16 {
		fn(p3)
		return
	}
	p01 := Midpoint(p0, p1)
	p12 := Midpoint(p1, p2)
	p23 := Midpoint(p2, p3)
	a := Midpoint(p01, p12)
	b := Midpoint(p12, p23)
	m := Midpoint(a, b)
	flattenCubic(p0, p01, a, m, tolSq, fn)
	flattenCubic(m, b, p23, p3, tolSq, fn)
}

// subpaths splits the flattened path into polygons, one per MoveTo.
func (p *Path) subpaths(tolerance float64) [][]Point {
	var (
		out        [][]Point
		current    []Point
		start, cur Point
	)
	tolSq := tolerance * tolerance
	emit := func(pt Point) { current = append(current, pt) }
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if len(current) > 0 {
				out = append(out, current)
			}
			current = []Point{e.Point}
			start, cur = e.Point, e.Point
		case LineTo:
			emit(e.Point)
			cur = e.Point
		case QuadTo:
			flattenQuad(cur, e.Control, e.Point, tolSq, emit)
			cur = e.Point
		case CubicTo:
			flattenCubic(cur, e.Control1, e.Control2, e.Point, tolSq, emit)
			cur = e.Point
		case Close:
			cur = start
		}
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}

// Area returns the signed area enclosed by the path. Every subpath is
// treated as closed. Positive for clockwise paths in canvas coordinates.
func (p *Path) Area() float64 {
	var area float64
	for _, poly := range p.subpaths(areaTolerance) {
		area += polygonArea(poly)
	}
	return area
}

func polygonArea(poly []Point) float64 {
	var sum float64
	n := len(poly)
	for i := 0; i < n; i++ {
		sum += poly[i].Cross(poly[(i+1)%n])
	}
	return sum / 2
}

// Winding returns the winding number of the path around pt.
func (p *Path) Winding(pt Point) int {
	winding := 0
	for _, poly := range p.subpaths(defaultTolerance) {
		n := len(poly)
		for i := 0; i < n; i++ {
			winding += lineWinding(poly[i], poly[(i+1)%n], pt)
		}
	}
	return winding
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y {
		if p1.Y > pt.Y && isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p1.Y <= pt.Y && isLeft(p0, p1, pt) < 0 {
		return -1
	}
	return 0
}

// isLeft tests whether pt is left of, on, or right of the line p0->p1.
func isLeft(p0, p1, pt Point) float64 {
	return p1.Sub(p0).Cross(pt.Sub(p0))
}

// Contains tests if a point is inside the path using the non-zero fill rule.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// BoundingBox returns the axis-aligned bounding box of the flattened path.
func (p *Path) BoundingBox() Rect {
	return BoundsOf(p.Flatten(defaultTolerance)...)
}
