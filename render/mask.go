package render

import (
	"image"
	"math"

	"github.com/jbeda/geom"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/collage"
)

// pathBounds returns the pixel rectangle covering every point and control
// point of p.
func pathBounds(p *collage.Path) image.Rectangle {
	var (
		r     geom.Rect
		empty = true
	)
	add := func(pts ...collage.Point) {
		for _, pt := range pts {
			c := geom.Coord{X: pt.X, Y: pt.Y}
			if empty {
				r = geom.Rect{Min: c, Max: c}
				empty = false
				continue
			}
			r.ExpandToContainCoord(c)
		}
	}
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case collage.MoveTo:
			add(e.Point)
		case collage.LineTo:
			add(e.Point)
		case collage.QuadTo:
			add(e.Control, e.Point)
		case collage.CubicTo:
			add(e.Control1, e.Control2, e.Point)
		}
	}
	if empty {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	)
}

// fillPath rasterises p and composites src onto dst through the coverage.
// Only the part of dst covered by the path bounds is touched.
func fillPath(dst draw.Image, p *collage.Path, src image.Image) {
	r := pathBounds(p).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	var z vector.Rasterizer
	z.Reset(r.Dx(), r.Dy())
	z.DrawOp = draw.Over

	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	at := func(q collage.Point) (float32, float32) {
		return float32(q.X - ox), float32(q.Y - oy)
	}

	open := false
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case collage.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(at(e.Point))
			open = true
		case collage.LineTo:
			z.LineTo(at(e.Point))
		case collage.QuadTo:
			cx, cy := at(e.Control)
			x, y := at(e.Point)
			z.QuadTo(cx, cy, x, y)
		case collage.CubicTo:
			c1x, c1y := at(e.Control1)
			c2x, c2y := at(e.Control2)
			x, y := at(e.Point)
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case collage.Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(dst, r, src, r.Min)
}

// strokeSegment draws the segment a-b as a filled band of the given width.
func strokeSegment(dst draw.Image, a, b collage.Point, width float64, src image.Image) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 || width <= 0 {
		return
	}
	n := collage.Pt(-d.Y/l, d.X/l).Mul(width / 2)
	p := collage.NewPath()
	p.Polygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
	fillPath(dst, p, src)
}

// strokeQuad outlines the closed quad q.
func strokeQuad(dst draw.Image, q [4]collage.Point, width float64, src image.Image) {
	for i := range q {
		strokeSegment(dst, q[i], q[(i+1)%4], width, src)
	}
}
