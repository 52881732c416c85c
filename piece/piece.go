package piece

import (
	"image"
	"math"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/layout"
)

// Content is the image-like handle a piece displays. Every image.Image
// satisfies it.
type Content interface {
	Bounds() image.Rectangle
}

// Piece is content placed in one area of a layout.
//
// The matrix maps content coordinates, with the origin at the content's
// top-left corner, to canvas coordinates. A piece is not safe for
// concurrent use.
type Piece struct {
	content Content
	area    *layout.Area
	path    string

	matrix collage.Matrix
	prev   collage.Matrix

	prevMove collage.Point

	clock    clockwork.Clock
	duration time.Duration
	anim     *animation
}

// New places content in area. Unless [WithMatrix] is given the content is
// center-cropped into the area.
func New(content Content, area *layout.Area, opts ...Option) *Piece {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &Piece{
		content:  content,
		area:     area,
		path:     o.path,
		clock:    o.clock,
		duration: o.duration,
		matrix:   collage.Identity(),
	}
	if o.matrix != nil {
		p.Set(*o.matrix)
	} else {
		p.Set(p.CenterCrop())
	}
	return p
}

// CenterCropMatrix returns the matrix that centers a width x height content
// on area and scales it uniformly so that it covers area. extra enlarges
// the covered dimension by that many units.
func CenterCropMatrix(area collage.Rect, width, height, extra float64) collage.Matrix {
	c := area.Center()
	m := collage.Translate(c.X-width/2, c.Y-height/2)

	var scale float64
	if width*area.Height() > area.Width()*height {
		scale = (area.Height() + extra) / height
	} else {
		scale = (area.Width() + extra) / width
	}
	return m.PostScale(scale, scale, c)
}

// CenterCrop returns the center-crop matrix for the piece's content in its
// current area.
func (p *Piece) CenterCrop() collage.Matrix {
	return CenterCropMatrix(p.area.Bounds(), p.Width(), p.Height(), 0)
}

// Content returns the displayed content.
func (p *Piece) Content() Content { return p.content }

// SetContent replaces the content and keeps the matrix.
func (p *Piece) SetContent(c Content) { p.content = c }

// Path returns the content identifier.
func (p *Piece) Path() string { return p.path }

// SetPath sets the content identifier.
func (p *Piece) SetPath(path string) { p.path = path }

// Area returns the area the piece occupies.
func (p *Piece) Area() *layout.Area { return p.area }

// SetArea moves the piece to another area without touching its matrix.
func (p *Piece) SetArea(a *layout.Area) { p.area = a }

// Width returns the content width in pixels.
func (p *Piece) Width() float64 { return float64(p.content.Bounds().Dx()) }

// Height returns the content height in pixels.
func (p *Piece) Height() float64 { return float64(p.content.Bounds().Dy()) }

// Matrix returns the current content-to-canvas matrix.
func (p *Piece) Matrix() collage.Matrix { return p.matrix }

// Set replaces the matrix and, if the content no longer covers the area,
// translates it back at once.
func (p *Piece) Set(m collage.Matrix) {
	p.matrix = m
	p.MoveToFillArea(true)
}

// SetDuration sets the animation duration.
func (p *Piece) SetDuration(d time.Duration) { p.duration = max(d, 0) }

// Contains reports whether pt lies inside the piece's area.
func (p *Piece) Contains(pt collage.Point) bool { return p.area.Contains(pt) }

// HasLine reports whether l bounds the piece's area.
func (p *Piece) HasLine(l *layout.Line) bool { return p.area.HasLine(l) }

func (p *Piece) contentRect() collage.Rect {
	return collage.RectXYWH(0, 0, p.Width(), p.Height())
}

// ContentBounds returns the canvas bounds of the transformed content.
func (p *Piece) ContentBounds() collage.Rect {
	return p.matrix.MapRect(p.contentRect())
}

// ContentCorners returns the transformed content corners in the order
// left-top, right-top, right-bottom, left-bottom.
func (p *Piece) ContentCorners() [4]collage.Point {
	c := p.contentRect().Corners()
	for i := range c {
		c[i] = p.matrix.TransformPoint(c[i])
	}
	return c
}

// Scale returns the uniform scale of the matrix.
func (p *Piece) Scale() float64 { return p.matrix.ScaleFactor() }

// Angle returns the rotation of the matrix in degrees.
func (p *Piece) Angle() float64 { return p.matrix.Angle() }

// BandScale returns the matrix component the zoom band is checked
// against: A, or B when the content is turned by a quarter so that A is
// close to zero.
func (p *Piece) BandScale() float64 {
	s := math.Abs(p.matrix.A)
	if int(s) == 0 {
		s = math.Abs(p.matrix.B)
	}
	return s
}

// IsFilled reports whether the transformed content covers the area.
func (p *Piece) IsFilled() bool {
	b := p.ContentBounds()
	return !(b.Min.X > p.area.Left() || b.Min.Y > p.area.Top() ||
		b.Max.X < p.area.Right() || b.Max.Y < p.area.Bottom())
}

// CanFill reports whether the current scale is large enough to cover the
// area once the content is moved into place.
func (p *Piece) CanFill() bool {
	return p.Scale() >= p.MinimumFillScale()
}

// MinimumFillScale returns the smallest uniform scale at which the content,
// in its current rotation, can cover the area.
func (p *Piece) MinimumFillScale() float64 {
	unrotate := collage.Rotate(-p.Angle() * math.Pi / 180)
	c := p.area.Bounds().Corners()
	for i := range c {
		c[i] = unrotate.TransformPoint(c[i])
	}
	r := trapToRect(c)
	return max(r.Width()/p.Width(), r.Height()/p.Height())
}

// trapToRect bounds pts after rounding each coordinate to one decimal, so
// rotation noise does not inflate the fill scale.
func trapToRect(pts [4]collage.Point) collage.Rect {
	for i := range pts {
		pts[i] = collage.Pt(math.Round(pts[i].X*10)/10, math.Round(pts[i].Y*10)/10)
	}
	return collage.BoundsOf(pts[:]...)
}

// Record snapshots the matrix. Translate and the zoom methods apply their
// transforms on top of the snapshot.
func (p *Piece) Record() { p.prev = p.matrix }

// Translate sets the matrix to the snapshot moved by (dx, dy).
func (p *Piece) Translate(dx, dy float64) {
	p.matrix = p.prev.PostTranslate(dx, dy)
}

// Zoom sets the matrix to the snapshot scaled about mid.
func (p *Piece) Zoom(sx, sy float64, mid collage.Point) {
	p.matrix = p.prev.PostScale(sx, sy, mid)
}

// ZoomAndTranslate sets the matrix to the snapshot moved by (dx, dy), then
// scaled about mid.
func (p *Piece) ZoomAndTranslate(sx, sy float64, mid collage.Point, dx, dy float64) {
	p.matrix = p.prev.PostTranslate(dx, dy).PostScale(sx, sy, mid)
}

// FlipHorizontal mirrors the content about the vertical axis through the
// area center.
func (p *Piece) FlipHorizontal() {
	p.matrix = p.matrix.PostScale(-1, 1, p.area.Center())
	p.refill()
}

// FlipVertical mirrors the content about the horizontal axis through the
// area center.
func (p *Piece) FlipVertical() {
	p.matrix = p.matrix.PostScale(1, -1, p.area.Center())
	p.refill()
}

// Rotate turns the content by degrees about the area center.
func (p *Piece) Rotate(degrees float64) {
	p.matrix = p.matrix.PostRotate(degrees, p.area.Center())
	p.refill()
}

func (p *Piece) refill() {
	if !p.IsFilled() {
		p.FillArea(true)
	}
}

// fillOffset returns the translation that moves the edges of bounds onto
// the area edges it falls short of. When both edges of an axis fall short
// the right or bottom edge wins.
func (p *Piece) fillOffset(b collage.Rect) collage.Point {
	var off collage.Point
	if b.Min.X > p.area.Left() {
		off.X = p.area.Left() - b.Min.X
	}
	if b.Min.Y > p.area.Top() {
		off.Y = p.area.Top() - b.Min.Y
	}
	if b.Max.X < p.area.Right() {
		off.X = p.area.Right() - b.Max.X
	}
	if b.Max.Y < p.area.Bottom() {
		off.Y = p.area.Bottom() - b.Max.Y
	}
	return off
}

// MoveToFillArea translates the content so that it covers the area
// without changing its scale. It is a no-op when the area is covered.
func (p *Piece) MoveToFillArea(quick bool) {
	if p.IsFilled() {
		return
	}
	p.Record()
	off := p.fillOffset(p.ContentBounds())
	if quick {
		p.stop()
		p.matrix = p.matrix.PostTranslate(off.X, off.Y)
		return
	}
	p.animate(func(f float64) {
		p.Translate(off.X*f, off.Y*f)
	})
}

// FillArea scales the content about its center to the minimum fill scale
// and translates it to cover the area. It is a no-op when the area is
// covered.
func (p *Piece) FillArea(quick bool) {
	if p.IsFilled() {
		return
	}
	p.Record()

	start := p.Scale()
	end := p.MinimumFillScale()
	mid := p.ContentBounds().Center()

	target := p.matrix.PostScale(end/start, end/start, mid)
	off := p.fillOffset(target.MapRect(p.contentRect()))

	apply := func(f float64) {
		s := (start + (end-start)*f) / start
		p.Zoom(s, s, mid)
		p.matrix = p.matrix.PostTranslate(off.X*f, off.Y*f)
	}
	if quick {
		p.stop()
		apply(1)
		return
	}
	p.animate(apply)
}

// SetPreviousMove sets the pointer position UpdateWith measures from.
func (p *Piece) SetPreviousMove(pt collage.Point) { p.prevMove = pt }

// UpdateWith follows a drag of line, one of the lines bounding the piece's
// area, to pointer position pt. The content moves by half the pointer
// delta along the line's axis and grows slightly whenever it can no longer
// cover the area.
func (p *Piece) UpdateWith(pt collage.Point, line *layout.Line) {
	off := pt.Sub(p.prevMove).Mul(0.5)

	if !p.CanFill() {
		p.matrix = p.matrix.PostScale(1.01, 1.01, p.area.Center())
		p.Record()
		p.prevMove = pt
	}

	if line.Direction() == collage.Horizontal {
		p.Translate(0, off.Y)
	} else {
		p.Translate(off.X, 0)
	}

	if move := p.fillOffset(p.ContentBounds()); move != (collage.Point{}) {
		p.prevMove = pt
		p.Record()
	}
}
