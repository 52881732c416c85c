package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/config"
	"github.com/gogpu/collage/interact"
	"github.com/gogpu/collage/layout"
	"github.com/gogpu/collage/piece"
)

// ErrNoLayout is returned when a frame has no layout to draw.
var ErrNoLayout = errors.New("render: frame has no layout")

// handleBarScale is the handle bar width relative to the line size.
const handleBarScale = 3

// Frame is one snapshot of a collage to draw.
type Frame struct {
	Layout *layout.Layout
	Pieces []*piece.Piece

	// Selected is outlined and gets handle bars on its movable sides.
	Selected *piece.Piece

	// Line is the line being dragged, if any.
	Line *layout.Line
}

// FrameOf captures the current state of an interactive session.
func FrameOf(s *interact.Session, st *interact.State) Frame {
	f := Frame{Layout: s.Layout(), Pieces: s.Pieces()}
	if st != nil {
		f.Selected = st.Selected()
		f.Line = st.Line()
	}
	return f
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithInterpolator sets the resampling used for piece content.
// The default is draw.BiLinear.
func WithInterpolator(i draw.Interpolator) Option {
	return func(r *Renderer) {
		if i != nil {
			r.interp = i
		}
	}
}

// Renderer draws frames with a fixed set of draw settings.
type Renderer struct {
	cfg config.DrawConfig

	line       *image.Uniform
	selected   *image.Uniform
	handleBar  *image.Uniform
	background color.NRGBA

	interp draw.Interpolator

	// mask is the scratch clip for the piece being drawn.
	mask *image.Alpha
}

// NewRenderer creates a renderer, parsing the colours in cfg.
func NewRenderer(cfg config.DrawConfig, opts ...Option) (*Renderer, error) {
	r := &Renderer{cfg: cfg, interp: draw.BiLinear}
	for _, c := range []struct {
		field string
		value string
		dst   **image.Uniform
	}{
		{"draw.line-color", cfg.LineColor, &r.line},
		{"draw.selected-color", cfg.SelectedColor, &r.selected},
		{"draw.handle-bar-color", cfg.HandleBarColor, &r.handleBar},
	} {
		v, err := config.ParseColor(c.value)
		if err != nil {
			return nil, &config.ConfigError{Field: c.field, Message: "invalid color", Err: err}
		}
		*c.dst = image.NewUniform(v)
	}
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return nil, &config.ConfigError{Field: "draw.background", Message: "invalid color", Err: err}
	}
	r.background = bg

	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Image draws f into a new image covering the layout bounds.
func (r *Renderer) Image(f Frame) (*image.RGBA, error) {
	if f.Layout == nil {
		return nil, ErrNoLayout
	}
	b := f.Layout.Bounds()
	dst := image.NewRGBA(image.Rect(
		int(math.Floor(b.Min.X)), int(math.Floor(b.Min.Y)),
		int(math.Ceil(b.Max.X)), int(math.Ceil(b.Max.Y)),
	))
	if err := r.Render(dst, f); err != nil {
		return nil, err
	}
	return dst, nil
}

// Render draws f onto dst.
func (r *Renderer) Render(dst draw.Image, f Frame) error {
	if f.Layout == nil {
		return ErrNoLayout
	}
	l := f.Layout

	bg := r.background
	if c := l.Color(); c != 0 {
		bg = config.ARGB(c)
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for _, p := range f.Pieces {
		r.drawPiece(dst, p)
	}

	if r.cfg.DrawLines {
		for _, ln := range l.Lines() {
			strokeSegment(dst, ln.Start(), ln.End(), r.cfg.LineSize, r.line)
		}
	}
	if r.cfg.DrawOuterLines {
		for _, ln := range l.OuterLines() {
			strokeSegment(dst, ln.Start(), ln.End(), r.cfg.LineSize, r.line)
		}
	}
	if f.Line != nil {
		strokeSegment(dst, f.Line.Start(), f.Line.End(), r.cfg.LineSize, r.selected)
	}
	if f.Selected != nil {
		r.drawSelection(dst, f.Selected.Area())
	}
	return nil
}

// drawPiece draws the piece content through its matrix, clipped by the
// area path. Content that is not an image is skipped.
func (r *Renderer) drawPiece(dst draw.Image, p *piece.Piece) {
	src, ok := p.Content().(image.Image)
	if !ok {
		collage.Logger().Debug("render: piece content has no pixels", "path", p.Path())
		return
	}

	mask := r.clip(dst.Bounds())
	fillPath(mask, p.Area().Path(), image.Opaque)

	sb := src.Bounds()
	m := p.Matrix().Multiply(collage.Translate(-float64(sb.Min.X), -float64(sb.Min.Y)))
	s2d := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	r.interp.Transform(dst, s2d, src, sb, draw.Over, &draw.Options{DstMask: mask})
}

// clip returns a cleared mask with the given bounds.
func (r *Renderer) clip(b image.Rectangle) *image.Alpha {
	if r.mask == nil || r.mask.Bounds() != b {
		r.mask = image.NewAlpha(b)
		return r.mask
	}
	clear(r.mask.Pix)
	return r.mask
}

func (r *Renderer) drawSelection(dst draw.Image, a *layout.Area) {
	strokeQuad(dst, a.Corners(), r.cfg.LineSize, r.selected)
	for _, ln := range a.Lines() {
		if ln.Outer() {
			continue
		}
		if pts, ok := a.HandleBarPoints(ln); ok {
			strokeSegment(dst, pts[0], pts[1], r.cfg.LineSize*handleBarScale, r.handleBar)
		}
	}
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
