package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/config"
	"github.com/gogpu/collage/layout"
	"github.com/gogpu/collage/piece"
)

var (
	red   = color.RGBA{R: 0xFF, A: 0xFF}
	blue  = color.RGBA{B: 0xFF, A: 0xFF}
	green = color.RGBA{G: 0xFF, A: 0xFF}
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// pixels is content that reports a size but cannot be drawn.
type pixels struct{ w, h int }

func (p pixels) Bounds() image.Rectangle { return image.Rect(0, 0, p.w, p.h) }

func twoColumns(t *testing.T) (*layout.Layout, []*piece.Piece) {
	t.Helper()
	l := layout.New(layout.Straight, collage.RectXYWH(0, 0, 200, 100))
	l.AddLine(0, collage.Vertical, 0.5)
	colors := []color.Color{red, blue}
	pieces := make([]*piece.Piece, l.AreaCount())
	for i, a := range l.Areas() {
		pieces[i] = piece.New(solid(50, 50, colors[i]), a)
	}
	return l, pieces
}

func drawConfig() config.DrawConfig {
	cfg := config.Default().Draw
	cfg.LineColor = "#00FF00"
	cfg.SelectedColor = "#FF00FF"
	cfg.HandleBarColor = "#00FFFF"
	cfg.DrawLines = false
	cfg.DrawOuterLines = false
	return cfg
}

func near(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	d := func(x, y uint32) bool { return x-y < 0x0300 || y-x < 0x0300 }
	return d(ar, br) && d(ag, bg) && d(ab, bb) && d(aa, ba)
}

func TestPathBounds(t *testing.T) {
	p := collage.NewPath()
	p.MoveTo(1.5, 2.2)
	p.QuadraticTo(10.1, -3, 20, 4)
	p.LineTo(4, 9.7)
	p.Close()
	want := image.Rect(1, -3, 20, 10)
	if got := pathBounds(p); got != want {
		t.Errorf("pathBounds() = %v, want %v", got, want)
	}
	if got := pathBounds(collage.NewPath()); !got.Empty() {
		t.Errorf("pathBounds(empty) = %v, want empty", got)
	}
}

func TestFillPath(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 40, 40))
	p := collage.NewPath()
	p.Polygon(collage.Pt(10, 10), collage.Pt(30, 10), collage.Pt(30, 30), collage.Pt(10, 30))
	fillPath(mask, p, image.Opaque)

	tests := []struct {
		x, y int
		want uint8
	}{
		{15, 15, 0xFF},
		{10, 10, 0xFF},
		{29, 29, 0xFF},
		{5, 5, 0},
		{30, 15, 0},
		{35, 35, 0},
	}
	for _, tt := range tests {
		got := mask.AlphaAt(tt.x, tt.y).A
		if d := int(got) - int(tt.want); d < -2 || d > 2 {
			t.Errorf("alpha at (%d,%d) = %#x, want %#x", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderClipsPieces(t *testing.T) {
	l, pieces := twoColumns(t)
	r, err := NewRenderer(drawConfig())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	img, err := r.Image(Frame{Layout: l, Pieces: pieces})
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if got, want := img.Bounds(), image.Rect(0, 0, 200, 100); got != want {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}
	colors := []color.Color{red, blue}
	for i, a := range l.Areas() {
		c := a.Center()
		if got := img.At(int(c.X), int(c.Y)); !near(got, colors[i]) {
			t.Errorf("area %d centre = %v, want %v", i, got, colors[i])
		}
	}
}

func TestRenderLines(t *testing.T) {
	l, pieces := twoColumns(t)
	cfg := drawConfig()
	cfg.DrawLines = true
	r, err := NewRenderer(cfg)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	img, err := r.Image(Frame{Layout: l, Pieces: pieces})
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if got := img.At(100, 50); !near(got, green) {
		t.Errorf("line pixel = %v, want %v", got, green)
	}
	if got := img.At(1, 50); near(got, green) {
		t.Errorf("outer edge pixel = %v, want piece colour", got)
	}

	cfg.DrawOuterLines = true
	if r, err = NewRenderer(cfg); err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if img, err = r.Image(Frame{Layout: l, Pieces: pieces}); err != nil {
		t.Fatalf("Image: %v", err)
	}
	if got := img.At(0, 50); !near(got, green) {
		t.Errorf("outer line pixel = %v, want %v", got, green)
	}
}

func TestRenderSelection(t *testing.T) {
	l, pieces := twoColumns(t)
	r, err := NewRenderer(drawConfig())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	sel := pieces[0]
	img, err := r.Image(Frame{Layout: l, Pieces: pieces, Selected: sel})
	if err != nil {
		t.Fatalf("Image: %v", err)
	}

	magenta := color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF}
	cyan := color.RGBA{G: 0xFF, B: 0xFF, A: 0xFF}
	b := sel.Area().Bounds()
	if got := img.At(int(b.Min.X)+20, int(b.Min.Y)); !near(got, magenta) {
		t.Errorf("outline pixel = %v, want %v", got, magenta)
	}

	var side *layout.Line
	for _, ln := range sel.Area().Lines() {
		if !ln.Outer() {
			side = ln
		}
	}
	if side == nil {
		t.Fatal("selected area has no interior side")
	}
	pts, ok := sel.Area().HandleBarPoints(side)
	if !ok {
		t.Fatal("HandleBarPoints() ok = false")
	}
	mid := collage.Midpoint(pts[0], pts[1])
	if got := img.At(int(mid.X), int(mid.Y)); !near(got, cyan) {
		t.Errorf("handle bar pixel = %v, want %v", got, cyan)
	}
}

func TestRenderDraggedLine(t *testing.T) {
	l, pieces := twoColumns(t)
	r, err := NewRenderer(drawConfig())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	img, err := r.Image(Frame{Layout: l, Pieces: pieces, Line: l.Lines()[0]})
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if got, want := img.At(100, 10), (color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF}); !near(got, want) {
		t.Errorf("dragged line pixel = %v, want %v", got, want)
	}
}

func TestRenderBackground(t *testing.T) {
	l, _ := twoColumns(t)
	a := l.Area(0)
	pieces := []*piece.Piece{piece.New(pixels{10, 10}, a)}

	r, err := NewRenderer(drawConfig())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	img, err := r.Image(Frame{Layout: l, Pieces: pieces})
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if got := img.At(50, 50); !near(got, color.White) {
		t.Errorf("background = %v, want white", got)
	}

	l.SetColor(0xFF0000FF)
	if img, err = r.Image(Frame{Layout: l}); err != nil {
		t.Fatalf("Image: %v", err)
	}
	if got := img.At(50, 50); !near(got, blue) {
		t.Errorf("layout colour background = %v, want %v", got, blue)
	}
}

func TestRendererErrors(t *testing.T) {
	cfg := drawConfig()
	cfg.HandleBarColor = "teal"
	_, err := NewRenderer(cfg)
	var cerr *config.ConfigError
	if !errors.As(err, &cerr) || cerr.Field != "draw.handle-bar-color" {
		t.Fatalf("NewRenderer() error = %v, want ConfigError for draw.handle-bar-color", err)
	}
	if !errors.Is(err, config.ErrInvalidColor) {
		t.Errorf("NewRenderer() error = %v, want ErrInvalidColor", err)
	}

	r, err := NewRenderer(drawConfig())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if _, err := r.Image(Frame{}); !errors.Is(err, ErrNoLayout) {
		t.Errorf("Image(empty) error = %v, want ErrNoLayout", err)
	}
}

func TestWritePNG(t *testing.T) {
	l, pieces := twoColumns(t)
	r, err := NewRenderer(drawConfig())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	img, err := r.Image(Frame{Layout: l, Pieces: pieces})
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	got, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	if !near(got.At(150, 50), img.At(150, 50)) {
		t.Errorf("decoded pixel = %v, want %v", got.At(150, 50), img.At(150, 50))
	}
}
