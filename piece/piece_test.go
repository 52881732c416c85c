package piece

import (
	"image"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jonboulle/clockwork"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/layout"
)

const epsilon = 1e-9

var approx = cmpopts.EquateApprox(0, 1e-9)

// size is a content stub with the given dimensions.
type size struct{ w, h int }

func (s size) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }

func square(side float64) *layout.Area {
	return layout.New(layout.Straight, collage.RectXYWH(0, 0, side, side)).Area(0)
}

func TestCenterCrop(t *testing.T) {
	tests := []struct {
		name      string
		area      collage.Rect
		w, h      float64
		wantScale float64
	}{
		{"tall content", collage.RectXYWH(0, 0, 100, 100), 50, 200, 2},
		{"wide content", collage.RectXYWH(0, 0, 100, 100), 400, 50, 2},
		{"exact", collage.RectXYWH(10, 10, 100, 50), 200, 100, 0.5},
		{"wide area", collage.RectXYWH(0, 0, 300, 100), 100, 100, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CenterCropMatrix(tt.area, tt.w, tt.h, 0)
			if got := m.ScaleFactor(); math.Abs(got-tt.wantScale) > epsilon {
				t.Errorf("scale = %v, want %v", got, tt.wantScale)
			}
			b := m.MapRect(collage.RectXYWH(0, 0, tt.w, tt.h))
			if !b.ContainsRect(tt.area) {
				t.Errorf("content %v does not cover area %v", b, tt.area)
			}
			if diff := cmp.Diff(tt.area.Center(), b.Center(), approx); diff != "" {
				t.Errorf("content not centered (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewCentersContent(t *testing.T) {
	p := New(size{50, 200}, square(100), WithPath("a.png"))
	if got := p.Scale(); math.Abs(got-2) > epsilon {
		t.Errorf("Scale() = %v, want 2", got)
	}
	if !p.IsFilled() {
		t.Errorf("IsFilled() = false, bounds %v", p.ContentBounds())
	}
	if p.Path() != "a.png" {
		t.Errorf("Path() = %q", p.Path())
	}
}

func TestNewWithMatrixMovesToFill(t *testing.T) {
	p := New(size{100, 100}, square(100), WithMatrix(collage.Translate(10, -5)))
	want := collage.Identity()
	if diff := cmp.Diff(want, p.Matrix(), approx); diff != "" {
		t.Errorf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestMinimumFillScale(t *testing.T) {
	p := New(size{100, 100}, square(100))
	if got := p.MinimumFillScale(); math.Abs(got-1) > epsilon {
		t.Errorf("MinimumFillScale() = %v, want 1", got)
	}
	if !p.CanFill() {
		t.Error("CanFill() = false")
	}

	p.Rotate(45)
	if got := p.Angle(); math.Abs(got-45) > 1e-6 {
		t.Errorf("Angle() = %v, want 45", got)
	}
	if got, want := p.MinimumFillScale(), math.Sqrt2; math.Abs(got-want) > 1e-3 {
		t.Errorf("MinimumFillScale() after rotation = %v, want %v", got, want)
	}
	if !p.IsFilled() {
		t.Error("rotation left a gap")
	}
}

func TestBandScale(t *testing.T) {
	p := New(size{100, 100}, square(100))
	p.Record()
	p.Zoom(2, 2, collage.Pt(50, 50))
	if got := p.BandScale(); math.Abs(got-2) > epsilon {
		t.Errorf("BandScale() = %v, want 2", got)
	}
	p.Rotate(90)
	if got := p.BandScale(); math.Abs(got-2) > 1e-6 {
		t.Errorf("BandScale() after quarter turn = %v, want 2", got)
	}
}

func TestFillAreaQuick(t *testing.T) {
	p := New(size{100, 100}, square(100))
	p.Record()
	p.Zoom(0.5, 0.5, collage.Pt(50, 50))
	if p.IsFilled() {
		t.Fatal("shrunk content still fills")
	}
	if p.CanFill() {
		t.Error("CanFill() = true at half scale")
	}
	p.FillArea(true)
	if p.Animating() {
		t.Error("quick fill started an animation")
	}
	if diff := cmp.Diff(collage.Identity(), p.Matrix(), approx); diff != "" {
		t.Errorf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestFillAreaAnimated(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p := New(size{100, 100}, square(100), WithClock(clock))
	p.Record()
	p.Zoom(0.5, 0.5, collage.Pt(50, 50))

	p.FillArea(false)
	if !p.Animating() {
		t.Fatal("Animating() = false after FillArea")
	}
	if got := p.Scale(); math.Abs(got-0.5) > epsilon {
		t.Errorf("scale before first tick = %v, want 0.5", got)
	}

	clock.Advance(150 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("animation ended halfway")
	}
	// Decelerated: three quarters of the way at half time.
	if got := p.Scale(); math.Abs(got-0.875) > epsilon {
		t.Errorf("scale at half time = %v, want 0.875", got)
	}

	clock.Advance(150 * time.Millisecond)
	if p.Tick() {
		t.Error("animation still running after its duration")
	}
	if got := p.Scale(); math.Abs(got-1) > epsilon {
		t.Errorf("final scale = %v, want 1", got)
	}
	if p.Animating() {
		t.Error("Animating() = true after the end")
	}
}

func TestMoveToFillArea(t *testing.T) {
	clock := clockwork.NewFakeClock()
	p := New(size{100, 100}, square(100), WithClock(clock))
	p.Record()
	p.Translate(10, 0)

	p.MoveToFillArea(false)
	clock.Advance(150 * time.Millisecond)
	p.Tick()
	if got := p.Matrix().C; math.Abs(got-2.5) > epsilon {
		t.Errorf("x offset at half time = %v, want 2.5", got)
	}

	p.Finish()
	if got := p.Matrix().C; math.Abs(got) > epsilon {
		t.Errorf("x offset after Finish = %v, want 0", got)
	}
	if p.Animating() {
		t.Error("Animating() = true after Finish")
	}
}

func TestMoveToFillAreaKeepsScale(t *testing.T) {
	p := New(size{100, 100}, square(100), WithDuration(0))
	p.Record()
	p.Zoom(2, 2, collage.Pt(0, 0))
	p.Record()
	p.Translate(-150, 30)

	p.MoveToFillArea(false)
	if p.Animating() {
		t.Error("zero duration started an animation")
	}
	if !p.IsFilled() {
		t.Errorf("bounds %v do not cover the area", p.ContentBounds())
	}
	if got := p.Scale(); math.Abs(got-2) > epsilon {
		t.Errorf("Scale() = %v, want 2", got)
	}
}

func TestFlip(t *testing.T) {
	p := New(size{100, 100}, square(100))
	p.FlipHorizontal()
	want := collage.Matrix{A: -1, C: 100, E: 1}
	if diff := cmp.Diff(want, p.Matrix(), approx); diff != "" {
		t.Errorf("FlipHorizontal (-want +got):\n%s", diff)
	}
	p.FlipVertical()
	want = collage.Matrix{A: -1, C: 100, E: -1, F: 100}
	if diff := cmp.Diff(want, p.Matrix(), approx); diff != "" {
		t.Errorf("FlipVertical (-want +got):\n%s", diff)
	}
}

func TestUpdateWith(t *testing.T) {
	l := layout.New(layout.Straight, collage.RectXYWH(0, 0, 200, 100))
	l.AddLine(0, collage.Vertical, 0.5)
	line := l.Lines()[0]

	p := New(size{100, 100}, l.Area(0))
	p.Record()
	p.SetPreviousMove(collage.Pt(100, 50))

	line.PrepareMove()
	if !line.Move(20, 80) {
		t.Fatal("line move rejected")
	}
	l.Update()

	p.UpdateWith(collage.Pt(120, 50), line)
	if got := p.Scale(); math.Abs(got-1.01) > epsilon {
		t.Errorf("Scale() = %v, want 1.01", got)
	}
	b := p.ContentBounds()
	if math.Abs(b.Min.X-9.4) > 1e-6 || math.Abs(b.Min.Y-(-0.5)) > 1e-6 {
		t.Errorf("content bounds = %v, want min (9.4, -0.5)", b)
	}
}

func TestSetContentKeepsMatrix(t *testing.T) {
	p := New(size{100, 100}, square(100))
	m := p.Matrix()
	p.SetContent(size{300, 30})
	if diff := cmp.Diff(m, p.Matrix()); diff != "" {
		t.Errorf("matrix changed (-want +got):\n%s", diff)
	}
	if p.Width() != 300 || p.Height() != 30 {
		t.Errorf("size = %vx%v", p.Width(), p.Height())
	}
}
