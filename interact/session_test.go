package interact

import (
	"errors"
	"image"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jonboulle/clockwork"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/config"
	"github.com/gogpu/collage/layout"
	"github.com/gogpu/collage/piece"
)

const epsilon = 1e-9

var approx = cmpopts.EquateApprox(0, 1e-9)

// img is named content with the given dimensions.
type img struct {
	name string
	w, h int
}

func (i img) Bounds() image.Rectangle { return image.Rect(0, 0, i.w, i.h) }

func name(p *piece.Piece) string { return p.Content().(img).name }

type recorder struct {
	selected []int
	clicked  int
	swapped  [][2]int
}

func (r *recorder) listener() Listener {
	return Listener{
		PieceSelected: func(_ *piece.Piece, i int) { r.selected = append(r.selected, i) },
		PieceClicked:  func() { r.clicked++ },
		Swapped:       func(a, b int) { r.swapped = append(r.swapped, [2]int{a, b}) },
	}
}

// newSession returns a session over two 100x100 areas side by side, each
// holding a 100x100 piece.
func newSession(t *testing.T, opts ...Option) (*Session, *clockwork.FakeClock, *recorder) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	rec := &recorder{}
	l := layout.New(layout.Straight, collage.RectXYWH(0, 0, 200, 100))
	l.AddLine(0, collage.Vertical, 0.5)

	opts = append([]Option{WithClock(clock), WithListener(rec.listener())}, opts...)
	s := NewSession(l, opts...)
	for _, n := range []string{"a", "b"} {
		if _, err := s.AddPiece(img{n, 100, 100}, n+".png"); err != nil {
			t.Fatalf("AddPiece(%s): %v", n, err)
		}
	}
	return s, clock, rec
}

func down(pts ...collage.Point) Event        { return Event{Action: Down, Pointers: pts} }
func pointerDown(pts ...collage.Point) Event { return Event{Action: PointerDown, Pointers: pts} }
func move(pts ...collage.Point) Event        { return Event{Action: Move, Pointers: pts} }
func up(pts ...collage.Point) Event          { return Event{Action: Up, Pointers: pts} }

func TestAddPieceFull(t *testing.T) {
	s, _, _ := newSession(t)
	if _, err := s.AddPiece(img{"c", 10, 10}, ""); !errors.Is(err, ErrLayoutFull) {
		t.Errorf("third AddPiece error = %v, want ErrLayoutFull", err)
	}
	if len(s.Pieces()) != 2 {
		t.Errorf("len(Pieces()) = %d, want 2", len(s.Pieces()))
	}
}

func TestAddPieceWithMatrix(t *testing.T) {
	l := layout.New(layout.Straight, collage.RectXYWH(0, 0, 100, 100))
	s := NewSession(l)
	p, err := s.AddPieceWithMatrix(img{"a", 50, 50}, collage.Scale(3, 3), "a.png")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Scale(); math.Abs(got-3) > epsilon {
		t.Errorf("Scale() = %v, want 3", got)
	}
	if p.Path() != "a.png" {
		t.Errorf("Path() = %q", p.Path())
	}
}

func TestDragThenSwap(t *testing.T) {
	s, clock, rec := newSession(t)
	var st State

	Dispatch(s, &st, down(collage.Pt(50, 50)))
	if st.Mode != Drag {
		t.Fatalf("Mode = %v, want Drag", st.Mode)
	}
	if st.Selected() != s.Piece(0) {
		t.Fatal("piece 0 not held")
	}

	clock.Advance(499 * time.Millisecond)
	s.Tick()
	if st.Mode != Drag {
		t.Fatalf("Mode before the delay = %v, want Drag", st.Mode)
	}
	clock.Advance(time.Millisecond)
	s.Tick()
	if st.Mode != Swap {
		t.Fatalf("Mode after the delay = %v, want Swap", st.Mode)
	}

	Dispatch(s, &st, move(collage.Pt(150, 50)))
	if st.Target() != s.Piece(1) {
		t.Fatal("piece 1 is not the swap target")
	}
	Dispatch(s, &st, up(collage.Pt(150, 50)))

	if st.Mode != None {
		t.Errorf("Mode after release = %v, want None", st.Mode)
	}
	if name(s.Piece(0)) != "b" || name(s.Piece(1)) != "a" {
		t.Errorf("contents = %s, %s; want b, a", name(s.Piece(0)), name(s.Piece(1)))
	}
	if s.Piece(0).Path() != "b.png" {
		t.Errorf("path not swapped: %q", s.Piece(0).Path())
	}
	if diff := cmp.Diff([][2]int{{0, 1}}, rec.swapped); diff != "" {
		t.Errorf("swap notifications (-want +got):\n%s", diff)
	}
	if !s.Piece(0).IsFilled() || !s.Piece(1).IsFilled() {
		t.Error("swapped pieces leave gaps")
	}
	if st.Selected() != nil {
		t.Error("selection kept after swap")
	}
}

func TestMovementCancelsSwap(t *testing.T) {
	s, clock, rec := newSession(t)
	var st State

	Dispatch(s, &st, down(collage.Pt(50, 50)))
	Dispatch(s, &st, move(collage.Pt(70, 50)))
	if got := s.Piece(0).Matrix().C; math.Abs(got-20) > epsilon {
		t.Errorf("dragged x offset = %v, want 20", got)
	}

	clock.Advance(time.Second)
	if s.Tick() {
		t.Error("Tick() reports pending work after the timer was cancelled")
	}
	if st.Mode != Drag {
		t.Fatalf("Mode = %v, want Drag", st.Mode)
	}

	Dispatch(s, &st, up(collage.Pt(70, 50)))
	if !s.Animating() {
		t.Fatal("released piece is not moving back")
	}
	clock.Advance(300 * time.Millisecond)
	s.Tick()
	if diff := cmp.Diff(collage.Identity(), s.Piece(0).Matrix(), approx); diff != "" {
		t.Errorf("piece not refitted (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0}, rec.selected); diff != "" {
		t.Errorf("selection notifications (-want +got):\n%s", diff)
	}
}

func TestSmallMovementKeepsSwap(t *testing.T) {
	s, clock, _ := newSession(t)
	var st State
	Dispatch(s, &st, down(collage.Pt(50, 50)))
	Dispatch(s, &st, move(collage.Pt(58, 45)))
	clock.Advance(500 * time.Millisecond)
	s.Tick()
	if st.Mode != Swap {
		t.Errorf("Mode = %v, want Swap", st.Mode)
	}
}

func TestSwapDisabled(t *testing.T) {
	s, clock, _ := newSession(t)
	s.SetCanSwap(false)
	var st State
	Dispatch(s, &st, down(collage.Pt(50, 50)))
	clock.Advance(time.Second)
	s.Tick()
	if st.Mode != Drag {
		t.Errorf("Mode = %v, want Drag", st.Mode)
	}
}

func TestReleaseCancelsTimer(t *testing.T) {
	s, clock, _ := newSession(t)
	var st State
	Dispatch(s, &st, down(collage.Pt(50, 50)))
	Dispatch(s, &st, up(collage.Pt(50, 50)))
	Dispatch(s, &st, Event{Action: Cancel, Pointers: []collage.Point{{X: 50, Y: 50}}})
	if s.timers.pending() != 0 {
		t.Errorf("pending timers = %d after release", s.timers.pending())
	}
	clock.Advance(time.Second)
	s.Tick()
	if st.Mode != None {
		t.Errorf("Mode = %v, want None", st.Mode)
	}
}

func TestMoveLine(t *testing.T) {
	s, _, _ := newSession(t)
	var st State
	line := s.Layout().Lines()[0]

	Dispatch(s, &st, down(collage.Pt(105, 50)))
	if st.Mode != MoveLine || st.Line() != line {
		t.Fatalf("Mode = %v, line %p; want MoveLine on %p", st.Mode, st.Line(), line)
	}

	Dispatch(s, &st, move(collage.Pt(125, 50)))
	if got := line.Start().X; math.Abs(got-120) > epsilon {
		t.Errorf("line x = %v, want 120", got)
	}
	if got := s.Layout().Area(0).Width(); math.Abs(got-120) > epsilon {
		t.Errorf("left area width = %v, want 120", got)
	}
	if got := s.Piece(0).Area().Width(); math.Abs(got-120) > epsilon {
		t.Errorf("piece 0 area width = %v, want 120", got)
	}

	// Past the margin: rejected, line stays.
	Dispatch(s, &st, move(collage.Pt(135, 50)))
	if got := line.Start().X; math.Abs(got-120) > epsilon {
		t.Errorf("line x after rejected move = %v, want 120", got)
	}

	Dispatch(s, &st, up(collage.Pt(135, 50)))
	if st.Mode != None || st.Line() != nil {
		t.Errorf("after release Mode = %v, line = %v", st.Mode, st.Line())
	}
}

func TestMoveLineDisabled(t *testing.T) {
	s, _, _ := newSession(t, WithFlags(Flags{CanDrag: true}))
	var st State
	Dispatch(s, &st, down(collage.Pt(99, 50)))
	if st.Mode != Drag {
		t.Errorf("Mode = %v, want Drag", st.Mode)
	}
}

func TestZoom(t *testing.T) {
	s, _, rec := newSession(t)
	var st State
	p := s.Piece(0)

	Dispatch(s, &st, down(collage.Pt(50, 50)))
	Dispatch(s, &st, pointerDown(collage.Pt(50, 50), collage.Pt(60, 50)))
	if st.Mode != Zoom {
		t.Fatalf("Mode = %v, want Zoom", st.Mode)
	}
	Dispatch(s, &st, move(collage.Pt(50, 50), collage.Pt(70, 50)))
	if got := p.Scale(); math.Abs(got-2) > epsilon {
		t.Errorf("Scale() = %v, want 2", got)
	}
	if got := p.Matrix().TransformPoint(collage.Pt(55, 50)); math.Abs(got.X-55) > epsilon {
		t.Errorf("pinch midpoint moved to %v", got)
	}
	Dispatch(s, &st, up(collage.Pt(50, 50)))
	if diff := cmp.Diff([]int{0}, rec.selected); diff != "" {
		t.Errorf("selection notifications (-want +got):\n%s", diff)
	}
	if rec.clicked != 0 {
		t.Errorf("pinch counted as %d clicks", rec.clicked)
	}
}

func TestZoomBand(t *testing.T) {
	s, _, _ := newSession(t)
	var st State
	p := s.Piece(0)
	p.Record()
	p.Zoom(5, 5, collage.Pt(50, 50))

	Dispatch(s, &st, down(collage.Pt(50, 50)))
	Dispatch(s, &st, pointerDown(collage.Pt(50, 50), collage.Pt(60, 50)))
	Dispatch(s, &st, move(collage.Pt(50, 50), collage.Pt(70, 50)))
	if got := p.Scale(); math.Abs(got-5) > epsilon {
		t.Errorf("zoomed past the band: Scale() = %v", got)
	}
	Dispatch(s, &st, move(collage.Pt(50, 50), collage.Pt(55, 50)))
	if got := p.Scale(); math.Abs(got-2.5) > epsilon {
		t.Errorf("zoom back into the band: Scale() = %v, want 2.5", got)
	}
}

func TestZoomOutRefills(t *testing.T) {
	s, clock, _ := newSession(t)
	var st State
	p := s.Piece(0)

	Dispatch(s, &st, down(collage.Pt(50, 50)))
	Dispatch(s, &st, pointerDown(collage.Pt(50, 50), collage.Pt(60, 50)))
	Dispatch(s, &st, move(collage.Pt(50, 50), collage.Pt(55, 50)))
	if p.IsFilled() {
		t.Fatal("half-size piece still fills")
	}
	Dispatch(s, &st, up(collage.Pt(50, 50)))
	clock.Advance(300 * time.Millisecond)
	s.Tick()
	if !p.IsFilled() {
		t.Errorf("piece not refilled, bounds %v", p.ContentBounds())
	}
}

func TestTapTogglesSelection(t *testing.T) {
	s, _, rec := newSession(t)
	var st State

	Dispatch(s, &st, down(collage.Pt(50, 50)))
	Dispatch(s, &st, up(collage.Pt(51, 50)))
	if st.Selected() != s.Piece(0) {
		t.Fatal("first tap did not select")
	}

	Dispatch(s, &st, down(collage.Pt(50, 50)))
	Dispatch(s, &st, up(collage.Pt(50, 51)))
	if st.Selected() != nil {
		t.Error("second tap did not deselect")
	}
	if rec.clicked != 2 {
		t.Errorf("clicks = %d, want 2", rec.clicked)
	}
	if diff := cmp.Diff([]int{0}, rec.selected); diff != "" {
		t.Errorf("selection notifications (-want +got):\n%s", diff)
	}
}

func TestAnimationBlocksGestures(t *testing.T) {
	s, _, _ := newSession(t)
	var st State
	p := s.Piece(1)
	p.Record()
	p.Translate(20, 0)
	p.MoveToFillArea(false)

	Dispatch(s, &st, down(collage.Pt(50, 50)))
	if st.Mode != None {
		t.Errorf("Mode = %v while animating, want None", st.Mode)
	}
}

func TestDragDisabled(t *testing.T) {
	s, _, _ := newSession(t)
	s.SetCanDrag(false)
	var st State
	Dispatch(s, &st, down(collage.Pt(150, 50)))
	if st.Mode != None {
		t.Errorf("Mode = %v, want None", st.Mode)
	}
	if st.Selected() != s.Piece(1) {
		t.Error("piece under the pointer not selected")
	}
}

func TestFlagsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Flags.CanZoom = false
	l := layout.New(layout.Straight, collage.RectXYWH(0, 0, 10, 10))
	s := NewSession(l, WithConfig(cfg))
	want := Flags{CanDrag: true, CanMoveLine: true, CanSwap: true}
	if s.Flags() != want {
		t.Errorf("Flags() = %+v, want %+v", s.Flags(), want)
	}
}

func TestHostOperations(t *testing.T) {
	s, _, rec := newSession(t)
	var st State

	s.Nudge(&st, 1, 0)
	if got := s.Piece(0).Matrix().C; math.Abs(got-5) > epsilon {
		t.Errorf("nudge without selection: C = %v, want 5", got)
	}

	if s.Select(&st, 5) {
		t.Error("Select(5) succeeded")
	}
	if !s.Select(&st, 1) {
		t.Fatal("Select(1) failed")
	}
	if diff := cmp.Diff([]int{1}, rec.selected); diff != "" {
		t.Errorf("selection notifications (-want +got):\n%s", diff)
	}

	s.ZoomIn(&st)
	if got := s.Piece(1).Scale(); math.Abs(got-1.1) > epsilon {
		t.Errorf("ZoomIn: Scale() = %v, want 1.1", got)
	}
	s.ZoomOut(&st)
	if got := s.Piece(1).Scale(); math.Abs(got-0.99) > epsilon {
		t.Errorf("ZoomOut: Scale() = %v, want 0.99", got)
	}

	s.Rotate(&st, 90)
	if got := s.Piece(1).Angle(); math.Abs(got-90) > 1e-6 {
		t.Errorf("Rotate: Angle() = %v, want 90", got)
	}

	if !s.Replace(&st, img{"c", 200, 100}, "c.png") {
		t.Fatal("Replace with a selection failed")
	}
	if name(s.Piece(1)) != "c" || s.Piece(1).Path() != "c.png" {
		t.Error("content not replaced")
	}
	if got := s.Piece(1).Scale(); math.Abs(got-1) > epsilon {
		t.Errorf("replaced piece Scale() = %v, want 1", got)
	}
}

func TestSetPiecePadding(t *testing.T) {
	s, _, _ := newSession(t)
	s.SetPiecePadding(10)
	if got := s.Layout().Padding(); got != 10 {
		t.Errorf("Padding() = %v", got)
	}
	for i, p := range s.Pieces() {
		if !p.IsFilled() {
			t.Errorf("piece %d leaves a gap", i)
		}
	}
	s.SetPieceRadian(8)
	if got := s.Layout().Area(0).Radius(); got != 8 {
		t.Errorf("area radius = %v, want 8", got)
	}
}

func TestResize(t *testing.T) {
	s, _, _ := newSession(t)
	if err := s.Resize(nil, collage.RectXYWH(0, 0, 400, 200)); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	l := s.Layout()
	if got := l.Lines()[0].Start().X; math.Abs(got-200) > epsilon {
		t.Errorf("line x = %v, want 200", got)
	}
	for i, p := range s.Pieces() {
		if p.Area() != l.Area(i) {
			t.Errorf("piece %d not bound to area %d", i, i)
		}
		if got := p.Scale(); math.Abs(got-2) > epsilon {
			t.Errorf("piece %d Scale() = %v, want 2", i, got)
		}
	}
}

func TestResizeDropsLineDrag(t *testing.T) {
	s, _, _ := newSession(t)
	var st State
	Dispatch(s, &st, down(collage.Pt(105, 50)))
	if st.Mode != MoveLine {
		t.Fatalf("Mode = %v, want MoveLine", st.Mode)
	}

	if err := s.Resize(&st, collage.RectXYWH(0, 0, 400, 200)); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if st.Mode != None || st.Line() != nil {
		t.Fatalf("after Resize: Mode = %v, line %p; want None and no line", st.Mode, st.Line())
	}

	Dispatch(s, &st, move(collage.Pt(150, 50)))
	if got := s.Layout().Lines()[0].Start().X; math.Abs(got-200) > epsilon {
		t.Errorf("line x = %v after stale move, want 200", got)
	}
	Dispatch(s, &st, up(collage.Pt(150, 50)))
}

func TestResetAndClear(t *testing.T) {
	s, _, _ := newSession(t)
	var st State
	Dispatch(s, &st, down(collage.Pt(50, 50)))

	s.Reset(&st)
	if len(s.Pieces()) != 0 {
		t.Errorf("%d pieces after Reset", len(s.Pieces()))
	}
	if s.Layout().AreaCount() != 1 {
		t.Errorf("AreaCount() = %d after Reset", s.Layout().AreaCount())
	}
	if st.Mode != None || st.Selected() != nil || s.timers.pending() != 0 {
		t.Errorf("state not cleared: %+v", st)
	}
}
