package interact

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/config"
	"github.com/gogpu/collage/layout"
	"github.com/gogpu/collage/piece"
)

// ErrLayoutFull is returned when a piece is added to a layout whose areas
// are all taken.
var ErrLayoutFull = errors.New("interact: layout is full")

// Zoom steps applied by ZoomIn and ZoomOut.
const (
	zoomInStep  = 1.1
	zoomOutStep = 0.9
)

// Listener receives session notifications. Nil fields are skipped.
type Listener struct {
	// PieceSelected is called when a gesture ends with a piece selected.
	PieceSelected func(p *piece.Piece, index int)
	// PieceClicked is called when a piece is tapped.
	PieceClicked func()
	// Swapped is called after the contents of pieces a and b are exchanged.
	Swapped func(a, b int)
}

// Session owns a layout and the pieces placed in it. Piece i occupies
// area i of the layout. A Session is not safe for concurrent use.
type Session struct {
	layout   *layout.Layout
	pieces   []*piece.Piece
	cfg      *config.Config
	clock    clockwork.Clock
	listener Listener
	flags    Flags
	timers   queue
}

// NewSession creates a session for l. The configured padding and corner
// radius are applied when l has none of its own.
func NewSession(l *layout.Layout, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Session{
		layout:   l,
		cfg:      o.cfg,
		clock:    o.clock,
		listener: o.listener,
		flags: Flags{
			CanDrag:     o.cfg.Flags.CanDrag,
			CanMoveLine: o.cfg.Flags.CanMoveLine,
			CanZoom:     o.cfg.Flags.CanZoom,
			CanSwap:     o.cfg.Flags.CanSwap,
		},
	}
	if o.flags != nil {
		s.flags = *o.flags
	}
	if l.Padding() == 0 && l.Radian() == 0 {
		if p := o.cfg.Pieces.Padding; p > 0 {
			l.SetPadding(p)
		}
		if r := o.cfg.Pieces.Radian; r > 0 {
			l.SetRadian(r)
		}
	}
	return s
}

// Layout returns the session's layout.
func (s *Session) Layout() *layout.Layout { return s.layout }

// Config returns the session configuration.
func (s *Session) Config() *config.Config { return s.cfg }

// Pieces returns the pieces in the order they were added.
func (s *Session) Pieces() []*piece.Piece { return s.pieces }

// Piece returns piece i.
func (s *Session) Piece(i int) *piece.Piece { return s.pieces[i] }

// IndexOf returns the index of p, or -1.
func (s *Session) IndexOf(p *piece.Piece) int { return slices.Index(s.pieces, p) }

// Flags returns the enabled gestures.
func (s *Session) Flags() Flags { return s.flags }

// SetFlags sets the enabled gestures.
func (s *Session) SetFlags(f Flags) { s.flags = f }

// SetCanDrag enables or disables dragging pieces.
func (s *Session) SetCanDrag(v bool) { s.flags.CanDrag = v }

// SetCanMoveLine enables or disables dragging lines.
func (s *Session) SetCanMoveLine(v bool) { s.flags.CanMoveLine = v }

// SetCanZoom enables or disables pinch zooming.
func (s *Session) SetCanZoom(v bool) { s.flags.CanZoom = v }

// SetCanSwap enables or disables swapping pieces.
func (s *Session) SetCanSwap(v bool) { s.flags.CanSwap = v }

// SetListener replaces the listener.
func (s *Session) SetListener(l Listener) { s.listener = l }

func (s *Session) pieceOptions(path string) []piece.Option {
	return []piece.Option{
		piece.WithClock(s.clock),
		piece.WithDuration(s.cfg.Pieces.AnimationDuration),
		piece.WithPath(path),
	}
}

// AddPiece places content in the next free area, center-cropped.
func (s *Session) AddPiece(c piece.Content, path string) (*piece.Piece, error) {
	return s.addPiece(c, path)
}

// AddPieceWithMatrix places content in the next free area with matrix m.
func (s *Session) AddPieceWithMatrix(c piece.Content, m collage.Matrix, path string) (*piece.Piece, error) {
	return s.addPiece(c, path, piece.WithMatrix(m))
}

func (s *Session) addPiece(c piece.Content, path string, extra ...piece.Option) (*piece.Piece, error) {
	pos := len(s.pieces)
	if pos >= s.layout.AreaCount() {
		collage.Logger().Warn("interact: piece rejected",
			"areas", s.layout.AreaCount(), "path", path)
		return nil, fmt.Errorf("%w: %d areas", ErrLayoutFull, s.layout.AreaCount())
	}
	p := piece.New(c, s.layout.Area(pos), append(s.pieceOptions(path), extra...)...)
	s.pieces = append(s.pieces, p)
	return p, nil
}

// SetLayout replaces the layout and removes every piece.
func (s *Session) SetLayout(st *State, l *layout.Layout) {
	s.ClearPieces(st)
	s.layout = l
}

// ClearPieces removes every piece and clears st.
func (s *Session) ClearPieces(st *State) {
	s.cancelSwap(st)
	if st != nil {
		st.Clear()
		st.Mode = None
	}
	s.pieces = nil
}

// Reset removes every piece and returns the layout to a single area.
func (s *Session) Reset(st *State) {
	s.ClearPieces(st)
	s.layout.Reset()
}

// Select selects piece i and notifies the listener. It reports whether i
// is a valid index.
func (s *Session) Select(st *State, i int) bool {
	if i < 0 || i >= len(s.pieces) {
		return false
	}
	st.selected = s.pieces[i]
	st.previous = st.selected
	s.notifySelected(st.selected)
	return true
}

// Replace swaps the selected piece's content for c and re-crops it. It
// reports whether a piece was selected.
func (s *Session) Replace(st *State, c piece.Content, path string) bool {
	p := st.selected
	if p == nil {
		return false
	}
	p.SetPath(path)
	p.SetContent(c)
	p.Set(p.CenterCrop())
	return true
}

// target returns the selected piece, falling back to the first one.
func (s *Session) target(st *State) *piece.Piece {
	if st.selected != nil {
		return st.selected
	}
	if len(s.pieces) > 0 {
		return s.pieces[0]
	}
	return nil
}

// Nudge moves the selected piece, or the first piece when none is
// selected, by (dx, dy) nudge steps.
func (s *Session) Nudge(st *State, dx, dy float64) {
	p := s.target(st)
	if p == nil {
		return
	}
	step := s.cfg.Interaction.NudgeStep
	p.Record()
	p.Translate(dx*step, dy*step)
}

// ZoomIn enlarges the selected piece about its area center unless it is
// already at the top of the zoom band.
func (s *Session) ZoomIn(st *State) {
	p := st.selected
	if p == nil || p.BandScale() > s.cfg.Interaction.MaxZoom {
		return
	}
	p.Record()
	p.Zoom(zoomInStep, zoomInStep, p.Area().Center())
}

// ZoomOut shrinks the selected piece about its area center unless it is
// already at the bottom of the zoom band.
func (s *Session) ZoomOut(st *State) {
	p := st.selected
	if p == nil || p.BandScale() < s.cfg.Interaction.MinZoom {
		return
	}
	p.Record()
	p.Zoom(zoomOutStep, zoomOutStep, p.Area().Center())
}

// Rotate turns the selected piece, or the first piece when none is
// selected, by degrees about its area center.
func (s *Session) Rotate(st *State, degrees float64) {
	p := s.target(st)
	if p == nil {
		return
	}
	p.Rotate(degrees)
	p.Record()
}

// FlipHorizontal mirrors the selected piece left to right.
func (s *Session) FlipHorizontal(st *State) {
	if p := st.selected; p != nil {
		p.FlipHorizontal()
		p.Record()
	}
}

// FlipVertical mirrors the selected piece top to bottom.
func (s *Session) FlipVertical(st *State) {
	if p := st.selected; p != nil {
		p.FlipVertical()
		p.Record()
	}
}

// SetPiecePadding insets every area by padding and refits the pieces.
func (s *Session) SetPiecePadding(padding float64) {
	s.layout.SetPadding(padding)
	for _, p := range s.pieces {
		if p.CanFill() {
			p.MoveToFillArea(true)
		} else {
			p.FillArea(true)
		}
	}
}

// SetPieceRadian sets the corner radius of every area.
func (s *Session) SetPieceRadian(radian float64) {
	s.layout.SetRadian(radian)
}

// SetAnimationDuration sets the animation duration of every piece.
func (s *Session) SetAnimationDuration(d time.Duration) {
	s.cfg.Pieces.AnimationDuration = d
	for _, p := range s.pieces {
		p.SetDuration(d)
	}
}

// Resize moves the layout to bounds. Lines keep their relative positions
// and each piece is re-cropped or refilled in its resized area, depending
// on the pieces.reset-matrix setting. A line drag in st is dropped since
// its line does not survive the rebuild; st may be nil.
func (s *Session) Resize(st *State, bounds collage.Rect) error {
	if st != nil {
		st.line = nil
		st.changing = nil
		if st.Mode == MoveLine {
			st.Mode = None
		}
	}
	info := s.layout.Info()
	old := info.Bounds
	if old.Width() > 0 && old.Height() > 0 {
		sx := bounds.Width() / old.Width()
		sy := bounds.Height() / old.Height()
		scale := func(p collage.Point) collage.Point {
			return collage.Pt(
				bounds.Min.X+(p.X-old.Min.X)*sx,
				bounds.Min.Y+(p.Y-old.Min.Y)*sy,
			)
		}
		for i := range info.Lines {
			info.Lines[i].Start = scale(info.Lines[i].Start)
			info.Lines[i].End = scale(info.Lines[i].End)
		}
	}
	info.Bounds = bounds

	l, err := layout.Parse(info)
	if err != nil {
		return fmt.Errorf("interact: resize: %w", err)
	}
	s.layout = l
	for i, p := range s.pieces {
		p.SetArea(l.Area(i))
		if s.cfg.Pieces.ResetMatrix {
			p.Set(p.CenterCrop())
		} else {
			p.FillArea(true)
		}
	}
	return nil
}

// Animating reports whether any piece is animating.
func (s *Session) Animating() bool {
	return slices.ContainsFunc(s.pieces, (*piece.Piece).Animating)
}

// Tick runs due timers and advances piece animations. It reports whether
// more work is pending, in which case the host should call it again on the
// next frame.
func (s *Session) Tick() bool {
	s.timers.runDue(s.clock.Now())
	busy := false
	for _, p := range s.pieces {
		if p.Tick() {
			busy = true
		}
	}
	return busy || s.timers.pending() > 0
}

func (s *Session) after(d time.Duration, fn func()) timerID {
	return s.timers.schedule(s.clock.Now().Add(d), fn)
}

func (s *Session) cancelSwap(st *State) {
	if st == nil || st.swapTimer == 0 {
		return
	}
	s.timers.cancel(st.swapTimer)
	st.swapTimer = 0
}

func (s *Session) notifySelected(p *piece.Piece) {
	if s.listener.PieceSelected != nil {
		s.listener.PieceSelected(p, s.IndexOf(p))
	}
}
