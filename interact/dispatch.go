package interact

import (
	"math"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/layout"
	"github.com/gogpu/collage/piece"
)

// Dispatch feeds ev through the gesture state machine of s. Events without
// pointers are ignored.
func Dispatch(s *Session, st *State, ev Event) {
	if len(ev.Pointers) == 0 {
		return
	}
	pt := ev.Pointers[0]

	switch ev.Action {
	case Down:
		st.down = pt
		st.multi = false
		s.decide(st, ev)
		s.prepare(st)

	case PointerDown:
		if len(ev.Pointers) > 1 {
			st.multi = true
			st.distance = collage.Distance(ev.Pointers[0], ev.Pointers[1])
			st.mid = collage.Midpoint(ev.Pointers[0], ev.Pointers[1])
		}
		s.decide(st, ev)

	case Move:
		s.perform(st, ev)
		cancel := s.cfg.Interaction.MoveCancel
		if st.Mode != Swap && (math.Abs(pt.X-st.down.X) > cancel || math.Abs(pt.Y-st.down.Y) > cancel) {
			s.cancelSwap(st)
		}

	case Up, Cancel:
		s.finish(st, ev)
		s.setMode(st, None)
		s.cancelSwap(st)
	}
}

func (s *Session) setMode(st *State, m Mode) {
	if st.Mode != m {
		collage.Logger().Debug("interact: mode", "from", st.Mode, "to", m)
		st.Mode = m
	}
}

// decide picks the gesture for a pointer going down.
func (s *Session) decide(st *State, ev Event) {
	if s.Animating() {
		s.setMode(st, None)
		return
	}

	if len(ev.Pointers) == 1 {
		st.line = nil
		if s.flags.CanMoveLine {
			st.line = s.findLine(st.down)
		}
		if st.line != nil {
			s.setMode(st, MoveLine)
			return
		}
		st.selected = s.findPiece(st.down)
		if st.selected != nil && s.flags.CanDrag {
			s.setMode(st, Drag)
			s.cancelSwap(st)
			st.swapTimer = s.after(s.cfg.Interaction.SwapDelay, func() {
				st.swapTimer = 0
				if s.flags.CanSwap && st.Mode == Drag {
					s.setMode(st, Swap)
				}
			})
		}
		return
	}

	if st.selected != nil && st.Mode == Drag && s.flags.CanZoom &&
		st.selected.Contains(ev.Pointers[1]) {
		s.cancelSwap(st)
		s.setMode(st, Zoom)
	}
}

// prepare snapshots what the chosen gesture will modify.
func (s *Session) prepare(st *State) {
	switch st.Mode {
	case Drag, Zoom:
		st.selected.Record()
	case MoveLine:
		st.line.PrepareMove()
		st.changing = st.changing[:0]
		for _, p := range s.pieces {
			if p.HasLine(st.line) {
				p.Record()
				p.SetPreviousMove(st.down)
				st.changing = append(st.changing, p)
			}
		}
	}
}

func (s *Session) perform(st *State, ev Event) {
	pt := ev.Pointers[0]
	switch st.Mode {
	case Drag:
		st.selected.Translate(pt.X-st.down.X, pt.Y-st.down.Y)
	case Zoom:
		s.zoom(st, ev)
	case Swap:
		st.selected.Translate(pt.X-st.down.X, pt.Y-st.down.Y)
		st.target = s.findPiece(pt)
	case MoveLine:
		s.moveLine(st, pt)
	}
}

// zoom scales the held piece by the change in pinch distance. Outside the
// zoom band only scaling back towards it is applied.
func (s *Session) zoom(st *State, ev Event) {
	if len(ev.Pointers) < 2 || st.distance == 0 {
		return
	}
	p := st.selected
	scale := collage.Distance(ev.Pointers[0], ev.Pointers[1]) / st.distance
	band := p.BandScale()
	switch {
	case band < s.cfg.Interaction.MinZoom && scale <= 1:
		return
	case band > s.cfg.Interaction.MaxZoom && scale >= 1:
		return
	}
	pt := ev.Pointers[0]
	p.ZoomAndTranslate(scale, scale, st.mid, pt.X-st.down.X, pt.Y-st.down.Y)
}

func (s *Session) moveLine(st *State, pt collage.Point) {
	line := st.line
	offset := pt.X - st.down.X
	if line.Direction() == collage.Horizontal {
		offset = pt.Y - st.down.Y
	}
	if !line.Move(offset, s.cfg.Interaction.LineMargin) {
		return
	}
	s.layout.Update()
	s.layout.SortAreas()
	for _, p := range st.changing {
		p.UpdateWith(pt, line)
	}
}

// finish completes the gesture on release.
func (s *Session) finish(st *State, ev Event) {
	pt := ev.Pointers[0]
	click := s.cfg.Interaction.ClickThreshold
	tapped := !st.multi &&
		math.Abs(st.down.X-pt.X) < click && math.Abs(st.down.Y-pt.Y) < click

	switch st.Mode {
	case Drag:
		if tapped && st.previous == st.selected {
			st.selected = nil
		} else if !tapped {
			s.refit(st.selected)
		}
		st.previous = st.selected
	case Zoom:
		if p := st.selected; p != nil {
			s.refit(p)
			st.previous = p
		}
	case Swap:
		if st.selected != nil && st.target != nil {
			s.swap(st.selected, st.target)
			st.selected = nil
			st.target = nil
			st.previous = nil
		} else {
			s.refit(st.selected)
		}
	}

	if tapped && ev.Action == Up && st.Mode != MoveLine && s.findPiece(pt) != nil &&
		s.listener.PieceClicked != nil {
		s.listener.PieceClicked()
	}
	if st.selected != nil {
		s.notifySelected(st.selected)
	}
	st.line = nil
	st.changing = st.changing[:0]
}

// refit animates p back over its area: by moving it when its scale
// suffices, otherwise by growing it as long as the needed scale stays
// inside the zoom band.
func (s *Session) refit(p *piece.Piece) {
	if p == nil || p.IsFilled() {
		return
	}
	if p.CanFill() {
		p.MoveToFillArea(false)
	} else if p.MinimumFillScale() <= s.cfg.Interaction.MaxZoom {
		p.FillArea(false)
	}
}

// swap exchanges the content and path of a and b and refills both.
func (s *Session) swap(a, b *piece.Piece) {
	if a == b {
		return
	}
	ca, pa := a.Content(), a.Path()
	a.SetContent(b.Content())
	a.SetPath(b.Path())
	b.SetContent(ca)
	b.SetPath(pa)

	a.FillArea(true)
	b.FillArea(true)

	if s.listener.Swapped != nil {
		s.listener.Swapped(s.IndexOf(a), s.IndexOf(b))
	}
}

func (s *Session) findLine(pt collage.Point) *layout.Line {
	tol := s.cfg.Interaction.LineTolerance
	for _, l := range s.layout.Lines() {
		if l.Contains(pt, tol) {
			return l
		}
	}
	return nil
}

func (s *Session) findPiece(pt collage.Point) *piece.Piece {
	for _, p := range s.pieces {
		if p.Contains(pt) {
			return p
		}
	}
	return nil
}
