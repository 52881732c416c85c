package interact

import (
	"github.com/gogpu/collage"
	"github.com/gogpu/collage/layout"
	"github.com/gogpu/collage/piece"
)

// State is the gesture in progress. The zero value is ready to use. A
// State belongs to one Session.
type State struct {
	Mode Mode

	selected *piece.Piece
	previous *piece.Piece
	target   *piece.Piece
	line     *layout.Line
	changing []*piece.Piece

	down     collage.Point
	distance float64
	mid      collage.Point
	multi    bool

	swapTimer timerID
}

// Selected returns the selected piece, or nil.
func (st *State) Selected() *piece.Piece { return st.selected }

// Target returns the piece under the pointer while swapping, or nil.
func (st *State) Target() *piece.Piece { return st.target }

// Line returns the line being dragged, or nil.
func (st *State) Line() *layout.Line { return st.line }

// Clear drops the selection and any gesture in progress.
func (st *State) Clear() {
	st.selected = nil
	st.previous = nil
	st.target = nil
	st.line = nil
	st.changing = nil
}
