package interact

import (
	"fmt"

	"github.com/gogpu/collage"
)

// Mode is the gesture being performed.
type Mode uint8

// Gesture modes.
const (
	None Mode = iota
	Drag
	Zoom
	MoveLine
	Swap
)

var modeNames = [...]string{
	None:     "None",
	Drag:     "Drag",
	Zoom:     "Zoom",
	MoveLine: "MoveLine",
	Swap:     "Swap",
}

// String returns the mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Action is the kind of pointer event.
type Action uint8

// Pointer actions.
const (
	// Down is the first pointer touching.
	Down Action = iota
	// PointerDown is an additional pointer touching.
	PointerDown
	Move
	Up
	Cancel
)

// Event is one normalized pointer event. Pointers lists every pointer
// currently down, the primary pointer first.
type Event struct {
	Action   Action
	Pointers []collage.Point
}

// Flags enables gestures.
type Flags struct {
	CanDrag     bool
	CanMoveLine bool
	CanZoom     bool
	CanSwap     bool
}

// AllFlags enables every gesture.
var AllFlags = Flags{CanDrag: true, CanMoveLine: true, CanZoom: true, CanSwap: true}
