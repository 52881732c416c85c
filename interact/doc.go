// Package interact turns pointer events into layout and piece edits.
//
// A [Session] owns a layout and the pieces placed in it. A [State] holds
// the gesture in progress: the current [Mode], the held piece or line and
// the pending swap timer. [Dispatch] feeds one [Event] through the state
// machine:
//
//   - one pointer down on a line starts [MoveLine], on a piece [Drag];
//   - holding a dragged piece still for the swap delay enters [Swap];
//   - a second pointer on the dragged piece enters [Zoom];
//   - release finalizes the gesture and reports the selection.
//
// Timers and animations never run on their own goroutine. The host calls
// [Session.Tick] from its event loop, typically once per frame, and
// repaints while it returns true.
package interact
