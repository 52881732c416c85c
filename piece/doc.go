// Package piece models the content placed in a layout area.
//
// A [Piece] pairs a [Content] handle with an affine matrix that maps
// content pixels onto the canvas. The package computes the center-crop
// placement for an area, decides whether the transformed content still
// covers the area, and animates the piece back to full coverage.
//
// Animations are cooperative. Nothing runs in the background: the owner
// calls [Piece.Tick] from its event loop and the piece reads the time from
// its [clockwork.Clock].
package piece
