// Package layout implements the collage layout engine.
//
// A [Layout] starts as a single [Area] spanning its outer bounds and is
// refined by cut operations: [Layout.AddLine], [Layout.AddCross],
// [Layout.CutEqualParts], [Layout.CutGrid] and [Layout.CutSpiral]. Every
// cut appends a [Step] to the layout's recipe, so that [Parse] can rebuild
// an identical layout from an [Info] record.
//
// Lines and areas never hold coordinates directly. Their endpoints and
// corners are handles into a point arena owned by the layout; every handle
// other than the four outer corners is the crossover of two lines and is
// recomputed by [Layout.Update] whenever a line moves.
//
// Areas are kept sorted by their top edge, then their left edge. Area
// index i is the slot piece index i is placed into.
//
// A Layout is not safe for concurrent use.
package layout
