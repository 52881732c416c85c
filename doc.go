// Package collage provides the geometry shared by the collage layout engine.
//
// # Overview
//
// A collage divides a rectangular canvas into cells ("areas") separated by
// cut lines. Lines are either straight or slanted; a slanted line has its
// two endpoints placed independently on the opposite sides of the area it
// cuts. Pieces of content are placed into the areas and kept covering them
// under an affine transform while the user drags lines and pieces.
//
// This package holds the value types every other package builds on:
// [Point], [Rect], [Matrix], [Path], [Direction] and [Segment], plus the
// intersection and containment helpers used by slanted layouts.
//
// # Packages
//
//   - layout: lines, areas and the cutting engine
//   - theme: the catalog of named arrangements per piece count
//   - piece: content placement, fill and eased animation
//   - interact: the pointer-driven interaction state machine
//   - recipe: versioned JSON/YAML records of a layout
//   - config: YAML settings for interaction tolerances
//   - render: a software renderer for previews
//
// # Coordinates
//
// Canvas coordinates have y growing downwards. Areas are ordered by their
// top edge, then their left edge, and area index i holds piece index i.
//
// # Logging
//
// Nothing is logged by default. Install a logger with [SetLogger].
package collage
