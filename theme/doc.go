// Package theme holds the catalog of predefined collage arrangements.
//
// A [Theme] is a named list of [layout.Step] values. Building a theme
// replays its steps on a fresh [layout.Layout], so a theme and a persisted
// recipe share one representation.
package theme
