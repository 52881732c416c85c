// Package render paints a collage into a raster image.
//
// The layout engine never rasterises anything itself: areas describe their
// outline as a [collage.Path] and pieces carry a matrix from content pixels
// to canvas coordinates. This package is the reference software path that
// turns those into pixels, used by the collage command and by tests.
//
// # Drawing order
//
//   - background, from the layout colour or the configured background
//   - every piece, drawn through its matrix and clipped by its area path
//   - interior lines, then outer lines, when enabled
//   - the line being dragged
//   - the selected area outline and its handle bars
//
// # Usage
//
//	r, err := render.NewRenderer(cfg.Draw)
//	if err != nil {
//	    return err
//	}
//	img, err := r.Image(render.FrameOf(session, state))
//	if err != nil {
//	    return err
//	}
//	return render.WritePNG(out, img)
//
// A Renderer reuses its scratch mask between calls and must not be shared
// between goroutines.
package render
