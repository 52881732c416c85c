package layout

import "github.com/gogpu/collage"

// gridSkew offsets the two ends of every grid line in slant layouts.
const gridSkew = 0.025

// AddLine splits the area at pos with a line at ratio across it and
// returns the two new areas, top/left first. pos must be a valid index.
func (l *Layout) AddLine(pos int, dir collage.Direction, ratio float64) []*Area {
	return l.AddSkewLine(pos, dir, ratio, ratio)
}

// AddSkewLine is AddLine with the start and end of the line placed at
// different ratios. Straight layouts should pass equal ratios.
func (l *Layout) AddSkewLine(pos int, dir collage.Direction, startRatio, endRatio float64) []*Area {
	out := l.addLine(l.areas[pos], dir, startRatio, endRatio)
	l.steps = append(l.steps, Step{
		Type:      StepAddLine,
		Direction: dir,
		Position:  pos,
		Ratios:    []float64{startRatio, endRatio},
	})
	return out
}

func (l *Layout) addLine(area *Area, dir collage.Direction, startRatio, endRatio float64) []*Area {
	line := l.createLine(area, dir, startRatio, endRatio)
	l.lines = append(l.lines, line)
	a1, a2 := cutWith(area, line)
	l.replace(area, a1, a2)
	return []*Area{a1, a2}
}

// createLine places a line across area. The line's ends lie on the two
// sides perpendicular to dir and are bound as crossovers with those sides.
func (l *Layout) createLine(area *Area, dir collage.Direction, startRatio, endRatio float64) *Line {
	c := area.Corners()
	var line *Line
	if dir == collage.Horizontal {
		s := l.pts.add(collage.PointOnSegment(c[LeftTop], c[LeftBottom], collage.Vertical, startRatio))
		e := l.pts.add(collage.PointOnSegment(c[RightTop], c[RightBottom], collage.Vertical, endRatio))
		line = newLine(l.pts, dir, s, e)
		line.attachStart, line.attachEnd = area.left, area.right
		line.lower, line.upper = area.top, area.bottom
	} else {
		s := l.pts.add(collage.PointOnSegment(c[LeftTop], c[RightTop], collage.Horizontal, startRatio))
		e := l.pts.add(collage.PointOnSegment(c[LeftBottom], c[RightBottom], collage.Horizontal, endRatio))
		line = newLine(l.pts, dir, s, e)
		line.attachStart, line.attachEnd = area.top, area.bottom
		line.lower, line.upper = area.left, area.right
	}
	l.pts.bind(line.start, line, line.attachStart)
	l.pts.bind(line.end, line, line.attachEnd)
	return line
}

// cutWith splits area along line. The new corners are the line's endpoints.
func cutWith(area *Area, line *Line) (*Area, *Area) {
	a1, a2 := area.clone(), area.clone()
	if line.dir == collage.Horizontal {
		a1.bottom = line
		a1.corners[LeftBottom], a1.corners[RightBottom] = line.start, line.end
		a2.top = line
		a2.corners[LeftTop], a2.corners[RightTop] = line.start, line.end
	} else {
		a1.right = line
		a1.corners[RightTop], a1.corners[RightBottom] = line.start, line.end
		a2.left = line
		a2.corners[LeftTop], a2.corners[LeftBottom] = line.start, line.end
	}
	return a1, a2
}

// AddCross splits the area at pos into four with a horizontal line at
// hRatio and a vertical line at vRatio.
func (l *Layout) AddCross(pos int, hRatio, vRatio float64) []*Area {
	return l.AddSkewCross(pos, hRatio, hRatio, vRatio, vRatio)
}

// AddSkewCross is AddCross with independent start and end ratios for both
// lines. The new areas are returned top-left, top-right, bottom-left,
// bottom-right.
func (l *Layout) AddSkewCross(pos int, hStart, hEnd, vStart, vEnd float64) []*Area {
	area := l.areas[pos]
	h := l.createLine(area, collage.Horizontal, hStart, hEnd)
	v := l.createLine(area, collage.Vertical, vStart, vEnd)
	l.lines = append(l.lines, h, v)
	c := l.pts.cross(h, v)

	one := area.clone()
	one.bottom, one.right = h, v
	one.corners[RightTop], one.corners[RightBottom], one.corners[LeftBottom] = v.start, c, h.start

	two := area.clone()
	two.bottom, two.left = h, v
	two.corners[LeftTop], two.corners[RightBottom], two.corners[LeftBottom] = v.start, h.end, c

	three := area.clone()
	three.top, three.right = h, v
	three.corners[LeftTop], three.corners[RightTop], three.corners[RightBottom] = h.start, c, v.end

	four := area.clone()
	four.top, four.left = h, v
	four.corners[LeftTop], four.corners[RightTop], four.corners[LeftBottom] = c, h.end, v.end

	l.replace(area, one, two, three, four)
	l.steps = append(l.steps, Step{
		Type:     StepAddCross,
		Position: pos,
		Ratios:   []float64{hStart, hEnd, vStart, vEnd},
	})
	return []*Area{one, two, three, four}
}

// CutEqualParts splits the area at pos into n equal slices along dir. Each
// cut is made at (i-1)/i of the remaining top/left slice, for i from n
// down to 2.
func (l *Layout) CutEqualParts(pos, n int, dir collage.Direction) {
	if n < 2 {
		return
	}
	area := l.areas[pos]
	for i := n; i >= 2; i-- {
		r := float64(i-1) / float64(i)
		area = l.addLine(area, dir, r, r)[0]
	}
	l.steps = append(l.steps, Step{
		Type:      StepCutEqualParts,
		Direction: dir,
		Position:  pos,
		Part:      n,
	})
}

// CutGrid splits the area at pos into rows x cols independent cells in one
// operation. Every horizontal line spans the full width and every vertical
// line the full height. In slant layouts each line is tilted slightly.
func (l *Layout) CutGrid(pos, rows, cols int) {
	if rows < 1 || cols < 1 || rows*cols == 1 {
		return
	}
	area := l.areas[pos]
	skew := 0.0
	if l.kind == Slant {
		skew = gridSkew
	}

	// Horizontal lines are cut bottom-up from a shrinking scratch area.
	rest := area.clone()
	var hLines []*Line
	for i := rows; i >= 2; i-- {
		r := float64(i-1) / float64(i)
		h := l.createLine(rest, collage.Horizontal, r-skew, r+skew)
		hLines = append(hLines, h)
		rest.bottom = h
		rest.corners[LeftBottom], rest.corners[RightBottom] = h.start, h.end
	}

	rest = area.clone()
	var vLines []*Line
	var cells []*Area
	for i := cols; i >= 2; i-- {
		r := float64(i-1) / float64(i)
		v := l.createLine(rest, collage.Vertical, r+skew, r-skew)
		vLines = append(vLines, v)
		cells = append(cells, l.column(rest, v, rest.right, hLines)...)
		rest.right = v
		rest.corners[RightTop], rest.corners[RightBottom] = v.start, v.end
	}
	cells = append(cells, l.column(rest, rest.left, rest.right, hLines)...)

	l.lines = append(l.lines, hLines...)
	l.lines = append(l.lines, vLines...)
	l.replace(area, cells...)
	l.steps = append(l.steps, Step{
		Type:     StepCutGrid,
		Position: pos,
		HSize:    rows,
		VSize:    cols,
	})
}

// column returns the cells between left and right, one per row. hLines is
// ordered bottom-up.
func (l *Layout) column(src *Area, left, right *Line, hLines []*Line) []*Area {
	cells := make([]*Area, 0, len(hLines)+1)
	for j := 0; j <= len(hLines); j++ {
		top, bottom := src.top, src.bottom
		if j < len(hLines) {
			top = hLines[j]
		}
		if j > 0 {
			bottom = hLines[j-1]
		}
		cells = append(cells, l.newArea(src, left, top, right, bottom))
	}
	return cells
}

// newArea copies src's settings into an area bounded by the given lines,
// with fresh crossovers for all four corners.
func (l *Layout) newArea(src *Area, left, top, right, bottom *Line) *Area {
	a := src.clone()
	a.left, a.top, a.right, a.bottom = left, top, right, bottom
	a.corners = [4]pointID{
		l.pts.cross(left, top),
		l.pts.cross(right, top),
		l.pts.cross(right, bottom),
		l.pts.cross(left, bottom),
	}
	return a
}

// CutSpiral splits the area at pos into a five-cell pinwheel: four cells
// rotating around a center cell, with breakpoints at a third and two
// thirds of each side. The four lines attach to one another rather than
// to the area sides.
func (l *Layout) CutSpiral(pos int) {
	area := l.areas[pos]
	corners := area.Corners()
	b := collage.BoundsOf(corners[:]...)
	x0, y0, w, h := b.Min.X, b.Min.Y, b.Width(), b.Height()

	pt := func(fx, fy float64) pointID {
		return l.pts.add(collage.Pt(x0+w*fx, y0+h*fy))
	}
	one := pt(0, 1.0/3)
	two := pt(2.0/3, 0)
	three := pt(1, 2.0/3)
	four := pt(1.0/3, 1)
	five := pt(1.0/3, 1.0/3)
	six := pt(2.0/3, 1.0/3)
	seven := pt(2.0/3, 2.0/3)
	eight := pt(1.0/3, 2.0/3)

	l1 := newLine(l.pts, collage.Horizontal, one, six)
	l2 := newLine(l.pts, collage.Vertical, two, seven)
	l3 := newLine(l.pts, collage.Horizontal, eight, three)
	l4 := newLine(l.pts, collage.Vertical, five, four)

	l1.attachStart, l1.attachEnd = area.left, l2
	l1.lower, l1.upper = area.top, l3

	l2.attachStart, l2.attachEnd = area.top, l3
	l2.lower, l2.upper = l4, area.right

	l3.attachStart, l3.attachEnd = l4, area.right
	l3.lower, l3.upper = l1, area.bottom

	l4.attachStart, l4.attachEnd = l1, area.bottom
	l4.lower, l4.upper = area.left, l2

	for _, ln := range []*Line{l1, l2, l3, l4} {
		l.pts.bind(ln.start, ln, ln.attachStart)
		l.pts.bind(ln.end, ln, ln.attachEnd)
	}
	l.lines = append(l.lines, l1, l2, l3, l4)

	cells := []*Area{
		l.newArea(area, area.left, area.top, l2, l1),
		l.newArea(area, l2, area.top, area.right, l3),
		l.newArea(area, area.left, l1, l4, area.bottom),
		l.newArea(area, l4, l1, l2, l3),
		l.newArea(area, l4, l3, area.right, area.bottom),
	}
	l.replace(area, cells...)
	l.steps = append(l.steps, Step{Type: StepCutSpiral, Position: pos})
}
