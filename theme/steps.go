package theme

import (
	"github.com/gogpu/collage"
	"github.com/gogpu/collage/layout"
)

const (
	h = collage.Horizontal
	v = collage.Vertical
)

func line(pos int, dir collage.Direction, ratio float64) layout.Step {
	return skew(pos, dir, ratio, ratio)
}

func skew(pos int, dir collage.Direction, start, end float64) layout.Step {
	return layout.Step{Type: layout.StepAddLine, Direction: dir, Position: pos, Ratios: []float64{start, end}}
}

func cross(pos int, hRatio, vRatio float64) layout.Step {
	return skewCross(pos, hRatio, hRatio, vRatio, vRatio)
}

func skewCross(pos int, hs, he, vs, ve float64) layout.Step {
	return layout.Step{Type: layout.StepAddCross, Position: pos, Ratios: []float64{hs, he, vs, ve}}
}

func parts(pos, n int, dir collage.Direction) layout.Step {
	return layout.Step{Type: layout.StepCutEqualParts, Direction: dir, Position: pos, Part: n}
}

func grid(pos, rows, cols int) layout.Step {
	return layout.Step{Type: layout.StepCutGrid, Position: pos, HSize: rows, VSize: cols}
}

func spiral(pos int) layout.Step {
	return layout.Step{Type: layout.StepCutSpiral, Position: pos}
}

func t(name string, steps ...layout.Step) Theme {
	return Theme{Name: name, Steps: steps}
}
