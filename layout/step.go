package layout

import (
	"fmt"

	"github.com/gogpu/collage"
)

// StepType identifies a recorded cut operation.
type StepType uint8

// Step types. The numeric values are part of the persisted record.
const (
	StepAddLine StepType = iota
	StepAddCross
	StepCutGrid
	StepCutEqualParts
	StepCutSpiral
)

var stepTypeNames = [...]string{
	StepAddLine:       "AddLine",
	StepAddCross:      "AddCross",
	StepCutGrid:       "CutGrid",
	StepCutEqualParts: "CutEqualPart",
	StepCutSpiral:     "CutSpiral",
}

// String returns the step type name.
func (t StepType) String() string {
	if int(t) < len(stepTypeNames) {
		return stepTypeNames[t]
	}
	return fmt.Sprintf("StepType(%d)", t)
}

// MarshalText implements encoding.TextMarshaler.
func (t StepType) MarshalText() ([]byte, error) {
	if int(t) >= len(stepTypeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStep, t)
	}
	return []byte(stepTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *StepType) UnmarshalText(text []byte) error {
	for i, name := range stepTypeNames {
		if name == string(text) {
			*t = StepType(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownStep, text)
}

// Step is one recorded cut. Only the fields meaningful for Type are set.
//
// Ratios holds the cut positions: start and end for AddLine, horizontal
// start, horizontal end, vertical start and vertical end for AddCross.
// Records without ratios replay at one half.
type Step struct {
	Type      StepType
	Direction collage.Direction
	Position  int
	Part      int
	HSize     int
	VSize     int
	Ratios    []float64
}

// ratio returns Ratios[i], falling back to def.
func (s Step) ratio(i int, def float64) float64 {
	if i < len(s.Ratios) {
		return s.Ratios[i]
	}
	return def
}

// Apply replays one step. Unlike the cut methods it validates the step,
// since recorded steps come from outside the program.
func (l *Layout) Apply(s Step) error {
	if s.Position < 0 || s.Position >= len(l.areas) {
		return fmt.Errorf("%w: %s at %d with %d areas", ErrBadPosition, s.Type, s.Position, len(l.areas))
	}

	switch s.Type {
	case StepAddLine:
		start := s.ratio(0, 0.5)
		l.AddSkewLine(s.Position, s.Direction, start, s.ratio(1, start))
	case StepAddCross:
		hs := s.ratio(0, 0.5)
		vs := s.ratio(2, 0.5)
		l.AddSkewCross(s.Position, hs, s.ratio(1, hs), vs, s.ratio(3, vs))
	case StepCutGrid:
		if s.HSize < 1 || s.VSize < 1 {
			return fmt.Errorf("%w: grid %dx%d", ErrBadOperand, s.HSize, s.VSize)
		}
		l.CutGrid(s.Position, s.HSize, s.VSize)
	case StepCutEqualParts:
		if s.Part < 1 {
			return fmt.Errorf("%w: %d parts", ErrBadOperand, s.Part)
		}
		l.CutEqualParts(s.Position, s.Part, s.Direction)
	case StepCutSpiral:
		l.CutSpiral(s.Position)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownStep, s.Type)
	}
	return nil
}
