package layout

import "errors"

// Errors returned when replaying a recorded layout.
var (
	// ErrUnknownKind is returned for a layout kind other than straight or slant.
	ErrUnknownKind = errors.New("layout: unknown kind")

	// ErrUnknownStep is returned for a step type that has no cut operation.
	ErrUnknownStep = errors.New("layout: unknown step type")

	// ErrBadPosition is returned when a step targets an area that does not exist.
	ErrBadPosition = errors.New("layout: step position out of range")

	// ErrBadOperand is returned when a step carries an invalid count.
	ErrBadOperand = errors.New("layout: invalid step operand")

	// ErrLineCount is returned when the recorded line endpoints do not match
	// the lines produced by replaying the steps.
	ErrLineCount = errors.New("layout: line count mismatch")
)
