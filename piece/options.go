package piece

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/gogpu/collage"
)

// DefaultDuration is the length of fill and move animations.
const DefaultDuration = 300 * time.Millisecond

// Option configures a Piece during creation.
//
// Example:
//
//	clock := clockwork.NewFakeClock()
//	p := piece.New(img, area, piece.WithClock(clock), piece.WithDuration(0))
type Option func(*options)

type options struct {
	clock    clockwork.Clock
	duration time.Duration
	path     string
	matrix   *collage.Matrix
}

func defaultOptions() options {
	return options{
		clock:    clockwork.NewRealClock(),
		duration: DefaultDuration,
	}
}

// WithClock sets the clock animations are measured against.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithDuration sets the animation duration. Zero makes every animation
// complete immediately.
func WithDuration(d time.Duration) Option {
	return func(o *options) {
		o.duration = max(d, 0)
	}
}

// WithPath sets the identifier of the content, usually its source file.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithMatrix places the content with m instead of the center-crop matrix.
// The piece is moved to cover its area if m leaves a gap.
func WithMatrix(m collage.Matrix) Option {
	return func(o *options) {
		o.matrix = &m
	}
}
