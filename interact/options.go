package interact

import (
	"github.com/jonboulle/clockwork"

	"github.com/gogpu/collage/config"
)

// Option configures a Session during creation.
//
// Example:
//
//	clock := clockwork.NewFakeClock()
//	s := interact.NewSession(l,
//	    interact.WithClock(clock),
//	    interact.WithListener(interact.Listener{Swapped: onSwap}))
type Option func(*sessionOptions)

type sessionOptions struct {
	cfg      *config.Config
	clock    clockwork.Clock
	listener Listener
	flags    *Flags
}

func defaultOptions() sessionOptions {
	return sessionOptions{
		cfg:   config.Default(),
		clock: clockwork.NewRealClock(),
	}
}

// WithConfig sets the interaction settings. The capability flags are taken
// from cfg unless WithFlags is also given.
func WithConfig(cfg *config.Config) Option {
	return func(o *sessionOptions) {
		if cfg != nil {
			o.cfg = cfg
		}
	}
}

// WithClock sets the clock used for the swap timer and animations.
func WithClock(c clockwork.Clock) Option {
	return func(o *sessionOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithListener sets the callbacks the session reports to.
func WithListener(l Listener) Option {
	return func(o *sessionOptions) {
		o.listener = l
	}
}

// WithFlags sets the enabled gestures.
func WithFlags(f Flags) Option {
	return func(o *sessionOptions) {
		o.flags = &f
	}
}
