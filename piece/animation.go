package piece

import "time"

type animation struct {
	start time.Time
	apply func(f float64)
}

// decelerate eases f so that motion slows towards the end.
func decelerate(f float64) float64 {
	return 1 - (1-f)*(1-f)
}

// animate finishes any running animation and starts a new one driving
// apply from 0 to 1.
func (p *Piece) animate(apply func(f float64)) {
	p.stop()
	if p.duration <= 0 {
		apply(1)
		return
	}
	p.anim = &animation{start: p.clock.Now(), apply: apply}
}

// stop jumps a running animation to its end.
func (p *Piece) stop() {
	if a := p.anim; a != nil {
		p.anim = nil
		a.apply(1)
	}
}

// Animating reports whether an animation is in progress.
func (p *Piece) Animating() bool { return p.anim != nil }

// Tick advances the running animation to the clock's current time and
// reports whether it is still in progress.
func (p *Piece) Tick() bool {
	a := p.anim
	if a == nil {
		return false
	}
	f := float64(p.clock.Since(a.start)) / float64(p.duration)
	if f >= 1 {
		p.anim = nil
		a.apply(1)
		return false
	}
	a.apply(decelerate(max(f, 0)))
	return true
}

// Finish completes a running animation at once.
func (p *Piece) Finish() { p.stop() }
