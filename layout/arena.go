package layout

import "github.com/gogpu/collage"

// pointID is a handle into the layout's point arena.
type pointID int

// crossover is an arena slot. A slot bound to two lines is their live
// intersection; a free slot (the outer corners) is written directly.
type crossover struct {
	pt   collage.Point
	a, b *Line
}

type arena struct {
	slots []crossover
}

func (ar *arena) add(p collage.Point) pointID {
	ar.slots = append(ar.slots, crossover{pt: p})
	return pointID(len(ar.slots) - 1)
}

// cross allocates the intersection of a and b.
func (ar *arena) cross(a, b *Line) pointID {
	id := ar.add(collage.Point{})
	ar.bind(id, a, b)
	ar.recompute(id)
	return id
}

// bind marks id as the crossover of a and b without moving it.
func (ar *arena) bind(id pointID, a, b *Line) {
	ar.slots[id].a = a
	ar.slots[id].b = b
}

func (ar *arena) at(id pointID) collage.Point {
	return ar.slots[id].pt
}

func (ar *arena) set(id pointID, p collage.Point) {
	ar.slots[id].pt = p
}

// recompute rewrites a bound slot from its two lines. Parallel lines leave
// the previous coordinates in place.
func (ar *arena) recompute(id pointID) {
	s := &ar.slots[id]
	if s.a == nil || s.b == nil {
		return
	}
	p, ok := collage.Intersect(s.a.Segment(), s.b.Segment())
	if !ok {
		collage.Logger().Debug("layout: parallel lines at crossover, keeping previous point",
			"point", int(id), "x", s.pt.X, "y", s.pt.Y)
		return
	}
	s.pt = p
}

func (ar *arena) recomputeAll() {
	for i := range ar.slots {
		ar.recompute(pointID(i))
	}
}
