package interact

import (
	"slices"
	"time"
)

// timerID identifies a scheduled callback. The zero value is never issued.
type timerID uint64

type task struct {
	id  timerID
	due time.Time
	fn  func()
}

// queue holds callbacks waiting for their due time. It is drained by
// Session.Tick on the host's event loop.
type queue struct {
	last  timerID
	tasks []task
}

func (q *queue) schedule(due time.Time, fn func()) timerID {
	q.last++
	q.tasks = append(q.tasks, task{id: q.last, due: due, fn: fn})
	slices.SortStableFunc(q.tasks, func(a, b task) int { return a.due.Compare(b.due) })
	return q.last
}

// cancel removes a pending callback. Cancelling an unknown, fired or
// already cancelled timer is a no-op.
func (q *queue) cancel(id timerID) bool {
	i := slices.IndexFunc(q.tasks, func(t task) bool { return t.id == id })
	if i < 0 {
		return false
	}
	q.tasks = slices.Delete(q.tasks, i, i+1)
	return true
}

// runDue runs every callback due at or before now, earliest first, and
// returns how many ran. Callbacks scheduled while running wait for the
// next call.
func (q *queue) runDue(now time.Time) int {
	i := 0
	for i < len(q.tasks) && !q.tasks[i].due.After(now) {
		i++
	}
	due := slices.Clone(q.tasks[:i])
	q.tasks = slices.Delete(q.tasks, 0, i)
	for _, t := range due {
		t.fn()
	}
	return len(due)
}

func (q *queue) pending() int { return len(q.tasks) }
