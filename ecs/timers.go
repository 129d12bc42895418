package ecs

// TimerHandle identifies a scheduled callback.
type TimerHandle uint64

type timer struct {
	handle    TimerHandle
	owner     Entity
	remaining float64
	fn        func()
	cancelled bool
}

// timerQueue holds callbacks that fire after a delay measured in simulated
// seconds. Callbacks owned by an entity die with it.
type timerQueue struct {
	next  TimerHandle
	items []*timer
}

// After schedules fn to run once delay seconds of simulation have elapsed.
// When owner is a valid entity the callback is cancelled if the owner is
// destroyed first. Pass 0 for an unowned callback.
func (w *World) After(owner Entity, delay float64, fn func()) TimerHandle {
	if w == nil || fn == nil {
		return 0
	}
	w.timers.next++
	w.timers.items = append(w.timers.items, &timer{
		handle:    w.timers.next,
		owner:     owner,
		remaining: delay,
		fn:        fn,
	})
	return w.timers.next
}

// Cancel stops a pending callback. It reports whether the callback was still
// pending.
func (w *World) Cancel(h TimerHandle) bool {
	if w == nil || h == 0 {
		return false
	}
	for _, t := range w.timers.items {
		if t.handle == h && !t.cancelled {
			t.cancelled = true
			return true
		}
	}
	return false
}

// PendingTimers returns the number of callbacks that have not fired or been
// cancelled.
func (w *World) PendingTimers() int {
	if w == nil {
		return 0
	}
	n := 0
	for _, t := range w.timers.items {
		if !t.cancelled {
			n++
		}
	}
	return n
}

func (q *timerQueue) cancelOwner(e Entity) {
	for _, t := range q.items {
		if t.owner == e {
			t.cancelled = true
		}
	}
}

func (q *timerQueue) advance(w *World, dt float64) {
	if len(q.items) == 0 {
		return
	}
	due := make([]*timer, 0)
	kept := make([]*timer, 0, len(q.items))
	for _, t := range q.items {
		if t.cancelled {
			continue
		}
		t.remaining -= dt
		if t.remaining <= 0 {
			due = append(due, t)
			continue
		}
		kept = append(kept, t)
	}
	// callbacks may schedule more timers, which land in q.items after this swap
	q.items = kept
	for _, t := range due {
		if t.cancelled {
			continue
		}
		if t.owner.Valid() && !w.entities.isAlive(t.owner) {
			continue
		}
		t.fn()
	}
}
