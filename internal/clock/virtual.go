package clock

import (
	"sort"
	"time"
)

// Virtual is a deterministic scheduler for tests. Time only moves through
// Advance; callbacks due at the same instant run in the order they were armed.
type Virtual struct {
	now     time.Duration
	seq     int
	pending []*virtualTimer
}

// NewVirtual returns a virtual clock at time zero.
func NewVirtual() *Virtual {
	return &Virtual{}
}

type virtualTimer struct {
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (vt *virtualTimer) Stop() bool {
	if vt.stopped || vt.fired {
		return false
	}
	vt.stopped = true
	return true
}

// AfterFunc implements Scheduler.
func (v *Virtual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	v.seq++
	vt := &virtualTimer{at: v.now + d, seq: v.seq, fn: fn}
	v.pending = append(v.pending, vt)
	return vt
}

// Now returns the elapsed virtual time.
func (v *Virtual) Now() time.Duration {
	return v.now
}

// Pending reports how many live timers are armed.
func (v *Virtual) Pending() int {
	n := 0
	for _, vt := range v.pending {
		if !vt.stopped && !vt.fired {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, running every callback that falls due,
// including ones armed by callbacks during the advance.
func (v *Virtual) Advance(d time.Duration) {
	end := v.now + d
	for {
		next := v.nextDue(end)
		if next == nil {
			break
		}
		v.now = next.at
		next.fired = true
		next.fn()
	}
	v.now = end
	v.compact()
}

// Step runs only the earliest pending callback, moving time to it. It reports
// false when nothing is armed.
func (v *Virtual) Step() bool {
	next := v.nextDue(-1)
	if next == nil {
		return false
	}
	v.now = next.at
	next.fired = true
	next.fn()
	v.compact()
	return true
}

// nextDue returns the earliest live timer due at or before limit; a negative
// limit means no bound.
func (v *Virtual) nextDue(limit time.Duration) *virtualTimer {
	live := make([]*virtualTimer, 0, len(v.pending))
	for _, vt := range v.pending {
		if !vt.stopped && !vt.fired {
			live = append(live, vt)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].at == live[j].at {
			return live[i].seq < live[j].seq
		}
		return live[i].at < live[j].at
	})
	if limit >= 0 && live[0].at > limit {
		return nil
	}
	return live[0]
}

func (v *Virtual) compact() {
	kept := v.pending[:0]
	for _, vt := range v.pending {
		if !vt.stopped && !vt.fired {
			kept = append(kept, vt)
		}
	}
	v.pending = kept
}
