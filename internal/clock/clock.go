// Package clock provides the one-shot timer abstraction page behaviours are
// scheduled on. Callbacks always run on the caller's event loop: the real
// scheduler posts them back through a delivery function, the virtual one
// runs them from Advance.
package clock

import (
	"sync"
	"time"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop cancels the callback. It reports false when the callback has
	// already run or was stopped before.
	Stop() bool
}

// Scheduler arms one-shot callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Real schedules with time.AfterFunc and hands each expired callback to
// post, which must run it on the event loop.
type Real struct {
	post func(func())
}

// NewReal returns a scheduler delivering callbacks through post.
func NewReal(post func(func())) *Real {
	return &Real{post: post}
}

// AfterFunc implements Scheduler.
func (r *Real) AfterFunc(d time.Duration, fn func()) Timer {
	rt := &realTimer{}
	rt.t = time.AfterFunc(d, func() {
		r.post(func() {
			if rt.fire() {
				fn()
			}
		})
	})
	return rt
}

type realTimer struct {
	t *time.Timer

	mu   sync.Mutex
	done bool
}

// fire marks the timer as run unless Stop got there first.
func (rt *realTimer) fire() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.done {
		return false
	}
	rt.done = true
	return true
}

func (rt *realTimer) Stop() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.done {
		return false
	}
	rt.done = true
	rt.t.Stop()
	return true
}
