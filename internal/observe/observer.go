// Package observe reports when document nodes enter or leave the visible
// viewport, in the manner of an intersection observer: each observer has a
// visibility threshold and a root margin, and its callback receives entries
// whenever a target's intersecting state changes.
package observe

import (
	"github.com/atomicstack/portfolio-tui/internal/dom"
)

// Options configures an observer.
type Options struct {
	// Threshold is the fraction of the target that must be inside the root
	// box for it to count as intersecting.
	Threshold float64
	// MarginTop and MarginBottom grow (positive) or shrink (negative) the
	// root box, in pixels.
	MarginTop    int
	MarginBottom int
}

// Entry describes one target's state at delivery time.
type Entry struct {
	Target         *dom.Node
	IsIntersecting bool
	Ratio          float64
}

// Callback receives batched entries.
type Callback func(entries []Entry)

// Observer tracks a set of targets.
type Observer interface {
	Observe(target *dom.Node)
	Unobserve(target *dom.Node)
}

// Factory creates observers bound to a viewport source.
type Factory interface {
	NewObserver(cb Callback, opts Options) Observer
}

// Viewport is the visible slice of the document in pixels.
type Viewport struct {
	ScrollTop int
	Height    int
}

// Root owns every observer created from it and re-evaluates them each time
// the viewport changes.
type Root struct {
	viewport  Viewport
	hasLayout bool
	observers []*observer
}

// NewRoot returns a root with no viewport yet; no entries are delivered until
// the first Update.
func NewRoot() *Root {
	return &Root{}
}

// NewObserver implements Factory.
func (r *Root) NewObserver(cb Callback, opts Options) Observer {
	o := &observer{root: r, cb: cb, opts: opts, state: map[*dom.Node]bool{}}
	r.observers = append(r.observers, o)
	return o
}

// Viewport returns the last viewport passed to Update.
func (r *Root) Viewport() Viewport {
	return r.viewport
}

// Update records the new viewport and delivers entries for every target whose
// intersecting state changed, plus the initial entry of newly observed ones.
func (r *Root) Update(vp Viewport) {
	r.viewport = vp
	r.hasLayout = true
	for _, o := range append([]*observer(nil), r.observers...) {
		o.evaluate()
	}
}

type observer struct {
	root    *Root
	cb      Callback
	opts    Options
	targets []*dom.Node
	// state holds the last delivered intersecting flag; targets absent from
	// it have not had their initial entry yet.
	state map[*dom.Node]bool
}

func (o *observer) Observe(target *dom.Node) {
	if target == nil {
		return
	}
	for _, t := range o.targets {
		if t == target {
			return
		}
	}
	o.targets = append(o.targets, target)
	if o.root.hasLayout {
		o.evaluateOne(target)
	}
}

func (o *observer) Unobserve(target *dom.Node) {
	for i, t := range o.targets {
		if t == target {
			o.targets = append(o.targets[:i], o.targets[i+1:]...)
			delete(o.state, target)
			return
		}
	}
}

func (o *observer) evaluate() {
	var entries []Entry
	for _, t := range o.targets {
		if e, changed := o.check(t); changed {
			entries = append(entries, e)
		}
	}
	if len(entries) > 0 {
		o.cb(entries)
	}
}

func (o *observer) evaluateOne(t *dom.Node) {
	if e, changed := o.check(t); changed {
		o.cb([]Entry{e})
	}
}

func (o *observer) check(t *dom.Node) (Entry, bool) {
	ratio := Ratio(t, o.root.viewport, o.opts)
	intersecting := ratio > 0 && ratio >= o.opts.Threshold
	if o.opts.Threshold == 0 {
		intersecting = ratio > 0
	}
	prev, seen := o.state[t]
	o.state[t] = intersecting
	if seen && prev == intersecting {
		return Entry{}, false
	}
	return Entry{Target: t, IsIntersecting: intersecting, Ratio: ratio}, true
}

// Ratio returns the fraction of the target inside the viewport after margins
// are applied. Zero-height targets count as fully visible when their top edge
// lies within the root box.
func Ratio(t *dom.Node, vp Viewport, opts Options) float64 {
	top := vp.ScrollTop - opts.MarginTop
	bottom := vp.ScrollTop + vp.Height + opts.MarginBottom
	if bottom <= top {
		return 0
	}
	if t.Height <= 0 {
		if t.Top >= top && t.Top < bottom {
			return 1
		}
		return 0
	}
	lo := max(t.Top, top)
	hi := min(t.Top+t.Height, bottom)
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(t.Height)
}
