package ui

import (
	"testing"
	"time"

	"github.com/atomicstack/portfolio-tui/internal/clock"
)

type scrollFixture struct {
	clk      *clock.Virtual
	offset   int
	applied  int
	scroller *smoothScroller
}

func newScrollFixture(limit int) *scrollFixture {
	f := &scrollFixture{clk: clock.NewVirtual()}
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > limit {
			return limit
		}
		return v
	}
	f.scroller = newSmoothScroller(f.clk,
		func(v int) { f.offset = v; f.applied++ },
		func() int { return f.offset },
		clamp)
	return f
}

func TestSmoothScrollerConverges(t *testing.T) {
	f := newScrollFixture(5000)
	f.scroller.ScrollTo(3000)
	if !f.scroller.Active() {
		t.Fatalf("expected scroller active")
	}
	f.clk.Advance(200 * time.Millisecond)
	if f.offset <= 0 || f.offset >= 3000 {
		t.Fatalf("expected partial progress, got %d", f.offset)
	}
	f.clk.Advance(5 * time.Second)
	if f.offset != 3000 {
		t.Fatalf("expected offset 3000, got %d", f.offset)
	}
	if f.scroller.Active() {
		t.Fatalf("expected scroller idle once settled")
	}
	if f.clk.Pending() != 0 {
		t.Fatalf("expected no frames pending, got %d", f.clk.Pending())
	}
}

func TestSmoothScrollerClampsTarget(t *testing.T) {
	f := newScrollFixture(400)
	f.scroller.ScrollTo(-50)
	if f.scroller.Target() != 0 {
		t.Fatalf("expected clamped target 0, got %d", f.scroller.Target())
	}
	f.scroller.ScrollTo(9000)
	if f.scroller.Target() != 400 {
		t.Fatalf("expected clamped target 400, got %d", f.scroller.Target())
	}
	f.clk.Advance(5 * time.Second)
	if f.offset != 400 {
		t.Fatalf("expected offset 400, got %d", f.offset)
	}
}

func TestSmoothScrollerStop(t *testing.T) {
	f := newScrollFixture(5000)
	f.scroller.ScrollTo(3000)
	f.clk.Advance(100 * time.Millisecond)
	f.scroller.Stop()
	at, frames := f.offset, f.applied
	f.clk.Advance(time.Second)
	if f.offset != at || f.applied != frames {
		t.Fatalf("expected no frames after stop, offset %d -> %d", at, f.offset)
	}
}
