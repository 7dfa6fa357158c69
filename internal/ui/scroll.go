package ui

import (
	"math"
	"time"

	"github.com/atomicstack/portfolio-tui/internal/clock"
	"github.com/charmbracelet/harmonica"
)

const (
	scrollFrame     = 16 * time.Millisecond
	springFrequency = 6.0
	springDamping   = 1.0
	settleDistance  = 0.5
)

// smoothScroller animates the viewport towards a target offset with a
// critically damped spring, one frame per scheduler tick.
type smoothScroller struct {
	sched   clock.Scheduler
	spring  harmonica.Spring
	apply   func(offset int)
	current func() int
	clamp   func(offset int) int

	pos, vel, target float64
	timer            clock.Timer
}

func newSmoothScroller(sched clock.Scheduler, apply func(int), current func() int, clamp func(int) int) *smoothScroller {
	return &smoothScroller{
		sched:   sched,
		spring:  harmonica.NewSpring(harmonica.FPS(60), springFrequency, springDamping),
		apply:   apply,
		current: current,
		clamp:   clamp,
	}
}

// ScrollTo starts or retargets the animation. The target is clamped to the
// scrollable range.
func (s *smoothScroller) ScrollTo(offset int) {
	s.target = float64(s.clamp(offset))
	if s.timer == nil {
		s.pos = float64(s.current())
		s.vel = 0
		s.timer = s.sched.AfterFunc(scrollFrame, s.frame)
	}
}

// Stop abandons a running animation where it is.
func (s *smoothScroller) Stop() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Active reports whether an animation is running.
func (s *smoothScroller) Active() bool {
	return s.timer != nil
}

// Target returns the offset of the current or last animation.
func (s *smoothScroller) Target() int {
	return int(s.target)
}

func (s *smoothScroller) frame() {
	s.timer = nil
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.target-s.pos) < settleDistance && math.Abs(s.vel) < settleDistance {
		s.pos, s.vel = s.target, 0
		s.apply(int(s.target))
		return
	}
	s.apply(int(math.Round(s.pos)))
	s.timer = s.sched.AfterFunc(scrollFrame, s.frame)
}
