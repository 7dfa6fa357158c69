package page

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/portfolio-tui/internal/dom"
	"github.com/atomicstack/portfolio-tui/internal/logging"
	"github.com/atomicstack/portfolio-tui/internal/logging/events"
	"github.com/atomicstack/portfolio-tui/internal/observe"
)

const (
	counterDuration = 2000 * time.Millisecond
	counterFrame    = 16 * time.Millisecond
)

var revealClasses = []string{
	"skill-category",
	"project-card",
	"education-card",
	"timeline-item",
	"stat-card",
	"stat-number",
	"skill-progress",
}

var revealOptions = observe.Options{Threshold: 0.1, MarginBottom: -100}

// Revealed reports whether n and every revealable ancestor has faded in.
func Revealed(n *dom.Node) bool {
	for ; n != nil; n = n.Parent {
		if n.HasClass("fade-in") {
			continue
		}
		for _, class := range revealClasses {
			if n.HasClass(class) {
				return false
			}
		}
	}
	return true
}

func (c *Controller) startReveal() {
	c.revealer = c.factory.NewObserver(c.handleReveal, revealOptions)
	for _, n := range c.el.Revealables {
		c.revealer.Observe(n)
	}
}

func (c *Controller) handleReveal(entries []observe.Entry) {
	for _, e := range entries {
		if !e.IsIntersecting {
			continue
		}
		t := e.Target
		if !t.HasClass("fade-in") {
			events.Reveal.Reveal(t.String())
		}
		t.AddClass("fade-in")
		if t.HasClass("stat-number") {
			c.animateValue(t)
		}
		if t.HasClass("skill-progress") {
			t.SetStyle("width", t.Style("--skill-width"))
		}
	}
}

// counter renders the frames of a stat count-up.
type counter struct {
	target    float64
	increment float64
	current   float64
	decimal   bool
}

func newCounter(target float64) *counter {
	frames := float64(counterDuration) / float64(counterFrame)
	return &counter{
		target:    target,
		increment: target / frames,
		decimal:   math.Mod(target, 1) != 0,
	}
}

// step advances one frame and returns the rendered text and whether the
// count has finished.
func (k *counter) step() (string, bool) {
	k.current += k.increment
	done := false
	if k.current >= k.target {
		k.current = k.target
		done = true
	}
	var text string
	if k.decimal {
		text = strconv.FormatFloat(k.current, 'f', 2, 64)
	} else {
		text = wholeNumber(k.current)
	}
	// The "+" test reads text rendered in this same frame, which never has
	// one, so only the target > 100 branch can apply.
	if strings.Contains(text, "+") || k.target > 100 {
		text = wholeNumber(k.current) + "+"
	}
	return text, done
}

// wholeNumber formats the floor of v without converting to int, so counts
// beyond the int range render correctly.
func wholeNumber(v float64) string {
	return strconv.FormatFloat(math.Floor(v), 'f', 0, 64)
}

func (c *Controller) animateValue(n *dom.Node) {
	raw, _ := n.Attr("data-count")
	target, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(target) || math.IsInf(target, 0) {
		logging.Error(fmt.Errorf("stat %s: invalid data-count %q", n, raw))
		return
	}
	if prev, ok := c.counters[n]; ok {
		prev.Stop()
	}
	events.Reveal.Counter(n.String(), target)
	k := newCounter(target)
	var frame func()
	frame = func() {
		text, done := k.step()
		n.SetText(text)
		if done {
			delete(c.counters, n)
			return
		}
		c.counters[n] = c.sched.AfterFunc(counterFrame, frame)
	}
	c.counters[n] = c.sched.AfterFunc(counterFrame, frame)
}
