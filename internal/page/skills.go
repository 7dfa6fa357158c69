package page

import (
	"time"

	"github.com/atomicstack/portfolio-tui/internal/dom"
	"github.com/atomicstack/portfolio-tui/internal/logging/events"
	"github.com/atomicstack/portfolio-tui/internal/observe"
)

const skillStagger = 100 * time.Millisecond

var skillOptions = observe.Options{Threshold: 0.3}

func (c *Controller) startSkillBars() {
	c.skillObserver = c.factory.NewObserver(c.handleSkillCategory, skillOptions)
	for _, n := range c.el.SkillCategories {
		c.skillObserver.Observe(n)
	}
}

func (c *Controller) handleSkillCategory(entries []observe.Entry) {
	for _, e := range entries {
		if !e.IsIntersecting {
			continue
		}
		bars := e.Target.Descendants("skill-progress")
		for i, bar := range bars {
			c.sched.AfterFunc(time.Duration(i)*skillStagger, fillBar(bar))
		}
		events.Reveal.SkillCategory(e.Target.String(), len(bars))
		c.skillObserver.Unobserve(e.Target)
	}
}

func fillBar(bar *dom.Node) func() {
	return func() {
		bar.SetStyle("width", bar.Style("--skill-width"))
	}
}
