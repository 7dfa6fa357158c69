package page

import (
	"strconv"
	"strings"

	"github.com/atomicstack/portfolio-tui/internal/dom"
	"github.com/atomicstack/portfolio-tui/internal/logging/events"
)

const headerOffset = 80

// ClickAnchor handles activation of an in-page link. It reports whether the
// fragment resolved to a node; unresolved fragments do nothing.
func (c *Controller) ClickAnchor(href string) bool {
	target := c.el.Root.Resolve(href)
	if target == nil {
		return false
	}
	offset := target.Top - headerOffset
	events.Scroll.Anchor(href, offset)
	if c.scroller != nil {
		c.scroller.ScrollTo(offset)
	}
	return true
}

// ClickLink handles a click on any link node. Only in-page fragments scroll;
// other hrefs report false.
func (c *Controller) ClickLink(link *dom.Node) bool {
	if link == nil {
		return false
	}
	href, ok := link.Attr("href")
	if !ok || !strings.HasPrefix(href, "#") {
		return false
	}
	return c.ClickAnchor(href)
}

// Anchors returns every in-page link in document order.
func (c *Controller) Anchors() []*dom.Node {
	return c.el.Anchors
}

// ParallaxSpeed is the scroll factor of the i-th background orb.
func ParallaxSpeed(i int) float64 {
	return 0.1 + float64(i)*0.05
}

func (c *Controller) updateParallax(offset int) {
	for i, orb := range c.el.Orbs {
		shift := float64(offset) * ParallaxSpeed(i)
		orb.SetStyle("transform", "translateY("+strconv.FormatFloat(shift, 'f', -1, 64)+"px)")
	}
}
