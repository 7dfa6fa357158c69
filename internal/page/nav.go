package page

import (
	"github.com/atomicstack/portfolio-tui/internal/dom"
	"github.com/atomicstack/portfolio-tui/internal/logging/events"
)

const (
	scrolledThreshold = 100
	sectionLookahead  = 200
)

// Scroll is the handler for every viewport scroll event.
func (c *Controller) Scroll(offset int) {
	c.updateNavbar(offset)
	c.updateActiveSection(offset)
	c.updateParallax(offset)
}

func (c *Controller) updateNavbar(offset int) {
	if c.el.Navbar == nil {
		return
	}
	if offset > scrolledThreshold {
		c.el.Navbar.AddClass("scrolled")
	} else {
		c.el.Navbar.RemoveClass("scrolled")
	}
}

// ActiveSection returns the id of the last section, in document order, whose
// top minus the lookahead is at or above offset. It returns "" when none is.
func ActiveSection(sections []*dom.Node, offset int) string {
	current := ""
	for _, s := range sections {
		if offset >= s.Top-sectionLookahead {
			current = s.ID
		}
	}
	return current
}

func (c *Controller) updateActiveSection(offset int) {
	current := ActiveSection(c.el.Sections, offset)
	for _, link := range c.el.NavLinks {
		link.RemoveClass("active")
		if current == "" {
			continue
		}
		if href, _ := link.Attr("href"); href == "#"+current {
			link.AddClass("active")
		}
	}
	if current != c.activeSection {
		c.activeSection = current
		events.Nav.Active(current)
	}
}

// ActiveSectionID returns the section selected by the last scroll event.
func (c *Controller) ActiveSectionID() string {
	return c.activeSection
}

// ToggleNavMenu opens or closes the mobile navigation menu.
func (c *Controller) ToggleNavMenu() bool {
	open := false
	if c.el.NavToggle != nil {
		open = c.el.NavToggle.ToggleClass("active")
	}
	if c.el.NavMenu != nil {
		if open {
			c.el.NavMenu.AddClass("active")
		} else {
			c.el.NavMenu.RemoveClass("active")
		}
	}
	events.Nav.Menu(open)
	return open
}

// NavMenuOpen reports whether the mobile menu is showing.
func (c *Controller) NavMenuOpen() bool {
	return c.el.NavMenu != nil && c.el.NavMenu.HasClass("active")
}

// ActivateNavLink handles a click on a navigation link: the menu closes and,
// because nav links are in-page anchors, the page scrolls to the target.
func (c *Controller) ActivateNavLink(link *dom.Node) {
	if c.el.NavToggle != nil {
		c.el.NavToggle.RemoveClass("active")
	}
	if c.el.NavMenu != nil {
		c.el.NavMenu.RemoveClass("active")
	}
	c.ClickLink(link)
}
