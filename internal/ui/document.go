package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/atomicstack/portfolio-tui/internal/content"
	"github.com/atomicstack/portfolio-tui/internal/dom"
	"github.com/atomicstack/portfolio-tui/internal/theme"
)

const (
	orbCount   = 3
	barCells   = 20
	skillLabel = 18
)

// sectionOrder is the page's section list and nav link labels.
var sectionOrder = []struct {
	id, label string
}{
	{"home", "Home"},
	{"about", "About"},
	{"skills", "Skills"},
	{"experience", "Experience"},
	{"education", "Education"},
	{"projects", "Projects"},
	{"contact", "Contact"},
}

// heroLinks are the in-page call-to-action anchors under the hero text.
var heroLinks = []struct {
	href, label, class, key string
}{
	{"#contact", "Get In Touch", "btn-primary", "c"},
	{"#projects", "View My Work", "btn-secondary", "w"},
}

// frame is the render context handed to blocks.
type frame struct {
	styles *theme.Styles
	width  int
	about  []string
	focus  string
}

// block is a leaf node that owns a fixed run of rows in the page.
type block struct {
	node   *dom.Node
	render func(f *frame) []string
}

// document is the page tree built from portfolio content.
type document struct {
	portfolio content.Portfolio
	root      *dom.Node
	navbar    *dom.Node
	navToggle *dom.Node
	navMenu   *dom.Node
	links     []*dom.Node
	sections  []*dom.Node
	home      *dom.Node
	orbs      []*dom.Node
	blocks    []block
	placed    []placement
	rows      int
}

func newDocument(p content.Portfolio, fields []*formField) *document {
	d := &document{portfolio: p, root: dom.New("html", "document")}
	d.buildNavbar()
	d.buildHome()
	d.buildAbout()
	d.buildSkills()
	d.buildExperience()
	d.buildEducation()
	d.buildProjects()
	d.buildContact(fields)
	d.leaf(d.root, dom.New("footer", "", "footer"), func(f *frame) []string {
		return []string{"", indent(f.styles.Muted.Render("© " + d.portfolio.Name + " · built for the terminal"))}
	})
	return d
}

func (d *document) leaf(parent, n *dom.Node, render func(f *frame) []string) *dom.Node {
	parent.Append(n)
	d.blocks = append(d.blocks, block{node: n, render: render})
	return n
}

func (d *document) section(id string) *dom.Node {
	s := dom.New("section", id, "section")
	d.root.Append(s)
	d.sections = append(d.sections, s)
	return s
}

// link returns the nav link targeting a section id.
func (d *document) link(id string) *dom.Node {
	for _, l := range d.links {
		if href, _ := l.Attr("href"); href == "#"+id {
			return l
		}
	}
	return nil
}

func (d *document) heading(parent *dom.Node, title string) {
	d.leaf(parent, dom.New("h2", "", "section-title"), func(f *frame) []string {
		rule := f.width - 4
		if rule > 40 {
			rule = 40
		}
		if rule < 0 {
			rule = 0
		}
		return []string{
			"",
			indent(f.styles.Heading.Render(title)),
			indent(f.styles.Muted.Render(strings.Repeat("─", rule))),
		}
	})
}

func (d *document) buildNavbar() {
	d.navbar = dom.New("nav", "navbar", "navbar")
	d.navToggle = dom.New("button", "navToggle", "nav-toggle")
	d.navMenu = dom.New("ul", "navMenu", "nav-menu")
	for _, s := range sectionOrder {
		link := dom.New("a", "", "nav-link")
		link.SetAttr("href", "#"+s.id)
		link.SetText(s.label)
		d.navMenu.Append(link)
		d.links = append(d.links, link)
	}
	d.navbar.Append(d.navToggle, d.navMenu)
	d.root.Append(d.navbar)
}

func (d *document) buildHome() {
	p := d.portfolio
	home := d.section("home")
	d.home = home
	d.leaf(home, dom.New("h1", "", "hero-title"), func(f *frame) []string {
		return []string{"", indent(f.styles.Muted.Render("Hi, I'm")), indent(f.styles.Title.Render(p.Name))}
	})
	role := dom.New("span", "roleText", "typing-text")
	d.leaf(home, role, func(f *frame) []string {
		return []string{indent(f.styles.Accent.Render(role.Text()) + f.styles.Muted.Render("▌"))}
	})
	d.leaf(home, dom.New("p", "", "hero-description"), func(f *frame) []string {
		return []string{"", indent(f.styles.Body.Render(p.Tagline))}
	})
	buttons := dom.New("div", "", "hero-buttons")
	for _, cta := range heroLinks {
		a := dom.New("a", "", "btn", cta.class)
		a.SetAttr("href", cta.href)
		a.SetText(cta.label)
		buttons.Append(a)
	}
	d.leaf(home, buttons, func(f *frame) []string {
		parts := make([]string, 0, len(buttons.Children))
		for i, a := range buttons.Children {
			parts = append(parts, f.styles.Button.Render(a.Text())+f.styles.Muted.Render(" ["+heroLinks[i].key+"]"))
		}
		return []string{"", indent(strings.Join(parts, "   "))}
	})
	for i := 0; i < orbCount; i++ {
		orb := dom.New("div", "", "gradient-orb", fmt.Sprintf("orb-%d", i+1))
		home.Append(orb)
		d.orbs = append(d.orbs, orb)
	}
}

func (d *document) buildAbout() {
	p := d.portfolio
	about := d.section("about")
	d.heading(about, "About Me")
	d.leaf(about, dom.New("div", "", "about-text"), func(f *frame) []string {
		return f.about
	})
	stats := dom.New("div", "", "stats")
	about.Append(stats)
	for _, stat := range p.Stats {
		stat := stat
		card := dom.New("div", "", "stat-card")
		stats.Append(card)
		num := dom.New("span", "", "stat-number")
		num.SetAttr("data-count", stat.Count)
		num.SetText("0")
		d.leaf(card, num, func(f *frame) []string {
			return []string{"", indent(f.styles.Accent.Render(num.Text()))}
		})
		d.leaf(card, dom.New("span", "", "stat-label"), func(f *frame) []string {
			return []string{indent(f.styles.Muted.Render(stat.Label))}
		})
	}
}

func (d *document) buildSkills() {
	p := d.portfolio
	skills := d.section("skills")
	d.heading(skills, "Skills")
	for _, cat := range p.Skills {
		cat := cat
		container := dom.New("div", "", "skill-category")
		skills.Append(container)
		d.leaf(container, dom.New("h3", "", "category-title"), func(f *frame) []string {
			return []string{"", indent(f.styles.Title.Render(cat.Name))}
		})
		for _, skill := range cat.Skills {
			skill := skill
			bar := dom.New("div", "", "skill-progress")
			bar.SetStyle("--skill-width", fmt.Sprintf("%d%%", skill.Level))
			d.leaf(container, bar, func(f *frame) []string {
				return []string{indent(skillBar(f.styles, skill, bar))}
			})
		}
	}
}

func skillBar(s *theme.Styles, skill content.Skill, bar *dom.Node) string {
	pct, _ := bar.Percent("width")
	filled := int(math.Round(pct / 100 * barCells))
	if filled < 0 {
		filled = 0
	}
	if filled > barCells {
		filled = barCells
	}
	name := skill.Name
	if pad := skillLabel - len([]rune(name)); pad > 0 {
		name += strings.Repeat(" ", pad)
	}
	return s.Body.Render(name) +
		s.BarFilled.Render(strings.Repeat("█", filled)) +
		s.BarEmpty.Render(strings.Repeat("░", barCells-filled)) +
		" " + s.Muted.Render(fmt.Sprintf("%d%%", skill.Level))
}

func (d *document) buildExperience() {
	exp := d.section("experience")
	d.heading(exp, "Experience")
	for _, item := range d.portfolio.Experience {
		item := item
		d.leaf(exp, dom.New("div", "", "timeline-item"), func(f *frame) []string {
			lines := []string{
				"",
				indent(f.styles.Title.Render(item.Title) + f.styles.Muted.Render(" · ") + f.styles.Body.Render(item.Org)),
				indent(f.styles.Muted.Render(item.Period)),
			}
			for _, point := range item.Points {
				lines = append(lines, indent("  • "+f.styles.Body.Render(point)))
			}
			return lines
		})
	}
}

func (d *document) buildEducation() {
	edu := d.section("education")
	d.heading(edu, "Education")
	for _, card := range d.portfolio.Education {
		d.leaf(edu, dom.New("div", "", "education-card"), cardRenderer(card))
	}
}

func (d *document) buildProjects() {
	projects := d.section("projects")
	d.heading(projects, "Projects")
	for _, card := range d.portfolio.Projects {
		d.leaf(projects, dom.New("div", "", "project-card"), cardRenderer(card))
	}
}

// cardRenderer draws a card with a fixed line count so optional fields keep
// the layout stable.
func cardRenderer(card content.Card) func(f *frame) []string {
	return func(f *frame) []string {
		tags := make([]string, len(card.Tags))
		for i, tag := range card.Tags {
			tags[i] = f.styles.Tag.Render(" " + tag + " ")
		}
		return []string{
			"",
			indent(f.styles.Title.Render(card.Title)),
			indent(f.styles.Muted.Render(card.Subtitle)),
			indent(f.styles.Body.Render(card.Description)),
			indent(strings.Join(tags, " ")),
		}
	}
}

func (d *document) buildContact(fields []*formField) {
	p := d.portfolio
	contact := d.section("contact")
	d.heading(contact, "Get In Touch")
	d.leaf(contact, dom.New("p", "", "contact-info"), func(f *frame) []string {
		return []string{indent(f.styles.Body.Render("Email: " + p.Email))}
	})
	form := dom.New("form", "contactForm", "contact-form")
	contact.Append(form)
	for _, field := range fields {
		field := field
		control := dom.New("input", field.name, "form-control")
		if field.multi {
			control.Tag = "textarea"
		}
		d.leaf(form, control, func(f *frame) []string {
			label := f.styles.FieldLabel
			switch {
			case control.Style("border-color") == "error":
				label = f.styles.FieldLabelError
			case f.focus == field.name:
				label = f.styles.FieldLabelFocus
			}
			lines := []string{"", indent(label.Render(field.label))}
			for _, l := range field.InputView() {
				lines = append(lines, indent(l))
			}
			return lines
		})
		errNode := dom.New("span", field.name+"Error", "error-message")
		d.leaf(form, errNode, func(f *frame) []string {
			if errNode.Text() == "" {
				return []string{""}
			}
			return []string{indent(f.styles.Error.Render("  " + errNode.Text()))}
		})
	}
	submit := dom.New("button", "submit", "btn", "btn-primary")
	submit.SetText("Send Message")
	d.leaf(form, submit, func(f *frame) []string {
		style := f.styles.Button
		if _, disabled := submit.Attr("disabled"); disabled {
			style = f.styles.ButtonDisabled
		} else if f.focus == "submit" {
			style = f.styles.ButtonFocus
		}
		return []string{"", indent(style.Render(submit.Text()))}
	})
	msg := dom.New("div", "formMessage", "form-message")
	d.leaf(form, msg, func(f *frame) []string {
		return []string{"", indent(formMessage(f.styles, msg))}
	})
}

func formMessage(s *theme.Styles, n *dom.Node) string {
	if n.Style("display") != "block" || n.Text() == "" {
		return ""
	}
	switch {
	case n.HasClass("success"):
		return s.Success.Render(n.Text())
	case n.HasClass("error"):
		return s.Error.Render(n.Text())
	default:
		return s.Body.Render(n.Text())
	}
}

func indent(s string) string {
	return "  " + s
}
