package page

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/atomicstack/portfolio-tui/internal/clock"
	"github.com/atomicstack/portfolio-tui/internal/dom"
	"github.com/atomicstack/portfolio-tui/internal/logging"
	"github.com/atomicstack/portfolio-tui/internal/observe"
	"github.com/atomicstack/portfolio-tui/internal/prefs"
)

type fakeInput struct {
	value string
}

func (f *fakeInput) Value() string { return f.value }
func (f *fakeInput) Reset()        { f.value = "" }

type fakeScroller struct {
	targets []int
}

func (f *fakeScroller) ScrollTo(offset int) { f.targets = append(f.targets, offset) }

type fixture struct {
	t        *testing.T
	doc      *dom.Node
	clock    *clock.Virtual
	root     *observe.Root
	store    *prefs.Memory
	scroller *fakeScroller
	inputs   map[string]*fakeInput
	ctrl     *Controller
}

func section(id string, top, height int) *dom.Node {
	s := dom.New("section", id, "section")
	s.Top = top
	s.Height = height
	return s
}

func block(tag, class string, top, height int) *dom.Node {
	n := dom.New(tag, "", class)
	n.Top = top
	n.Height = height
	return n
}

// newFixture builds a small page with three sections at 0, 500 and 1200.
func newFixture(t *testing.T, roles ...string) *fixture {
	t.Helper()
	if len(roles) == 0 {
		roles = []string{"Go", "Rust"}
	}
	doc := dom.New("html", "document")
	navbar := dom.New("nav", "navbar")
	toggle := dom.New("button", "navToggle")
	menu := dom.New("ul", "navMenu")
	for _, id := range []string{"home", "skills", "contact"} {
		link := dom.New("a", "", "nav-link")
		link.SetAttr("href", "#"+id)
		menu.Append(link)
	}
	navbar.Append(toggle, menu)

	home := section("home", 0, 500)
	home.Append(dom.New("span", "roleText"))
	cta := dom.New("a", "", "btn")
	cta.SetAttr("href", "#contact")
	external := dom.New("a", "", "social-link")
	external.SetAttr("href", "https://example.com")
	home.Append(cta, external)
	orb1 := dom.New("div", "", "gradient-orb")
	orb2 := dom.New("div", "", "gradient-orb")
	home.Append(orb1, orb2)

	skills := section("skills", 500, 700)
	cat := block("div", "skill-category", 600, 200)
	for i, w := range []string{"90%", "60%", "30%"} {
		bar := block("div", "skill-progress", 620+i*40, 20)
		bar.SetStyle("--skill-width", w)
		cat.Append(bar)
	}
	stat := block("div", "stat-card", 900, 100)
	num := block("span", "stat-number", 920, 40)
	num.SetAttr("data-count", "150")
	stat.Append(num)
	skills.Append(cat, stat)

	contact := section("contact", 1200, 800)
	form := dom.New("form", "contactForm")
	for _, name := range FieldNames {
		form.Append(dom.New("input", name), dom.New("span", name+"Error"))
	}
	submit := dom.New("button", "submit")
	submit.SetText("Send Message")
	form.Append(submit, dom.New("div", "formMessage", "form-message"))
	contact.Append(form)

	doc.Append(navbar, home, skills, contact)

	f := &fixture{
		t:        t,
		doc:      doc,
		clock:    clock.NewVirtual(),
		root:     observe.NewRoot(),
		store:    prefs.NewMemory(),
		scroller: &fakeScroller{},
		inputs:   map[string]*fakeInput{},
	}
	inputs := map[string]Input{}
	for _, name := range FieldNames {
		in := &fakeInput{}
		f.inputs[name] = in
		inputs[name] = in
	}
	ctrl, err := New(Deps{
		Elements:  Collect(doc, inputs),
		Roles:     roles,
		Scheduler: f.clock,
		Observers: f.root,
		Store:     f.store,
		Scroller:  f.scroller,
		NewID:     func() string { return "test-submission" },
	})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	f.ctrl = ctrl
	return f
}

func (f *fixture) start() {
	f.ctrl.Start(context.Background())
}

func (f *fixture) node(id string) *dom.Node {
	n := f.doc.ByID(id)
	if n == nil {
		f.t.Fatalf("missing node %s", id)
	}
	return n
}

func loggingToTemp(t *testing.T) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "page.log"))
	t.Cleanup(func() { logging.Configure("") })
}
