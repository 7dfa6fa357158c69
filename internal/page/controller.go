package page

import (
	"context"
	"fmt"

	"github.com/atomicstack/portfolio-tui/internal/clock"
	"github.com/atomicstack/portfolio-tui/internal/dom"
	"github.com/atomicstack/portfolio-tui/internal/logging"
	"github.com/atomicstack/portfolio-tui/internal/logging/events"
	"github.com/atomicstack/portfolio-tui/internal/observe"
	"github.com/atomicstack/portfolio-tui/internal/prefs"
	"github.com/google/uuid"
)

// Input is a form control holding user text.
type Input interface {
	Value() string
	Reset()
}

// Scroller moves the viewport to an absolute document offset.
type Scroller interface {
	ScrollTo(offset int)
}

// Field binds one contact form field to its control and error slot.
type Field struct {
	Name    string
	Input   Input
	Control *dom.Node
	Error   *dom.Node
}

// Elements is every document handle the controller touches, resolved once.
type Elements struct {
	Root            *dom.Node
	Navbar          *dom.Node
	NavToggle       *dom.Node
	NavMenu         *dom.Node
	NavLinks        []*dom.Node
	Anchors         []*dom.Node
	Sections        []*dom.Node
	RoleText        *dom.Node
	Revealables     []*dom.Node
	SkillCategories []*dom.Node
	Orbs            []*dom.Node
	Fields          []Field
	Submit          *dom.Node
	FormMessage     *dom.Node
}

// Deps is the controller's explicit dependency set.
type Deps struct {
	Elements  Elements
	Roles     []string
	Scheduler clock.Scheduler
	Observers observe.Factory
	Store     prefs.Store
	Scroller  Scroller
	// Greeting lines are logged once by Start.
	Greeting []string
	// NewID labels simulated submissions; defaults to random UUIDs.
	NewID func() string
}

// Controller wires the page behaviours to document nodes and timers. All
// methods must be called from the single event loop that also runs the
// scheduler's callbacks.
type Controller struct {
	el       Elements
	sched    clock.Scheduler
	store    prefs.Store
	scroller Scroller
	newID    func() string
	greeting []string
	factory  observe.Factory

	writer        *typewriter
	revealer      observe.Observer
	skillObserver observe.Observer
	counters      map[*dom.Node]clock.Timer
	activeSection string
	started       bool
}

// New validates deps and returns an unstarted controller.
func New(deps Deps) (*Controller, error) {
	if deps.Elements.Root == nil {
		return nil, fmt.Errorf("page: document root is required")
	}
	if deps.Scheduler == nil {
		return nil, fmt.Errorf("page: scheduler is required")
	}
	if deps.Observers == nil {
		return nil, fmt.Errorf("page: observer factory is required")
	}
	if deps.Store == nil {
		deps.Store = prefs.NewMemory()
	}
	if deps.NewID == nil {
		deps.NewID = func() string { return uuid.NewString() }
	}
	return &Controller{
		el:       deps.Elements,
		sched:    deps.Scheduler,
		store:    deps.Store,
		scroller: deps.Scroller,
		newID:    deps.NewID,
		greeting: append([]string(nil), deps.Greeting...),
		factory:  deps.Observers,
		writer:   newTypewriter(deps.Roles),
		counters: map[*dom.Node]clock.Timer{},
	}, nil
}

// Start applies the stored theme, arms the typing animation, registers the
// visibility observers and logs the greeting. Calling it twice is a no-op.
func (c *Controller) Start(ctx context.Context) {
	if c.started {
		return
	}
	c.started = true
	c.applyStoredTheme(ctx)
	c.startTyping()
	c.startReveal()
	c.startSkillBars()
	for _, line := range c.greeting {
		logging.Info("%s", line)
	}
	events.App.Greeting(c.greeting)
}

// Collect resolves the element set from a document built to the page's
// id/class contract. Inputs are matched to fields by name.
func Collect(root *dom.Node, inputs map[string]Input) Elements {
	el := Elements{
		Root:            root,
		Navbar:          root.ByID("navbar"),
		NavToggle:       root.ByID("navToggle"),
		NavMenu:         root.ByID("navMenu"),
		NavLinks:        root.ByClass("nav-link"),
		Anchors:         root.Anchors(),
		Sections:        root.ByClass("section"),
		RoleText:        root.ByID("roleText"),
		Revealables:     root.ByClass(revealClasses...),
		SkillCategories: root.ByClass("skill-category"),
		Orbs:            root.ByClass("gradient-orb"),
		Submit:          root.ByID("submit"),
		FormMessage:     root.ByID("formMessage"),
	}
	for _, name := range FieldNames {
		el.Fields = append(el.Fields, Field{
			Name:    name,
			Input:   inputs[name],
			Control: root.ByID(name),
			Error:   root.ByID(name + "Error"),
		})
	}
	return el
}
