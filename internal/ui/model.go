package ui

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/atomicstack/portfolio-tui/internal/clock"
	"github.com/atomicstack/portfolio-tui/internal/content"
	"github.com/atomicstack/portfolio-tui/internal/observe"
	"github.com/atomicstack/portfolio-tui/internal/page"
	"github.com/atomicstack/portfolio-tui/internal/prefs"
	"github.com/atomicstack/portfolio-tui/internal/theme"
	"github.com/atomicstack/portfolio-tui/internal/ui/command"
	uistate "github.com/atomicstack/portfolio-tui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth     = 80
	defaultHeight    = 24
	defaultRowHeight = 20
	gutterWidth      = 2
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a page model.
type Options struct {
	Content content.Portfolio
	// Store persists the theme preference; nil keeps it in memory.
	Store prefs.Store
	// Scheduler runs page timers. Nil uses wall-clock timers delivered
	// through the Bubble Tea program.
	Scheduler clock.Scheduler
	// Width and Height pin the viewport size in cells; zero follows the
	// terminal.
	Width  int
	Height int
	// InitialWidth and InitialHeight size the first frame when Width and
	// Height are zero; resize messages still apply.
	InitialWidth  int
	InitialHeight int
	RowHeight     int
	ShowFooter    bool
	NewID         func() string
}

// Model implements the Bubble Tea model for the portfolio page.
type Model struct {
	doc       *document
	ctrl      *page.Controller
	observers *observe.Root
	scroller  *smoothScroller
	styles    *theme.Styles

	timers    chan func()
	done      chan struct{}
	closeOnce sync.Once

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
	keymap   *command.Keymap
	menu     *uistate.Menu
	fields   []*formField
	focus    int

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	rowHeight   int
	showFooter  bool
	showHelp    bool
	offset      int

	aboutKey string
	about    []string
}

// NewModel builds the page document, its controller and the key bindings.
func NewModel(opts Options) (*Model, error) {
	m := &Model{
		bus:        command.New(),
		keymap:     command.NewKeymap(command.DefaultBindings()),
		fields:     newContactFields(),
		focus:      -1,
		width:      defaultWidth,
		height:     defaultHeight,
		rowHeight:  opts.RowHeight,
		showFooter: opts.ShowFooter,
		observers:  observe.NewRoot(),
		styles:     theme.Default(),
	}
	if m.rowHeight <= 0 {
		m.rowHeight = defaultRowHeight
	}
	switch {
	case opts.Width > 0:
		m.width = opts.Width
		m.fixedWidth = true
	case opts.InitialWidth > 0:
		m.width = opts.InitialWidth
	}
	switch {
	case opts.Height > 0:
		m.height = opts.Height
		m.fixedHeight = true
	case opts.InitialHeight > 0:
		m.height = opts.InitialHeight
	}
	sched := opts.Scheduler
	if sched == nil {
		m.timers = make(chan func(), timerQueue)
		m.done = make(chan struct{})
		sched = clock.NewReal(m.post)
	}
	m.doc = newDocument(opts.Content, m.fields)
	m.scroller = newSmoothScroller(sched, m.setOffset, func() int { return m.offset }, m.clampOffset)

	ctrl, err := page.New(page.Deps{
		Elements:  page.Collect(m.doc.root, m.fieldInputs()),
		Roles:     opts.Content.Roles,
		Scheduler: sched,
		Observers: m.observers,
		Store:     opts.Store,
		Scroller:  m.scroller,
		Greeting:  greeting(opts.Content),
		NewID:     opts.NewID,
	})
	if err != nil {
		return nil, fmt.Errorf("build page: %w", err)
	}
	m.ctrl = ctrl

	items := make([]uistate.Item, 0, len(sectionOrder))
	for _, s := range sectionOrder {
		items = append(items, uistate.Item{ID: s.id, Label: s.label})
	}
	m.menu = uistate.NewMenu(items)

	m.registerActions()
	m.registerHandlers()
	m.relayout()
	return m, nil
}

func greeting(p content.Portfolio) []string {
	return []string{
		"Hello, curious developer!",
		"Looking for something? Feel free to reach out!",
		"Email: " + p.Email,
	}
}

// Init is part of the tea.Model interface. It starts the page behaviours.
func (m *Model) Init() tea.Cmd {
	m.ctrl.Start(context.Background())
	m.syncTheme()
	if m.timers != nil {
		return waitForTimer(m.timers, m.done)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(timerMsg{}):          m.handleTimerMsg,
		reflect.TypeOf(timersClosedMsg{}):   m.handleTimersClosedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.relayout()
	return nil
}

// syncTheme picks the style set for the document theme and re-lays the page
// out, since the about text renders differently per theme.
func (m *Model) syncTheme() {
	m.styles = theme.For(m.ctrl.Theme())
	m.relayout()
}

func (m *Model) contentWidth() int {
	w := m.width - gutterWidth
	if w < 10 {
		w = 10
	}
	return w
}

func (m *Model) frame() *frame {
	width := m.contentWidth()
	return &frame{
		styles: m.styles,
		width:  width,
		about:  m.aboutLines(m.styles.Name, width-4),
		focus:  m.focusedName(),
	}
}

// relayout recomputes node offsets, clamps the scroll position and lets the
// observers see the new geometry.
func (m *Model) relayout() {
	for _, f := range m.fields {
		f.SetWidth(m.contentWidth() - 4)
	}
	m.doc.layout(m.frame(), m.rowHeight)
	m.setOffset(m.offset)
	m.observers.Update(m.viewport())
}

// Controller exposes the page controller.
func (m *Model) Controller() *page.Controller {
	return m.ctrl
}

// Offset returns the scroll position in pixels.
func (m *Model) Offset() int {
	return m.offset
}
