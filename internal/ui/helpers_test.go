package ui

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/portfolio-tui/internal/clock"
	"github.com/atomicstack/portfolio-tui/internal/content"
	"github.com/atomicstack/portfolio-tui/internal/dom"
	"github.com/atomicstack/portfolio-tui/internal/logging"
	"github.com/atomicstack/portfolio-tui/internal/prefs"
)

const (
	testWidth  = 120
	testHeight = 20
)

type testPage struct {
	h     *Harness
	clock *clock.Virtual
	store *prefs.Memory
}

func newTestModel(t *testing.T, store *prefs.Memory) (*Model, *clock.Virtual) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })
	p, err := content.Default()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	clk := clock.NewVirtual()
	m, err := NewModel(Options{
		Content:   p,
		Store:     store,
		Scheduler: clk,
		Width:     testWidth,
		Height:    testHeight,
		NewID:     func() string { return "test" },
	})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m, clk
}

func newTestPage(t *testing.T) *testPage {
	t.Helper()
	store := prefs.NewMemory()
	m, clk := newTestModel(t, store)
	return &testPage{h: NewHarness(m), clock: clk, store: store}
}

func (p *testPage) node(t *testing.T, id string) *dom.Node {
	t.Helper()
	n := p.h.Model().doc.root.ByID(id)
	if n == nil {
		t.Fatalf("missing node %s", id)
	}
	return n
}

func (p *testPage) section(t *testing.T, id string) *dom.Node {
	t.Helper()
	for _, s := range p.h.Model().doc.sections {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("missing section %s", id)
	return nil
}

// anchorOffset is where a link to the section should settle.
func (p *testPage) anchorOffset(t *testing.T, id string) int {
	t.Helper()
	return p.h.Model().clampOffset(p.section(t, id).Top - 80)
}
