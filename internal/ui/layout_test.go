package ui

import "testing"

func TestLayoutPlacesSectionsOnRowBoundaries(t *testing.T) {
	p := newTestPage(t)
	doc := p.h.Model().doc
	prev := -1
	for _, s := range doc.sections {
		if s.Top <= prev {
			t.Fatalf("expected %s below previous section, top %d", s.ID, s.Top)
		}
		if s.Top%defaultRowHeight != 0 || s.Height%defaultRowHeight != 0 {
			t.Fatalf("expected %s on row boundaries, got top %d height %d", s.ID, s.Top, s.Height)
		}
		prev = s.Top
	}
	if doc.root.Height != doc.rows*defaultRowHeight {
		t.Fatalf("expected root height %d, got %d", doc.rows*defaultRowHeight, doc.root.Height)
	}
}

func TestLayoutContainersSpanChildren(t *testing.T) {
	p := newTestPage(t)
	doc := p.h.Model().doc
	cats := doc.root.ByClass("skill-category")
	if len(cats) == 0 {
		t.Fatalf("expected skill categories")
	}
	for _, cat := range cats {
		for _, bar := range cat.Descendants("skill-progress") {
			if bar.Top < cat.Top || bar.Top+bar.Height > cat.Top+cat.Height {
				t.Fatalf("expected bar [%d,%d) inside category [%d,%d)",
					bar.Top, bar.Top+bar.Height, cat.Top, cat.Top+cat.Height)
			}
		}
	}
}

func TestLayoutOrbsSitInHero(t *testing.T) {
	p := newTestPage(t)
	doc := p.h.Model().doc
	if len(doc.orbs) != 3 {
		t.Fatalf("expected 3 orbs, got %d", len(doc.orbs))
	}
	for i, orb := range doc.orbs {
		if orb.Top < doc.home.Top || orb.Top >= doc.home.Top+doc.home.Height {
			t.Fatalf("expected orb %d inside home, got top %d", i, orb.Top)
		}
	}
}
