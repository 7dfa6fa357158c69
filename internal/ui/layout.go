package ui

import (
	"github.com/atomicstack/portfolio-tui/internal/dom"
)

// placement is a block's position in document rows.
type placement struct {
	block
	row   int
	lines int
}

// layout assigns every block its rows and converts them to pixel offsets on
// the nodes. Containers span their descendants. Orbs are positioned over the
// hero section.
func (d *document) layout(f *frame, rowHeight int) {
	d.placed = d.placed[:0]
	row := 0
	leaves := make(map[*dom.Node]bool, len(d.blocks))
	for _, b := range d.blocks {
		lines := len(b.render(f))
		if lines < 1 {
			lines = 1
		}
		d.placed = append(d.placed, placement{block: b, row: row, lines: lines})
		b.node.Top = row * rowHeight
		b.node.Height = lines * rowHeight
		leaves[b.node] = true
		row += lines
	}
	d.rows = row
	for _, child := range d.root.Children {
		d.span(child, leaves)
	}
	d.root.Top = 0
	d.root.Height = row * rowHeight
	for i, orb := range d.orbs {
		orb.Top = d.home.Top + (1+2*i)*rowHeight
		orb.Height = rowHeight
	}
}

// span sizes a container from its descendants and reports whether n
// occupies any rows.
func (d *document) span(n *dom.Node, leaves map[*dom.Node]bool) bool {
	if leaves[n] {
		return true
	}
	found := false
	top, bottom := 0, 0
	for _, c := range n.Children {
		if !d.span(c, leaves) {
			continue
		}
		if !found || c.Top < top {
			top = c.Top
		}
		if !found || c.Top+c.Height > bottom {
			bottom = c.Top + c.Height
		}
		found = true
	}
	if found {
		n.Top = top
		n.Height = bottom - top
	}
	return found
}

// rowsIn returns the rendered lines of every block overlapping rows
// [first, first+count), keyed by document row.
func (d *document) rowsIn(f *frame, first, count int, decorate func(b block, line string) string) []string {
	out := make([]string, count)
	last := first + count
	for _, p := range d.placed {
		if p.row+p.lines <= first || p.row >= last {
			continue
		}
		lines := fit(p.render(f), p.lines)
		for i, line := range lines {
			r := p.row + i
			if r < first || r >= last {
				continue
			}
			if decorate != nil {
				line = decorate(p.block, line)
			}
			out[r-first] = line
		}
	}
	return out
}
