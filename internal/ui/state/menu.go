package state

// Item is one navigation menu entry. ID is the link's fragment target.
type Item struct {
	ID    string
	Label string
}

// Menu tracks the navigation menu: the full link list, the filtered view,
// the filter query and the cursor.
type Menu struct {
	Items        []Item
	Full         []Item
	Filter       string
	FilterCursor int
	Filtering    bool
	Cursor       int
	LastCursor   int
}

// NewMenu constructs a Menu over the provided items.
func NewMenu(items []Item) *Menu {
	m := &Menu{LastCursor: -1}
	m.UpdateItems(items)
	return m
}

// UpdateItems replaces the item list, keeping the current filter applied.
func (m *Menu) UpdateItems(items []Item) {
	m.Full = CloneItems(items)
	m.applyFilter()
}

// IndexOf returns the index for a given item identifier in the filtered view.
func (m *Menu) IndexOf(id string) int {
	for i, item := range m.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (m *Menu) Current() (Item, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Items) {
		return Item{}, false
	}
	return m.Items[m.Cursor], true
}

// Reset clears the filter and returns the cursor to the given item id.
func (m *Menu) Reset(focusID string) {
	m.Filtering = false
	m.SetFilter("", 0)
	if idx := m.IndexOf(focusID); idx >= 0 {
		m.Cursor = idx
	}
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
