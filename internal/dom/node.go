// Package dom is a minimal document model: nodes with ids, class lists,
// attributes, text, inline style properties and layout offsets. Offsets are
// CSS-pixel units assigned by whatever lays the document out.
package dom

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is a single element of the document tree.
type Node struct {
	ID       string
	Tag      string
	Parent   *Node
	Children []*Node

	// Top is the node's offset from the top of the document, Height its
	// rendered height. Both are in pixel units.
	Top    int
	Height int

	classes []string
	attrs   map[string]string
	style   map[string]string
	text    string
}

// New creates a detached node. Classes may be passed space-separated.
func New(tag, id string, classes ...string) *Node {
	n := &Node{Tag: tag, ID: id}
	for _, c := range classes {
		for _, f := range strings.Fields(c) {
			n.AddClass(f)
		}
	}
	return n
}

// Append attaches children in order and returns the receiver.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// HasClass reports whether the class is present.
func (n *Node) HasClass(name string) bool {
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass adds the class if missing.
func (n *Node) AddClass(name string) {
	if name == "" || n.HasClass(name) {
		return
	}
	n.classes = append(n.classes, name)
}

// RemoveClass drops the class if present.
func (n *Node) RemoveClass(name string) {
	for i, c := range n.classes {
		if c == name {
			n.classes = append(n.classes[:i], n.classes[i+1:]...)
			return
		}
	}
}

// ToggleClass flips the class and reports whether it is now present.
func (n *Node) ToggleClass(name string) bool {
	if n.HasClass(name) {
		n.RemoveClass(name)
		return false
	}
	n.AddClass(name)
	return true
}

// ClassName returns the class list joined by spaces.
func (n *Node) ClassName() string {
	return strings.Join(n.classes, " ")
}

// SetClassName replaces the whole class list.
func (n *Node) SetClassName(value string) {
	n.classes = n.classes[:0]
	for _, f := range strings.Fields(value) {
		n.AddClass(f)
	}
}

// Attr returns an attribute value and whether it was set.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// RemoveAttr deletes an attribute.
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// Style returns an inline style property, or "" when unset.
func (n *Node) Style(prop string) string {
	return n.style[prop]
}

// SetStyle sets an inline style property. An empty value removes it.
func (n *Node) SetStyle(prop, value string) {
	if value == "" {
		delete(n.style, prop)
		return
	}
	if n.style == nil {
		n.style = make(map[string]string)
	}
	n.style[prop] = value
}

// Text returns the node's text content.
func (n *Node) Text() string {
	return n.text
}

// SetText replaces the node's text content.
func (n *Node) SetText(text string) {
	n.text = text
}

// TranslateY parses a "translateY(<n>px)" transform. Missing or malformed
// transforms yield zero.
func (n *Node) TranslateY() float64 {
	raw := strings.TrimSpace(n.Style("transform"))
	if !strings.HasPrefix(raw, "translateY(") || !strings.HasSuffix(raw, "px)") {
		return 0
	}
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "translateY("), "px)")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// Percent parses a percentage style property such as width "85%".
func (n *Node) Percent(prop string) (float64, bool) {
	raw := strings.TrimSpace(n.Style(prop))
	if !strings.HasSuffix(raw, "%") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (n *Node) String() string {
	if n.ID != "" {
		return fmt.Sprintf("<%s#%s>", n.Tag, n.ID)
	}
	return fmt.Sprintf("<%s.%s>", n.Tag, strings.Join(n.classes, "."))
}
