package dom

import "strings"

// Walk visits n and its descendants in document order. Returning false from
// fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// ByID returns the first node with the given id.
func (n *Node) ByID(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// ByClass returns every node carrying any of the given classes, in document
// order, each node at most once.
func (n *Node) ByClass(classes ...string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		for _, cls := range classes {
			if c.HasClass(cls) {
				out = append(out, c)
				break
			}
		}
		return true
	})
	return out
}

// Descendants returns the nodes below n (excluding n) carrying the class.
func (n *Node) Descendants(class string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		c.Walk(func(d *Node) bool {
			if d.HasClass(class) {
				out = append(out, d)
			}
			return true
		})
	}
	return out
}

// Anchors returns nodes whose href attribute is an in-page fragment.
func (n *Node) Anchors() []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if href, ok := c.Attr("href"); ok && strings.HasPrefix(href, "#") {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Resolve finds the node referenced by a "#id" fragment.
func (n *Node) Resolve(href string) *Node {
	if !strings.HasPrefix(href, "#") || len(href) < 2 {
		return nil
	}
	return n.ByID(href[1:])
}
