package parse

// Node is a read-only view of one markup element. The hosting environment
// supplies the implementation (the server adapter wraps an x/net/html
// tree); the core only queries it and never mutates the underlying tree.
type Node interface {
	// Tag returns the lowercase tag name of the element.
	Tag() string
	// Attr returns the value of a named attribute and whether it exists.
	Attr(name string) (string, bool)
	// Children returns the element children in document order.
	// Text nodes are not represented; in particular whitespace-only text
	// between elements never appears as a child.
	Children() []Node
	// Text returns the concatenated text content of the element and all
	// of its descendants, whitespace-normalized.
	Text() string
}

// FindFirst returns the first node with the given tag in a depth-first
// walk starting at (and including) n, or nil.
func FindFirst(n Node, tag string) Node {
	if n == nil {
		return nil
	}
	if n.Tag() == tag {
		return n
	}
	for _, c := range n.Children() {
		if m := FindFirst(c, tag); m != nil {
			return m
		}
	}
	return nil
}

// attrOr returns the named attribute or a fallback value, tolerating a
// nil node.
func attrOr(n Node, name, fallback string) string {
	if n == nil {
		return fallback
	}
	if v, ok := n.Attr(name); ok {
		return v
	}
	return fallback
}
