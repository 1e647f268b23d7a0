// Package htmltree is the server-side environment adapter for the
// template parser: it wraps an x/net/html tree in the core's Node view
// and implements the Assembler contract on top of goquery.
package htmltree

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/davetubbs/mailtmpl/internal/parse"
)

type node struct {
	n *html.Node
}

// FromHTMLNode wraps an x/net/html node for the shared core. A nil input
// yields a nil parse.Node.
func FromHTMLNode(n *html.Node) parse.Node {
	if n == nil {
		return nil
	}
	return node{n}
}

func (w node) Tag() string {
	if w.n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(w.n.Data)
}

func (w node) Attr(name string) (string, bool) {
	for _, a := range w.n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func (w node) Children() []parse.Node {
	var kids []parse.Node
	for c := w.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			kids = append(kids, node{c})
		}
	}
	return kids
}

func (w node) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(w.n)
	// Source markup is pretty-printed; collapse the formatting whitespace.
	return strings.Join(strings.Fields(b.String()), " ")
}
