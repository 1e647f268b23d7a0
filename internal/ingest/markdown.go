package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MarkdownConverter renders a markdown draft (the chat editor's authoring
// format) with goldmark, then wraps each top-level block into the table
// scaffold the template parser expects, so every block becomes one
// section cell.
type MarkdownConverter struct{}

func (c *MarkdownConverter) ToHTML(src []byte) ([]byte, error) {
	var rendered bytes.Buffer
	if err := goldmark.New().Convert(src, &rendered); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return scaffold(rendered.Bytes())
}

// scaffold rebuilds the rendered fragment as table-based email markup:
// one container table, one row per top-level block.
func scaffold(fragment []byte) ([]byte, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	blocks, err := html.ParseFragment(bytes.NewReader(fragment), body)
	if err != nil {
		return nil, fmt.Errorf("parse rendered markdown: %w", err)
	}

	var b bytes.Buffer
	b.WriteString(`<html><body><table width="600">`)
	for _, n := range blocks {
		if n.Type != html.ElementNode {
			continue
		}
		b.WriteString("<tr><td>")
		if err := html.Render(&b, hoist(n)); err != nil {
			return nil, fmt.Errorf("render block: %w", err)
		}
		b.WriteString("</td></tr>")
	}
	b.WriteString("</table></body></html>")
	return b.Bytes(), nil
}

// hoist unwraps a paragraph whose sole content is a single image or link,
// so the wrapped element classifies by its own tag instead of as text.
func hoist(n *html.Node) *html.Node {
	if n.Data != "p" {
		return n
	}
	var only *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return n
			}
		case html.ElementNode:
			if only != nil {
				return n
			}
			only = c
		}
	}
	if only == nil {
		return n
	}
	switch only.Data {
	case "img", "a":
		return only
	}
	return n
}
