package parse_test

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/davetubbs/mailtmpl/internal/htmltree"
	"github.com/davetubbs/mailtmpl/internal/parse"
)

// nodeFromHTML parses a snippet with the server environment's tree
// adapter and returns the first element with the given tag.
func nodeFromHTML(t *testing.T, src, tag string) parse.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	n := parse.FindFirst(htmltree.FromHTMLNode(doc), tag)
	if n == nil {
		t.Fatalf("no <%s> element in %q", tag, src)
	}
	return n
}
