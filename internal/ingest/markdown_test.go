package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/davetubbs/mailtmpl/internal/htmltree"
	"github.com/davetubbs/mailtmpl/internal/tmpl"
)

func TestMarkdownConverter_ScaffoldsBlocksIntoRows(t *testing.T) {
	src := []byte("# Welcome\n\nThanks for signing up.\n\n![Logo](logo.png)")
	out, err := (&MarkdownConverter{}).ToHTML(src)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<table") {
		t.Error("expected a container table")
	}
	if !strings.Contains(html, "<h1>") {
		t.Error("expected heading block")
	}
	if strings.Count(html, "<tr>") != 3 {
		t.Errorf("expected 3 rows, got %d:\n%s", strings.Count(html, "<tr>"), html)
	}
}

func TestMarkdownConverter_ImageParagraphHoisted(t *testing.T) {
	out, err := (&MarkdownConverter{}).ToHTML([]byte("![Logo](logo.png)"))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if strings.Contains(string(out), "<td><p>") {
		t.Errorf("expected image hoisted out of its paragraph:\n%s", out)
	}
}

func TestMarkdownConverter_RoundTripsThroughParser(t *testing.T) {
	src := []byte("# Welcome\n\nThanks for signing up.")
	out, err := (&MarkdownConverter{}).ToHTML(src)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	res, err := htmltree.New(htmltree.Defaults{}).Assemble(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(res.Template.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(res.Template.Sections))
	}
	first := res.Template.Sections[0].Elements[0]
	if first.Type != tmpl.TypeHeader || first.Content != "Welcome" {
		t.Errorf("expected header Welcome, got %q %q", first.Type, first.Content)
	}
	second := res.Template.Sections[1].Elements[0]
	if second.Type != tmpl.TypeText || second.Content != "Thanks for signing up." {
		t.Errorf("expected text body, got %q %q", second.Type, second.Content)
	}
}

func TestHTMLConverter_Passthrough(t *testing.T) {
	src := []byte("<table><tr><td>x</td></tr></table>")
	out, err := (&HTMLConverter{}).ToHTML(src)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !bytes.Equal(out, src) {
		t.Errorf("expected passthrough, got %s", out)
	}
}

func TestForKind_Dispatch(t *testing.T) {
	if _, err := ForKind(KindHTML); err != nil {
		t.Errorf("unexpected error for html: %v", err)
	}
	if _, err := ForKind(KindMarkdown); err != nil {
		t.Errorf("unexpected error for markdown: %v", err)
	}
	if _, err := ForKind("docx"); err == nil {
		t.Error("expected error for unsupported kind")
	}
}

func TestKindForName(t *testing.T) {
	cases := []struct {
		name string
		want Kind
		ok   bool
	}{
		{"promo.html", KindHTML, true},
		{"promo.HTM", KindHTML, true},
		{"draft.md", KindMarkdown, true},
		{"draft.markdown", KindMarkdown, true},
		{"report.pdf", "", false},
	}
	for _, c := range cases {
		got, err := KindForName(c.name)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("%s: expected %q, got %q (%v)", c.name, c.want, got, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}
