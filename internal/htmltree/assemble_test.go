package htmltree

import (
	"strings"
	"testing"

	"github.com/davetubbs/mailtmpl/internal/parse"
	"github.com/davetubbs/mailtmpl/internal/tmpl"
)

func assemble(t *testing.T, src string) *parseResult {
	t.Helper()
	res, err := New(Defaults{}).Assemble(strings.NewReader(src))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	return &parseResult{template: res.Template, diagnostics: res.Diagnostics}
}

// parseResult keeps test assertions short.
type parseResult struct {
	template    *tmpl.StructuredTemplate
	diagnostics []parse.Diagnostic
}

func TestAssemble_EndToEndHeaderSection(t *testing.T) {
	src := `<table><tr><td style="padding:20px;background-color:#fff"><h1 style="color:#333">Hello</h1></td></tr></table>`
	res := assemble(t, src)

	if len(res.diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", res.diagnostics)
	}
	if len(res.template.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(res.template.Sections))
	}
	sec := res.template.Sections[0]
	if sec.ID == "" {
		t.Error("expected fresh section id")
	}
	if sec.Styles == nil {
		t.Fatal("expected section styles")
	}
	if sec.Styles.BackgroundColor != "#fff" {
		t.Errorf("expected background #fff, got %q", sec.Styles.BackgroundColor)
	}
	wantPad := tmpl.EdgeStyles{Top: "20px", Right: "20px", Bottom: "20px", Left: "20px"}
	if sec.Styles.Padding == nil || *sec.Styles.Padding != wantPad {
		t.Errorf("expected padding %+v, got %+v", wantPad, sec.Styles.Padding)
	}

	if len(sec.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(sec.Elements))
	}
	el := sec.Elements[0]
	if el.Type != tmpl.TypeHeader {
		t.Errorf("expected header, got %q", el.Type)
	}
	if el.Content != "Hello" {
		t.Errorf("expected content Hello, got %q", el.Content)
	}
	h, ok := el.Properties.(tmpl.HeaderProps)
	if !ok {
		t.Fatalf("expected HeaderProps, got %T", el.Properties)
	}
	if h.Level != "h1" {
		t.Errorf("expected level h1, got %q", h.Level)
	}
	if h.Typography == nil || h.Typography.Color != "#333" {
		t.Errorf("expected typography color #333, got %+v", h.Typography)
	}
}

func TestAssemble_SpacerFailureKeepsElementAndParse(t *testing.T) {
	src := `<table>
		<tr><td><h1>Title</h1></td></tr>
		<tr><td><table><tr><td style="color:red"></td></tr></table></td></tr>
	</table>`
	res := assemble(t, src)

	if len(res.template.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(res.template.Sections))
	}
	spacer := res.template.Sections[1].Elements[0]
	if spacer.Type != tmpl.TypeSpacer {
		t.Errorf("expected spacer, got %q", spacer.Type)
	}
	if spacer.Properties != nil {
		t.Errorf("expected nil properties for failed spacer, got %+v", spacer.Properties)
	}
	if len(res.diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(res.diagnostics))
	}
	if res.diagnostics[0].ElementID != spacer.ID {
		t.Errorf("expected diagnostic for element %q, got %q", spacer.ID, res.diagnostics[0].ElementID)
	}
	// The failed element must not take the header section down with it.
	if res.template.Sections[0].Elements[0].Properties == nil {
		t.Error("expected header section to parse normally")
	}
}

func TestAssemble_GlobalStyleDefaults(t *testing.T) {
	res := assemble(t, `<p>no tables at all</p>`)
	g := res.template.GlobalStyles
	if g.BackgroundColor != "#ffffff" {
		t.Errorf("expected default background, got %q", g.BackgroundColor)
	}
	if g.ContentWidth != "600px" {
		t.Errorf("expected default width, got %q", g.ContentWidth)
	}
	if len(res.template.Sections) != 0 {
		t.Errorf("expected no sections without a container, got %d", len(res.template.Sections))
	}
}

func TestAssemble_GlobalStylesFromDocument(t *testing.T) {
	src := `<body style="background-color:#eeeeee"><table width="640"><tr><td><p>hi</p></td></tr></table></body>`
	res := assemble(t, src)
	g := res.template.GlobalStyles
	if g.BackgroundColor != "#eeeeee" {
		t.Errorf("expected #eeeeee, got %q", g.BackgroundColor)
	}
	if g.ContentWidth != "640" {
		t.Errorf("expected 640, got %q", g.ContentWidth)
	}
}

func TestAssemble_SectionOrderMatchesDocument(t *testing.T) {
	src := `<table>
		<tr><td><h1>First</h1></td></tr>
		<tr><td><p>Second</p></td></tr>
		<tr><td><a href="x">Third</a></td></tr>
	</table>`
	res := assemble(t, src)
	if len(res.template.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(res.template.Sections))
	}
	wantTypes := []tmpl.ElementType{tmpl.TypeHeader, tmpl.TypeText, tmpl.TypeButton}
	wantContent := []string{"First", "Second", "Third"}
	for i, sec := range res.template.Sections {
		el := sec.Elements[0]
		if el.Type != wantTypes[i] {
			t.Errorf("section %d: expected %q, got %q", i, wantTypes[i], el.Type)
		}
		if el.Content != wantContent[i] {
			t.Errorf("section %d: expected content %q, got %q", i, wantContent[i], el.Content)
		}
	}
}

func TestAssemble_MultipleCellsPerRow(t *testing.T) {
	src := `<table><tr>
		<td style="text-align:left"><p>Left column</p></td>
		<td style="text-align:right"><img src="x.png" alt="Pic"></td>
	</tr></table>`
	res := assemble(t, src)
	sec := res.template.Sections[0]
	if len(sec.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(sec.Elements))
	}
	if sec.Elements[0].Type != tmpl.TypeText || sec.Elements[1].Type != tmpl.TypeImage {
		t.Errorf("unexpected types: %q, %q", sec.Elements[0].Type, sec.Elements[1].Type)
	}
	if sec.Elements[0].Layout == nil || sec.Elements[0].Layout.Align != "left" {
		t.Errorf("expected left layout, got %+v", sec.Elements[0].Layout)
	}
	if sec.Elements[1].Content != "Pic" {
		t.Errorf("expected alt content, got %q", sec.Elements[1].Content)
	}
}

func TestAssemble_BareTextCell(t *testing.T) {
	res := assemble(t, `<table><tr><td style="color:#555">just words</td></tr></table>`)
	el := res.template.Sections[0].Elements[0]
	if el.Type != tmpl.TypeText {
		t.Errorf("expected text, got %q", el.Type)
	}
	if el.Content != "just words" {
		t.Errorf("expected cell text, got %q", el.Content)
	}
}

func TestAssemble_EmptyCellIsSpacer(t *testing.T) {
	res := assemble(t, `<table><tr><td style="height:40px"></td></tr></table>`)
	el := res.template.Sections[0].Elements[0]
	if el.Type != tmpl.TypeSpacer {
		t.Errorf("expected spacer, got %q", el.Type)
	}
	props, ok := el.Properties.(tmpl.SpacerProps)
	if !ok {
		t.Fatalf("expected SpacerProps, got %T", el.Properties)
	}
	if props.Height != "40px" {
		t.Errorf("expected 40px, got %q", props.Height)
	}
}

func TestAssemble_FreshIDsNeverCollide(t *testing.T) {
	src := `<table><tr><td><p>a</p></td><td><p>b</p></td></tr><tr><td><p>c</p></td></tr></table>`
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		res := assemble(t, src)
		for _, sec := range res.template.Sections {
			if seen[sec.ID] {
				t.Fatalf("duplicate section id %q", sec.ID)
			}
			seen[sec.ID] = true
			for _, el := range sec.Elements {
				if seen[el.ID] {
					t.Fatalf("duplicate element id %q", el.ID)
				}
				seen[el.ID] = true
			}
		}
	}
}

func TestAssemble_NestedSectionStylesOmittedWhenEmpty(t *testing.T) {
	res := assemble(t, `<table><tr><td><p>plain</p></td></tr></table>`)
	if res.template.Sections[0].Styles != nil {
		t.Errorf("expected nil section styles, got %+v", res.template.Sections[0].Styles)
	}
}
