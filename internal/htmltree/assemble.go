package htmltree

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"

	"github.com/davetubbs/mailtmpl/internal/parse"
	"github.com/davetubbs/mailtmpl/internal/tmpl"
)

// Defaults fill the global styles when the source document carries none.
// Global styles are the one part of the model that is never absent.
type Defaults struct {
	BackgroundColor string
	ContentWidth    string
}

// Assembler parses table-based email HTML into a StructuredTemplate. It
// holds no per-call state; a single Assembler may serve concurrent parses.
type Assembler struct {
	defaults Defaults
}

var _ parse.Assembler = (*Assembler)(nil)

// New returns an Assembler, filling zero Defaults with the conventional
// email values.
func New(d Defaults) *Assembler {
	if d.BackgroundColor == "" {
		d.BackgroundColor = "#ffffff"
	}
	if d.ContentWidth == "" {
		d.ContentWidth = "600px"
	}
	return &Assembler{defaults: d}
}

// Assemble implements parse.Assembler. It returns an error only when the
// HTML cannot be read into a tree; everything after that point degrades
// per element via diagnostics.
func (a *Assembler) Assemble(r io.Reader) (*parse.Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	body := firstNode(doc.Find("body"))
	container := firstNode(doc.Find("body table").First())

	result := &parse.Result{
		Template: &tmpl.StructuredTemplate{
			GlobalStyles: a.globalStyles(body, container),
			Sections:     []tmpl.Section{},
		},
		Diagnostics: []parse.Diagnostic{},
	}
	if container == nil {
		// No section-bearing container; an empty template, not an error.
		return result, nil
	}

	for _, row := range sectionRows(container) {
		result.Template.Sections = append(result.Template.Sections, a.assembleSection(row, result))
	}
	return result, nil
}

// globalStyles runs once per parse, independent of sections. Every field
// gets a value: the body's background and the container's width when
// present, the defaults otherwise.
func (a *Assembler) globalStyles(body, container parse.Node) tmpl.GlobalStyles {
	g := tmpl.GlobalStyles{
		BackgroundColor: a.defaults.BackgroundColor,
		ContentWidth:    a.defaults.ContentWidth,
	}
	if body != nil {
		styles := parse.DecodeStyle(attrOf(body, "style"))
		if bg := styles["backgroundColor"]; bg != "" {
			g.BackgroundColor = bg
		} else if bg := attrOf(body, "bgcolor"); bg != "" {
			g.BackgroundColor = bg
		}
	}
	if container != nil {
		styles := parse.DecodeStyle(attrOf(container, "style"))
		if w := styles["width"]; w != "" {
			g.ContentWidth = w
		} else if w := attrOf(container, "width"); w != "" {
			g.ContentWidth = w
		}
	}
	return g
}

// assembleSection builds one Section from a container row: section styles
// from the primary cell, then one element per content cell. Extraction
// failures land in the result's diagnostics; the element stays in place
// with nil properties so one bad element never drops the section.
func (a *Assembler) assembleSection(row parse.Node, result *parse.Result) tmpl.Section {
	cells := rowCells(row)

	section := tmpl.Section{
		ID:       tmpl.NewID(),
		Elements: make([]tmpl.Element, 0, len(cells)),
	}
	if len(cells) > 0 {
		if styles := parse.ExtractSectionStyles(cells[0]); !styles.IsZero() {
			section.Styles = &styles
		}
	}

	for _, cell := range cells {
		contentNode, typ := classifyCell(cell)

		id := tmpl.NewID()
		props, err := parse.ExtractProperties(contentNode, typ)
		if err != nil {
			result.Diagnostics = append(result.Diagnostics, parse.Diagnostic{
				ElementID:   id,
				ElementType: typ,
				Reason:      err.Error(),
			})
		}

		section.Elements = append(section.Elements, tmpl.Element{
			ID:         id,
			Type:       typ,
			Content:    parse.ExtractContent(contentNode, typ),
			Properties: props,
			Layout:     parse.ExtractLayout(cell),
		})
	}
	return section
}

// classifyCell picks the content node for a cell and its element type.
// A cell with no element child is bare text when it has any, otherwise an
// empty structural cell acting as a spacer; in both cases the cell itself
// stands in as the content node.
func classifyCell(cell parse.Node) (parse.Node, tmpl.ElementType) {
	kids := cell.Children()
	if len(kids) == 0 {
		if cell.Text() != "" {
			return cell, tmpl.TypeText
		}
		return cell, tmpl.TypeSpacer
	}
	content := kids[0]
	return content, parse.Classify(content)
}

// sectionRows returns the container table's own rows in document order,
// looking through tbody/thead/tfoot but never into nested tables.
func sectionRows(table parse.Node) []parse.Node {
	var rows []parse.Node
	for _, c := range table.Children() {
		switch c.Tag() {
		case "tr":
			rows = append(rows, c)
		case "tbody", "thead", "tfoot":
			for _, g := range c.Children() {
				if g.Tag() == "tr" {
					rows = append(rows, g)
				}
			}
		}
	}
	return rows
}

// rowCells returns the row's direct content cells.
func rowCells(row parse.Node) []parse.Node {
	var cells []parse.Node
	for _, c := range row.Children() {
		if c.Tag() == "td" || c.Tag() == "th" {
			cells = append(cells, c)
		}
	}
	return cells
}

func firstNode(sel *goquery.Selection) parse.Node {
	if len(sel.Nodes) == 0 {
		return nil
	}
	return FromHTMLNode(sel.Nodes[0])
}

func attrOf(n parse.Node, name string) string {
	v, _ := n.Attr(name)
	return v
}
