package parse

import (
	"strings"

	"github.com/davetubbs/mailtmpl/internal/tmpl"
)

// ExtractLayout reconstructs the layout an element inherits from its
// wrapping structural cell: sizing, alignment, and the padding/margin
// groups regrouped from flattened CSS properties. Returns nil when the
// cell contributes no layout at all.
func ExtractLayout(cell Node) *tmpl.ElementLayout {
	if cell == nil {
		return nil
	}
	styles := nodeStyles(cell)

	align := safeCast(styles["textAlign"], "left", "center", "right")
	if align == "" {
		// Legacy email markup aligns cells with attributes instead of CSS.
		align = safeCast(strings.ToLower(attrOr(cell, "align", "")), "left", "center", "right")
	}
	valign := safeCast(styles["verticalAlign"], "top", "middle", "bottom")
	if valign == "" {
		valign = safeCast(strings.ToLower(attrOr(cell, "valign", "")), "top", "middle", "bottom")
	}

	l := tmpl.ElementLayout{
		Width:    styles["width"],
		Height:   styles["height"],
		MaxWidth: styles["maxWidth"],
		Align:    align,
		VAlign:   valign,
		Padding:  edges(styles, "padding"),
		Margin:   edges(styles, "margin"),
	}
	if l.IsZero() {
		return nil
	}
	return &l
}

// ExtractSectionStyles reconstructs a section's styling from its primary
// cell. A nil cell yields the zero SectionStyles, never an error.
func ExtractSectionStyles(cell Node) tmpl.SectionStyles {
	if cell == nil {
		return tmpl.SectionStyles{}
	}
	styles := nodeStyles(cell)

	bg := styles["backgroundColor"]
	if bg == "" {
		bg = attrOr(cell, "bgcolor", "")
	}
	return tmpl.SectionStyles{
		BackgroundColor: bg,
		Padding:         edges(styles, "padding"),
		Border:          border(styles, "border"),
	}
}

// edges regroups the four side properties under a camelCase prefix
// ("padding", "margin") into an EdgeStyles, expanding the shorthand form
// first so explicit sides win over it. Returns nil when all four sides
// are empty, so an absent group stays absent instead of becoming an
// object of empty fields.
func edges(styles map[string]string, prefix string) *tmpl.EdgeStyles {
	var e tmpl.EdgeStyles
	if short, ok := styles[prefix]; ok {
		e = expandBox(short)
	}
	if v, ok := styles[prefix+"Top"]; ok {
		e.Top = v
	}
	if v, ok := styles[prefix+"Right"]; ok {
		e.Right = v
	}
	if v, ok := styles[prefix+"Bottom"]; ok {
		e.Bottom = v
	}
	if v, ok := styles[prefix+"Left"]; ok {
		e.Left = v
	}
	if e.IsZero() {
		return nil
	}
	return &e
}

// expandBox applies the CSS box shorthand rules to a one-to-four token
// value: one token sets all sides, two set vertical/horizontal, three set
// top/horizontal/bottom, four set top/right/bottom/left.
func expandBox(v string) tmpl.EdgeStyles {
	tok := strings.Fields(v)
	switch len(tok) {
	case 1:
		return tmpl.EdgeStyles{Top: tok[0], Right: tok[0], Bottom: tok[0], Left: tok[0]}
	case 2:
		return tmpl.EdgeStyles{Top: tok[0], Right: tok[1], Bottom: tok[0], Left: tok[1]}
	case 3:
		return tmpl.EdgeStyles{Top: tok[0], Right: tok[1], Bottom: tok[2], Left: tok[1]}
	case 4:
		return tmpl.EdgeStyles{Top: tok[0], Right: tok[1], Bottom: tok[2], Left: tok[3]}
	default:
		return tmpl.EdgeStyles{}
	}
}
