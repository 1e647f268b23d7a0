package parse

import "github.com/davetubbs/mailtmpl/internal/tmpl"

// Classify returns the element type for a content node. It is total: every
// input, including nil, maps to a value from the closed type set.
//
// Anchors get one structural special case: a link whose only element child
// is an image is an image element (the image is the clickable content),
// while any other anchor is a button. Whitespace-only text between the
// anchor and the image does not disqualify the image classification, since
// Node.Children never surfaces it.
func Classify(n Node) tmpl.ElementType {
	if n == nil {
		return tmpl.TypeText
	}
	switch n.Tag() {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return tmpl.TypeHeader
	case "p":
		return tmpl.TypeText
	case "img":
		return tmpl.TypeImage
	case "hr":
		return tmpl.TypeDivider
	case "table":
		// Tables inside a content cell are the spacing idiom of
		// table-based email markup.
		return tmpl.TypeSpacer
	case "a":
		if kids := n.Children(); len(kids) == 1 && kids[0].Tag() == "img" {
			return tmpl.TypeImage
		}
		return tmpl.TypeButton
	default:
		return tmpl.TypeText
	}
}
