package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davetubbs/mailtmpl/internal/tmpl"
)

// ErrNoContentNode reports that typed extraction had no node to work on.
var ErrNoContentNode = errors.New("no content node")

// ExtractProperties produces the typed properties for a classified node.
//
// A nil return with a non-nil error is the extraction-failure sentinel:
// the element could not be validly extracted and the caller should record
// a diagnostic. Failures are always per-element; a panic inside any
// type-specific rule is recovered here and converted to an error so one
// malformed element never aborts the surrounding parse.
func ExtractProperties(n Node, typ tmpl.ElementType) (props tmpl.Properties, err error) {
	defer func() {
		if r := recover(); r != nil {
			props = nil
			err = fmt.Errorf("extract %s properties: %v", typ, r)
		}
	}()

	// Only spacers tolerate an absent node; a spacer is sometimes just an
	// empty structural cell.
	if n == nil && typ != tmpl.TypeSpacer {
		return nil, fmt.Errorf("extract %s properties: %w", typ, ErrNoContentNode)
	}

	switch typ {
	case tmpl.TypeHeader:
		return headerProperties(n), nil
	case tmpl.TypeButton:
		return buttonProperties(n), nil
	case tmpl.TypeImage:
		return imageProperties(n)
	case tmpl.TypeDivider:
		return dividerProperties(n), nil
	case tmpl.TypeSpacer:
		return spacerProperties(n)
	default:
		return textProperties(n), nil
	}
}

// ExtractContent returns the display string for an element. Its meaning is
// type-dependent: text body for text-like types, alt text for images, and
// empty for non-textual types.
func ExtractContent(n Node, typ tmpl.ElementType) string {
	if n == nil {
		return ""
	}
	switch typ {
	case tmpl.TypeImage:
		if img := FindFirst(n, "img"); img != nil {
			return attrOr(img, "alt", "")
		}
		return ""
	case tmpl.TypeDivider, tmpl.TypeSpacer:
		return ""
	default:
		return n.Text()
	}
}

func headerProperties(n Node) tmpl.HeaderProps {
	return tmpl.HeaderProps{
		Level:      n.Tag(),
		Typography: typography(nodeStyles(n)),
	}
}

func textProperties(n Node) tmpl.TextProps {
	return tmpl.TextProps{Typography: typography(nodeStyles(n))}
}

func buttonProperties(n Node) tmpl.ButtonProps {
	styles := nodeStyles(n)
	return tmpl.ButtonProps{
		Href:            attrOr(n, "href", ""),
		Target:          safeCast(attrOr(n, "target", ""), "_blank", "_self"),
		BackgroundColor: styles["backgroundColor"],
		Color:           styles["color"],
		Border:          border(styles, "border"),
		Typography:      typography(styles),
	}
}

func imageProperties(n Node) (tmpl.Properties, error) {
	img := FindFirst(n, "img")
	if img == nil {
		return nil, errors.New("extract image properties: no image node")
	}
	styles := nodeStyles(img)

	// Inline style wins over the element's width/height attributes.
	width := styles["width"]
	if width == "" {
		width = attrOr(img, "width", "")
	}
	height := styles["height"]
	if height == "" {
		height = attrOr(img, "height", "")
	}

	props := tmpl.ImageProps{
		Src:    attrOr(img, "src", ""),
		Alt:    attrOr(img, "alt", ""),
		Width:  width,
		Height: height,
		Border: border(styles, "border"),
	}
	if n.Tag() == "a" {
		props.Href = attrOr(n, "href", "")
		props.Target = safeCast(attrOr(n, "target", ""), "_blank", "_self")
	}
	return props, nil
}

// dividerProperties reads the divider's look off the rule's top border: a
// visible divider is conventionally drawn as a border, not a fill.
func dividerProperties(n Node) tmpl.DividerProps {
	styles := nodeStyles(n)
	b := border(styles, "borderTop")
	props := tmpl.DividerProps{}
	if b != nil {
		props.Color = b.Color
		props.Height = b.Width
	}
	return props
}

func spacerProperties(n Node) (tmpl.Properties, error) {
	cell := FindFirst(n, "td")
	if cell == nil {
		return nil, errors.New("extract spacer properties: no cell node")
	}
	height := nodeStyles(cell)["height"]
	if height == "" {
		height = attrOr(cell, "height", "")
	}
	// A spacer with no height is not a meaningful spacer.
	if height == "" {
		return nil, errors.New("extract spacer properties: no height on cell")
	}
	return tmpl.SpacerProps{Height: height}, nil
}

// typography builds the shared text-styling sub-object from decoded
// styles, or nil when no typographic property is present at all.
func typography(styles map[string]string) *tmpl.Typography {
	t := tmpl.Typography{
		FontFamily: styles["fontFamily"],
		FontSize:   styles["fontSize"],
		FontWeight: styles["fontWeight"],
		FontStyle:  styles["fontStyle"],
		Color:      styles["color"],
		TextAlign:  safeCast(styles["textAlign"], "left", "center", "right"),
		LineHeight: styles["lineHeight"],
	}
	if t.IsZero() {
		return nil
	}
	return &t
}

// border regroups border styles under the given camelCase prefix
// ("border", "borderTop") into a BorderStyles, expanding the shorthand
// form when the long-hand properties are absent. Returns nil when
// nothing border-related is set.
func border(styles map[string]string, prefix string) *tmpl.BorderStyles {
	b := tmpl.BorderStyles{
		Width: styles[prefix+"Width"],
		Style: styles[prefix+"Style"],
		Color: styles[prefix+"Color"],
	}
	if short, ok := styles[prefix]; ok {
		w, s, c := splitBorderShorthand(short)
		if b.Width == "" {
			b.Width = w
		}
		if b.Style == "" {
			b.Style = s
		}
		if b.Color == "" {
			b.Color = c
		}
	}
	b.Style = safeCast(b.Style, "solid", "dashed", "dotted", "double")
	if b.IsZero() {
		return nil
	}
	return &b
}

// splitBorderShorthand pulls width, style and color out of a CSS border
// shorthand value like "1px solid #cccccc". Token order is free in CSS,
// so each token is assigned by its shape rather than its position.
func splitBorderShorthand(v string) (width, style, color string) {
	for _, tok := range strings.Fields(v) {
		switch {
		case isBorderStyleKeyword(tok):
			if style == "" {
				style = tok
			}
		case strings.IndexFunc(tok, func(r rune) bool { return r >= '0' && r <= '9' }) == 0:
			if width == "" {
				width = tok
			}
		default:
			if color == "" {
				color = tok
			}
		}
	}
	return width, style, color
}

func isBorderStyleKeyword(tok string) bool {
	switch tok {
	case "none", "hidden", "solid", "dashed", "dotted", "double", "groove", "ridge", "inset", "outset":
		return true
	}
	return false
}

// safeCast returns v only when it is one of the allowed literals.
// Out-of-domain values are dropped rather than propagated, so enum-like
// fields are either valid or absent.
func safeCast(v string, allowed ...string) string {
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return ""
}
