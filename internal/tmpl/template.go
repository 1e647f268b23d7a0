package tmpl

import "github.com/google/uuid"

// StructuredTemplate is the root of a parsed email template.
type StructuredTemplate struct {
	GlobalStyles GlobalStyles `json:"globalStyles"`
	Sections     []Section    `json:"sections"`
}

// GlobalStyles are document-wide defaults. Unlike section and element
// styles, every field always has a value — missing source styles are
// filled with defaults, never left empty.
type GlobalStyles struct {
	BackgroundColor string `json:"backgroundColor"`
	ContentWidth    string `json:"contentWidth"`
}

// Section is one horizontal band of the template, in document order.
type Section struct {
	ID       string         `json:"id"`
	Styles   *SectionStyles `json:"styles,omitempty"`
	Elements []Element      `json:"elements"`
}

// SectionStyles carries the styling of a section's primary cell. Nested
// objects are nil when all of their fields are empty.
type SectionStyles struct {
	BackgroundColor string        `json:"backgroundColor,omitempty"`
	Padding         *EdgeStyles   `json:"padding,omitempty"`
	Border          *BorderStyles `json:"border,omitempty"`
}

// IsZero reports whether no style at all was found on the section cell.
func (s SectionStyles) IsZero() bool {
	return s.BackgroundColor == "" && s.Padding == nil && s.Border == nil
}

// Element is one piece of content inside a section.
//
// Properties is nil when typed extraction failed for this element; the
// element is still kept so the caller sees it in place (see Diagnostic).
type Element struct {
	ID         string         `json:"id"`
	Type       ElementType    `json:"type"`
	Content    string         `json:"content"`
	Properties Properties     `json:"properties"`
	Layout     *ElementLayout `json:"layout,omitempty"`
}

// ElementLayout describes how the wrapping cell positions the element,
// independent of the element's own typed properties.
type ElementLayout struct {
	Width    string      `json:"width,omitempty"`
	Height   string      `json:"height,omitempty"`
	MaxWidth string      `json:"maxWidth,omitempty"`
	Align    string      `json:"align,omitempty"`
	VAlign   string      `json:"valign,omitempty"`
	Padding  *EdgeStyles `json:"padding,omitempty"`
	Margin   *EdgeStyles `json:"margin,omitempty"`
}

// IsZero reports whether the wrapping cell contributed no layout at all.
func (l ElementLayout) IsZero() bool {
	return l.Width == "" && l.Height == "" && l.MaxWidth == "" &&
		l.Align == "" && l.VAlign == "" && l.Padding == nil && l.Margin == nil
}

// EdgeStyles is a four-sided value group (padding or margin). A present
// EdgeStyles always has at least one non-empty side.
type EdgeStyles struct {
	Top    string `json:"top,omitempty"`
	Right  string `json:"right,omitempty"`
	Bottom string `json:"bottom,omitempty"`
	Left   string `json:"left,omitempty"`
}

// IsZero reports whether all four sides are empty.
func (e EdgeStyles) IsZero() bool {
	return e.Top == "" && e.Right == "" && e.Bottom == "" && e.Left == ""
}

// BorderStyles groups the border shorthand components.
type BorderStyles struct {
	Width string `json:"width,omitempty"`
	Style string `json:"style,omitempty"`
	Color string `json:"color,omitempty"`
}

// IsZero reports whether no border component is set.
func (b BorderStyles) IsZero() bool {
	return b.Width == "" && b.Style == "" && b.Color == ""
}

// Typography groups the text-styling fields shared by header, text and
// button properties.
type Typography struct {
	FontFamily string `json:"fontFamily,omitempty"`
	FontSize   string `json:"fontSize,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
	Color      string `json:"color,omitempty"`
	TextAlign  string `json:"textAlign,omitempty"`
	LineHeight string `json:"lineHeight,omitempty"`
}

// IsZero reports whether every typography field is empty.
func (t Typography) IsZero() bool {
	return t == Typography{}
}

// NewID returns a fresh opaque identifier for a section or element.
// Source markup carries no stable ids, and parse results from separate
// calls may later be merged, so ids must be collision-resistant rather
// than sequential.
func NewID() string {
	return uuid.NewString()
}
