package tmpl

// ElementType is the closed set of element kinds the parser recognizes.
type ElementType string

const (
	TypeHeader  ElementType = "header"
	TypeText    ElementType = "text"
	TypeButton  ElementType = "button"
	TypeImage   ElementType = "image"
	TypeDivider ElementType = "divider"
	TypeSpacer  ElementType = "spacer"
)

// Properties is the discriminated-union payload of an Element, keyed by
// the element's Type. Each concrete shape below pairs with exactly one
// ElementType; a nil Properties means extraction failed for the element.
type Properties interface {
	isProperties()
}

// HeaderProps belongs to TypeHeader.
type HeaderProps struct {
	Level      string      `json:"level"`
	Typography *Typography `json:"typography,omitempty"`
}

// TextProps belongs to TypeText.
type TextProps struct {
	Typography *Typography `json:"typography,omitempty"`
}

// ButtonProps belongs to TypeButton.
type ButtonProps struct {
	Href            string        `json:"href"`
	Target          string        `json:"target,omitempty"`
	BackgroundColor string        `json:"backgroundColor,omitempty"`
	Color           string        `json:"color,omitempty"`
	Border          *BorderStyles `json:"border,omitempty"`
	Typography      *Typography   `json:"typography,omitempty"`
}

// ImageProps belongs to TypeImage.
type ImageProps struct {
	Src    string        `json:"src"`
	Alt    string        `json:"alt"`
	Width  string        `json:"width,omitempty"`
	Height string        `json:"height,omitempty"`
	Border *BorderStyles `json:"border,omitempty"`
	Href   string        `json:"href,omitempty"`
	Target string        `json:"target,omitempty"`
}

// DividerProps belongs to TypeDivider.
type DividerProps struct {
	Color  string `json:"color,omitempty"`
	Height string `json:"height,omitempty"`
}

// SpacerProps belongs to TypeSpacer.
type SpacerProps struct {
	Height string `json:"height"`
}

func (HeaderProps) isProperties()  {}
func (TextProps) isProperties()    {}
func (ButtonProps) isProperties()  {}
func (ImageProps) isProperties()   {}
func (DividerProps) isProperties() {}
func (SpacerProps) isProperties()  {}
