package parse

import (
	"io"

	"github.com/davetubbs/mailtmpl/internal/tmpl"
)

// Diagnostic records one per-element extraction failure. The element it
// names is still present in the template with nil properties; the
// diagnostic is what makes the failure observable instead of the parser
// fabricating plausible-looking data.
type Diagnostic struct {
	ElementID   string           `json:"elementId"`
	ElementType tmpl.ElementType `json:"elementType"`
	Reason      string           `json:"reason"`
}

// Result is the outcome of one parse: the assembled template plus the
// extraction diagnostics collected along the way. The core never logs;
// callers decide what to do with the diagnostics.
type Result struct {
	Template    *tmpl.StructuredTemplate `json:"template"`
	Diagnostics []Diagnostic             `json:"warnings"`
}

// Assembler is the one piece each runtime environment supplies itself,
// since tree traversal differs per environment. An implementation parses
// the raw HTML into its own tree, walks the section-bearing container in
// document order, and delegates all classification and extraction to the
// shared core functions in this package.
//
// Assemble returns an error only when the tree parser itself rejects the
// input; per-element failures surface as Diagnostics on the Result, never
// as an error. Implementations must be stateless: every call is a pure
// function of its input apart from fresh id generation.
type Assembler interface {
	Assemble(r io.Reader) (*Result, error)
}
