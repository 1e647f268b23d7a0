// Package ingest dispatches raw template sources to the converter that
// renders them into email HTML ready for the template parser.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind names an accepted authoring format.
type Kind string

const (
	KindHTML     Kind = "html"
	KindMarkdown Kind = "markdown"
)

// Converter renders one authoring format into email HTML.
type Converter interface {
	ToHTML(src []byte) ([]byte, error)
}

// ForKind returns the converter for an authoring format.
func ForKind(kind Kind) (Converter, error) {
	switch kind {
	case KindHTML:
		return &HTMLConverter{}, nil
	case KindMarkdown:
		return &MarkdownConverter{}, nil
	default:
		return nil, fmt.Errorf("unsupported source kind: %s", kind)
	}
}

// KindForName maps a document filename to its authoring format.
func KindForName(name string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return KindHTML, nil
	case ".md", ".markdown":
		return KindMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported file extension: %s", filepath.Ext(name))
	}
}

// HTMLConverter passes already-authored email HTML through untouched.
type HTMLConverter struct{}

func (c *HTMLConverter) ToHTML(src []byte) ([]byte, error) {
	return src, nil
}
