package parse

import "strings"

// DecodeStyle converts a raw inline-style attribute string into a map of
// camelCased property names to trimmed values.
//
// Malformed declarations (no colon, empty property or value) are skipped
// rather than rejected; marketing-email HTML is full of them. Values are
// passed through as opaque strings with no unit parsing. The function is
// pure: the same input always yields the same map.
func DecodeStyle(style string) map[string]string {
	out := make(map[string]string)
	if style == "" {
		return out
	}
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		if prop == "" || value == "" {
			continue
		}
		out[camelCase(prop)] = value
	}
	return out
}

// nodeStyles decodes the style attribute of a node, tolerating nil.
func nodeStyles(n Node) map[string]string {
	if n == nil {
		return map[string]string{}
	}
	style, _ := n.Attr("style")
	return DecodeStyle(style)
}

// camelCase converts a hyphenated CSS property name ("padding-top") to
// the internal camelCase convention ("paddingTop").
func camelCase(prop string) string {
	var b strings.Builder
	first := true
	for _, p := range strings.Split(strings.ToLower(prop), "-") {
		if p == "" {
			continue
		}
		if first {
			b.WriteString(p)
			first = false
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
