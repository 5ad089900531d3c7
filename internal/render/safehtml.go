package render

import "strings"

// SafeHTML is an HTML fragment whose dynamic text has already been escaped.
// Only Escape and the block builders in this package produce it; callers
// compose fragments but cannot smuggle a raw string into a page without
// going through the escaping choke-point.
type SafeHTML string

func (h SafeHTML) String() string { return string(h) }

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape sanitises arbitrary text for embedding in HTML. Escaping is done
// exactly once, at the leaf: passing already-escaped text double-escapes.
func Escape(s string) SafeHTML {
	if s == "" {
		return ""
	}
	return SafeHTML(htmlEscaper.Replace(s))
}

// join concatenates fragments in document order.
func join(frags ...SafeHTML) SafeHTML {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(string(f))
	}
	return SafeHTML(b.String())
}
