package render

// StatusColour is the closed set of badge colours used across all document
// types. Each document template maps its own domain field onto one of these
// via a finite lookup table with an explicit default.
type StatusColour string

const (
	StatusSuccess StatusColour = "success"
	StatusWarning StatusColour = "warning"
	StatusDanger  StatusColour = "danger"
	StatusInfo    StatusColour = "info"
	StatusGrey    StatusColour = "grey"
)

// Background returns the badge background colour. Unknown values render as
// grey rather than erroring, so an unmapped status never breaks a document.
func (c StatusColour) Background() string {
	switch c {
	case StatusSuccess:
		return "#dcfce7"
	case StatusWarning:
		return "#fef3c7"
	case StatusDanger:
		return "#fee2e2"
	case StatusInfo:
		return "#dbeafe"
	}
	return "#f3f4f6"
}

// Foreground returns the badge text colour paired with Background.
func (c StatusColour) Foreground() string {
	switch c {
	case StatusSuccess:
		return "#166534"
	case StatusWarning:
		return "#92400e"
	case StatusDanger:
		return "#991b1b"
	case StatusInfo:
		return "#1e40af"
	}
	return "#374151"
}

// statusFor resolves a domain value against a template's lookup table,
// falling back to the supplied default for unknown or absent values.
func statusFor(table map[string]StatusColour, value string, fallback StatusColour) StatusColour {
	if c, ok := table[value]; ok {
		return c
	}
	return fallback
}
