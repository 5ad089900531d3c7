package render

import (
	"fmt"
	"strings"

	"tradesafe/internal/domain"
)

// KV is one label/value pair for a key/value grid.
type KV struct {
	Label string
	Value string
}

// KeyValueGrid renders label/value pairs perRow per row (2 or 3). A missing
// value renders as a literal "N/A" placeholder, never an empty cell.
func KeyValueGrid(pairs []KV, perRow int) SafeHTML {
	class := "kv-grid"
	if perRow == 3 {
		class = "kv-grid kv-grid-3"
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s">`, class)
	for _, p := range pairs {
		value := Escape(p.Value)
		if value == "" {
			value = "N/A"
		}
		fmt.Fprintf(&b, `<div class="kv-cell"><div class="kv-label">%s</div><div class="kv-value">%s</div></div>`,
			Escape(p.Label), value)
	}
	b.WriteString(`</div>`)
	return SafeHTML(b.String())
}

// DataTable renders a header row plus body rows. Rows are expected to match
// the header arity; the builder does not validate.
func DataTable(headers []string, rows [][]string) SafeHTML {
	var b strings.Builder
	b.WriteString(`<table class="data-table"><thead><tr>`)
	for _, h := range headers {
		fmt.Fprintf(&b, `<th>%s</th>`, Escape(h))
	}
	b.WriteString(`</tr></thead><tbody>`)
	for _, row := range rows {
		b.WriteString(`<tr>`)
		for _, cell := range row {
			value := Escape(cell)
			if value == "" {
				value = "N/A"
			}
			fmt.Fprintf(&b, `<td>%s</td>`, value)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table>`)
	return SafeHTML(b.String())
}

// Checklist renders pass/fail lines with an optional italic note per item.
func Checklist(items []domain.CheckItem) SafeHTML {
	var b strings.Builder
	b.WriteString(`<div class="checklist">`)
	for _, item := range items {
		glyph, class := "&#10007;", "check-fail"
		if item.Passed {
			glyph, class = "&#10003;", "check-pass"
		}
		fmt.Fprintf(&b, `<div class="check-item"><span class="%s">%s</span> %s`, class, glyph, Escape(item.Label))
		if item.Notes != "" {
			fmt.Fprintf(&b, ` <em>%s</em>`, Escape(item.Notes))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return SafeHTML(b.String())
}

// BadgeList renders short strings as coloured pills. An empty colour falls
// back to the company primary accent at the call site, so colour is always
// concrete here.
func BadgeList(items []string, colour string) SafeHTML {
	var b strings.Builder
	b.WriteString(`<div class="badge-list">`)
	for _, item := range items {
		fmt.Fprintf(&b, `<span class="badge-tag" style="background:%s">%s</span>`, Escape(colour), Escape(item))
	}
	b.WriteString(`</div>`)
	return SafeHTML(b.String())
}

// BulletList renders one line item per string, no nesting.
func BulletList(items []string) SafeHTML {
	var b strings.Builder
	b.WriteString(`<ul class="bullet-list">`)
	for _, item := range items {
		fmt.Fprintf(&b, `<li>%s</li>`, Escape(item))
	}
	b.WriteString(`</ul>`)
	return SafeHTML(b.String())
}

// WarningBanner renders a single high-salience block with a fixed prefix.
// Reserved for regulatory and safety-critical call-outs.
func WarningBanner(text string) SafeHTML {
	return SafeHTML(fmt.Sprintf(`<div class="warning-banner"><strong>WARNING:</strong> %s</div>`, Escape(text)))
}

// SignatureBlock renders one block per signatory. Missing name and date fall
// back to blank-line placeholders, and a supplied signature image replaces
// the blank signature line; the document always shows a place to sign.
func SignatureBlock(sigs []domain.Signatory) SafeHTML {
	var b strings.Builder
	b.WriteString(`<div class="sig-container">`)
	for _, sig := range sigs {
		fmt.Fprintf(&b, `<div class="sig-block"><div class="sig-role">%s</div>`, Escape(sig.Role))
		if sig.ImageURL != "" {
			fmt.Fprintf(&b, `<img class="sig-image" src="%s" alt="signature"/>`, Escape(sig.ImageURL))
		} else {
			b.WriteString(`<div class="sig-line">&nbsp;</div>`)
		}
		name := Escape(sig.Name)
		if name == "" {
			name = "___________________"
		}
		date := Escape(sig.Date)
		if date == "" {
			date = "___________"
		}
		fmt.Fprintf(&b, `<div class="sig-name">Name: %s</div><div class="sig-date">Date: %s</div></div>`, name, date)
	}
	b.WriteString(`</div>`)
	return SafeHTML(b.String())
}

// TextBox renders free text with an accent border, for narrative fields.
func TextBox(text, accent string) SafeHTML {
	return SafeHTML(fmt.Sprintf(`<div class="text-box" style="border-left-color:%s">%s</div>`,
		Escape(accent), Escape(text)))
}

// Paragraph renders muted free text.
func Paragraph(text string) SafeHTML {
	return SafeHTML(fmt.Sprintf(`<p class="doc-paragraph">%s</p>`, Escape(text)))
}

// Footnote renders small muted print, used for regulatory references.
func Footnote(text string) SafeHTML {
	return SafeHTML(fmt.Sprintf(`<div class="doc-footnote">%s</div>`, Escape(text)))
}

// SectionHeader opens a logical document section. Every emitted section of
// every document type starts with one.
func SectionHeader(title string) SafeHTML {
	return SafeHTML(fmt.Sprintf(`<div class="section-header">%s</div>`, Escape(title)))
}

// nonePlaceholder is the body shown under a mandatory section header whose
// source data is empty.
func nonePlaceholder(label string) SafeHTML {
	return Paragraph(label)
}
