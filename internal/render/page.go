package render

import (
	"fmt"
	"strings"
	"time"

	"tradesafe/internal/domain"
)

// Page is everything the composer needs to emit one complete document.
// GeneratedAt is captured once by the caller so a single render is
// internally consistent and tests can freeze it.
type Page struct {
	Title       string
	Reference   string
	StatusLabel string
	Status      StatusColour
	Branding    domain.Branding
	Body        SafeHTML
	Footnote    string
	GeneratedAt time.Time
}

// Document timestamps are presented in UK local time regardless of where
// the service runs.
var london = func() *time.Location {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		return time.UTC
	}
	return loc
}()

const timestampLayout = "02 Jan 2006 15:04"

// shortRef truncates and uppercases a reference id for the title bar. The
// footer carries the full reference.
func shortRef(ref string) string {
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return strings.ToUpper(ref)
}

// Compose assembles a complete, self-contained A4 document around the body
// fragments. The body is already-composed SafeHTML and is never re-escaped.
func Compose(p Page) SafeHTML {
	b := p.Branding
	var w strings.Builder

	w.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
	fmt.Fprintf(&w, `<title>%s</title>`, Escape(p.Title))
	w.WriteString(`<link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700&display=swap" rel="stylesheet"/>`)
	fmt.Fprintf(&w, `<style>%s</style></head><body>`, pageCSS)

	// Tier 1: company identity over a dark gradient.
	fmt.Fprintf(&w, `<div class="doc-header" style="background:linear-gradient(135deg,%s,#111827)">`, Escape(b.Primary()))
	w.WriteString(`<div class="doc-header-left">`)
	if logo := b.Logo(); logo != "" {
		fmt.Fprintf(&w, `<img class="doc-logo" src="%s" alt="logo"/>`, Escape(logo))
	}
	if b.CompanyName != "" {
		fmt.Fprintf(&w, `<div class="doc-company">%s</div>`, Escape(b.CompanyName))
	}
	if addr := joinNonEmpty(b.Address, b.Postcode); addr != "" {
		fmt.Fprintf(&w, `<div class="doc-address">%s</div>`, Escape(addr))
	}
	w.WriteString(`</div>`)
	if b.SchemeLogoURL != "" {
		fmt.Fprintf(&w, `<div class="doc-scheme"><img class="doc-scheme-logo" src="%s" alt="scheme"/>`, Escape(b.SchemeLogoURL))
		if b.SchemeName != "" {
			fmt.Fprintf(&w, `<div class="doc-scheme-name">%s</div>`, Escape(b.SchemeName))
		}
		w.WriteString(`</div>`)
	}
	w.WriteString(`</div>`)

	// Tier 2: title bar with status badge and truncated reference.
	w.WriteString(`<div class="doc-titlebar">`)
	fmt.Fprintf(&w, `<div class="doc-title">%s</div>`, Escape(p.Title))
	fmt.Fprintf(&w, `<div class="doc-titlebar-right"><span class="status-badge" style="background:%s;color:%s">%s</span>`,
		p.Status.Background(), p.Status.Foreground(), Escape(p.StatusLabel))
	fmt.Fprintf(&w, `<span class="doc-ref">%s</span></div></div>`, Escape(shortRef(p.Reference)))

	fmt.Fprintf(&w, `<div class="doc-body">%s`, p.Body)
	if p.Footnote != "" {
		w.WriteString(string(Footnote(p.Footnote)))
	}
	w.WriteString(`</div>`)

	// Audit footer: always present.
	w.WriteString(`<div class="doc-footer"><div class="doc-footer-brand">TradeSafe</div>`)
	if line := registrationLine(b); line != "" {
		fmt.Fprintf(&w, `<div class="doc-footer-line">%s</div>`, Escape(line))
	}
	if line := contactLine(b); line != "" {
		fmt.Fprintf(&w, `<div class="doc-footer-line">%s</div>`, Escape(line))
	}
	fmt.Fprintf(&w, `<div class="doc-footer-line">Reference: %s</div>`, Escape(p.Reference))
	fmt.Fprintf(&w, `<div class="doc-footer-line">Generated %s</div>`,
		Escape(p.GeneratedAt.In(london).Format(timestampLayout)))
	w.WriteString(`</div></body></html>`)

	return SafeHTML(w.String())
}

func registrationLine(b domain.Branding) string {
	var parts []string
	if b.CompanyNumber != "" {
		parts = append(parts, "Company No. "+b.CompanyNumber)
	}
	if b.VatNumber != "" {
		parts = append(parts, "VAT No. "+b.VatNumber)
	}
	return strings.Join(parts, " | ")
}

func contactLine(b domain.Branding) string {
	return strings.Join(nonEmpty(b.Phone, b.Email, b.Website), " | ")
}

func joinNonEmpty(parts ...string) string {
	return strings.Join(nonEmpty(parts...), ", ")
}

func nonEmpty(parts ...string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

const pageCSS = `
@page { size: A4; margin: 0; }
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: 'Inter', Arial, sans-serif; font-size: 10pt; color: #1f2937; width: 210mm; min-height: 297mm; }
.doc-header { display: flex; justify-content: space-between; align-items: center; color: #fff; padding: 10mm 12mm 6mm; }
.doc-logo { max-height: 18mm; margin-bottom: 2mm; }
.doc-company { font-size: 15pt; font-weight: 700; }
.doc-address { font-size: 8pt; opacity: 0.85; margin-top: 1mm; }
.doc-scheme { text-align: center; }
.doc-scheme-logo { max-height: 14mm; }
.doc-scheme-name { font-size: 7pt; opacity: 0.85; margin-top: 1mm; }
.doc-titlebar { display: flex; justify-content: space-between; align-items: center; background: #f9fafb; border-bottom: 2px solid #e5e7eb; padding: 4mm 12mm; }
.doc-title { font-size: 13pt; font-weight: 700; }
.doc-titlebar-right { display: flex; align-items: center; gap: 3mm; }
.status-badge { font-size: 8pt; font-weight: 600; text-transform: uppercase; border-radius: 10px; padding: 1mm 3mm; }
.doc-ref { font-size: 8pt; font-weight: 600; color: #6b7280; letter-spacing: 0.5px; }
.doc-body { padding: 6mm 12mm 10mm; }
.section-header { font-size: 10.5pt; font-weight: 700; text-transform: uppercase; letter-spacing: 0.5px; color: #374151; border-bottom: 1px solid #d1d5db; margin: 6mm 0 3mm; padding-bottom: 1mm; }
.kv-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 2mm 6mm; margin-bottom: 3mm; }
.kv-grid-3 { grid-template-columns: repeat(3, 1fr); }
.kv-label { font-size: 7.5pt; text-transform: uppercase; color: #6b7280; }
.kv-value { font-size: 9.5pt; font-weight: 600; }
.data-table { width: 100%; border-collapse: collapse; margin-bottom: 3mm; font-size: 9pt; }
.data-table th { background: #f3f4f6; text-align: left; padding: 1.5mm 2mm; border: 1px solid #e5e7eb; font-size: 8pt; text-transform: uppercase; }
.data-table td { padding: 1.5mm 2mm; border: 1px solid #e5e7eb; }
.checklist { margin-bottom: 3mm; }
.check-item { padding: 1mm 0; font-size: 9.5pt; }
.check-item em { color: #6b7280; }
.check-pass { color: #16a34a; font-weight: 700; }
.check-fail { color: #dc2626; font-weight: 700; }
.badge-list { margin-bottom: 3mm; }
.badge-tag { display: inline-block; color: #fff; font-size: 8pt; font-weight: 600; border-radius: 9px; padding: 1mm 2.5mm; margin: 0 1.5mm 1.5mm 0; }
.bullet-list { margin: 0 0 3mm 5mm; font-size: 9.5pt; }
.bullet-list li { margin-bottom: 1mm; }
.warning-banner { background: #fef2f2; border: 1.5px solid #dc2626; color: #991b1b; border-radius: 4px; padding: 3mm; margin: 3mm 0; font-size: 9.5pt; }
.text-box { background: #f9fafb; border-left: 3px solid; border-radius: 2px; padding: 2.5mm; margin-bottom: 3mm; font-size: 9.5pt; }
.doc-paragraph { color: #4b5563; font-size: 9.5pt; margin-bottom: 3mm; }
.doc-footnote { color: #6b7280; font-size: 7.5pt; margin-top: 6mm; border-top: 1px dashed #d1d5db; padding-top: 2mm; }
.sig-container { display: flex; gap: 8mm; margin-top: 5mm; }
.sig-block { flex: 1; border: 1px solid #e5e7eb; border-radius: 4px; padding: 3mm; }
.sig-role { font-size: 8pt; text-transform: uppercase; color: #6b7280; margin-bottom: 2mm; }
.sig-line { border-bottom: 1px solid #9ca3af; height: 10mm; margin-bottom: 2mm; }
.sig-image { max-height: 12mm; margin-bottom: 2mm; }
.sig-name, .sig-date { font-size: 8.5pt; color: #374151; }
.doc-footer { border-top: 2px solid #e5e7eb; margin-top: 6mm; padding: 4mm 12mm; font-size: 7.5pt; color: #6b7280; }
.doc-footer-brand { font-weight: 700; color: #374151; margin-bottom: 1mm; }
.doc-footer-line { margin-bottom: 0.5mm; }
`
