package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tradesafe/internal/domain"
)

func TestKeyValueGrid(t *testing.T) {
	got := string(KeyValueGrid([]KV{
		{"Name", "J. Smith"},
		{"Role", ""},
	}, 2))

	assert.Contains(t, got, `class="kv-grid"`)
	assert.Contains(t, got, "J. Smith")
	assert.Contains(t, got, ">N/A<", "missing value renders a placeholder, not an empty cell")
	assert.NotContains(t, got, "kv-grid-3")
}

func TestKeyValueGridThreeColumns(t *testing.T) {
	got := string(KeyValueGrid([]KV{{"A", "1"}}, 3))
	assert.Contains(t, got, `class="kv-grid kv-grid-3"`)
}

func TestKeyValueGridEscapesValues(t *testing.T) {
	got := string(KeyValueGrid([]KV{{"Notes", "<img onerror=x>"}}, 2))
	assert.NotContains(t, got, "<img")
	assert.Contains(t, got, "&lt;img onerror=x&gt;")
}

func TestDataTable(t *testing.T) {
	got := string(DataTable(
		[]string{"Item", "Serial"},
		[][]string{{"Drill", "SN-1"}, {"Tester", ""}},
	))

	assert.Contains(t, got, `class="data-table"`)
	assert.Contains(t, got, "<th>Item</th>")
	assert.Contains(t, got, "<td>Drill</td>")
	assert.Contains(t, got, "<td>N/A</td>", "empty cell renders a placeholder")
}

func TestChecklist(t *testing.T) {
	got := string(Checklist([]domain.CheckItem{
		{Label: "Guards fitted", Passed: true},
		{Label: "Cable intact", Passed: false, Notes: "fraying near plug"},
	}))

	assert.Contains(t, got, `class="check-pass"`)
	assert.Contains(t, got, "&#10003;")
	assert.Contains(t, got, `class="check-fail"`)
	assert.Contains(t, got, "&#10007;")
	assert.Contains(t, got, "<em>fraying near plug</em>")
}

func TestBadgeList(t *testing.T) {
	got := string(BadgeList([]string{"Flammable", "Corrosive"}, "#991b1b"))
	assert.Equal(t, 2, strings.Count(got, `class="badge-tag"`))
	assert.Contains(t, got, "background:#991b1b")
}

func TestBulletList(t *testing.T) {
	got := string(BulletList([]string{"one", "two & three"}))
	assert.Contains(t, got, `class="bullet-list"`)
	assert.Contains(t, got, "<li>one</li>")
	assert.Contains(t, got, "<li>two &amp; three</li>")
}

func TestWarningBanner(t *testing.T) {
	got := string(WarningBanner("do not energise"))
	assert.Contains(t, got, `class="warning-banner"`)
	assert.Contains(t, got, "<strong>WARNING:</strong> do not energise")
}

func TestSignatureBlock(t *testing.T) {
	got := string(SignatureBlock([]domain.Signatory{
		{Role: "Issued By", Name: "A. Jones", Date: "01/08/2026"},
		{Role: "Accepted By"},
	}))

	assert.Equal(t, 2, strings.Count(got, `class="sig-block"`))
	assert.Contains(t, got, "Name: A. Jones")
	assert.Contains(t, got, "Date: 01/08/2026")
	// unsigned block keeps a place to sign
	assert.Contains(t, got, `class="sig-line"`)
	assert.Contains(t, got, "Name: ___________________")
	assert.Contains(t, got, "Date: ___________")
}

func TestSignatureBlockImageReplacesLine(t *testing.T) {
	got := string(SignatureBlock([]domain.Signatory{
		{Role: "Operator", Name: "B. Khan", ImageURL: "https://cdn.example/sig.png"},
	}))

	assert.Contains(t, got, `class="sig-image"`)
	assert.Contains(t, got, "https://cdn.example/sig.png")
	assert.NotContains(t, got, `class="sig-line"`)
}

func TestTextBoxAndParagraphEscape(t *testing.T) {
	assert.Contains(t, string(TextBox("a<b", "#123456")), "a&lt;b")
	assert.Contains(t, string(TextBox("x", "#123456")), "border-left-color:#123456")
	assert.Contains(t, string(Paragraph(`"quoted"`)), "&quot;quoted&quot;")
}

func TestSectionHeader(t *testing.T) {
	assert.Equal(t, SafeHTML(`<div class="section-header">Sign Off</div>`), SectionHeader("Sign Off"))
}
