package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "J. Smith", "J. Smith"},
		{"empty stays empty", "", ""},
		{"angle brackets", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"ampersand", "Smith & Sons", "Smith &amp; Sons"},
		{"quotes", `say "hi"`, "say &quot;hi&quot;"},
		{"mixed", `<a href="x">&`, "&lt;a href=&quot;x&quot;&gt;&amp;"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, SafeHTML(tc.want), Escape(tc.in))
		})
	}
}

func TestJoinPreservesOrderWithoutReEscaping(t *testing.T) {
	a := Escape("<b>")
	b := SafeHTML(`<div class="x">`)
	got := join(a, b, a)
	assert.Equal(t, SafeHTML(`&lt;b&gt;<div class="x">&lt;b&gt;`), got)
}

func TestStatusColourPairs(t *testing.T) {
	cases := []struct {
		colour StatusColour
		bg, fg string
	}{
		{StatusSuccess, "#dcfce7", "#166534"},
		{StatusWarning, "#fef3c7", "#92400e"},
		{StatusDanger, "#fee2e2", "#991b1b"},
		{StatusInfo, "#dbeafe", "#1e40af"},
		{StatusGrey, "#f3f4f6", "#374151"},
		{StatusColour("made-up"), "#f3f4f6", "#374151"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.bg, tc.colour.Background(), "background for %s", tc.colour)
		assert.Equal(t, tc.fg, tc.colour.Foreground(), "foreground for %s", tc.colour)
	}
}

func TestStatusForFallsBack(t *testing.T) {
	table := map[string]StatusColour{"pass": StatusSuccess}
	assert.Equal(t, StatusSuccess, statusFor(table, "pass", StatusGrey))
	assert.Equal(t, StatusGrey, statusFor(table, "unknown", StatusGrey))
	assert.Equal(t, StatusGrey, statusFor(table, "", StatusGrey))
}
