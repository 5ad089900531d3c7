package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocTypeValid(t *testing.T) {
	for _, dt := range DocTypes {
		assert.True(t, dt.Valid(), "%s", dt)
	}
	assert.False(t, DocType("").Valid())
	assert.False(t, DocType("invoice").Valid())
	assert.False(t, DocType("Accident").Valid(), "doc types are case sensitive")
}

func TestBrandingAccentDefaults(t *testing.T) {
	var b Branding
	assert.Equal(t, DefaultPrimaryColour, b.Primary())
	assert.Equal(t, DefaultSecondaryColour, b.Secondary())

	b.PrimaryColour = "#112233"
	b.SecondaryColour = "#445566"
	assert.Equal(t, "#112233", b.Primary())
	assert.Equal(t, "#445566", b.Secondary())
}
