package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFields(t *testing.T) {
	fields, err := parseFields([]string{
		"website=https://acme.example.com",
		"notes=key partner since 2024",
		"aliases=acme=co",
	})
	if err != nil {
		t.Fatalf("parseFields failed: %v", err)
	}

	assert.Equal(t, "https://acme.example.com", fields["website"])
	assert.Equal(t, "key partner since 2024", fields["notes"])
	assert.Equal(t, "acme=co", fields["aliases"], "only the first = separates key and value")
}

func TestParseFields_Empty(t *testing.T) {
	fields, err := parseFields(nil)

	assert.NoError(t, err)
	assert.Nil(t, fields)
}

func TestParseFields_Invalid(t *testing.T) {
	tests := []string{"no-separator", "=missing-key"}

	for _, input := range tests {
		_, err := parseFields([]string{input})
		assert.Error(t, err, "input %q should be rejected", input)
	}
}
