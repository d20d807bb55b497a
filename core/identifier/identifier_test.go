package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Empty", "", ""},
		{"Whitespace", " \t\n ", ""},
		{"Trim", "  abc123 ", "ABC123"},
		{"AlreadyNormal", "XYZ999", "XYZ999"},
		{"InnerSpaceKept", " a b ", "A B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestFromCell(t *testing.T) {
	assert.Equal(t, "", FromCell(nil))
	assert.Equal(t, "SN-1", FromCell(" sn-1 "))
	assert.Equal(t, "100200", FromCell(float64(100200)))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("abc123 ", "ABC123"))
	assert.False(t, Equal("abc", "abd"))
	assert.False(t, Equal(" ", ""))
}
