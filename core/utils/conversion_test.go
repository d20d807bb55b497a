package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "abc", "abc"},
		{"Bytes", []byte("xyz"), "xyz"},
		{"IntegralFloat", float64(1234567), "1234567"},
		{"Float", 12.5, "12.5"},
		{"Int", 42, "42"},
		{"Int64", int64(-7), "-7"},
		{"Bool", true, "true"},
		{"Date", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), "2024-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}

func TestToTrimmedString(t *testing.T) {
	assert.Equal(t, "Widget A", ToTrimmedString("  Widget A \t"))
	assert.Equal(t, "", ToTrimmedString(nil))
}

func TestCellAt(t *testing.T) {
	row := []any{"a", nil, 3}

	assert.Equal(t, "a", CellAt(row, 0))
	assert.Nil(t, CellAt(row, 1))
	assert.Equal(t, 3, CellAt(row, 2))
	assert.Nil(t, CellAt(row, 3))
	assert.Nil(t, CellAt(row, -1))
}
