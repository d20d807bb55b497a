package identifier

import (
	"strings"

	"stock-audit/core/utils"
)

// Normalize canonicalizes raw scanned or typed text into a comparable key.
// It returns "" for empty or whitespace-only input, otherwise the trimmed
// value in upper case.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s)
}

// FromCell normalizes a spreadsheet cell. Absent cells normalize to "".
func FromCell(cell any) string {
	if cell == nil {
		return ""
	}
	return Normalize(utils.ToString(cell))
}

// Equal reports whether two raw inputs denote the same identifier.
// Inputs that normalize to "" are never equal to anything.
func Equal(a, b string) bool {
	na := Normalize(a)
	return na != "" && na == Normalize(b)
}
