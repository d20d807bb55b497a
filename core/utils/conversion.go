package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ToString converts a spreadsheet cell value to its string form.
// A nil cell (missing or blank) becomes the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format("2006-01-02")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToTrimmedString converts a cell value to a string with surrounding whitespace removed.
func ToTrimmedString(val any) string {
	return strings.TrimSpace(ToString(val))
}

// CellAt returns the cell at index i of row, or nil when the row is too short
// or the index is negative.
func CellAt(row []any, i int) any {
	if i < 0 || i >= len(row) {
		return nil
	}
	return row[i]
}
