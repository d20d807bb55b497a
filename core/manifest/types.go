package manifest

import (
	"errors"
	"sort"
)

var (
	// ErrParse is returned when a tabular source is unreadable or holds
	// fewer than two rows (no header or no data).
	ErrParse = errors.New("manifest parse error")

	// ErrUnknownColumn is returned when a selected column is not a header of the table.
	ErrUnknownColumn = errors.New("unknown column")
)

// Table is the header row plus data rows produced by a tabular source.
type Table struct {
	// Sheet is the name of the sheet the rows were read from (empty for CSV).
	Sheet string

	// Headers holds the trimmed header cells by position. Blank headers are kept
	// as "" so that positions line up with the data rows.
	Headers []string

	// Rows holds the data rows. Cells may be nil and rows may be ragged.
	Rows [][]any
}

// ColumnNames returns the non-blank headers in sheet order.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Headers))
	for _, h := range t.Headers {
		if h != "" {
			names = append(names, h)
		}
	}
	return names
}

// ColumnIndex returns the position of the first header named name, or -1.
func (t *Table) ColumnIndex(name string) int {
	if name == "" {
		return -1
	}
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Entry holds the attributes of an expected identifier.
type Entry struct {
	// Part is the part name or description (may be empty).
	Part string `json:"part" yaml:"part"`
}

// Expected maps an identifier to its entry.
type Expected map[string]Entry

// Has reports whether id is expected.
func (e Expected) Has(id string) bool {
	_, ok := e[id]
	return ok
}

// Keys returns the expected identifiers sorted lexicographically.
func (e Expected) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Columns is a serial/part column selection. An empty Part means no part column.
type Columns struct {
	Serial string `json:"serial_column" yaml:"serial_column"`
	Part   string `json:"part_column" yaml:"part_column"`
}
