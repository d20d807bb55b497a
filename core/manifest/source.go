package manifest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Source parses file bytes into a table.
type Source interface {
	// Name returns the format handled by this source (e.g. "xlsx", "csv").
	Name() string
	// Parse reads the whole input and returns the first sheet as a table.
	// Failures wrap ErrParse.
	Parse(r io.Reader) (*Table, error)
}

// SourceFor selects a source from a file name's extension.
func SourceFor(filename string) (Source, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return XLSXSource{}, nil
	case ".csv", ".txt":
		return CSVSource{}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q", ErrParse, filepath.Ext(filename))
	}
}

// ParseFile selects a source by file name and parses r with it.
func ParseFile(filename string, r io.Reader) (*Table, error) {
	src, err := SourceFor(filename)
	if err != nil {
		return nil, err
	}
	return src.Parse(r)
}

// buildTable shapes raw rows into a table: the first row is the header,
// header cells are trimmed, and empty data rows are dropped.
func buildTable(sheet string, rows [][]any) (*Table, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: sheet seems empty", ErrParse)
	}

	headers := make([]string, len(rows[0]))
	named := 0
	for i, cell := range rows[0] {
		headers[i] = strings.TrimSpace(cellString(cell))
		if headers[i] != "" {
			named++
		}
	}
	if named == 0 {
		return nil, fmt.Errorf("%w: header row is blank", ErrParse)
	}

	data := make([][]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		data = append(data, row)
	}

	return &Table{Sheet: sheet, Headers: headers, Rows: data}, nil
}

func isBlankRow(row []any) bool {
	for _, cell := range row {
		if strings.TrimSpace(cellString(cell)) != "" {
			return false
		}
	}
	return true
}

func cellString(cell any) string {
	if s, ok := cell.(string); ok {
		return s
	}
	if cell == nil {
		return ""
	}
	return fmt.Sprint(cell)
}

func stringRows(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, c := range row {
			cells[j] = c
		}
		out[i] = cells
	}
	return out
}
