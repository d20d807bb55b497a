package manifest

import (
	"fmt"

	"stock-audit/core/identifier"
	"stock-audit/core/utils"
)

// LoadExpected converts a table into the expected mapping using the given
// serial column and optional part column (empty for none).
//
// Rows whose serial cell normalizes to "" are skipped. When two rows share an
// identifier the later row wins.
func LoadExpected(table *Table, cols Columns) (Expected, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: no table", ErrParse)
	}

	si := table.ColumnIndex(cols.Serial)
	if si < 0 {
		return nil, fmt.Errorf("%w: serial column %q", ErrUnknownColumn, cols.Serial)
	}

	pi := -1
	if cols.Part != "" {
		pi = table.ColumnIndex(cols.Part)
		if pi < 0 {
			return nil, fmt.Errorf("%w: part column %q", ErrUnknownColumn, cols.Part)
		}
	}

	expected := make(Expected, len(table.Rows))
	for _, row := range table.Rows {
		id := identifier.FromCell(utils.CellAt(row, si))
		if id == "" {
			continue
		}

		part := ""
		if pi >= 0 {
			part = utils.ToTrimmedString(utils.CellAt(row, pi))
		}
		expected[id] = Entry{Part: part}
	}

	return expected, nil
}
