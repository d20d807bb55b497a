package manifest

import "strings"

// GuessColumn picks a default column for the given candidates.
//
// The first header equal (case-insensitively) to a candidate wins, trying
// candidates in priority order. Failing that, the first header containing a
// candidate as a substring wins, again in candidate order. Failing that, the
// first header is returned, or "" when there are none.
func GuessColumn(headers []string, candidates []string) string {
	if h, ok := matchColumn(headers, candidates); ok {
		return h
	}
	if len(headers) == 0 {
		return ""
	}
	return headers[0]
}

// GuessColumns guesses both columns of a table. The part column is only set
// when a part candidate actually matched a header other than the serial column.
func GuessColumns(headers []string, cfg Config) Columns {
	cols := Columns{Serial: GuessColumn(headers, cfg.SerialOrDefault())}
	if part, ok := matchColumn(headers, cfg.PartOrDefault()); ok && part != cols.Serial {
		cols.Part = part
	}
	return cols
}

// ResolveColumns guesses the columns of table from its non-blank headers and
// applies the non-empty fields of override on top.
func ResolveColumns(table *Table, cfg Config, override Columns) Columns {
	cols := GuessColumns(table.ColumnNames(), cfg)
	if override.Serial != "" {
		cols.Serial = override.Serial
	}
	if override.Part != "" {
		cols.Part = override.Part
	}
	return cols
}

func matchColumn(headers []string, candidates []string) (string, bool) {
	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(h)
	}

	for _, c := range candidates {
		lc := strings.ToLower(c)
		for i, h := range lower {
			if h == lc {
				return headers[i], true
			}
		}
	}

	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc == "" {
			continue
		}
		for i, h := range lower {
			if strings.Contains(h, lc) {
				return headers[i], true
			}
		}
	}

	return "", false
}
