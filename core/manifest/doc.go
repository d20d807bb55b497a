// Package manifest turns an emailed spreadsheet into the expected set of an audit.
//
// # Sources
//
// A Source parses file bytes into a Table (header row plus data rows). Two
// sources are provided:
//   - XLSXSource: first sheet of an Excel workbook (excelize).
//   - CSVSource: comma separated text.
//
// SourceFor picks one from the file extension. Every parse failure, including a
// sheet with fewer than two rows, wraps ErrParse.
//
// # Loading
//
// LoadExpected maps each row's serial cell (normalized by package identifier)
// to an Entry holding the optional part cell. GuessColumn and GuessColumns
// provide default column selections from header names; ResolveColumns applies
// an explicit selection on top of the guess.
//
//	table, err := manifest.ParseFile("truck-42.xlsx", f)
//	cols := manifest.ResolveColumns(table, cfg.Manifest, manifest.Columns{})
//	expected, err := manifest.LoadExpected(table, cols)
package manifest
