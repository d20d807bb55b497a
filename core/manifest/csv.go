package manifest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// utf8BOM is stripped from the start of CSV exports produced by spreadsheet tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVSource parses comma separated manifests.
type CSVSource struct {
	// Comma overrides the field delimiter (default ',').
	Comma rune
}

// Name returns "csv".
func (CSVSource) Name() string { return "csv" }

// Parse reads all records. Field counts may vary between rows.
func (s CSVSource) Parse(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if s.Comma != 0 {
		cr.Comma = s.Comma
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return buildTable("", stringRows(records))
}
