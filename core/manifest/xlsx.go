package manifest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXSource parses the first sheet of an Excel workbook.
type XLSXSource struct{}

// Name returns "xlsx".
func (XLSXSource) Name() string { return "xlsx" }

// Parse opens the workbook and reads the raw cell values of its first sheet.
func (XLSXSource) Parse(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrParse)
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %s: %v", ErrParse, sheet, err)
	}

	return buildTable(sheet, stringRows(rows))
}
