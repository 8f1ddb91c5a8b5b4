package parsers

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelParser parses OOXML spreadsheet files, reading the first sheet only.
// Legacy BIFF workbooks are handled by LegacyExcelParser.
type ExcelParser struct{}

func (p *ExcelParser) Detect(format string) bool {
	switch normalizeFormat(format) {
	case "XLSX", "XLSM":
		return true
	}
	return false
}

func (p *ExcelParser) Parse(r io.Reader, maxRows int) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open spreadsheet: %w", err)
	}
	defer f.Close() // nolint

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	header := cells[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for _, line := range cells[1:] {
		if maxRows > 0 && len(rows) >= maxRows {
			break
		}
		rows = append(rows, rowFromCells(header, line))
	}
	return rows, nil
}
