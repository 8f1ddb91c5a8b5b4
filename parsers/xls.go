package parsers

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/shakinm/xlsReader/xls"
)

// LegacyExcelParser parses pre-OOXML BIFF spreadsheets (.xls), reading the
// first sheet only. Modern workbooks go through ExcelParser instead.
type LegacyExcelParser struct{}

func (p *LegacyExcelParser) Detect(format string) bool {
	return normalizeFormat(format) == "XLS"
}

func (p *LegacyExcelParser) Parse(r io.Reader, maxRows int) ([]Row, error) {
	// The BIFF reader needs random access, so buffer the whole file.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read spreadsheet: %w", err)
	}

	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not open spreadsheet: %w", err)
	}
	if workbook.GetNumberSheets() == 0 {
		return nil, nil
	}

	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("could not read first sheet: %w", err)
	}

	numRows := sheet.GetNumberRows()
	if numRows == 0 {
		return nil, nil
	}

	headerRow, err := sheet.GetRow(0)
	if err != nil {
		return nil, fmt.Errorf("could not read header row: %w", err)
	}
	var header []string
	for _, cell := range headerRow.GetCols() {
		header = append(header, strings.TrimSpace(cell.GetString()))
	}

	var rows []Row
	for i := 1; i < numRows; i++ {
		if maxRows > 0 && len(rows) >= maxRows {
			break
		}
		line, err := sheet.GetRow(i)
		if err != nil {
			continue
		}
		cols := line.GetCols()
		cells := make([]string, 0, len(cols))
		for _, cell := range cols {
			cells = append(cells, cell.GetString())
		}
		rows = append(rows, rowFromCells(header, cells))
	}
	return rows, nil
}
