// Package parsers converts downloaded resource files into row records.
// Each parser enforces the max-rows cap by truncating, never by raising.
package parsers

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnsupportedFormat is returned by ForFormat when no parser recognises
// the resource's format tag.
var ErrUnsupportedFormat = errors.New("unsupported resource format")

// A Row is one parsed row from a resource file. The mapping is open-ended
// because the schema varies per source file.
type Row map[string]interface{}

// A ParseError reports a malformed or unreadable resource file. It is
// isolated per resource and must not abort a surrounding sync run.
type ParseError struct {
	ResourceID string
	Format     string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse resource %q (format %s): %v", e.ResourceID, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser reads a resource file and produces at most maxRows row records.
type Parser interface {
	// Detect reports whether this parser handles the given format tag.
	Detect(format string) bool
	// Parse reads the file and returns its rows, truncated at maxRows.
	Parse(r io.Reader, maxRows int) ([]Row, error)
}

// registry holds the parser variants in dispatch order.
var registry = []Parser{
	&CSVParser{},
	&JSONParser{},
	&ExcelParser{},
	&LegacyExcelParser{},
}

// ForFormat returns the parser handling the given format tag, or
// ErrUnsupportedFormat.
func ForFormat(format string) (Parser, error) {
	for _, p := range registry {
		if p.Detect(format) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Supported reports whether any parser handles the given format tag.
func Supported(format string) bool {
	_, err := ForFormat(format)
	return err == nil
}

// normalizeFormat upper-cases and trims a format tag for comparison.
func normalizeFormat(format string) string {
	return strings.ToUpper(strings.TrimSpace(format))
}

// cellValue trims a raw cell and maps empty cells to nil so sparse files
// keep their holes visible in the stored row.
func cellValue(raw string) interface{} {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return v
}

// columnKey names the overflow columns a header row does not cover.
func columnKey(i int) string {
	return fmt.Sprintf("column_%d", i)
}

// rowFromCells zips header names with cells. Cells beyond the header get
// positional column_N keys; short rows simply omit the missing fields.
func rowFromCells(header []string, cells []string) Row {
	row := make(Row, len(cells))
	for i, cell := range cells {
		key := columnKey(i)
		if i < len(header) && header[i] != "" {
			key = header[i]
		}
		row[key] = cellValue(cell)
	}
	return row
}
