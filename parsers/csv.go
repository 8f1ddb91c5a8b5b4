package parsers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// delimiterCandidates are tried when sniffing the column separator from the
// header line. French open-data files favour semicolons.
var delimiterCandidates = []rune{',', ';', '\t', '|'}

// fallbackEncodings are tried in order when the file is not valid UTF-8.
var fallbackEncodings = []encoding.Encoding{
	charmap.Windows1252,
	charmap.ISO8859_1,
}

// CSVParser parses CSV files. It auto-detects the text encoding and the
// delimiter, falling back to Windows-1252 when the content is not UTF-8.
type CSVParser struct{}

func (p *CSVParser) Detect(format string) bool {
	return normalizeFormat(format) == "CSV"
}

func (p *CSVParser) Parse(r io.Reader, maxRows int) ([]Row, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read csv content: %w", err)
	}

	text, err := decodeText(raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for maxRows <= 0 || len(rows) < maxRows {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// A single broken line does not invalidate the rest of the file.
				continue
			}
			return nil, fmt.Errorf("could not read csv row: %w", err)
		}
		rows = append(rows, rowFromCells(header, cells))
	}
	return rows, nil
}

// decodeText returns content as UTF-8 text, trying the fallback encodings
// when the raw bytes are not valid UTF-8.
func decodeText(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	for _, enc := range fallbackEncodings {
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err == nil {
			return string(decoded), nil
		}
	}
	return "", fmt.Errorf("could not decode csv content with any known encoding")
}

// sniffDelimiter picks the candidate delimiter occurring most often in the
// first line, defaulting to a comma.
func sniffDelimiter(text string) rune {
	firstLine := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine = text[:idx]
	}

	best := ','
	bestCount := 0
	for _, candidate := range delimiterCandidates {
		if n := strings.Count(firstLine, string(candidate)); n > bestCount {
			best = candidate
			bestCount = n
		}
	}
	return best
}
