package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// dataKeys are common envelope keys holding the actual record array when a
// JSON document is an object rather than a top-level array.
var dataKeys = []string{"data", "results", "items", "records", "features"}

// JSONParser parses JSON and GeoJSON files. Top-level arrays of objects
// flatten to one row per element; a single object is a one-row result.
type JSONParser struct{}

func (p *JSONParser) Detect(format string) bool {
	switch normalizeFormat(format) {
	case "JSON", "GEOJSON":
		return true
	}
	return false
}

func (p *JSONParser) Parse(r io.Reader, maxRows int) ([]Row, error) {
	var doc interface{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode json content: %w", err)
	}

	switch v := doc.(type) {
	case []interface{}:
		return rowsFromArray(v, maxRows), nil
	case map[string]interface{}:
		if arr, ok := extractDataArray(v); ok {
			return rowsFromArray(arr, maxRows), nil
		}
		return rowsFromArray([]interface{}{v}, maxRows), nil
	default:
		return rowsFromArray([]interface{}{v}, maxRows), nil
	}
}

// extractDataArray looks for a well-known envelope key holding an array.
func extractDataArray(obj map[string]interface{}) ([]interface{}, bool) {
	for _, key := range dataKeys {
		if arr, ok := obj[key].([]interface{}); ok {
			return arr, true
		}
	}
	return nil, false
}

// rowsFromArray converts array elements into rows, wrapping scalar elements
// as {"value": v}.
func rowsFromArray(arr []interface{}, maxRows int) []Row {
	var rows []Row
	for _, elem := range arr {
		if maxRows > 0 && len(rows) >= maxRows {
			break
		}
		if obj, ok := elem.(map[string]interface{}); ok {
			rows = append(rows, Row(obj))
			continue
		}
		rows = append(rows, Row{"value": elem})
	}
	return rows
}
