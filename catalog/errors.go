package catalog

import (
	"errors"
	"fmt"
)

// ErrDatasetNotFound is wrapped by a FetchError when the catalog returns 404
// for a dataset detail request.
var ErrDatasetNotFound = errors.New("dataset not found on catalog")

// A FetchError reports a failed interaction with the catalog API: network
// failure, non-2xx response or a payload that could not be decoded. The
// client performs no retries; retry policy belongs to the caller.
type FetchError struct {
	Query      string
	DatasetID  string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.DatasetID != "":
		return fmt.Sprintf("catalog fetch failed for dataset %q (status %d): %v", e.DatasetID, e.StatusCode, e.Err)
	case e.Query != "":
		return fmt.Sprintf("catalog search failed for query %q (status %d): %v", e.Query, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("catalog fetch failed for %s (status %d): %v", e.URL, e.StatusCode, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
