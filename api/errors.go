package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ONSdigital/log.go/v2/log"

	"github.com/opendatamirror/dp-catalog-sync/catalog"
	"github.com/opendatamirror/dp-catalog-sync/parsers"
	"github.com/opendatamirror/dp-catalog-sync/storage"
)

type jsonError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type jsonErrors struct {
	Error []jsonError `json:"errors"`
}

// handleError logs err and writes the matching error response.
func handleError(ctx context.Context, event string, w http.ResponseWriter, err error) {
	log.Error(ctx, event, err)

	var fetchErr *catalog.FetchError
	var parseErr *parsers.ParseError

	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, buildErrors(err, "NotFound"), http.StatusNotFound)
	case errors.Is(err, catalog.ErrDatasetNotFound):
		writeError(w, buildErrors(err, "DatasetNotFound"), http.StatusNotFound)
	case errors.Is(err, parsers.ErrUnsupportedFormat):
		writeError(w, buildErrors(err, "UnsupportedFormat"), http.StatusBadRequest)
	case errors.As(err, &parseErr):
		writeError(w, buildErrors(err, "ProcessingError"), http.StatusInternalServerError)
	case errors.As(err, &fetchErr):
		writeError(w, buildErrors(err, "CatalogError"), http.StatusBadGateway)
	default:
		writeError(w, buildErrors(err, "InternalError"), http.StatusInternalServerError)
	}
}

// handleValidationError writes a 400 with the given description.
func handleValidationError(w http.ResponseWriter, description string) {
	writeError(w, jsonErrors{Error: []jsonError{{Code: "ValidationError", Description: description}}}, http.StatusBadRequest)
}

func writeError(w http.ResponseWriter, errs jsonErrors, httpCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	json.NewEncoder(w).Encode(&errs) // nolint
}

func buildErrors(err error, code string) jsonErrors {
	return jsonErrors{Error: []jsonError{{Description: err.Error(), Code: code}}}
}
