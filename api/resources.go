package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opendatamirror/dp-catalog-sync/storage"
)

// processRequest is the POST /api/resources/{id}/process body.
type processRequest struct {
	MaxRows int `json:"max_rows"`
}

// processResponse reports the outcome of processing one resource.
type processResponse struct {
	Message        string            `json:"message"`
	RecordsCreated int               `json:"records_created"`
	Resource       *storage.Resource `json:"resource"`
}

func (a *API) getResources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	page := a.parsePage(r)

	filter := storage.ResourceFilter{
		DatasetID:        query.Get("dataset"),
		Format:           query.Get("format"),
		ProcessingStatus: query.Get("processing_status"),
		Search:           query.Get("search"),
		OrderBy:          query.Get("ordering"),
		Page:             page.window(),
	}
	if raw := query.Get("is_processed"); raw != "" {
		processed := raw == "true"
		filter.IsProcessed = &processed
	}

	resources, total, err := a.store.ListResources(ctx, filter)
	if err != nil {
		handleError(ctx, "error listing resources", w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, envelope(r, page, total, resources))
}

func (a *API) getResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	resource, err := a.store.GetResource(ctx, id)
	if err != nil {
		handleError(ctx, "error fetching resource", w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, resource)
}

func (a *API) processResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var req processRequest
	if err := decodeBody(r, &req); err != nil {
		handleValidationError(w, "request body is not valid JSON")
		return
	}

	result, err := a.syncer.ProcessResource(ctx, id, a.clampMaxRows(req.MaxRows))
	if err != nil {
		handleError(ctx, "resource processing failed", w, err)
		return
	}

	message := "resource processed"
	if result.AlreadyProcessed {
		message = "resource already processed"
	}
	writeJSON(ctx, w, http.StatusOK, processResponse{
		Message:        message,
		RecordsCreated: result.RecordsCreated,
		Resource:       result.Resource,
	})
}

func (a *API) getResourceData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]
	page := a.parsePage(r)

	// Resolve first so catalog ids work and unknown ids 404.
	resource, err := a.store.GetResource(ctx, id)
	if err != nil {
		handleError(ctx, "error fetching resource for data", w, err)
		return
	}

	records, total, err := a.store.ListDataRecords(ctx, storage.RecordFilter{
		ResourceID: resource.ID,
		Page:       page.window(),
	})
	if err != nil {
		handleError(ctx, "error listing resource data", w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, envelope(r, page, total, records))
}
