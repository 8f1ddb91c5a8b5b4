package api

import (
	"net/http"
	"strings"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"

	"github.com/opendatamirror/dp-catalog-sync/storage"
)

// syncRequest is the POST /api/datasets/sync body.
type syncRequest struct {
	Query   string `json:"query"`
	Limit   int    `json:"limit"`
	Process bool   `json:"process"`
	MaxRows int    `json:"max_rows"`
}

// defaultSyncLimit is applied when a sync request does not say how many
// datasets to pull.
const defaultSyncLimit = 10

func (a *API) getDatasets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	page := a.parsePage(r)

	filter := storage.DatasetFilter{
		Organization: query.Get("organization"),
		Tag:          query.Get("tag"),
		Search:       query.Get("search"),
		ShowInactive: query.Get("show_inactive") == "true",
		OrderBy:      query.Get("ordering"),
		Page:         page.window(),
	}

	datasets, total, err := a.store.ListDatasets(ctx, filter)
	if err != nil {
		handleError(ctx, "error listing datasets", w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, envelope(r, page, total, datasets))
}

func (a *API) getDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	dataset, err := a.store.GetDataset(ctx, id)
	if err != nil {
		handleError(ctx, "error fetching dataset", w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dataset)
}

func (a *API) searchDatasets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		handleValidationError(w, "query parameter q is required")
		return
	}
	page := a.parsePage(r)

	datasets, total, err := a.store.ListDatasets(ctx, storage.DatasetFilter{
		Search: q,
		Page:   page.window(),
	})
	if err != nil {
		handleError(ctx, "error searching datasets", w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, envelope(r, page, total, datasets))
}

func (a *API) getDatasetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := a.store.DatasetStats(ctx)
	if err != nil {
		handleError(ctx, "error fetching dataset stats", w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, stats)
}

func (a *API) getDatasetResources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]
	page := a.parsePage(r)

	// Resolve first so catalog ids work and unknown ids 404.
	dataset, err := a.store.GetDataset(ctx, id)
	if err != nil {
		handleError(ctx, "error fetching dataset for resources", w, err)
		return
	}

	resources, total, err := a.store.ListResources(ctx, storage.ResourceFilter{
		DatasetID: dataset.ID,
		Page:      page.window(),
	})
	if err != nil {
		handleError(ctx, "error listing dataset resources", w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, envelope(r, page, total, resources))
}

func (a *API) syncDatasets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req syncRequest
	if err := decodeBody(r, &req); err != nil {
		handleValidationError(w, "request body is not valid JSON")
		return
	}
	if req.Limit <= 0 {
		req.Limit = defaultSyncLimit
	}
	if req.Limit > a.syncLimit {
		req.Limit = a.syncLimit
	}

	log.Info(ctx, "starting sync run", log.Data{
		"query":   req.Query,
		"limit":   req.Limit,
		"process": req.Process,
	})
	result, err := a.syncer.SyncByQuery(ctx, req.Query, req.Limit, req.Process, a.clampMaxRows(req.MaxRows))
	if err != nil {
		handleError(ctx, "sync run failed", w, err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, result)
}

func (a *API) syncDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	catalogID := mux.Vars(r)["catalogID"]

	result, err := a.syncer.SyncByDatasetID(ctx, catalogID)
	if err != nil {
		handleError(ctx, "single dataset sync failed", w, err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, result)
}
