// Package api exposes the catalog mirror over a JSON REST interface.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"

	"github.com/opendatamirror/dp-catalog-sync/config"
	"github.com/opendatamirror/dp-catalog-sync/datasync"
	"github.com/opendatamirror/dp-catalog-sync/storage"
)

//go:generate moq -out mocks/syncer.go -pkg mocks . Syncer

// Syncer is the subset of the sync service the API invokes.
type Syncer interface {
	SyncByQuery(ctx context.Context, query string, limit int, process bool, maxRows int) (*datasync.SyncResult, error)
	SyncByDatasetID(ctx context.Context, catalogID string) (*datasync.SyncResult, error)
	ProcessResource(ctx context.Context, resourceID string, maxRows int) (*datasync.ProcessResult, error)
}

// API routes requests onto the store and the sync service.
type API struct {
	store           storage.Store
	syncer          Syncer
	defaultPageSize int
	maxPageSize     int
	syncLimit       int
	maxRows         int
}

// Setup registers the API's routes on the router. Mutation routes sit behind
// the concurrency limiter.
func Setup(r *mux.Router, store storage.Store, syncer Syncer, cfg *config.Config) *API {
	a := &API{
		store:           store,
		syncer:          syncer,
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
		syncLimit:       cfg.SyncDatasetLimit,
		maxRows:         cfg.MaxRowsLimit,
	}

	limited := alice.New(Limiter(cfg.MaxConcurrentHandlers))

	r.HandleFunc("/api", a.getHome).Methods(http.MethodGet)

	// Static dataset paths must come before the {id} route.
	r.HandleFunc("/api/datasets/search", a.searchDatasets).Methods(http.MethodGet)
	r.HandleFunc("/api/datasets/stats", a.getDatasetStats).Methods(http.MethodGet)
	r.Handle("/api/datasets/sync", limited.ThenFunc(a.syncDatasets)).Methods(http.MethodPost)
	r.Handle("/api/datasets/sync/{catalogID}", limited.ThenFunc(a.syncDataset)).Methods(http.MethodPost)
	r.HandleFunc("/api/datasets", a.getDatasets).Methods(http.MethodGet)
	r.HandleFunc("/api/datasets/{id}", a.getDataset).Methods(http.MethodGet)
	r.HandleFunc("/api/datasets/{id}/resources", a.getDatasetResources).Methods(http.MethodGet)

	r.HandleFunc("/api/resources", a.getResources).Methods(http.MethodGet)
	r.HandleFunc("/api/resources/{id}", a.getResource).Methods(http.MethodGet)
	r.Handle("/api/resources/{id}/process", limited.ThenFunc(a.processResource)).Methods(http.MethodPost)
	r.HandleFunc("/api/resources/{id}/data", a.getResourceData).Methods(http.MethodGet)

	r.HandleFunc("/api/records", a.getRecords).Methods(http.MethodGet)
	r.HandleFunc("/api/records/{id}", a.getRecord).Methods(http.MethodGet)

	r.HandleFunc("/api/sync-logs", a.getSyncLogs).Methods(http.MethodGet)
	r.HandleFunc("/api/sync-logs/{id}", a.getSyncLog).Methods(http.MethodGet)

	return a
}

// getHome serves the endpoint index with quick totals.
func (a *API) getHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := a.store.DatasetStats(ctx)
	if err != nil {
		handleError(ctx, "error fetching stats for home document", w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]interface{}{
		"service": "dp-catalog-sync",
		"endpoints": map[string]string{
			"datasets":       "/api/datasets",
			"dataset_search": "/api/datasets/search?q=",
			"dataset_stats":  "/api/datasets/stats",
			"dataset_sync":   "/api/datasets/sync",
			"resources":      "/api/resources",
			"records":        "/api/records",
			"sync_logs":      "/api/sync-logs",
			"health":         "/health",
		},
		"stats": stats,
	})
}

// writeJSON serialises v with the given status code.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error(ctx, "error writing response body", err)
	}
}

// decodeBody decodes an optional JSON request body into v. An empty body
// leaves v untouched.
func decodeBody(r *http.Request, v interface{}) error {
	defer r.Body.Close() // nolint
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// clampMaxRows bounds a caller-supplied row cap; zero or less defers to the
// processing default.
func (a *API) clampMaxRows(maxRows int) int {
	if maxRows <= 0 {
		return 0
	}
	if maxRows > a.maxRows {
		return a.maxRows
	}
	return maxRows
}
