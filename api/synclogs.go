package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opendatamirror/dp-catalog-sync/storage"
)

func (a *API) getSyncLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	page := a.parsePage(r)

	logs, total, err := a.store.ListSyncLogs(ctx, storage.SyncLogFilter{
		SyncType: query.Get("sync_type"),
		Status:   query.Get("status"),
		Page:     page.window(),
	})
	if err != nil {
		handleError(ctx, "error listing sync logs", w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, envelope(r, page, total, logs))
}

func (a *API) getSyncLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	syncLog, err := a.store.GetSyncLog(ctx, id)
	if err != nil {
		handleError(ctx, "error fetching sync log", w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, syncLog)
}
