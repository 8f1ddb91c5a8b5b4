package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opendatamirror/dp-catalog-sync/storage"
)

func (a *API) getRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	page := a.parsePage(r)

	records, total, err := a.store.ListDataRecords(ctx, storage.RecordFilter{
		ResourceID: query.Get("resource"),
		DatasetID:  query.Get("dataset"),
		Page:       page.window(),
	})
	if err != nil {
		handleError(ctx, "error listing records", w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, envelope(r, page, total, records))
}

func (a *API) getRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	record, err := a.store.GetDataRecord(ctx, id)
	if err != nil {
		handleError(ctx, "error fetching record", w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, record)
}
