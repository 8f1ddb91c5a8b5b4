// Command sync-datasets runs one catalog sync from the command line, against
// the same store and catalog the service uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ONSdigital/log.go/v2/log"

	"github.com/opendatamirror/dp-catalog-sync/catalog"
	"github.com/opendatamirror/dp-catalog-sync/config"
	"github.com/opendatamirror/dp-catalog-sync/datasync"
	"github.com/opendatamirror/dp-catalog-sync/sqlite"
)

func main() {
	log.Namespace = "sync-datasets"

	var (
		query     = flag.String("query", "", "search query to select datasets")
		datasetID = flag.String("dataset-id", "", "sync a single dataset by its catalog id")
		limit     = flag.Int("limit", 10, "maximum number of datasets to sync")
		process   = flag.Bool("process", false, "parse resource files into records after syncing")
		maxRows   = flag.Int("max-rows", 0, "row cap per resource (0 uses the configured default)")
		full      = flag.Bool("full", false, "mirror the catalog without a query filter")
	)
	flag.Parse()

	ctx := context.Background()
	if err := run(ctx, *query, *datasetID, *limit, *process, *maxRows, *full); err != nil {
		log.Error(ctx, "sync failed", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, query, datasetID string, limit int, process bool, maxRows int, full bool) error {
	cfg, err := config.Get()
	if err != nil {
		return fmt.Errorf("error getting config: %w", err)
	}
	if limit > cfg.SyncDatasetLimit {
		limit = cfg.SyncDatasetLimit
	}
	if maxRows > cfg.MaxRowsLimit {
		maxRows = cfg.MaxRowsLimit
	}

	store, err := sqlite.New(ctx, cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("could not open the store: %w", err)
	}
	defer store.Close(ctx) // nolint

	client := catalog.New(cfg.CatalogAPIURL, cfg.CatalogUserAgent, cfg.CatalogRequestTimeout)
	svc := datasync.New(store, client, cfg.DefaultMaxRows)

	var result *datasync.SyncResult
	switch {
	case datasetID != "":
		result, err = svc.SyncByDatasetID(ctx, datasetID)
		if err == nil && process {
			processed, perr := svc.ProcessDatasetResources(ctx, datasetID, maxRows)
			if perr != nil {
				return perr
			}
			result.ResourcesProcessed = processed.ResourcesProcessed
			result.RecordsCreated = processed.RecordsCreated
			result.Errors = append(result.Errors, processed.Errors...)
		}
	case full:
		result, err = svc.SyncFull(ctx, limit, process, maxRows)
	default:
		result, err = svc.SyncByQuery(ctx, query, limit, process, maxRows)
	}
	if err != nil {
		return err
	}

	log.Info(ctx, "sync complete", log.Data{
		"sync_log_id": result.SyncLogID,
		"datasets":    result.DatasetsProcessed,
		"resources":   result.ResourcesProcessed,
		"records":     result.RecordsCreated,
		"errors":      len(result.Errors),
	})
	for _, e := range result.Errors {
		log.Warn(ctx, "sync error", log.Data{"error": e})
	}
	return nil
}
