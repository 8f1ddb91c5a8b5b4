// Package datasync drives catalog synchronisation runs and resource
// processing, recording every run as a sync log.
package datasync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ONSdigital/log.go/v2/log"

	"github.com/opendatamirror/dp-catalog-sync/catalog"
	"github.com/opendatamirror/dp-catalog-sync/parsers"
	"github.com/opendatamirror/dp-catalog-sync/storage"
)

//go:generate moq -out mocks/catalog.go -pkg mocks . CatalogClient

// CatalogClient is the subset of the catalog client the sync service needs.
type CatalogClient interface {
	SearchAll(ctx context.Context, query string, limit int) ([]catalog.Dataset, error)
	GetDataset(ctx context.Context, id string) (*catalog.Dataset, error)
	DownloadResource(ctx context.Context, fileURL string) (io.ReadCloser, int64, error)
}

// Service runs sync and processing operations against the store.
type Service struct {
	store          storage.Store
	catalog        CatalogClient
	defaultMaxRows int
}

// New returns a sync service. defaultMaxRows caps parsed rows per resource
// when the caller does not supply a cap.
func New(store storage.Store, catalogClient CatalogClient, defaultMaxRows int) *Service {
	return &Service{
		store:          store,
		catalog:        catalogClient,
		defaultMaxRows: defaultMaxRows,
	}
}

// SyncResult summarises one sync run.
type SyncResult struct {
	SyncLogID          string   `json:"sync_log_id"`
	DatasetIDs         []string `json:"dataset_ids"`
	DatasetsProcessed  int      `json:"datasets_processed"`
	ResourcesProcessed int      `json:"resources_processed"`
	RecordsCreated     int      `json:"records_created"`
	Errors             []string `json:"errors,omitempty"`
}

// ProcessResult summarises processing one resource.
type ProcessResult struct {
	Resource         *storage.Resource `json:"resource"`
	RecordsCreated   int               `json:"records_created"`
	AlreadyProcessed bool              `json:"already_processed"`
}

// SyncByQuery searches the catalog for datasets matching query and upserts up
// to limit of them, with their resources, in a single store transaction. A
// failure for one dataset is recorded and skipped; only a catalog or store
// failure aborts the run. When process is true every supported resource is
// parsed afterwards, each in its own transaction.
func (s *Service) SyncByQuery(ctx context.Context, query string, limit int, process bool, maxRows int) (*SyncResult, error) {
	return s.runQuerySync(ctx, storage.SyncTypeIncremental, query, limit, process, maxRows)
}

// SyncFull mirrors the catalog without a query filter, up to limit datasets.
func (s *Service) SyncFull(ctx context.Context, limit int, process bool, maxRows int) (*SyncResult, error) {
	return s.runQuerySync(ctx, storage.SyncTypeFull, "", limit, process, maxRows)
}

func (s *Service) runQuerySync(ctx context.Context, syncType, query string, limit int, process bool, maxRows int) (*SyncResult, error) {
	syncLog := &storage.SyncLog{
		SyncType: syncType,
		Message:  fmt.Sprintf("sync datasets matching %q", query),
	}
	if err := s.store.CreateSyncLog(ctx, syncLog); err != nil {
		return nil, err
	}
	result := &SyncResult{SyncLogID: syncLog.ID}

	datasets, err := s.catalog.SearchAll(ctx, query, limit)
	if err != nil {
		log.Error(ctx, "catalog search failed", err, log.Data{"query": query})
		s.failRun(ctx, syncLog, result, err)
		return nil, err
	}
	log.Info(ctx, "catalog search complete", log.Data{"query": query, "datasets": len(datasets)})

	tx, err := s.store.BeginSync(ctx)
	if err != nil {
		s.failRun(ctx, syncLog, result, err)
		return nil, err
	}

	for i := range datasets {
		resources, err := s.upsertDataset(ctx, tx, &datasets[i], result)
		if err != nil {
			// One bad dataset must not sink the run.
			result.Errors = append(result.Errors, fmt.Sprintf("dataset %s: %v", datasets[i].ID, err))
			log.Warn(ctx, "skipping dataset", log.Data{"catalog_id": datasets[i].ID, "error": err.Error()})
			continue
		}
		result.DatasetsProcessed++
		result.ResourcesProcessed += resources
	}

	if err := tx.Commit(); err != nil {
		s.failRun(ctx, syncLog, result, err)
		return nil, err
	}

	if process {
		s.processDatasets(ctx, result, maxRows)
	}

	s.completeRun(ctx, syncLog, result)
	return result, nil
}

// SyncByDatasetID fetches a single dataset by its catalog id and upserts it
// with its resources. An unknown id produces a failed sync log and no
// mutations.
func (s *Service) SyncByDatasetID(ctx context.Context, catalogID string) (*SyncResult, error) {
	syncLog := &storage.SyncLog{
		SyncType: storage.SyncTypeSingle,
		Message:  fmt.Sprintf("sync dataset %s", catalogID),
	}
	if err := s.store.CreateSyncLog(ctx, syncLog); err != nil {
		return nil, err
	}
	result := &SyncResult{SyncLogID: syncLog.ID}

	dataset, err := s.catalog.GetDataset(ctx, catalogID)
	if err != nil {
		if errors.Is(err, catalog.ErrDatasetNotFound) {
			log.Warn(ctx, "dataset not found in catalog", log.Data{"catalog_id": catalogID})
		} else {
			log.Error(ctx, "catalog fetch failed", err, log.Data{"catalog_id": catalogID})
		}
		s.failRun(ctx, syncLog, result, err)
		return nil, err
	}

	tx, err := s.store.BeginSync(ctx)
	if err != nil {
		s.failRun(ctx, syncLog, result, err)
		return nil, err
	}
	resources, err := s.upsertDataset(ctx, tx, dataset, result)
	if err != nil {
		tx.Rollback() // nolint
		s.failRun(ctx, syncLog, result, err)
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		s.failRun(ctx, syncLog, result, err)
		return nil, err
	}

	result.DatasetsProcessed = 1
	result.ResourcesProcessed = resources
	s.completeRun(ctx, syncLog, result)
	return result, nil
}

// ProcessResource downloads a resource's file, parses it and replaces the
// resource's stored records. A resource already marked processed is left
// untouched and its existing record count returned.
func (s *Service) ProcessResource(ctx context.Context, resourceID string, maxRows int) (*ProcessResult, error) {
	resource, err := s.store.GetResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	if resource.IsProcessed {
		count, err := s.store.CountDataRecords(ctx, resource.ID)
		if err != nil {
			return nil, err
		}
		return &ProcessResult{Resource: resource, RecordsCreated: count, AlreadyProcessed: true}, nil
	}

	parser, err := parsers.ForFormat(resource.Format)
	if err != nil {
		return nil, s.failProcessing(ctx, resource, err)
	}

	if err := s.store.UpdateResourceProcessing(ctx, resource.ID, storage.ProcessingInProgress, ""); err != nil {
		return nil, err
	}

	body, _, err := s.catalog.DownloadResource(ctx, resource.URL)
	if err != nil {
		return nil, s.failProcessing(ctx, resource, err)
	}
	defer body.Close() // nolint

	rows, err := parser.Parse(body, s.rowCap(maxRows))
	if err != nil {
		return nil, s.failProcessing(ctx, resource, &parsers.ParseError{
			ResourceID: resource.ID,
			Format:     resource.Format,
			Err:        err,
		})
	}

	records := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		records[i] = row
	}
	written, err := s.store.ReplaceDataRecords(ctx, resource.ID, records)
	if err != nil {
		return nil, s.failProcessing(ctx, resource, err)
	}

	if err := s.store.MarkResourceProcessed(ctx, resource.ID, time.Now().UTC()); err != nil {
		return nil, err
	}
	log.Info(ctx, "resource processed", log.Data{
		"resource_id": resource.ID,
		"format":      resource.Format,
		"records":     written,
	})

	updated, err := s.store.GetResource(ctx, resource.ID)
	if err != nil {
		return nil, err
	}
	return &ProcessResult{Resource: updated, RecordsCreated: written}, nil
}

// ProcessDatasetResources processes every supported resource of a dataset,
// collecting per-resource failures rather than stopping at the first.
func (s *Service) ProcessDatasetResources(ctx context.Context, datasetID string, maxRows int) (*SyncResult, error) {
	dataset, err := s.store.GetDataset(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{DatasetIDs: []string{dataset.ID}, DatasetsProcessed: 1}
	for _, resource := range dataset.Resources {
		if !parsers.Supported(resource.Format) {
			continue
		}
		processed, err := s.ProcessResource(ctx, resource.ID, maxRows)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("resource %s: %v", resource.ID, err))
			continue
		}
		result.ResourcesProcessed++
		if !processed.AlreadyProcessed {
			result.RecordsCreated += processed.RecordsCreated
		}
	}
	return result, nil
}

// upsertDataset writes one catalog dataset and its resources through the sync
// transaction, returning the number of resources written.
func (s *Service) upsertDataset(ctx context.Context, tx storage.SyncTx, cd *catalog.Dataset, result *SyncResult) (int, error) {
	dataset := toStorageDataset(cd)
	if _, err := tx.UpsertDataset(ctx, dataset); err != nil {
		return 0, err
	}

	for i := range cd.Resources {
		resource := toStorageResource(&cd.Resources[i], dataset.ID)
		if _, err := tx.UpsertResource(ctx, resource); err != nil {
			return 0, err
		}
	}

	// A dataset only counts once all of its resources landed; a half-upserted
	// dataset is skipped, not queued for processing.
	result.DatasetIDs = append(result.DatasetIDs, dataset.ID)
	return len(cd.Resources), nil
}

// processDatasets parses the resources of every dataset touched by the run.
// Failures are collected per resource; the run itself still completes.
func (s *Service) processDatasets(ctx context.Context, result *SyncResult, maxRows int) {
	for _, id := range result.DatasetIDs {
		dataset, err := s.store.GetDataset(ctx, id)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("dataset %s: %v", id, err))
			continue
		}
		for _, resource := range dataset.Resources {
			if !parsers.Supported(resource.Format) {
				continue
			}
			processed, err := s.ProcessResource(ctx, resource.ID, maxRows)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("resource %s: %v", resource.ID, err))
				continue
			}
			if !processed.AlreadyProcessed {
				result.RecordsCreated += processed.RecordsCreated
			}
		}
	}
}

// failProcessing records a processing failure on the resource and returns err.
func (s *Service) failProcessing(ctx context.Context, resource *storage.Resource, err error) error {
	log.Error(ctx, "resource processing failed", err, log.Data{"resource_id": resource.ID})
	if updateErr := s.store.UpdateResourceProcessing(ctx, resource.ID, storage.ProcessingFailed, err.Error()); updateErr != nil {
		log.Error(ctx, "could not record processing failure", updateErr, log.Data{"resource_id": resource.ID})
	}
	return err
}

// rowCap resolves the effective max-rows cap for a processing call.
func (s *Service) rowCap(maxRows int) int {
	if maxRows <= 0 {
		return s.defaultMaxRows
	}
	return maxRows
}

func (s *Service) failRun(ctx context.Context, syncLog *storage.SyncLog, result *SyncResult, cause error) {
	syncLog.Status = storage.SyncStatusFailed
	syncLog.ErrorDetails = cause.Error()
	s.finalize(ctx, syncLog, result)
}

func (s *Service) completeRun(ctx context.Context, syncLog *storage.SyncLog, result *SyncResult) {
	syncLog.Status = storage.SyncStatusCompleted
	if len(result.Errors) > 0 {
		syncLog.ErrorDetails = strings.Join(result.Errors, "; ")
	}
	s.finalize(ctx, syncLog, result)
}

func (s *Service) finalize(ctx context.Context, syncLog *storage.SyncLog, result *SyncResult) {
	syncLog.DatasetsProcessed = result.DatasetsProcessed
	syncLog.ResourcesProcessed = result.ResourcesProcessed
	syncLog.RecordsCreated = result.RecordsCreated
	if err := s.store.FinalizeSyncLog(ctx, syncLog); err != nil {
		log.Error(ctx, "could not finalize sync log", err, log.Data{"sync_log_id": syncLog.ID})
	}
	log.Info(ctx, "sync run finished", log.Data{
		"sync_log_id": syncLog.ID,
		"sync_type":   syncLog.SyncType,
		"status":      syncLog.Status,
		"datasets":    result.DatasetsProcessed,
		"resources":   result.ResourcesProcessed,
		"records":     result.RecordsCreated,
	})
}
