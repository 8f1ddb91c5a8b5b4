package storage

import (
	"context"
	"time"
)

// SyncTx is the transaction a sync run performs its upserts in. A mid-run
// store failure rolls the whole run back; the sync log documenting the
// failure is written outside this transaction.
type SyncTx interface {
	// UpsertDataset inserts or updates a dataset keyed by its catalog id,
	// reporting whether a new row was created. The dataset's internal ID is
	// populated either way.
	UpsertDataset(ctx context.Context, d *Dataset) (created bool, err error)
	// UpsertResource inserts or updates a resource keyed by
	// (dataset id, catalog id).
	UpsertResource(ctx context.Context, r *Resource) (created bool, err error)
	Commit() error
	Rollback() error
}

// Store describes what we expect our underlying storage layer to implement.
type Store interface {
	BeginSync(ctx context.Context) (SyncTx, error)

	// GetDataset looks a dataset up by internal or catalog id, with its
	// resources attached.
	GetDataset(ctx context.Context, id string) (*Dataset, error)
	ListDatasets(ctx context.Context, filter DatasetFilter) ([]Dataset, int, error)
	DatasetStats(ctx context.Context) (*Stats, error)

	GetResource(ctx context.Context, id string) (*Resource, error)
	ListResources(ctx context.Context, filter ResourceFilter) ([]Resource, int, error)
	// UpdateResourceProcessing moves a resource through its processing
	// states, recording the error message on failure.
	UpdateResourceProcessing(ctx context.Context, id, status, errMsg string) error
	// MarkResourceProcessed flips the processed flag after a successful parse.
	MarkResourceProcessed(ctx context.Context, id string, processedAt time.Time) error

	// ReplaceDataRecords swaps a resource's record set for the given rows in
	// one transaction, returning the number of rows written.
	ReplaceDataRecords(ctx context.Context, resourceID string, rows []map[string]interface{}) (int, error)
	CountDataRecords(ctx context.Context, resourceID string) (int, error)
	ListDataRecords(ctx context.Context, filter RecordFilter) ([]DataRecord, int, error)
	GetDataRecord(ctx context.Context, id string) (*DataRecord, error)

	CreateSyncLog(ctx context.Context, l *SyncLog) error
	// FinalizeSyncLog writes the run's terminal status and counts. Completed
	// logs are never mutated again.
	FinalizeSyncLog(ctx context.Context, l *SyncLog) error
	ListSyncLogs(ctx context.Context, filter SyncLogFilter) ([]SyncLog, int, error)
	GetSyncLog(ctx context.Context, id string) (*SyncLog, error)
}
