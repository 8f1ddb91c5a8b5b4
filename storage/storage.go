package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned by store lookups when no row matches.
var ErrNotFound = errors.New("not found")

// Processing status values for a Resource.
const (
	ProcessingPending    = "pending"
	ProcessingInProgress = "processing"
	ProcessingCompleted  = "completed"
	ProcessingFailed     = "failed"
)

// Sync types recorded on a SyncLog.
const (
	SyncTypeFull        = "full"
	SyncTypeIncremental = "incremental"
	SyncTypeSingle      = "single"
)

// Sync statuses recorded on a SyncLog.
const (
	SyncStatusStarted   = "started"
	SyncStatusCompleted = "completed"
	SyncStatusFailed    = "failed"
)

// A Dataset mirrors one dataset published on the remote catalog.
// Identity within the store is the internal ID; identity against the
// catalog is CatalogID, which is unique across the datasets table.
type Dataset struct {
	ID              string     `json:"id"`
	CatalogID       string     `json:"catalog_id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description,omitempty"`
	Organization    string     `json:"organization,omitempty"`
	Tags            []string   `json:"tags"`
	License         string     `json:"license,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAtSource *time.Time `json:"created_at_source,omitempty"`
	UpdatedAtSource *time.Time `json:"updated_at_source,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	LastSync        *time.Time `json:"last_sync,omitempty"`

	// Resources is populated on detail lookups only.
	Resources []Resource `json:"resources,omitempty"`
}

// A Resource is one downloadable file belonging to a dataset.
// (DatasetID, CatalogID) is unique within the store.
type Resource struct {
	ID               string     `json:"id"`
	DatasetID        string     `json:"dataset_id"`
	CatalogID        string     `json:"catalog_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	URL              string     `json:"url"`
	Format           string     `json:"format"`
	MimeType         string     `json:"mime_type,omitempty"`
	FileSize         *int64     `json:"file_size,omitempty"`
	IsProcessed      bool       `json:"is_processed"`
	ProcessingStatus string     `json:"processing_status"`
	ProcessingError  string     `json:"processing_error,omitempty"`
	CreatedAtSource  *time.Time `json:"created_at_source,omitempty"`
	UpdatedAtSource  *time.Time `json:"updated_at_source,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	LastProcessed    *time.Time `json:"last_processed,omitempty"`
}

// A DataRecord holds one parsed row from a resource file. The row is an
// open-ended mapping because the schema varies per source file.
// Records are immutable once written; reprocessing a resource replaces
// the whole set.
type DataRecord struct {
	ID         string                 `json:"id"`
	ResourceID string                 `json:"resource_id"`
	RowNumber  int                    `json:"row_number"`
	Data       map[string]interface{} `json:"data"`
	CreatedAt  time.Time              `json:"created_at"`
}

// A SyncLog is the append-only audit row for one synchronization run.
// Counts never exceed the number of entities actually touched by the run.
type SyncLog struct {
	ID                 string     `json:"id"`
	SyncType           string     `json:"sync_type"`
	Status             string     `json:"status"`
	DatasetsProcessed  int        `json:"datasets_processed"`
	ResourcesProcessed int        `json:"resources_processed"`
	RecordsCreated     int        `json:"records_created"`
	Message            string     `json:"message,omitempty"`
	ErrorDetails       string     `json:"error_details,omitempty"`
	StartedAt          time.Time  `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

// Page is the limit/offset window applied to list queries.
type Page struct {
	Limit  int
	Offset int
}

// DatasetFilter narrows dataset list queries.
type DatasetFilter struct {
	Organization string
	Tag          string
	Search       string // matches title, description, organization and tags
	ShowInactive bool
	OrderBy      string
	Page         Page
}

// ResourceFilter narrows resource list queries.
type ResourceFilter struct {
	DatasetID        string // internal dataset id
	Format           string
	ProcessingStatus string
	IsProcessed      *bool
	Search           string
	OrderBy          string
	Page             Page
}

// RecordFilter narrows data record list queries.
type RecordFilter struct {
	ResourceID string
	DatasetID  string
	Page       Page
}

// SyncLogFilter narrows sync log list queries.
type SyncLogFilter struct {
	SyncType string
	Status   string
	Page     Page
}

// OrganizationCount is one entry of the per-organization breakdown in Stats.
type OrganizationCount struct {
	Organization string `json:"organization"`
	Count        int    `json:"count"`
}

// Stats summarises the state of the store for the stats endpoint.
type Stats struct {
	TotalDatasets      int                 `json:"total_datasets"`
	ActiveDatasets     int                 `json:"active_datasets"`
	TotalResources     int                 `json:"total_resources"`
	ProcessedResources int                 `json:"processed_resources"`
	TotalRecords       int                 `json:"total_records"`
	TotalSyncLogs      int                 `json:"total_sync_logs"`
	TopOrganizations   []OrganizationCount `json:"top_organizations"`
}
