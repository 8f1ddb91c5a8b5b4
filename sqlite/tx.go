package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/opendatamirror/dp-catalog-sync/storage"
)

// syncTx carries one sync run's upserts. Rolling back discards every
// dataset and resource touched by the run.
type syncTx struct {
	tx *sql.Tx
}

// BeginSync starts the transaction a sync run performs its upserts in.
func (s *Store) BeginSync(ctx context.Context) (storage.SyncTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &syncTx{tx: tx}, nil
}

func (t *syncTx) Commit() error {
	return t.tx.Commit()
}

func (t *syncTx) Rollback() error {
	return t.tx.Rollback()
}

// UpsertDataset is an explicit insert-or-update step keyed by catalog id.
// The two-step shape (select, then insert or update) keeps the uniqueness
// invariant visible rather than hidden behind driver upsert magic.
func (t *syncTx) UpsertDataset(ctx context.Context, d *storage.Dataset) (bool, error) {
	tags, err := marshalTags(d.Tags)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()
	var existingID string
	err = t.tx.QueryRowContext(ctx,
		`SELECT id FROM datasets WHERE catalog_id = ?`, d.CatalogID,
	).Scan(&existingID)

	switch {
	case err == sql.ErrNoRows:
		d.ID = uuid.NewString()
		d.CreatedAt = now
		d.UpdatedAt = now
		_, err = t.tx.ExecContext(ctx, `
			INSERT INTO datasets (id, catalog_id, title, slug, description, organization, tags,
				license, is_active, created_at_source, updated_at_source, created_at, updated_at, last_sync)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.CatalogID, d.Title, d.Slug, d.Description, d.Organization, tags,
			d.License, d.IsActive, nullTime(d.CreatedAtSource), nullTime(d.UpdatedAtSource),
			d.CreatedAt, d.UpdatedAt, nullTime(d.LastSync))
		return true, err

	case err != nil:
		return false, err

	default:
		d.ID = existingID
		d.UpdatedAt = now
		_, err = t.tx.ExecContext(ctx, `
			UPDATE datasets SET title = ?, slug = ?, description = ?, organization = ?,
				tags = ?, license = ?, is_active = ?, created_at_source = ?,
				updated_at_source = ?, updated_at = ?, last_sync = ?
			WHERE id = ?`,
			d.Title, d.Slug, d.Description, d.Organization,
			tags, d.License, d.IsActive, nullTime(d.CreatedAtSource),
			nullTime(d.UpdatedAtSource), d.UpdatedAt, nullTime(d.LastSync),
			d.ID)
		return false, err
	}
}

// UpsertResource inserts or updates a resource keyed by (dataset, catalog id).
// Processing state is owned by the processing path and left untouched on
// update.
func (t *syncTx) UpsertResource(ctx context.Context, r *storage.Resource) (bool, error) {
	now := time.Now().UTC()
	var existingID string
	err := t.tx.QueryRowContext(ctx,
		`SELECT id FROM resources WHERE dataset_id = ? AND catalog_id = ?`,
		r.DatasetID, r.CatalogID,
	).Scan(&existingID)

	switch {
	case err == sql.ErrNoRows:
		r.ID = uuid.NewString()
		r.CreatedAt = now
		r.UpdatedAt = now
		if r.ProcessingStatus == "" {
			r.ProcessingStatus = storage.ProcessingPending
		}
		_, err = t.tx.ExecContext(ctx, `
			INSERT INTO resources (id, dataset_id, catalog_id, title, description, url, format,
				mime_type, file_size, is_processed, processing_status, processing_error,
				created_at_source, updated_at_source, created_at, updated_at, last_processed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.DatasetID, r.CatalogID, r.Title, r.Description, r.URL, r.Format,
			r.MimeType, nullInt(r.FileSize), r.IsProcessed, r.ProcessingStatus, r.ProcessingError,
			nullTime(r.CreatedAtSource), nullTime(r.UpdatedAtSource), r.CreatedAt, r.UpdatedAt,
			nullTime(r.LastProcessed))
		return true, err

	case err != nil:
		return false, err

	default:
		r.ID = existingID
		r.UpdatedAt = now
		_, err = t.tx.ExecContext(ctx, `
			UPDATE resources SET title = ?, description = ?, url = ?, format = ?,
				mime_type = ?, file_size = ?, created_at_source = ?, updated_at_source = ?,
				updated_at = ?
			WHERE id = ?`,
			r.Title, r.Description, r.URL, r.Format,
			r.MimeType, nullInt(r.FileSize), nullTime(r.CreatedAtSource), nullTime(r.UpdatedAtSource),
			r.UpdatedAt,
			r.ID)
		return false, err
	}
}
