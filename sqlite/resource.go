package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/opendatamirror/dp-catalog-sync/storage"
)

const resourceColumns = `id, dataset_id, catalog_id, title, description, url, format, mime_type,
	file_size, is_processed, processing_status, processing_error, created_at_source,
	updated_at_source, created_at, updated_at, last_processed`

var resourceOrderings = map[string]string{
	"":                   "updated_at_source DESC",
	"created_at":         "created_at ASC",
	"-created_at":        "created_at DESC",
	"last_processed":     "last_processed ASC",
	"-last_processed":    "last_processed DESC",
	"updated_at_source":  "updated_at_source ASC",
	"-updated_at_source": "updated_at_source DESC",
}

func scanResource(row rowScanner) (*storage.Resource, error) {
	var (
		r                  storage.Resource
		fileSize           sql.NullInt64
		createdSrc, updSrc sql.NullTime
		lastProcessed      sql.NullTime
	)
	err := row.Scan(&r.ID, &r.DatasetID, &r.CatalogID, &r.Title, &r.Description, &r.URL,
		&r.Format, &r.MimeType, &fileSize, &r.IsProcessed, &r.ProcessingStatus,
		&r.ProcessingError, &createdSrc, &updSrc, &r.CreatedAt, &r.UpdatedAt, &lastProcessed)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	r.FileSize = intPtr(fileSize)
	r.CreatedAtSource = timePtr(createdSrc)
	r.UpdatedAtSource = timePtr(updSrc)
	r.LastProcessed = timePtr(lastProcessed)
	return &r, nil
}

func (s *Store) GetResource(ctx context.Context, id string) (*storage.Resource, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT %s FROM resources WHERE id = ? OR catalog_id = ?`, resourceColumns), id, id)
	return scanResource(row)
}

func (s *Store) ListResources(ctx context.Context, filter storage.ResourceFilter) ([]storage.Resource, int, error) {
	conds := []string{}
	args := []any{}

	if filter.DatasetID != "" {
		conds = append(conds, "dataset_id = ?")
		args = append(args, filter.DatasetID)
	}
	if filter.Format != "" {
		conds = append(conds, "UPPER(format) = UPPER(?)")
		args = append(args, filter.Format)
	}
	if filter.ProcessingStatus != "" {
		conds = append(conds, "processing_status = ?")
		args = append(args, filter.ProcessingStatus)
	}
	if filter.IsProcessed != nil {
		conds = append(conds, "is_processed = ?")
		args = append(args, *filter.IsProcessed)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		conds = append(conds, "(title LIKE ? OR description LIKE ?)")
		args = append(args, like, like)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM resources`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy, ok := resourceOrderings[filter.OrderBy]
	if !ok {
		orderBy = resourceOrderings[""]
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s FROM resources%s ORDER BY %s%s`,
		resourceColumns, where, orderBy, limitClause(filter.Page)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	resources := make([]storage.Resource, 0)
	for rows.Next() {
		r, err := scanResource(rows)
		if err != nil {
			return nil, 0, err
		}
		resources = append(resources, *r)
	}
	return resources, total, rows.Err()
}

// UpdateResourceProcessing moves a resource through its processing states.
// A failed state also clears the processed flag.
func (s *Store) UpdateResourceProcessing(ctx context.Context, id, status, errMsg string) error {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		UPDATE resources
		SET processing_status = ?, processing_error = ?, updated_at = ?,
			is_processed = CASE WHEN ? = 'failed' THEN 0 ELSE is_processed END
		WHERE id = ?`,
		status, errMsg, now, status, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// MarkResourceProcessed flips the processed flag after a successful parse.
func (s *Store) MarkResourceProcessed(ctx context.Context, id string, processedAt time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE resources
		SET is_processed = 1, processing_status = ?, processing_error = '',
			last_processed = ?, updated_at = ?
		WHERE id = ?`,
		storage.ProcessingCompleted, processedAt.UTC(), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
