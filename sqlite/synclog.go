package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opendatamirror/dp-catalog-sync/storage"
)

const syncLogColumns = `id, sync_type, status, datasets_processed, resources_processed,
	records_created, message, error_details, started_at, completed_at`

// CreateSyncLog writes the audit row at the start of a sync run. Status
// defaults to started.
func (s *Store) CreateSyncLog(ctx context.Context, l *storage.SyncLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = storage.SyncStatusStarted
	}
	if l.StartedAt.IsZero() {
		l.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_logs (id, sync_type, status, datasets_processed, resources_processed,
			records_created, message, error_details, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.SyncType, l.Status, l.DatasetsProcessed, l.ResourcesProcessed,
		l.RecordsCreated, l.Message, l.ErrorDetails, l.StartedAt, nullTime(l.CompletedAt))
	return err
}

// FinalizeSyncLog records the run's terminal status and counts. A log that
// has already completed or failed is append-only and refuses further writes.
func (s *Store) FinalizeSyncLog(ctx context.Context, l *storage.SyncLog) error {
	if l.CompletedAt == nil {
		now := time.Now().UTC()
		l.CompletedAt = &now
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE sync_logs
		SET status = ?, datasets_processed = ?, resources_processed = ?, records_created = ?,
			message = ?, error_details = ?, completed_at = ?
		WHERE id = ? AND status = ?`,
		l.Status, l.DatasetsProcessed, l.ResourcesProcessed, l.RecordsCreated,
		l.Message, l.ErrorDetails, nullTime(l.CompletedAt),
		l.ID, storage.SyncStatusStarted)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanSyncLog(row rowScanner) (*storage.SyncLog, error) {
	var (
		l         storage.SyncLog
		completed sql.NullTime
	)
	err := row.Scan(&l.ID, &l.SyncType, &l.Status, &l.DatasetsProcessed, &l.ResourcesProcessed,
		&l.RecordsCreated, &l.Message, &l.ErrorDetails, &l.StartedAt, &completed)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	l.CompletedAt = timePtr(completed)
	return &l, nil
}

func (s *Store) GetSyncLog(ctx context.Context, id string) (*storage.SyncLog, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+syncLogColumns+` FROM sync_logs WHERE id = ?`, id)
	return scanSyncLog(row)
}

func (s *Store) ListSyncLogs(ctx context.Context, filter storage.SyncLogFilter) ([]storage.SyncLog, int, error) {
	conds := []string{}
	args := []any{}

	if filter.SyncType != "" {
		conds = append(conds, "sync_type = ?")
		args = append(args, filter.SyncType)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sync_logs`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+syncLogColumns+` FROM sync_logs`+where+
			` ORDER BY started_at DESC`+limitClause(filter.Page), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs := make([]storage.SyncLog, 0)
	for rows.Next() {
		l, err := scanSyncLog(rows)
		if err != nil {
			return nil, 0, err
		}
		logs = append(logs, *l)
	}
	return logs, total, rows.Err()
}
