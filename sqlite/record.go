package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opendatamirror/dp-catalog-sync/storage"
)

// recordBatchSize bounds the number of rows inserted per statement.
const recordBatchSize = 100

// ReplaceDataRecords swaps a resource's record set for the given rows in one
// transaction. Row numbers restart at 1 so the (resource, row) uniqueness
// invariant holds across reprocessing.
func (s *Store) ReplaceDataRecords(ctx context.Context, resourceID string, rows []map[string]interface{}) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() // nolint

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM data_records WHERE resource_id = ?`, resourceID); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	written := 0
	for start := 0; start < len(rows); start += recordBatchSize {
		end := start + recordBatchSize
		if end > len(rows) {
			end = len(rows)
		}

		placeholders := make([]string, 0, end-start)
		args := make([]any, 0, (end-start)*5)
		for i := start; i < end; i++ {
			data, err := json.Marshal(rows[i])
			if err != nil {
				return 0, fmt.Errorf("marshal record %d: %w", i+1, err)
			}
			placeholders = append(placeholders, "(?, ?, ?, ?, ?)")
			args = append(args, uuid.NewString(), resourceID, i+1, string(data), now)
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO data_records (id, resource_id, row_number, data, created_at) VALUES `+
				strings.Join(placeholders, ", "), args...)
		if err != nil {
			return 0, err
		}
		written += end - start
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return written, nil
}

func (s *Store) CountDataRecords(ctx context.Context, resourceID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM data_records WHERE resource_id = ?`, resourceID).Scan(&n)
	return n, err
}

func scanRecord(row rowScanner) (*storage.DataRecord, error) {
	var (
		r    storage.DataRecord
		data string
	)
	if err := row.Scan(&r.ID, &r.ResourceID, &r.RowNumber, &data, &r.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(data), &r.Data); err != nil {
		return nil, fmt.Errorf("unmarshal record %s: %w", r.ID, err)
	}
	return &r, nil
}

func (s *Store) GetDataRecord(ctx context.Context, id string) (*storage.DataRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, resource_id, row_number, data, created_at FROM data_records WHERE id = ?`, id)
	return scanRecord(row)
}

func (s *Store) ListDataRecords(ctx context.Context, filter storage.RecordFilter) ([]storage.DataRecord, int, error) {
	conds := []string{}
	args := []any{}

	if filter.ResourceID != "" {
		conds = append(conds, "resource_id = ?")
		args = append(args, filter.ResourceID)
	}
	if filter.DatasetID != "" {
		conds = append(conds, "resource_id IN (SELECT id FROM resources WHERE dataset_id = ?)")
		args = append(args, filter.DatasetID)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM data_records`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, resource_id, row_number, data, created_at FROM data_records`+
			where+` ORDER BY resource_id, row_number`+limitClause(filter.Page), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records := make([]storage.DataRecord, 0)
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *r)
	}
	return records, total, rows.Err()
}
