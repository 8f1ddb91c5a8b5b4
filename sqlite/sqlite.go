// Package sqlite is the concrete storage layer over an embedded SQLite
// database. Upserts are explicit insert-or-update steps keyed by catalog
// identifiers so the uniqueness invariants stay enforceable in SQL.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"

	_ "modernc.org/sqlite"
)

// Store implements storage.Store on SQLite.
type Store struct {
	db  *sql.DB
	uri string
}

// New opens (or creates) the database at databaseFile and bootstraps the
// schema.
func New(ctx context.Context, databaseFile string) (*Store, error) {
	db, err := sql.Open("sqlite", databaseFile)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// The modernc driver serialises writes itself, but a single connection
	// avoids SQLITE_BUSY between overlapping transactions.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, bootstrapSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}
	return &Store{db: db, uri: databaseFile}, nil
}

// URI returns the database location, for logging.
func (s *Store) URI() string {
	return s.uri
}

// Close closes the underlying database.
func (s *Store) Close(ctx context.Context) error {
	return s.db.Close()
}

// Checker is called by the healthcheck library to check the health state of
// the database.
func (s *Store) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	if err := s.db.PingContext(ctx); err != nil {
		return state.Update(healthcheck.StatusCritical, err.Error(), 0)
	}
	return state.Update(healthcheck.StatusOK, "sqlite store is ok", 0)
}

// nullTime converts an optional time into a nullable column value.
func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

// timePtr converts a nullable column value back into an optional time.
func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func nullInt(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

func intPtr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	i := ni.Int64
	return &i
}

// marshalTags encodes a tag set for its TEXT column; nil encodes as [].
func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("marshal tags: %w", err)
	}
	return string(b), nil
}

func unmarshalTags(raw string) []string {
	var tags []string
	if raw == "" {
		return []string{}
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{}
	}
	return tags
}
