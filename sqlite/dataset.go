package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/opendatamirror/dp-catalog-sync/storage"
)

const datasetColumns = `id, catalog_id, title, slug, description, organization, tags, license,
	is_active, created_at_source, updated_at_source, created_at, updated_at, last_sync`

// datasetOrderings whitelists the sortable columns exposed by the API.
var datasetOrderings = map[string]string{
	"":                   "last_sync DESC",
	"title":              "title ASC",
	"-title":             "title DESC",
	"created_at":         "created_at ASC",
	"-created_at":        "created_at DESC",
	"last_sync":          "last_sync ASC",
	"-last_sync":         "last_sync DESC",
	"updated_at_source":  "updated_at_source ASC",
	"-updated_at_source": "updated_at_source DESC",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDataset(row rowScanner) (*storage.Dataset, error) {
	var (
		d                    storage.Dataset
		tags                 string
		createdSrc, updSrc   sql.NullTime
		lastSync             sql.NullTime
	)
	err := row.Scan(&d.ID, &d.CatalogID, &d.Title, &d.Slug, &d.Description, &d.Organization,
		&tags, &d.License, &d.IsActive, &createdSrc, &updSrc, &d.CreatedAt, &d.UpdatedAt, &lastSync)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	d.Tags = unmarshalTags(tags)
	d.CreatedAtSource = timePtr(createdSrc)
	d.UpdatedAtSource = timePtr(updSrc)
	d.LastSync = timePtr(lastSync)
	return &d, nil
}

// GetDataset looks a dataset up by internal or catalog id and attaches its
// resources.
func (s *Store) GetDataset(ctx context.Context, id string) (*storage.Dataset, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT %s FROM datasets WHERE id = ? OR catalog_id = ?`, datasetColumns), id, id)
	d, err := scanDataset(row)
	if err != nil {
		return nil, err
	}

	resources, _, err := s.ListResources(ctx, storage.ResourceFilter{
		DatasetID: d.ID,
		Page:      storage.Page{Limit: -1},
	})
	if err != nil {
		return nil, err
	}
	d.Resources = resources
	return d, nil
}

// ListDatasets returns a page of datasets matching the filter plus the total
// match count.
func (s *Store) ListDatasets(ctx context.Context, filter storage.DatasetFilter) ([]storage.Dataset, int, error) {
	where, args := datasetWhere(filter)

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM datasets`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy, ok := datasetOrderings[filter.OrderBy]
	if !ok {
		orderBy = datasetOrderings[""]
	}

	query := fmt.Sprintf(`SELECT %s FROM datasets%s ORDER BY %s%s`,
		datasetColumns, where, orderBy, limitClause(filter.Page))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	datasets := make([]storage.Dataset, 0)
	for rows.Next() {
		d, err := scanDataset(rows)
		if err != nil {
			return nil, 0, err
		}
		datasets = append(datasets, *d)
	}
	return datasets, total, rows.Err()
}

func datasetWhere(filter storage.DatasetFilter) (string, []any) {
	conds := []string{}
	args := []any{}

	if !filter.ShowInactive {
		conds = append(conds, "is_active = 1")
	}
	if filter.Organization != "" {
		conds = append(conds, "organization = ?")
		args = append(args, filter.Organization)
	}
	if filter.Tag != "" {
		// Tags are a JSON array of strings, so match the quoted element.
		conds = append(conds, "tags LIKE ?")
		args = append(args, `%"`+filter.Tag+`"%`)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		conds = append(conds, "(title LIKE ? OR description LIKE ? OR organization LIKE ? OR tags LIKE ?)")
		args = append(args, like, like, like, like)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// limitClause renders the limit/offset window; a negative limit means no
// window at all.
func limitClause(p storage.Page) string {
	if p.Limit < 0 {
		return ""
	}
	limit := p.Limit
	if limit == 0 {
		limit = 20
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", limit, p.Offset)
}

// DatasetStats aggregates the totals and top-organization breakdown for the
// stats endpoint.
func (s *Store) DatasetStats(ctx context.Context) (*storage.Stats, error) {
	stats := &storage.Stats{}

	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM datasets),
			(SELECT COUNT(*) FROM datasets WHERE is_active = 1),
			(SELECT COUNT(*) FROM resources),
			(SELECT COUNT(*) FROM resources WHERE is_processed = 1),
			(SELECT COUNT(*) FROM data_records),
			(SELECT COUNT(*) FROM sync_logs)`,
	).Scan(&stats.TotalDatasets, &stats.ActiveDatasets, &stats.TotalResources,
		&stats.ProcessedResources, &stats.TotalRecords, &stats.TotalSyncLogs)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT organization, COUNT(*) AS n
		FROM datasets
		WHERE organization != ''
		GROUP BY organization
		ORDER BY n DESC, organization ASC
		LIMIT 10`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var oc storage.OrganizationCount
		if err := rows.Scan(&oc.Organization, &oc.Count); err != nil {
			return nil, err
		}
		stats.TopOrganizations = append(stats.TopOrganizations, oc)
	}
	return stats, rows.Err()
}
