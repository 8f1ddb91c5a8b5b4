package datasync

import (
	"strings"
	"time"

	"github.com/opendatamirror/dp-catalog-sync/catalog"
	"github.com/opendatamirror/dp-catalog-sync/storage"
)

// toStorageDataset maps a catalog dataset onto the stored shape. Datasets
// arriving from the catalog are always active; deactivation happens locally.
func toStorageDataset(cd *catalog.Dataset) *storage.Dataset {
	now := time.Now().UTC()
	return &storage.Dataset{
		CatalogID:       cd.ID,
		Title:           cd.Title,
		Slug:            cd.Slug,
		Description:     cd.Description,
		Organization:    cd.Organization,
		Tags:            cd.Tags,
		License:         cd.License,
		IsActive:        true,
		CreatedAtSource: cd.CreatedAt,
		UpdatedAtSource: cd.LastModified,
		LastSync:        &now,
	}
}

// toStorageResource maps a catalog resource onto the stored shape. Format
// tags are upper-cased so filters and parser dispatch compare consistently.
func toStorageResource(cr *catalog.Resource, datasetID string) *storage.Resource {
	return &storage.Resource{
		DatasetID:       datasetID,
		CatalogID:       cr.ID,
		Title:           cr.Title,
		Description:     cr.Description,
		URL:             cr.URL,
		Format:          strings.ToUpper(strings.TrimSpace(cr.Format)),
		MimeType:        cr.MimeType,
		FileSize:        cr.FileSize,
		CreatedAtSource: cr.CreatedAt,
		UpdatedAtSource: cr.LastModified,
	}
}
