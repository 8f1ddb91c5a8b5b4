package sqlite

// bootstrapSQL creates the schema on first open. Statements are idempotent
// so reopening an existing database is a no-op.
const bootstrapSQL = `
CREATE TABLE IF NOT EXISTS datasets (
	id                TEXT PRIMARY KEY,
	catalog_id        TEXT NOT NULL UNIQUE,
	title             TEXT NOT NULL,
	slug              TEXT NOT NULL,
	description       TEXT NOT NULL DEFAULT '',
	organization      TEXT NOT NULL DEFAULT '',
	tags              TEXT NOT NULL DEFAULT '[]',
	license           TEXT NOT NULL DEFAULT '',
	is_active         INTEGER NOT NULL DEFAULT 1,
	created_at_source TIMESTAMP,
	updated_at_source TIMESTAMP,
	created_at        TIMESTAMP NOT NULL,
	updated_at        TIMESTAMP NOT NULL,
	last_sync         TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_datasets_organization ON datasets(organization);
CREATE INDEX IF NOT EXISTS idx_datasets_last_sync ON datasets(last_sync);

CREATE TABLE IF NOT EXISTS resources (
	id                TEXT PRIMARY KEY,
	dataset_id        TEXT NOT NULL REFERENCES datasets(id),
	catalog_id        TEXT NOT NULL,
	title             TEXT NOT NULL,
	description       TEXT NOT NULL DEFAULT '',
	url               TEXT NOT NULL,
	format            TEXT NOT NULL,
	mime_type         TEXT NOT NULL DEFAULT '',
	file_size         INTEGER,
	is_processed      INTEGER NOT NULL DEFAULT 0,
	processing_status TEXT NOT NULL DEFAULT 'pending',
	processing_error  TEXT NOT NULL DEFAULT '',
	created_at_source TIMESTAMP,
	updated_at_source TIMESTAMP,
	created_at        TIMESTAMP NOT NULL,
	updated_at        TIMESTAMP NOT NULL,
	last_processed    TIMESTAMP,
	UNIQUE(dataset_id, catalog_id)
);

CREATE INDEX IF NOT EXISTS idx_resources_format ON resources(format);
CREATE INDEX IF NOT EXISTS idx_resources_dataset ON resources(dataset_id);

CREATE TABLE IF NOT EXISTS data_records (
	id          TEXT PRIMARY KEY,
	resource_id TEXT NOT NULL REFERENCES resources(id),
	row_number  INTEGER NOT NULL,
	data        TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL,
	UNIQUE(resource_id, row_number)
);

CREATE INDEX IF NOT EXISTS idx_data_records_resource ON data_records(resource_id);

CREATE TABLE IF NOT EXISTS sync_logs (
	id                  TEXT PRIMARY KEY,
	sync_type           TEXT NOT NULL,
	status              TEXT NOT NULL,
	datasets_processed  INTEGER NOT NULL DEFAULT 0,
	resources_processed INTEGER NOT NULL DEFAULT 0,
	records_created     INTEGER NOT NULL DEFAULT 0,
	message             TEXT NOT NULL DEFAULT '',
	error_details       TEXT NOT NULL DEFAULT '',
	started_at          TIMESTAMP NOT NULL,
	completed_at        TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_sync_logs_started ON sync_logs(started_at);
`
