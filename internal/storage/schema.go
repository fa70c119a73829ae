package storage

import (
	"database/sql"
	"fmt"
)

const migration001 = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	seed INTEGER NOT NULL,
	scramble_length INTEGER NOT NULL,
	cube_count INTEGER NOT NULL,
	workers INTEGER NOT NULL,
	elapsed_us INTEGER NOT NULL,
	notes TEXT
);

CREATE TABLE IF NOT EXISTS solves (
	solve_id TEXT PRIMARY KEY,
	run_id TEXT REFERENCES runs(run_id) ON DELETE CASCADE,
	created_at TEXT NOT NULL,
	scramble_text TEXT,
	facelets TEXT NOT NULL,
	solution_text TEXT NOT NULL,
	solution_length INTEGER NOT NULL,
	phase1_probes INTEGER NOT NULL,
	phase1_cuts INTEGER NOT NULL,
	phase2_probes INTEGER NOT NULL,
	phase2_cuts INTEGER NOT NULL,
	corner_probes INTEGER NOT NULL,
	corner_cuts INTEGER NOT NULL,
	no_twist_cuts INTEGER NOT NULL,
	elapsed_us INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_solves_run ON solves(run_id);
CREATE INDEX IF NOT EXISTS idx_solves_created ON solves(created_at);

INSERT INTO schema_version (version) VALUES (1);
`

// migrations is an ordered list of migration SQL statements.
var migrations = []struct {
	version int
	sql     string
}{
	{1, migration001},
}

// applyMigrations applies all pending migrations.
func applyMigrations(db *sql.DB) error {
	currentVersion := 0

	// Check if schema_version table exists
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='schema_version'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check schema version table: %w", err)
	}

	if count > 0 {
		err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
		if err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		_, err := db.Exec(m.sql)
		if err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.version, err)
		}
	}

	return nil
}
