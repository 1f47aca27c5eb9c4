package database

import (
	"database/sql"
	"fmt"

	"crease/internal/log"
)

// Migration represents a database migration
type Migration struct {
	ID          int
	Description string
	SQL         string
}

// migrations contains all database migrations in order
var migrations = []Migration{
	{
		ID:          1,
		Description: "Deliveries table",
		SQL: `
CREATE TABLE IF NOT EXISTS deliveries (
	seq       INTEGER PRIMARY KEY,
	over_id   REAL    NOT NULL CHECK (over_id >= 0),
	ball      INTEGER NOT NULL CHECK (ball > 0),
	batsman   TEXT    NOT NULL CHECK (batsman <> ''),
	bowler    TEXT    NOT NULL CHECK (bowler <> ''),
	runs      INTEGER NOT NULL CHECK (runs >= 0),
	is_wicket BOOLEAN NOT NULL DEFAULT FALSE
);`,
	},
	{
		ID:          2,
		Description: "Match metadata",
		SQL: `
CREATE TABLE IF NOT EXISTS match_info (
	id          INTEGER PRIMARY KEY CHECK (id = 1),
	title       TEXT    NOT NULL DEFAULT '',
	source      TEXT    NOT NULL DEFAULT '',
	imported_at TEXT    NOT NULL,
	balls       INTEGER NOT NULL DEFAULT 0
);`,
	},
	{
		ID:          3,
		Description: "Index deliveries by over for per-over queries",
		SQL:         `CREATE INDEX IF NOT EXISTS idx_deliveries_over ON deliveries (over_id);`,
	},
}

// runMigrations executes all pending migrations
func (d *SQLiteDatabase) runMigrations() error {
	if err := d.ensureSchemaVersionTable(); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	currentVersion, err := d.getCurrentSchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.ID <= currentVersion {
			continue
		}
		log.Debug("applying migration", "id", migration.ID, "description", migration.Description)
		if err := d.applyMigration(migration); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", migration.ID, err)
		}
	}
	return nil
}

// ensureSchemaVersionTable creates the schema_version table if it doesn't exist
func (d *SQLiteDatabase) ensureSchemaVersionTable() error {
	_, err := d.db.Exec(`
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`)
	return err
}

func (d *SQLiteDatabase) getCurrentSchemaVersion() (int, error) {
	var version sql.NullInt64
	if err := d.db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version); err != nil {
		return 0, err
	}
	if !version.Valid {
		return 0, nil
	}
	return int(version.Int64), nil
}

func (d *SQLiteDatabase) applyMigration(migration Migration) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.SQL); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.ID); err != nil {
		return err
	}
	return tx.Commit()
}
