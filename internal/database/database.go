package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"crease/internal/log"
	"crease/internal/match"

	_ "modernc.org/sqlite"
)

// Database is a single-match archive of recorded deliveries
type Database interface {
	OpenDatabase(filename string) error
	CloseDatabase() error
	GetDatabaseOpen() bool

	ReplaceDeliveries(ctx context.Context, info MatchInfo, records []match.BallRecord) error
	LoadDeliveries(ctx context.Context) ([]match.BallRecord, error)
	LoadMatchInfo(ctx context.Context) (MatchInfo, error)
}

// ErrNoMatch is returned when the archive has never been imported into
var ErrNoMatch = errors.New("no match stored in database")

// SQLiteDatabase implements Database on a sqlite file
type SQLiteDatabase struct {
	db       *sql.DB
	dbOpen   bool
	filename string
}

// NewDatabase creates an unopened database handle
func NewDatabase() *SQLiteDatabase {
	return &SQLiteDatabase{}
}

// OpenDatabase opens (creating if needed) the archive and applies pending migrations
func (d *SQLiteDatabase) OpenDatabase(filename string) error {
	if d.dbOpen {
		return fmt.Errorf("database already open")
	}

	db, err := sql.Open("sqlite", filename)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// a single connection keeps pragmas and transactions on one sqlite handle
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	d.db = db
	if err = d.runMigrations(); err != nil {
		db.Close()
		d.db = nil
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	d.filename = filename
	d.dbOpen = true
	log.Debug("database opened", "file", filename)
	return nil
}

// CloseDatabase closes the underlying handle
func (d *SQLiteDatabase) CloseDatabase() error {
	if !d.dbOpen {
		return nil
	}
	d.dbOpen = false
	if err := d.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	log.Debug("database closed", "file", d.filename)
	return nil
}

// GetDatabaseOpen reports whether OpenDatabase succeeded and CloseDatabase has not been called
func (d *SQLiteDatabase) GetDatabaseOpen() bool {
	return d.dbOpen
}

// ReplaceDeliveries swaps the stored match for records in one transaction.
// Sequence numbers are the 0-based replay indices.
func (d *SQLiteDatabase) ReplaceDeliveries(ctx context.Context, info MatchInfo, records []match.BallRecord) error {
	if !d.dbOpen {
		return fmt.Errorf("database not open")
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM deliveries"); err != nil {
		return fmt.Errorf("failed to clear deliveries: %w", err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM match_info"); err != nil {
		return fmt.Errorf("failed to clear match info: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO deliveries (seq, over_id, ball, batsman, bowler, runs, is_wicket)
	VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, record := range records {
		if _, err = stmt.ExecContext(ctx, i, float64(record.Over), record.Ball,
			record.Batsman, record.Bowler, record.Runs, record.IsWicket); err != nil {
			return fmt.Errorf("failed to insert delivery %d: %w", i, err)
		}
	}

	if info.ImportedAt.IsZero() {
		info.ImportedAt = time.Now().UTC()
	}
	if _, err = tx.ExecContext(ctx,
		"INSERT INTO match_info (id, title, source, imported_at, balls) VALUES (1, ?, ?, ?, ?)",
		info.Title, info.Source, info.ImportedAt.Format(time.RFC3339Nano), len(records)); err != nil {
		return fmt.Errorf("failed to save match info: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deliveries: %w", err)
	}
	log.Info("deliveries stored", "file", d.filename, "balls", len(records))
	return nil
}

// LoadDeliveries returns the stored match ordered by replay index
func (d *SQLiteDatabase) LoadDeliveries(ctx context.Context) ([]match.BallRecord, error) {
	if !d.dbOpen {
		return nil, fmt.Errorf("database not open")
	}
	if _, err := d.LoadMatchInfo(ctx); err != nil {
		return nil, err
	}

	rows, err := d.db.QueryContext(ctx, `
	SELECT over_id, ball, batsman, bowler, runs, is_wicket
	FROM deliveries ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query deliveries: %w", err)
	}
	defer rows.Close()

	var records []match.BallRecord
	for rows.Next() {
		var (
			record match.BallRecord
			over   float64
		)
		if err := rows.Scan(&over, &record.Ball, &record.Batsman, &record.Bowler, &record.Runs, &record.IsWicket); err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		record.Over = match.Over(over)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deliveries: %w", err)
	}
	return records, nil
}

// LoadMatchInfo returns the metadata of the stored match
func (d *SQLiteDatabase) LoadMatchInfo(ctx context.Context) (MatchInfo, error) {
	if !d.dbOpen {
		return MatchInfo{}, fmt.Errorf("database not open")
	}

	var (
		info       MatchInfo
		importedAt string
	)
	err := d.db.QueryRowContext(ctx,
		"SELECT title, source, imported_at, balls FROM match_info WHERE id = 1").
		Scan(&info.Title, &info.Source, &importedAt, &info.Balls)
	if errors.Is(err, sql.ErrNoRows) {
		return MatchInfo{}, ErrNoMatch
	}
	if err != nil {
		return MatchInfo{}, fmt.Errorf("failed to load match info: %w", err)
	}
	if info.ImportedAt, err = time.Parse(time.RFC3339Nano, importedAt); err != nil {
		return MatchInfo{}, fmt.Errorf("failed to parse import time %q: %w", importedAt, err)
	}
	return info, nil
}
