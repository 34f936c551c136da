//-------------------------------------------------------------------------
//
// pgEdge Agriculture Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/pgEdge/pgedge-agrigen/internal/datagen"
	"github.com/pgEdge/pgedge-agrigen/internal/logging"
	"github.com/pgEdge/pgedge-agrigen/internal/session"
)

const createSQLiteRecordsSQL = `
CREATE TABLE IF NOT EXISTS agri_records (
    snapshot_id      TEXT NOT NULL,
    state            TEXT NOT NULL,
    crop             TEXT NOT NULL,
    latitude         REAL NOT NULL,
    longitude        REAL NOT NULL,
    production_mt    REAL NOT NULL,
    market_value_usd REAL NOT NULL,
    yield_index      REAL NOT NULL,
    PRIMARY KEY (snapshot_id, state, crop)
)`

const insertSQLiteRecordSQL = `
INSERT INTO agri_records (
    snapshot_id, state, crop, latitude, longitude,
    production_mt, market_value_usd, yield_index
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const upsertSQLiteMetadataSQL = `
INSERT INTO agrigen_metadata (key, value) VALUES (?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value`

// SQLiteSink writes snapshots to a local SQLite file.
type SQLiteSink struct {
	db    *sql.DB
	batch datagen.BatchInsertConfig
}

// OpenSQLite opens (or creates) the database file at path and its tables.
func OpenSQLite(ctx context.Context, path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL;"); err != nil {
		logging.Warn().Err(err).Msg("Failed to set WAL mode")
	}

	for _, stmt := range []string{createSQLiteRecordsSQL, createMetadataTableSQL} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
	}

	logging.Debug().Str("path", path).Msg("Opened sqlite sink")
	return &SQLiteSink{db: db, batch: datagen.DefaultBatchConfig()}, nil
}

// DB exposes the underlying handle.
func (s *SQLiteSink) DB() *sql.DB {
	return s.db
}

// Write inserts the snapshot and its metadata in one transaction.
func (s *SQLiteSink) Write(ctx context.Context, snap *session.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertSQLiteRecordSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	id := snap.ID.String()
	progress := datagen.NewProgressReporter(recordsTable, int64(len(snap.Records)), s.batch.ProgressInterval)
	for _, b := range datagen.Batches(len(snap.Records), s.batch.BatchSize) {
		for _, r := range snap.Records[b[0]:b[1]] {
			_, err := stmt.ExecContext(ctx, id, r.State, r.Crop, r.Latitude, r.Longitude,
				r.ProductionMT, r.MarketValueUSD, r.YieldIndex)
			if err != nil {
				return fmt.Errorf("failed to insert %s/%s: %w", r.State, r.Crop, err)
			}
		}
		progress.Update(int64(b[1] - b[0]))
	}

	for key, value := range snapshotMetadata(snap) {
		if _, err := tx.ExecContext(ctx, upsertSQLiteMetadataSQL, key, value); err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	progress.Done()

	logging.Info().
		Str("sink", KindSQLite).
		Str("snapshot", id).
		Int("rows", len(snap.Records)).
		Msg("Loaded snapshot")
	return nil
}

// Metadata implements Sink.
func (s *SQLiteSink) Metadata(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM agrigen_metadata`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metadata := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		metadata[key] = value
	}
	return metadata, rows.Err()
}

// Close closes the database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
