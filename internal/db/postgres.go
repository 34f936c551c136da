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
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-agrigen/internal/datagen"
	"github.com/pgEdge/pgedge-agrigen/internal/logging"
	"github.com/pgEdge/pgedge-agrigen/internal/session"
)

const createRecordsTableSQL = `
CREATE TABLE IF NOT EXISTS agri_records (
    snapshot_id      UUID NOT NULL,
    state            TEXT NOT NULL,
    crop             TEXT NOT NULL,
    latitude         DOUBLE PRECISION NOT NULL,
    longitude        DOUBLE PRECISION NOT NULL,
    production_mt    DOUBLE PRECISION NOT NULL,
    market_value_usd DOUBLE PRECISION NOT NULL,
    yield_index      DOUBLE PRECISION NOT NULL,
    PRIMARY KEY (snapshot_id, state, crop)
)`

var recordColumns = []string{
	"snapshot_id", "state", "crop", "latitude", "longitude",
	"production_mt", "market_value_usd", "yield_index",
}

// PostgresSink copies snapshots into PostgreSQL.
type PostgresSink struct {
	pool  *pgxpool.Pool
	batch datagen.BatchInsertConfig
}

// NewPostgresSink wraps an open pool. The sink owns the pool after this call.
func NewPostgresSink(pool *pgxpool.Pool) *PostgresSink {
	return &PostgresSink{pool: pool, batch: datagen.DefaultBatchConfig()}
}

// Pool exposes the underlying pool.
func (s *PostgresSink) Pool() *pgxpool.Pool {
	return s.pool
}

// CreateSchema creates the records and metadata tables.
func (s *PostgresSink) CreateSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createRecordsTableSQL); err != nil {
		return fmt.Errorf("failed to create %s: %w", recordsTable, err)
	}
	if _, err := s.pool.Exec(ctx, createMetadataTableSQL); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}
	return nil
}

// DropSchema removes both tables.
func (s *PostgresSink) DropSchema(ctx context.Context) error {
	for _, table := range []string{recordsTable, metadataTable} {
		if _, err := s.pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}
	return nil
}

// Write copies the snapshot in batches inside one transaction.
func (s *PostgresSink) Write(ctx context.Context, snap *session.Snapshot) error {
	if err := s.CreateSchema(ctx); err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	progress := datagen.NewProgressReporter(recordsTable, int64(len(snap.Records)), s.batch.ProgressInterval)
	for _, b := range datagen.Batches(len(snap.Records), s.batch.BatchSize) {
		rows := make([][]any, 0, b[1]-b[0])
		for _, r := range snap.Records[b[0]:b[1]] {
			rows = append(rows, []any{
				snap.ID, r.State, r.Crop, r.Latitude, r.Longitude,
				r.ProductionMT, r.MarketValueUSD, r.YieldIndex,
			})
		}

		n, err := tx.CopyFrom(ctx, pgx.Identifier{recordsTable}, recordColumns, pgx.CopyFromRows(rows))
		if err != nil {
			return fmt.Errorf("failed to copy records: %w", err)
		}
		progress.Update(n)
	}

	for key, value := range snapshotMetadata(snap) {
		if _, err := tx.Exec(ctx, upsertMetadataSQL, key, value); err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	progress.Done()

	logging.Info().
		Str("sink", KindPostgres).
		Str("snapshot", snap.ID.String()).
		Int("rows", len(snap.Records)).
		Msg("Loaded snapshot")
	return nil
}

// CountRecords returns how many rows a snapshot has in the table.
func (s *PostgresSink) CountRecords(ctx context.Context, snap *session.Snapshot) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx,
		`SELECT count(*) FROM agri_records WHERE snapshot_id = $1`, snap.ID).Scan(&n)
	return n, err
}

// Metadata implements Sink.
func (s *PostgresSink) Metadata(ctx context.Context) (map[string]string, error) {
	return GetAllMetadata(ctx, s.pool)
}

// Close releases the pool.
func (s *PostgresSink) Close() error {
	s.pool.Close()
	return nil
}
