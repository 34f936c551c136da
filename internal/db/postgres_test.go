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
	"testing"
	"time"

	"github.com/pgEdge/pgedge-agrigen/internal/session"
	"github.com/pgEdge/pgedge-agrigen/internal/testutil"
)

func TestPostgresSinkIntegration(t *testing.T) {
	baseConnStr := testutil.SkipIfNoPostgres(t)

	connStr := testutil.CreateTestDB(t, baseConnStr, "sink")
	dbName := testutil.GetDBNameFromConnStr(connStr)
	cleanup := testutil.NewTestCleanup(t, baseConnStr, dbName)
	defer cleanup.Cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	sink, err := Open(ctx, KindPostgres, connStr)
	if err != nil {
		t.Fatalf("Failed to open sink: %v", err)
	}
	pg := sink.(*PostgresSink)
	cleanup.SetPool(pg.Pool())

	snap := session.New(session.Config{Seed: 42}).Snapshot()
	if err := pg.Write(ctx, snap); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	count, err := pg.CountRecords(ctx, snap)
	if err != nil {
		t.Fatalf("CountRecords failed: %v", err)
	}
	if count != len(snap.Records) {
		t.Errorf("Expected %d rows, got %d", len(snap.Records), count)
	}

	md, err := pg.Metadata(ctx)
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	if md["snapshot_id"] != snap.ID.String() {
		t.Errorf("Expected snapshot_id %s, got %s", snap.ID, md["snapshot_id"])
	}
	if md["seed"] != "42" {
		t.Errorf("Expected seed 42, got %s", md["seed"])
	}

	// Metadata follows the most recent snapshot.
	other := session.New(session.Config{Seed: 43}).Snapshot()
	if err := pg.Write(ctx, other); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}
	all, err := GetAllMetadata(ctx, pg.Pool())
	if err != nil {
		t.Fatalf("GetAllMetadata failed: %v", err)
	}
	if all["seed"] != "43" {
		t.Errorf("Expected seed 43 after update, got %s", all["seed"])
	}
	total, err := pg.CountRecords(ctx, other)
	if err != nil || total != len(other.Records) {
		t.Errorf("Expected %d rows for second snapshot, got %d (err=%v)", len(other.Records), total, err)
	}

	if err := pg.DropSchema(ctx); err != nil {
		t.Fatalf("DropSchema failed: %v", err)
	}
}
