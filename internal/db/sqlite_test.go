package db

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/pgEdge/pgedge-agrigen/internal/session"
)

func openTestSQLite(t *testing.T) *SQLiteSink {
	t.Helper()
	sink, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "agri.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = sink.Close() })
	return sink
}

func TestSQLiteSinkWrite(t *testing.T) {
	ctx := context.Background()
	sink := openTestSQLite(t)
	snap := session.New(session.Config{Seed: 7}).Snapshot()

	if err := sink.Write(ctx, snap); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var count int
	err := sink.DB().QueryRowContext(ctx,
		`SELECT count(*) FROM agri_records WHERE snapshot_id = ?`, snap.ID.String()).Scan(&count)
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != len(snap.Records) {
		t.Errorf("Expected %d rows, got %d", len(snap.Records), count)
	}

	first := snap.Records[0]
	var production float64
	err = sink.DB().QueryRowContext(ctx,
		`SELECT production_mt FROM agri_records WHERE snapshot_id = ? AND state = ? AND crop = ?`,
		snap.ID.String(), first.State, first.Crop).Scan(&production)
	if err != nil {
		t.Fatalf("row query failed: %v", err)
	}
	if production != first.ProductionMT {
		t.Errorf("Expected production %v, got %v", first.ProductionMT, production)
	}
}

func TestSQLiteSinkMetadata(t *testing.T) {
	ctx := context.Background()
	sink := openTestSQLite(t)
	snap := session.New(session.Config{Seed: 99}).Snapshot()

	if err := sink.Write(ctx, snap); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	md, err := sink.Metadata(ctx)
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}

	if md["snapshot_id"] != snap.ID.String() {
		t.Errorf("Expected snapshot_id %s, got %s", snap.ID, md["snapshot_id"])
	}
	if md["seed"] != "99" {
		t.Errorf("Expected seed 99, got %s", md["seed"])
	}
	if md["rows"] != strconv.Itoa(len(snap.Records)) {
		t.Errorf("Expected rows %d, got %s", len(snap.Records), md["rows"])
	}
	if md["version"] == "" {
		t.Error("version should be recorded")
	}
}

func TestSQLiteSinkRejectsDuplicateSnapshot(t *testing.T) {
	ctx := context.Background()
	sink := openTestSQLite(t)
	snap := session.New(session.Config{Seed: 3}).Snapshot()

	if err := sink.Write(ctx, snap); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := sink.Write(ctx, snap); err == nil {
		t.Error("Expected primary key violation on second write")
	}

	var count int
	if err := sink.DB().QueryRowContext(ctx, `SELECT count(*) FROM agri_records`).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != len(snap.Records) {
		t.Errorf("Failed write should roll back, got %d rows", count)
	}
}

func TestOpenUnknownKind(t *testing.T) {
	if _, err := Open(context.Background(), "mysql", "x"); err == nil {
		t.Error("Expected error for unknown sink kind")
	}
}
