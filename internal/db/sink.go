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
	"time"

	"github.com/pgEdge/pgedge-agrigen/internal/session"
	"github.com/pgEdge/pgedge-agrigen/pkg/version"
)

// Sink kinds accepted by Open.
const (
	KindPostgres = "postgres"
	KindSQLite   = "sqlite"
)

const (
	recordsTable  = "agri_records"
	metadataTable = "agrigen_metadata"
)

// Sink persists a generated snapshot.
type Sink interface {
	// Write stores every record of the snapshot plus its metadata.
	Write(ctx context.Context, snap *session.Snapshot) error

	// Metadata returns the key/value pairs of the last written snapshot.
	Metadata(ctx context.Context) (map[string]string, error)

	Close() error
}

// Open returns the sink of the given kind. dsn is a PostgreSQL connection
// string or a SQLite file path.
func Open(ctx context.Context, kind, dsn string) (Sink, error) {
	switch kind {
	case KindPostgres:
		pool, err := Connect(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return NewPostgresSink(pool), nil
	case KindSQLite:
		sink, err := OpenSQLite(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return sink, nil
	default:
		return nil, fmt.Errorf("unknown sink kind %q (expected %s or %s)", kind, KindPostgres, KindSQLite)
	}
}

// snapshotMetadata is the key/value set stored next to each load.
func snapshotMetadata(snap *session.Snapshot) map[string]string {
	return map[string]string{
		"snapshot_id":  snap.ID.String(),
		"seed":         fmt.Sprintf("%d", snap.Seed),
		"rows":         fmt.Sprintf("%d", len(snap.Records)),
		"version":      version.Short(),
		"generated_at": snap.GeneratedAt.UTC().Format(time.RFC3339),
	}
}
