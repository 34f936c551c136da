// Package session memoizes one generated table for the lifetime of a
// process, so filters and exports never regenerate random data.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/pgEdge/pgedge-agrigen/internal/agri"
	"github.com/pgEdge/pgedge-agrigen/internal/datagen"
	"github.com/pgEdge/pgedge-agrigen/internal/logging"
)

// Snapshot is one generated table and the inputs that produced it.
type Snapshot struct {
	ID          uuid.UUID     `json:"id"`
	Seed        uint64        `json:"seed"`
	GeneratedAt time.Time     `json:"generated_at"`
	Records     []agri.Record `json:"-"`
}

// Config selects what a session generates.
type Config struct {
	// Seed feeds the random source; 0 picks a time-based seed.
	Seed uint64

	// States and Crops override the built-in lists when non-empty.
	States []string
	Crops  []string

	// Clock stamps GeneratedAt.
	Clock clockwork.Clock
}

// Session lazily generates its snapshot once.
type Session struct {
	cfg      Config
	once     sync.Once
	snapshot *Snapshot
}

// New creates a session; nothing is generated until Snapshot is called.
func New(cfg Config) *Session {
	if len(cfg.States) == 0 {
		cfg.States = agri.States()
	}
	if len(cfg.Crops) == 0 {
		cfg.Crops = agri.Crops()
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return &Session{cfg: cfg}
}

// Snapshot returns the memoized table, generating it on first use.
func (s *Session) Snapshot() *Snapshot {
	s.once.Do(func() {
		src := datagen.NewFakerWithSeed(s.cfg.Seed)
		records := agri.Generate(src, s.cfg.States, s.cfg.Crops, agri.Coordinates())
		s.snapshot = &Snapshot{
			ID:          uuid.New(),
			Seed:        src.Seed(),
			GeneratedAt: s.cfg.Clock.Now().UTC(),
			Records:     records,
		}
		logging.Info().
			Str("snapshot", s.snapshot.ID.String()).
			Uint64("seed", s.snapshot.Seed).
			Int("rows", len(records)).
			Msg("Generated agriculture data")
	})
	return s.snapshot
}

// Records returns the memoized table. Callers must not modify it.
func (s *Session) Records() []agri.Record {
	return s.Snapshot().Records
}
