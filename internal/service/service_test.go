package service

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"runpace/internal/config"
	"runpace/internal/store"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

// fiveK55 is the 5K time a VDOT of 55 projects to
const fiveK55 = 1102212400 * time.Nanosecond

// openTestDB creates an in-memory SQLite database with migrations applied
func openTestDB(t *testing.T) *store.DB {
	t.Helper()

	db, err := store.OpenPath(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func newTestServices(t *testing.T, cfg config.TrainingConfig) (*store.DB, *RaceService, *QueryService) {
	t.Helper()

	db := openTestDB(t)
	races := NewRaceService(db, cfg, zerolog.Nop())
	races.now = func() time.Time { return testNow }
	query := NewQueryService(db, cfg)
	query.now = func() time.Time { return testNow }

	return db, races, query
}
