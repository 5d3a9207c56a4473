package store

import (
	"errors"
	"testing"
	"time"
)

// setupTestDB creates an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := OpenPath(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestAuth(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.GetAuth(); !errors.Is(err, ErrNoAuth) {
		t.Fatalf("GetAuth() on empty db error = %v, want ErrNoAuth", err)
	}
	if err := db.UpdateTokens("a", "r", time.Now()); !errors.Is(err, ErrNoAuth) {
		t.Errorf("UpdateTokens() before SaveAuth error = %v, want ErrNoAuth", err)
	}

	expires := time.Unix(1760000000, 0)
	if err := db.SaveAuth(&Auth{AthleteID: 42, AccessToken: "access", RefreshToken: "refresh", ExpiresAt: expires}); err != nil {
		t.Fatalf("SaveAuth() error = %v", err)
	}

	newExpiry := expires.Add(6 * time.Hour)
	if err := db.UpdateTokens("access2", "refresh2", newExpiry); err != nil {
		t.Fatalf("UpdateTokens() error = %v", err)
	}

	got, err := db.GetAuth()
	if err != nil {
		t.Fatalf("GetAuth() error = %v", err)
	}
	if got.AthleteID != 42 || got.AccessToken != "access2" || got.RefreshToken != "refresh2" {
		t.Errorf("GetAuth() = %+v", got)
	}
	if !got.ExpiresAt.Equal(newExpiry) {
		t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, newExpiry)
	}

	if err := db.ClearAuth(); err != nil {
		t.Fatalf("ClearAuth() error = %v", err)
	}
	if _, err := db.GetAuth(); !errors.Is(err, ErrNoAuth) {
		t.Errorf("GetAuth() after ClearAuth error = %v, want ErrNoAuth", err)
	}
}

func TestSyncState(t *testing.T) {
	db := setupTestDB(t)

	got, err := db.GetSyncState("missing")
	if err != nil || got != "" {
		t.Errorf("GetSyncState(missing) = %q, %v; want empty, nil", got, err)
	}

	if err := db.SetSyncState("k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetSyncState("k", "v2"); err != nil {
		t.Fatal(err)
	}
	if got, _ := db.GetSyncState("k"); got != "v2" {
		t.Errorf("GetSyncState(k) = %q, want v2", got)
	}

	zero, err := db.GetSyncTime(SyncKeyLastRaceImport)
	if err != nil || !zero.IsZero() {
		t.Errorf("GetSyncTime() unset = %v, %v; want zero, nil", zero, err)
	}

	when := time.Date(2026, 4, 12, 9, 30, 0, 0, time.UTC)
	if err := db.SetSyncTime(SyncKeyLastRaceImport, when); err != nil {
		t.Fatal(err)
	}
	got2, err := db.GetSyncTime(SyncKeyLastRaceImport)
	if err != nil {
		t.Fatalf("GetSyncTime() error = %v", err)
	}
	if !got2.Equal(when) {
		t.Errorf("GetSyncTime() = %v, want %v", got2, when)
	}
}
