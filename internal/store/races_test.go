package store

import (
	"errors"
	"testing"
	"time"
)

func TestRaces(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("InsertRace assigns ID and GetRace reads it back", func(t *testing.T) {
		r := &Race{
			Source:          SourceManual,
			Name:            "Park 5K",
			DistanceMeters:  5000,
			DurationSeconds: 1102.5,
			RacedAt:         base,
			VDOT:            55.0,
		}
		if err := db.InsertRace(r); err != nil {
			t.Fatalf("InsertRace() error = %v", err)
		}
		if r.ID == 0 {
			t.Fatal("InsertRace() did not set ID")
		}

		got, err := db.GetRace(r.ID)
		if err != nil {
			t.Fatalf("GetRace() error = %v", err)
		}
		if got.Name != "Park 5K" || got.DurationSeconds != 1102.5 || got.VDOT != 55.0 {
			t.Errorf("GetRace() = %+v", got)
		}
		if got.ExternalID != nil {
			t.Errorf("ExternalID = %v, want nil for manual race", *got.ExternalID)
		}
		if !got.RacedAt.Equal(base) {
			t.Errorf("RacedAt = %v, want %v", got.RacedAt, base)
		}
	})

	t.Run("GetRace returns ErrRaceNotFound", func(t *testing.T) {
		if _, err := db.GetRace(9999); !errors.Is(err, ErrRaceNotFound) {
			t.Errorf("GetRace() error = %v, want ErrRaceNotFound", err)
		}
	})

	t.Run("UpsertStravaRace inserts then updates", func(t *testing.T) {
		r := &Race{
			ExternalID:      int64Ptr(777),
			Name:            "City 10K",
			DistanceMeters:  10020,
			DurationSeconds: 2300,
			RacedAt:         base.AddDate(0, 0, 14),
			VDOT:            54.1,
		}
		inserted, err := db.UpsertStravaRace(r)
		if err != nil {
			t.Fatalf("UpsertStravaRace() error = %v", err)
		}
		if !inserted {
			t.Error("first UpsertStravaRace() inserted = false")
		}
		firstID := r.ID

		r2 := *r
		r2.Name = "City 10K (renamed)"
		inserted, err = db.UpsertStravaRace(&r2)
		if err != nil {
			t.Fatalf("UpsertStravaRace() error = %v", err)
		}
		if inserted {
			t.Error("second UpsertStravaRace() inserted = true")
		}
		if r2.ID != firstID {
			t.Errorf("updated race ID = %d, want %d", r2.ID, firstID)
		}

		got, err := db.GetRace(firstID)
		if err != nil {
			t.Fatal(err)
		}
		if got.Name != "City 10K (renamed)" || got.Source != SourceStrava {
			t.Errorf("GetRace() = %+v", got)
		}
	})

	t.Run("UpsertStravaRace requires activity ID", func(t *testing.T) {
		if _, err := db.UpsertStravaRace(&Race{Name: "no id"}); err == nil {
			t.Error("expected error for missing activity id")
		}
	})

	t.Run("ListRaces is newest first", func(t *testing.T) {
		races, err := db.ListRaces()
		if err != nil {
			t.Fatalf("ListRaces() error = %v", err)
		}
		if len(races) != 2 {
			t.Fatalf("ListRaces() returned %d races, want 2", len(races))
		}
		if races[0].Name != "City 10K (renamed)" {
			t.Errorf("first race = %q, want the most recent", races[0].Name)
		}
	})

	t.Run("ListRacesSince filters by date", func(t *testing.T) {
		races, err := db.ListRacesSince(base.AddDate(0, 0, 7))
		if err != nil {
			t.Fatalf("ListRacesSince() error = %v", err)
		}
		if len(races) != 1 || races[0].ExternalID == nil || *races[0].ExternalID != 777 {
			t.Errorf("ListRacesSince() = %+v, want only the Strava race", races)
		}
	})

	t.Run("DeleteRace", func(t *testing.T) {
		races, _ := db.ListRaces()
		if err := db.DeleteRace(races[1].ID); err != nil {
			t.Fatalf("DeleteRace() error = %v", err)
		}
		if err := db.DeleteRace(races[1].ID); !errors.Is(err, ErrRaceNotFound) {
			t.Errorf("second DeleteRace() error = %v, want ErrRaceNotFound", err)
		}
	})
}

func TestRaceRejectsNonPositiveDistance(t *testing.T) {
	db := setupTestDB(t)
	err := db.InsertRace(&Race{Source: SourceManual, Name: "bad", DistanceMeters: 0, DurationSeconds: 60, RacedAt: time.Now()})
	if err == nil {
		t.Error("InsertRace() with zero distance succeeded, want constraint error")
	}
}
