package store

import (
	"testing"
	"time"
)

func TestRacePredictions(t *testing.T) {
	db := setupTestDB(t)

	source := &Race{Source: SourceManual, Name: "5K", DistanceMeters: 5000, DurationSeconds: 1140, RacedAt: time.Now(), VDOT: 52.9}
	if err := db.InsertRace(source); err != nil {
		t.Fatalf("InsertRace() error = %v", err)
	}

	now := time.Now().Truncate(time.Second)

	t.Run("ReplaceRacePredictions stores every field", func(t *testing.T) {
		predictions := []RacePrediction{{
			TargetDistance:   "10k",
			TargetMeters:     10000,
			PredictedSeconds: 2365,
			PredictedPace:    236.5,
			VDOT:             52.9,
			SourceRaceID:     &source.ID,
			Confidence:       "high",
			ConfidenceScore:  0.95,
			ComputedAt:       now,
		}}

		if err := db.ReplaceRacePredictions(predictions); err != nil {
			t.Fatalf("ReplaceRacePredictions() error = %v", err)
		}

		all, err := db.GetAllRacePredictions()
		if err != nil {
			t.Fatalf("GetAllRacePredictions() error = %v", err)
		}
		if len(all) != 1 {
			t.Fatalf("GetAllRacePredictions() returned %d predictions, want 1", len(all))
		}

		got := all[0]
		if got.PredictedSeconds != 2365 || got.PredictedPace != 236.5 {
			t.Errorf("prediction = %+v", got)
		}
		if got.SourceRaceID == nil || *got.SourceRaceID != source.ID {
			t.Errorf("SourceRaceID = %v, want %d", got.SourceRaceID, source.ID)
		}
		if got.Confidence != "high" || got.ConfidenceScore != 0.95 {
			t.Errorf("confidence = %s %v, want high 0.95", got.Confidence, got.ConfidenceScore)
		}
		if !got.ComputedAt.Equal(now) {
			t.Errorf("ComputedAt = %v, want %v", got.ComputedAt, now)
		}
	})

	t.Run("ReplaceRacePredictions swaps the set, ordered by distance", func(t *testing.T) {
		predictions := []RacePrediction{
			{TargetDistance: "marathon", TargetMeters: 42195, PredictedSeconds: 10800, PredictedPace: 256, VDOT: 53, Confidence: "low", ConfidenceScore: 0.6, ComputedAt: now},
			{TargetDistance: "5k", TargetMeters: 5000, PredictedSeconds: 1130, PredictedPace: 226, VDOT: 53, SourceRaceID: &source.ID, Confidence: "high", ConfidenceScore: 1, ComputedAt: now},
			{TargetDistance: "half", TargetMeters: 21097.5, PredictedSeconds: 5150, PredictedPace: 244, VDOT: 53, Confidence: "medium", ConfidenceScore: 0.8, ComputedAt: now},
		}

		if err := db.ReplaceRacePredictions(predictions); err != nil {
			t.Fatalf("ReplaceRacePredictions() error = %v", err)
		}

		all, err := db.GetAllRacePredictions()
		if err != nil {
			t.Fatalf("GetAllRacePredictions() error = %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("GetAllRacePredictions() returned %d predictions, want 3", len(all))
		}

		want := []string{"5k", "half", "marathon"}
		for i, w := range want {
			if all[i].TargetDistance != w {
				t.Errorf("prediction %d = %v, want %v", i, all[i].TargetDistance, w)
			}
		}
	})

	t.Run("deleting the source race keeps predictions", func(t *testing.T) {
		if err := db.DeleteRace(source.ID); err != nil {
			t.Fatal(err)
		}
		all, err := db.GetAllRacePredictions()
		if err != nil {
			t.Fatalf("GetAllRacePredictions() error = %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("GetAllRacePredictions() returned %d predictions, want 3", len(all))
		}
		if all[0].SourceRaceID != nil {
			t.Errorf("SourceRaceID = %v after source deleted, want nil", *all[0].SourceRaceID)
		}
	})

	t.Run("DeleteAllRacePredictions clears all predictions", func(t *testing.T) {
		if err := db.DeleteAllRacePredictions(); err != nil {
			t.Fatalf("DeleteAllRacePredictions() error = %v", err)
		}

		all, err := db.GetAllRacePredictions()
		if err != nil {
			t.Fatalf("GetAllRacePredictions() error = %v", err)
		}
		if len(all) != 0 {
			t.Errorf("GetAllRacePredictions() returned %d predictions after delete, want 0", len(all))
		}
	})
}
