package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"runpace/internal/store"
	"runpace/internal/strava"
	"runpace/internal/units"
)

// ActivitySource lists Strava activities. *strava.Client satisfies it.
type ActivitySource interface {
	GetAllActivities(ctx context.Context, after time.Time, onProgress func(fetched int)) ([]strava.Activity, error)
	RateLimitStatus() (shortRemaining, dailyRemaining int)
}

// SyncService imports races from Strava
type SyncService struct {
	client ActivitySource
	store  *store.DB
	races  *RaceService
	log    zerolog.Logger
	now    func() time.Time
}

// NewSyncService creates a new sync service. Imported races are scored and
// predictions recomputed through races.
func NewSyncService(client ActivitySource, db *store.DB, races *RaceService, log zerolog.Logger) *SyncService {
	return &SyncService{
		client: client,
		store:  db,
		races:  races,
		log:    log.With().Str("component", "sync").Logger(),
		now:    time.Now,
	}
}

// SyncProgress reports progress during sync
type SyncProgress struct {
	Phase       string // "activities", "races", "predictions"
	Total       int
	Completed   int
	CurrentRace string
}

// SyncResult contains the results of a sync operation
type SyncResult struct {
	ActivitiesFetched int
	RacesFound        int
	RacesImported     int
	RacesUpdated      int
	Errors            []error
}

// ImportRaces fetches activities started since the last import and stores
// every run tagged as a race. Runs are often tagged after upload, so the
// window reaches ImportOverlap back past the last import. progress may be nil; if not it is closed when
// the import returns. The import mark only advances when every activity was
// fetched, so an interrupted sync is retried in full next time.
func (s *SyncService) ImportRaces(ctx context.Context, progress chan<- SyncProgress) (*SyncResult, error) {
	if progress != nil {
		defer close(progress)
	}

	result := &SyncResult{}
	started := s.now()

	after, err := s.store.GetSyncTime(store.SyncKeyLastRaceImport)
	if err != nil {
		return result, fmt.Errorf("reading last import time: %w", err)
	}
	if !after.IsZero() {
		after = after.Add(-ImportOverlap)
	}

	s.log.Info().Time("after", after).Msg("importing races")
	s.report(ctx, progress, SyncProgress{Phase: PhaseActivities})

	activities, err := s.client.GetAllActivities(ctx, after, func(fetched int) {
		s.report(ctx, progress, SyncProgress{Phase: PhaseActivities, Total: fetched, Completed: fetched})
	})
	result.ActivitiesFetched = len(activities)
	if err != nil {
		return result, fmt.Errorf("fetching activities: %w", err)
	}

	var races []strava.Activity
	for _, a := range activities {
		if a.IsRace() {
			races = append(races, a)
		}
	}
	result.RacesFound = len(races)

	for i, a := range races {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		s.report(ctx, progress, SyncProgress{
			Phase:       PhaseRaces,
			Total:       len(races),
			Completed:   i,
			CurrentRace: a.Name,
		})

		inserted, err := s.storeRace(a)
		if err != nil {
			s.log.Warn().Err(err).Int64("activity_id", a.ID).Msg("skipping race")
			result.Errors = append(result.Errors, fmt.Errorf("activity %d (%s): %w", a.ID, a.Name, err))
			continue
		}
		if inserted {
			result.RacesImported++
		} else {
			result.RacesUpdated++
		}
	}

	if err := s.store.SetSyncTime(store.SyncKeyLastRaceImport, started); err != nil {
		return result, fmt.Errorf("saving import time: %w", err)
	}

	s.report(ctx, progress, SyncProgress{Phase: PhasePredictions, Total: 1})
	if err := s.races.RecomputePredictions(); err != nil {
		return result, fmt.Errorf("recomputing predictions: %w", err)
	}

	s.log.Info().
		Int("fetched", result.ActivitiesFetched).
		Int("races", result.RacesFound).
		Int("imported", result.RacesImported).
		Int("updated", result.RacesUpdated).
		Int("errors", len(result.Errors)).
		Msg("race import finished")

	return result, nil
}

// RateLimitStatus returns the remaining Strava request budget
func (s *SyncService) RateLimitStatus() (shortRemaining, dailyRemaining int) {
	return s.client.RateLimitStatus()
}

func (s *SyncService) storeRace(a strava.Activity) (bool, error) {
	if a.Distance < MinRaceDistanceMeters {
		return false, fmt.Errorf("%w: %.0f m is too short", ErrInvalidRace, a.Distance)
	}

	race, err := newRace(a.Name, units.Meters(a.Distance), a.RaceDuration(), a.StartDate)
	if err != nil {
		return false, err
	}

	id := a.ID
	race.ExternalID = &id
	return s.store.UpsertStravaRace(race)
}

// report sends progress without outliving a cancelled context
func (s *SyncService) report(ctx context.Context, progress chan<- SyncProgress, p SyncProgress) {
	if progress == nil {
		return
	}
	select {
	case progress <- p:
	case <-ctx.Done():
	}
}
