package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"runpace/internal/analysis"
	"runpace/internal/config"
	"runpace/internal/store"
	"runpace/internal/units"
	"runpace/internal/vdot"
)

// ErrInvalidRace is returned for race results the model cannot score
var ErrInvalidRace = errors.New("invalid race result")

// RaceService records race results and keeps predictions in step with them
type RaceService struct {
	store *store.DB
	cfg   config.TrainingConfig
	log   zerolog.Logger
	now   func() time.Time
}

// NewRaceService creates a new race service
func NewRaceService(db *store.DB, cfg config.TrainingConfig, log zerolog.Logger) *RaceService {
	return &RaceService{
		store: db,
		cfg:   cfg,
		log:   log.With().Str("component", "races").Logger(),
		now:   time.Now,
	}
}

// AddRace scores a manually entered race, stores it and recomputes predictions
func (s *RaceService) AddRace(name string, distance units.Distance, elapsed time.Duration, racedAt time.Time) (*store.Race, error) {
	race, err := newRace(name, distance, elapsed, racedAt)
	if err != nil {
		return nil, err
	}
	race.Source = store.SourceManual

	if err := s.store.InsertRace(race); err != nil {
		return nil, fmt.Errorf("storing race: %w", err)
	}

	s.log.Info().
		Int64("race_id", race.ID).
		Float64("meters", race.DistanceMeters).
		Float64("seconds", race.DurationSeconds).
		Float64("vdot", race.VDOT).
		Msg("race added")

	if err := s.RecomputePredictions(); err != nil {
		return race, err
	}
	return race, nil
}

// DeleteRace removes a race and recomputes predictions without it
func (s *RaceService) DeleteRace(id int64) error {
	if err := s.store.DeleteRace(id); err != nil {
		return fmt.Errorf("deleting race %d: %w", id, err)
	}
	s.log.Info().Int64("race_id", id).Msg("race deleted")
	return s.RecomputePredictions()
}

// RecomputePredictions rebuilds the stored prediction set from the current
// fitness source. With no source the stored predictions are cleared.
// Targets the solver cannot handle are logged and left out.
func (s *RaceService) RecomputePredictions() error {
	now := s.now()

	source, err := currentSource(s.store, s.cfg, now)
	if errors.Is(err, ErrNoFitness) {
		s.log.Debug().Msg("no fitness source, clearing predictions")
		return s.store.DeleteAllRacePredictions()
	}
	if err != nil {
		return err
	}

	predictions, genErr := analysis.GeneratePredictions(source, now)
	if genErr != nil {
		s.log.Warn().Err(genErr).Float64("vdot", source.VDOT.Value()).Msg("some predictions could not be computed")
		if len(predictions) == 0 {
			return fmt.Errorf("generating predictions: %w", genErr)
		}
	}

	if err := s.store.ReplaceRacePredictions(analysis.ToStore(predictions, source, now)); err != nil {
		return fmt.Errorf("saving predictions: %w", err)
	}

	s.log.Debug().
		Int("count", len(predictions)).
		Float64("vdot", source.VDOT.Value()).
		Bool("manual", source.IsManual()).
		Msg("predictions recomputed")
	return nil
}

// newRace validates a result and scores it with the VDOT model
func newRace(name string, distance units.Distance, elapsed time.Duration, racedAt time.Time) (*store.Race, error) {
	if distance.Meters() <= 0 {
		return nil, fmt.Errorf("%w: distance must be positive", ErrInvalidRace)
	}
	if elapsed <= 0 {
		return nil, fmt.Errorf("%w: time must be positive", ErrInvalidRace)
	}

	v := vdot.FromRace(distance, elapsed).Value()
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return nil, fmt.Errorf("%w: %s in %s gives no usable VDOT", ErrInvalidRace, distance, units.FormatDuration(elapsed))
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultRaceName(distance)
	}

	return &store.Race{
		Name:            name,
		DistanceMeters:  distance.Meters(),
		DurationSeconds: elapsed.Seconds(),
		RacedAt:         racedAt,
		VDOT:            v,
	}, nil
}

func defaultRaceName(distance units.Distance) string {
	if label := analysis.StandardDistanceLabel(distance.Meters()); label != "" {
		return label
	}
	return distance.String()
}
