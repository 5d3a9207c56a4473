package service

import (
	"errors"
	"fmt"
	"time"

	"runpace/internal/analysis"
	"runpace/internal/config"
	"runpace/internal/store"
	"runpace/internal/units"
	"runpace/internal/vdot"
)

// QueryService provides read-only queries for the TUI
type QueryService struct {
	store *store.DB
	cfg   config.TrainingConfig
	now   func() time.Time
}

// NewQueryService creates a new query service
func NewQueryService(db *store.DB, cfg config.TrainingConfig) *QueryService {
	return &QueryService{store: db, cfg: cfg, now: time.Now}
}

// Fitness is the current VDOT and where it came from
type Fitness struct {
	VDOT              vdot.VDOT
	Label             string // "Competitive", "Intermediate", etc.
	Source            analysis.Source
	SourceDescription string
	Manual            bool
}

// CurrentVDOT returns the fitness estimate paces and predictions use.
// A VDOT set in config overrides race results. Returns ErrNoFitness when
// there is neither.
func (q *QueryService) CurrentVDOT() (*Fitness, error) {
	src, err := currentSource(q.store, q.cfg, q.now())
	if err != nil {
		return nil, err
	}

	return &Fitness{
		VDOT:              src.VDOT,
		Label:             analysis.GetVDOTLabel(src.VDOT.Value()),
		Source:            src,
		SourceDescription: describeSource(src),
		Manual:            src.IsManual(),
	}, nil
}

// PaceDisplay is one training zone ready for display
type PaceDisplay struct {
	Name        string // "Easy", "Marathon", ...
	Description string
	Fraction    float64
	Speed       units.Speed
	PerKm       time.Duration
	PerMile     time.Duration
	Per400m     time.Duration
}

// PacesData contains all data needed for the paces screen
type PacesData struct {
	Fitness  *Fitness
	Paces    []PaceDisplay
	HasPaces bool
}

// GetTrainingPaces returns training paces for the current VDOT.
// With no fitness source it returns empty data rather than an error.
func (q *QueryService) GetTrainingPaces() (*PacesData, error) {
	fitness, err := q.CurrentVDOT()
	if errors.Is(err, ErrNoFitness) {
		return &PacesData{}, nil
	}
	if err != nil {
		return nil, err
	}

	data := &PacesData{Fitness: fitness, HasPaces: true}
	for _, p := range analysis.TrainingPaces(fitness.VDOT) {
		data.Paces = append(data.Paces, PaceDisplay{
			Name:        capitalizeFirst(p.Intensity.String()),
			Description: IntensityDescriptions[p.Intensity.String()],
			Fraction:    p.Fraction,
			Speed:       p.Speed,
			PerKm:       p.PerKm,
			PerMile:     p.PerMile,
			Per400m:     p.Per400m,
		})
	}

	return data, nil
}

// RaceDisplay is a stored race ready for display
type RaceDisplay struct {
	ID            int64
	Name          string
	Source        string // "manual" or "strava"
	Date          string
	RacedAt       time.Time
	Distance      units.Distance
	DistanceLabel string // "10K", or "" for non-standard distances
	Time          string
	Speed         units.Speed
	VDOT          float64
}

// RacesData contains all data needed for the races screen
type RacesData struct {
	Races       []RaceDisplay // newest first
	VDOTHistory []float64     // oldest first, for charting
	BestVDOT    float64
}

// GetRaces returns every stored race
func (q *QueryService) GetRaces() (*RacesData, error) {
	races, err := q.store.ListRaces()
	if err != nil {
		return nil, fmt.Errorf("listing races: %w", err)
	}

	data := &RacesData{VDOTHistory: analysis.VDOTHistory(races)}
	for _, r := range races {
		distance := units.Meters(r.DistanceMeters)
		elapsed := secondsToDuration(r.DurationSeconds)

		data.Races = append(data.Races, RaceDisplay{
			ID:            r.ID,
			Name:          r.Name,
			Source:        r.Source,
			Date:          r.RacedAt.Local().Format(DateFormat),
			RacedAt:       r.RacedAt,
			Distance:      distance,
			DistanceLabel: analysis.StandardDistanceLabel(r.DistanceMeters),
			Time:          units.FormatDuration(elapsed),
			Speed:         units.SpeedOver(distance, elapsed),
			VDOT:          r.VDOT,
		})

		if r.VDOT > data.BestVDOT {
			data.BestVDOT = r.VDOT
		}
	}

	return data, nil
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// capitalizeFirst capitalizes the first letter of a string
func capitalizeFirst(s string) string {
	if len(s) == 0 {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-32) + s[1:]
	}
	return s
}
