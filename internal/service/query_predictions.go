package service

import (
	"fmt"
	"time"

	"runpace/internal/analysis"
	"runpace/internal/units"
)

// PredictionDisplay represents a formatted prediction for display
type PredictionDisplay struct {
	TargetDistance  string // "5k", "10k", "half", "marathon"
	TargetLabel     string // "5K", "10K", "Half Marathon", "Marathon"
	Distance        units.Distance
	PredictedTime   string // "M:SS" or "H:MM:SS"
	Speed           units.Speed
	Confidence      string // "High", "Medium", "Low"
	ConfidenceScore float64
}

// PredictionsData contains all data needed for the predictions screen
type PredictionsData struct {
	Predictions    []PredictionDisplay
	VDOT           float64
	VDOTLabel      string // "Advanced Recreational", "Competitive", etc.
	SourceName     string // "10K race: City 10K" or "Configured VDOT"
	SourceDate     string // "Oct 15, 2025"
	SourceTime     string // formatted source race time
	LastUpdated    string // when predictions were computed
	HasPredictions bool
}

// GetRacePredictions retrieves the stored race predictions formatted for display
func (q *QueryService) GetRacePredictions() (*PredictionsData, error) {
	predictions, err := q.store.GetAllRacePredictions()
	if err != nil {
		return nil, fmt.Errorf("loading predictions: %w", err)
	}

	data := &PredictionsData{
		HasPredictions: len(predictions) > 0,
	}

	if len(predictions) == 0 {
		return data, nil
	}

	// All predictions in a set share one source
	first := predictions[0]
	data.VDOT = first.VDOT
	data.VDOTLabel = analysis.GetVDOTLabel(first.VDOT)
	data.LastUpdated = first.ComputedAt.Local().Format(DateFormat)

	if err := q.fillSource(data, first.SourceRaceID); err != nil {
		return nil, err
	}

	for _, p := range predictions {
		distance := units.Meters(p.TargetMeters)
		elapsed := time.Duration(p.PredictedSeconds) * time.Second

		data.Predictions = append(data.Predictions, PredictionDisplay{
			TargetDistance:  p.TargetDistance,
			TargetLabel:     analysis.GetTargetLabel(p.TargetDistance),
			Distance:        distance,
			PredictedTime:   units.FormatDuration(elapsed),
			Speed:           units.SpeedOver(distance, elapsed),
			Confidence:      capitalizeFirst(p.Confidence),
			ConfidenceScore: p.ConfidenceScore,
		})
	}

	return data, nil
}

// fillSource looks up the race predictions were derived from. Deleting a
// race nulls the reference, so without a configured VDOT a missing race
// means the stored set is stale.
func (q *QueryService) fillSource(data *PredictionsData, raceID *int64) error {
	if raceID == nil {
		if q.cfg.VDOT > 0 {
			data.SourceName = analysis.ManualSource(data.VDOT).Name
		} else {
			data.SourceName = "Deleted race"
		}
		return nil
	}

	race, err := q.store.GetRace(*raceID)
	if err != nil {
		return fmt.Errorf("loading source race: %w", err)
	}

	src := analysis.SourceFromRace(*race)
	data.SourceName = describeSource(src)
	data.SourceDate = race.RacedAt.Local().Format(DateFormat)
	data.SourceTime = units.FormatDuration(src.Elapsed)
	return nil
}
