package analysis

import (
	"errors"
	"fmt"
	"math"
	"time"

	"runpace/internal/store"
	"runpace/internal/units"
	"runpace/internal/vdot"
)

// manualConfidence is the score given to projections from a configured VDOT,
// where there is no race to judge recency or extrapolation by
const manualConfidence = 0.8

// Source is the fitness estimate predictions are derived from: either a race
// result or a VDOT set by hand.
type Source struct {
	RaceID   *int64
	Name     string
	Distance units.Distance // zero for a manual VDOT
	Elapsed  time.Duration
	RacedAt  time.Time
	VDOT     vdot.VDOT
}

// IsManual reports whether the source is a configured VDOT rather than a race
func (s Source) IsManual() bool {
	return s.Distance.Meters() == 0
}

// SourceFromRace builds a prediction source from a stored race
func SourceFromRace(r store.Race) Source {
	id := r.ID
	return Source{
		RaceID:   &id,
		Name:     r.Name,
		Distance: units.Meters(r.DistanceMeters),
		Elapsed:  time.Duration(r.DurationSeconds * float64(time.Second)),
		RacedAt:  r.RacedAt,
		VDOT:     vdot.New(r.VDOT),
	}
}

// ManualSource builds a prediction source from a configured VDOT value
func ManualSource(value float64) Source {
	return Source{Name: "Configured VDOT", VDOT: vdot.New(value)}
}

// RacePrediction represents a projected race time
type RacePrediction struct {
	TargetName      string
	TargetLabel     string
	Distance        units.Distance
	Time            time.Duration
	PacePerKm       time.Duration
	VDOT            float64
	Confidence      string  // "high", "medium", "low"
	ConfidenceScore float64 // 0.0 to 1.0
}

// SelectSourceRace chooses the race predictions should be based on: the one
// with the highest VDOT among races no older than window. Ties go to the
// longer race, since long efforts extrapolate better. Returns nil if no race
// qualifies.
func SelectSourceRace(races []store.Race, now time.Time, window time.Duration) *store.Race {
	cutoff := now.Add(-window)
	var best *store.Race

	for i := range races {
		r := &races[i]

		if r.RacedAt.Before(cutoff) || r.RacedAt.After(now) {
			continue
		}
		if r.DistanceMeters <= 0 || r.DurationSeconds <= 0 {
			continue
		}

		if best == nil ||
			r.VDOT > best.VDOT ||
			(r.VDOT == best.VDOT && r.DistanceMeters > best.DistanceMeters) {
			best = r
		}
	}

	return best
}

// CalculateConfidence calculates a confidence score for a prediction.
// Factors: distance extrapolation ratio and race recency.
// Returns a score from 0.0 to 1.0 and its label.
func CalculateConfidence(source Source, target units.Distance, now time.Time) (float64, string) {
	score := 1.0

	if source.IsManual() {
		score = manualConfidence
	} else {
		// Predictions are less reliable when extrapolating far from the race distance
		ratio := target.Meters() / source.Distance.Meters()
		if ratio < 1 {
			ratio = 1 / ratio
		}

		switch {
		case ratio > 4:
			score *= 0.7 // e.g. 5K to marathon
		case ratio > 2:
			score *= 0.85
		case ratio > 1.5:
			score *= 0.95
		}

		daysSince := now.Sub(source.RacedAt).Hours() / 24
		switch {
		case daysSince > 180:
			score *= 0.75
		case daysSince > 90:
			score *= 0.9
		case daysSince > 30:
			score *= 0.95
		}
	}

	var label string
	switch {
	case score >= 0.85:
		label = "high"
	case score >= 0.65:
		label = "medium"
	default:
		label = "low"
	}

	return score, label
}

// GeneratePredictions projects race times for every target distance.
// Targets within 5% of the source race distance are skipped. A target the
// model cannot solve is left out and its error joined into the returned
// error, so callers get every prediction that could be made.
func GeneratePredictions(source Source, now time.Time) ([]RacePrediction, error) {
	var predictions []RacePrediction
	var errs []error

	for _, target := range PredictionTargets {
		if !source.IsManual() && matchesDistance(target.Distance.Meters(), source.Distance.Meters()) {
			continue
		}

		elapsed, err := source.VDOT.ProjectedRaceTime(target.Distance)
		if err != nil {
			errs = append(errs, fmt.Errorf("projecting %s: %w", target.Name, err))
			continue
		}

		score, label := CalculateConfidence(source, target.Distance, now)

		predictions = append(predictions, RacePrediction{
			TargetName:      target.Name,
			TargetLabel:     target.Label,
			Distance:        target.Distance,
			Time:            elapsed,
			PacePerKm:       units.SpeedOver(target.Distance, elapsed).Pace(units.Kilometers(1)),
			VDOT:            source.VDOT.Value(),
			Confidence:      label,
			ConfidenceScore: math.Round(score*100) / 100,
		})
	}

	return predictions, errors.Join(errs...)
}

// ToStore converts predictions into rows for persistence
func ToStore(predictions []RacePrediction, source Source, computedAt time.Time) []store.RacePrediction {
	rows := make([]store.RacePrediction, 0, len(predictions))
	for _, p := range predictions {
		rows = append(rows, store.RacePrediction{
			TargetDistance:   p.TargetName,
			TargetMeters:     p.Distance.Meters(),
			PredictedSeconds: int(p.Time.Round(time.Second) / time.Second),
			PredictedPace:    p.PacePerKm.Seconds(),
			VDOT:             p.VDOT,
			SourceRaceID:     source.RaceID,
			Confidence:       p.Confidence,
			ConfidenceScore:  p.ConfidenceScore,
			ComputedAt:       computedAt,
		})
	}
	return rows
}
