package service

import (
	"errors"
	"fmt"
	"time"

	"runpace/internal/analysis"
	"runpace/internal/config"
	"runpace/internal/store"
)

// ErrNoFitness is returned when there is neither a recent race nor a
// configured VDOT to base paces and predictions on
var ErrNoFitness = errors.New("no recent race or configured VDOT")

// currentSource decides what fitness estimate to use right now.
// A VDOT set in config wins over race results.
func currentSource(db *store.DB, cfg config.TrainingConfig, now time.Time) (analysis.Source, error) {
	if cfg.VDOT > 0 {
		return analysis.ManualSource(cfg.VDOT), nil
	}

	win := window(cfg.RecentDays)
	races, err := db.ListRacesSince(now.Add(-win))
	if err != nil {
		return analysis.Source{}, fmt.Errorf("listing recent races: %w", err)
	}

	best := analysis.SelectSourceRace(races, now, win)
	if best == nil {
		return analysis.Source{}, ErrNoFitness
	}
	return analysis.SourceFromRace(*best), nil
}

// describeSource renders a short description such as "10K race: City 10K"
func describeSource(src analysis.Source) string {
	if src.IsManual() {
		return src.Name
	}
	label := analysis.StandardDistanceLabel(src.Distance.Meters())
	if label == "" {
		label = src.Distance.String()
	}
	return fmt.Sprintf("%s race: %s", label, src.Name)
}
