package service

import "time"

const (
	// Strava runs shorter than this are not treated as race results
	MinRaceDistanceMeters = 400

	// ImportOverlap re-fetches recent activities that may have been tagged as races since
	ImportOverlap = 14 * 24 * time.Hour

	// DefaultRecentDays is the race selection window when config leaves it unset
	DefaultRecentDays = 365

	// Display formats
	DateFormat = "Jan 02, 2006"

	// Sync phases reported through SyncProgress
	PhaseActivities  = "activities"
	PhaseRaces       = "races"
	PhasePredictions = "predictions"
)

// IntensityDescriptions explains what each training zone is for
var IntensityDescriptions = map[string]string{
	"easy":       "Recovery, warm-up and long runs",
	"marathon":   "Goal marathon pace",
	"threshold":  "Comfortably hard tempo running",
	"interval":   "3-5 minute repeats at VO2max",
	"repetition": "Short fast repeats for speed and economy",
}

// window returns the race selection window for a configured number of days
func window(days int) time.Duration {
	if days <= 0 {
		days = DefaultRecentDays
	}
	return time.Duration(days) * 24 * time.Hour
}
