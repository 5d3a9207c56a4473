package store

import "time"

// Auth represents OAuth tokens for Strava API access
type Auth struct {
	AthleteID    int64     `db:"athlete_id"`
	AccessToken  string    `db:"access_token"`
	RefreshToken string    `db:"refresh_token"`
	ExpiresAt    time.Time `db:"expires_at"`
}

// Race sources
const (
	SourceManual = "manual"
	SourceStrava = "strava"
)

// Race is a recorded race result and the VDOT it implies
type Race struct {
	ID              int64     `db:"id"`
	Source          string    `db:"source"`      // "manual" or "strava"
	ExternalID      *int64    `db:"external_id"` // Strava activity ID; nil for manual races
	Name            string    `db:"name"`
	DistanceMeters  float64   `db:"distance_meters"`
	DurationSeconds float64   `db:"duration_seconds"`
	RacedAt         time.Time `db:"raced_at"`
	VDOT            float64   `db:"vdot"`
}

// RacePrediction represents a projected race time
type RacePrediction struct {
	ID               int64     `db:"id"`
	TargetDistance   string    `db:"target_distance"` // "5k", "10k", "half", "marathon"
	TargetMeters     float64   `db:"target_meters"`
	PredictedSeconds int       `db:"predicted_seconds"`
	PredictedPace    float64   `db:"predicted_pace"` // seconds per km
	VDOT             float64   `db:"vdot"`
	SourceRaceID     *int64    `db:"source_race_id"` // nil when VDOT came from config
	Confidence       string    `db:"confidence"`     // "high", "medium", "low"
	ConfidenceScore  float64   `db:"confidence_score"`
	ComputedAt       time.Time `db:"computed_at"`
}
