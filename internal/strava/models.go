package strava

import "time"

// WorkoutTypeRace is Strava's workout_type for a run tagged as a race
const WorkoutTypeRace = 1

// Activity is the subset of a Strava summary activity needed to record a race
type Activity struct {
	ID             int64     `json:"id"`
	Athlete        Athlete   `json:"athlete"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	SportType      string    `json:"sport_type"`
	WorkoutType    *int      `json:"workout_type"` // null for activities never tagged
	StartDate      time.Time `json:"start_date"`
	StartDateLocal time.Time `json:"start_date_local"`
	Timezone       string    `json:"timezone"`
	Distance       float64   `json:"distance"`     // meters
	MovingTime     int       `json:"moving_time"`  // seconds
	ElapsedTime    int       `json:"elapsed_time"` // seconds
	Manual         bool      `json:"manual"`
}

// Athlete represents a Strava athlete (minimal info in activity response)
type Athlete struct {
	ID int64 `json:"id"`
}

// IsRun reports whether the activity is a run of any kind
func (a Activity) IsRun() bool {
	switch a.SportType {
	case "Run", "TrailRun", "VirtualRun":
		return true
	}
	return a.Type == "Run"
}

// IsRace reports whether the athlete tagged the run as a race
func (a Activity) IsRace() bool {
	return a.IsRun() && a.WorkoutType != nil && *a.WorkoutType == WorkoutTypeRace
}

// RaceDuration is the time a race result is judged on. Races are timed
// gun to finish, so elapsed time is preferred over moving time.
func (a Activity) RaceDuration() time.Duration {
	seconds := a.ElapsedTime
	if seconds <= 0 {
		seconds = a.MovingTime
	}
	return time.Duration(seconds) * time.Second
}
