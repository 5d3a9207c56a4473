package analysis

import (
	"math"

	"runpace/internal/units"
)

// Standard race distances in meters
const (
	Distance400m     = 400
	Distance800m     = 800
	Distance1500m    = 1500
	Distance1Mile    = 1609.344
	Distance5K       = 5000
	Distance10K      = 10000
	DistanceHalfMara = 21097.5
	DistanceMarathon = 42195

	// DistanceTolerance is the relative slack when matching a race to a standard distance
	DistanceTolerance = 0.05
)

// PredictionTarget is a distance races are projected for
type PredictionTarget struct {
	Name     string // "5k", "10k", "half", "marathon"
	Label    string // "5K", "10K", "Half Marathon", "Marathon"
	Distance units.Distance
}

// PredictionTargets defines the standard prediction distances, shortest first
var PredictionTargets = []PredictionTarget{
	{"1500m", "1500m", units.Meters(Distance1500m)},
	{"mile", "Mile", units.Meters(Distance1Mile)},
	{"5k", "5K", units.Meters(Distance5K)},
	{"10k", "10K", units.Meters(Distance10K)},
	{"half", "Half Marathon", units.Meters(DistanceHalfMara)},
	{"marathon", "Marathon", units.Meters(DistanceMarathon)},
}

// GetTargetLabel returns a human-readable label for a target name
func GetTargetLabel(name string) string {
	for _, t := range PredictionTargets {
		if t.Name == name {
			return t.Label
		}
	}
	return name
}

// StandardDistanceLabel names a race distance if it is within tolerance of a
// standard one, e.g. "10K" for a 10.04 km race. Otherwise it returns "".
func StandardDistanceLabel(meters float64) string {
	for _, t := range PredictionTargets {
		if matchesDistance(meters, t.Distance.Meters()) {
			return t.Label
		}
	}
	return ""
}

// matchesDistance checks if a distance is within 5% of a target
func matchesDistance(distance, target float64) bool {
	return math.Abs(distance-target) <= target*DistanceTolerance
}
