package analysis

import (
	"sort"

	"runpace/internal/store"
)

// GetVDOTLabel returns a human-readable fitness level for a VDOT value
func GetVDOTLabel(vdot float64) string {
	switch {
	case vdot >= 75:
		return "Elite"
	case vdot >= 65:
		return "Highly Competitive"
	case vdot >= 55:
		return "Competitive"
	case vdot >= 45:
		return "Advanced Recreational"
	case vdot >= 38:
		return "Intermediate"
	case vdot >= 30:
		return "Beginner"
	default:
		return "Novice"
	}
}

// VDOTHistory returns the VDOT of each race in chronological order, for charting
func VDOTHistory(races []store.Race) []float64 {
	sorted := make([]store.Race, len(races))
	copy(sorted, races)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RacedAt.Before(sorted[j].RacedAt)
	})

	history := make([]float64, 0, len(sorted))
	for _, r := range sorted {
		history = append(history, r.VDOT)
	}
	return history
}
