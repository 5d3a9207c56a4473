package analysis

import (
	"time"

	"runpace/internal/units"
	"runpace/internal/vdot"
)

// TrainingPace is the target pace for one training zone
type TrainingPace struct {
	Intensity vdot.TrainingIntensity
	Fraction  float64 // of VO2max
	Speed     units.Speed
	PerKm     time.Duration
	PerMile   time.Duration
	Per400m   time.Duration // track repeat time
}

// TrainingPaces returns paces for every training zone, easiest first
func TrainingPaces(v vdot.VDOT) []TrainingPace {
	paces := make([]TrainingPace, 0, len(vdot.Intensities()))
	for _, intensity := range vdot.Intensities() {
		speed := v.TrainingVelocityFor(intensity)
		paces = append(paces, TrainingPace{
			Intensity: intensity,
			Fraction:  intensity.Fraction(),
			Speed:     speed,
			PerKm:     speed.Pace(units.Kilometers(1)),
			PerMile:   speed.Pace(units.Miles(1)),
			Per400m:   speed.Pace(units.Meters(Distance400m)),
		})
	}
	return paces
}
