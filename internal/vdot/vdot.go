// Package vdot implements the Daniels/Gilbert VDOT running model.
//
// A VDOT is a single index of aerobic fitness. From it the package derives
// training velocities for the named intensity zones and projects race times
// for arbitrary distances. All quantities at the package boundary are unit
// tagged (units.Distance, units.Speed, time.Duration); the numeric model in
// model.go and solver.go works in meters and minutes.
//
// Every function is pure, so values and functions are safe for concurrent use.
package vdot

import (
	"fmt"
	"time"

	"runpace/internal/units"
)

// VDOT is an immutable fitness index
type VDOT struct {
	value float64
}

// New returns a VDOT with the given literal value (realistically 20-85)
func New(value float64) VDOT {
	return VDOT{value: value}
}

// FromRace derives a VDOT from a race result
func FromRace(distance units.Distance, elapsed time.Duration) VDOT {
	return VDOT{value: FromRaceResult(distance.Meters(), elapsed.Minutes())}
}

// Value returns the raw index
func (v VDOT) Value() float64 {
	return v.value
}

func (v VDOT) String() string {
	return fmt.Sprintf("%.1f", v.value)
}

// TrainingVelocity returns the velocity for running at fraction of VO2max
func (v VDOT) TrainingVelocity(fraction float64) units.Speed {
	return units.MetersPerMinute(Velocity(v.value, fraction))
}

// TrainingVelocityFor returns the velocity for a named training zone
func (v VDOT) TrainingVelocityFor(intensity TrainingIntensity) units.Speed {
	return v.TrainingVelocity(intensity.Fraction())
}

// ProjectedRaceTime returns the projected finishing time over distance.
// It fails with a *ConvergenceError (matching ErrNoConvergence) when the
// solver cannot produce a time for the inputs.
func (v VDOT) ProjectedRaceTime(distance units.Distance) (time.Duration, error) {
	minutes, err := SolveTime(v.value, distance.Meters())
	if err != nil {
		return 0, err
	}
	return time.Duration(minutes * float64(time.Minute)), nil
}
