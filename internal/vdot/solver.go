package vdot

import (
	"errors"
	"fmt"
	"math"
)

const (
	// baselinePace seeds the solver with a rough 280 m/min pace
	baselinePace = 280.0

	// epsilon is float64 machine epsilon (2^-52)
	epsilon = 0x1p-52

	// stepTolerance is the update size, in minutes, below which the solver stops
	stepTolerance = 0.001

	// MaxIterations bounds the Newton iteration
	MaxIterations = 1000
)

// ErrNoConvergence is matched by every *ConvergenceError
var ErrNoConvergence = errors.New("vdot: race time did not converge")

// ConvergenceError reports that SolveTime hit MaxIterations without meeting
// either stopping condition. It means the inputs are outside anything the
// model can answer, such as a zero VDOT or distance.
type ConvergenceError struct {
	VDOT       float64
	Distance   float64 // meters
	Iterations int
	Last       float64 // last iterate, minutes
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("vdot: race time for %.4g m at VDOT %.4g did not converge after %d iterations (last %.6g min)",
		e.Distance, e.VDOT, e.Iterations, e.Last)
}

// Is lets errors.Is(err, ErrNoConvergence) match
func (e *ConvergenceError) Is(target error) bool {
	return target == ErrNoConvergence
}

// SolveTime returns the time in minutes a runner with the given VDOT needs
// to cover distance meters.
//
// There is no closed form, so it finds the root of
//
//	RaceOxygenCost(d, t)/vdot - Intensity(t)
//
// with Newton's method starting from d/280. It stops when the residual is
// below machine epsilon (returning the current t) or when an update step is
// smaller than 0.001 minutes (returning the updated t). If neither happens
// within MaxIterations it returns a *ConvergenceError and no time.
func SolveTime(vdot, distance float64) (float64, error) {
	t := distance / baselinePace

	for i := 0; i < MaxIterations; i++ {
		check := RaceOxygenCost(distance, t)/vdot - Intensity(t)
		if math.Abs(check) < epsilon {
			return t, nil
		}

		derivative := oxygenCostDt(distance, t)/vdot - intensityDt(t)
		diff := check / derivative
		t -= diff

		if math.Abs(diff) < stepTolerance {
			return t, nil
		}
	}

	return 0, &ConvergenceError{
		VDOT:       vdot,
		Distance:   distance,
		Iterations: MaxIterations,
		Last:       t,
	}
}
