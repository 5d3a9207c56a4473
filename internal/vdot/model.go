package vdot

// The functions in this file are the bare numeric model. Every distance is
// in meters, every time in minutes and every velocity in meters per minute.
// None of them validate their input: the realistic operating range is
// VDOT 20-85, distances from 400 m to the marathon and beyond, and
// strictly positive times.

// OxygenCost returns the oxygen cost of running at velocity (m/min).
func OxygenCost(velocity float64) float64 {
	return oxygenCostCoefficients.Eval(velocity)
}

// RaceOxygenCost returns the oxygen cost of covering distance in time.
func RaceOxygenCost(distance, time float64) float64 {
	return OxygenCost(distance / time)
}

func oxygenCostDt(distance, time float64) float64 {
	return oxygenCostCoefficients.EvalDt(distance, time)
}

// Intensity returns the fraction of VO2max that can be held for time minutes.
func Intensity(time float64) float64 {
	return intensityCoefficients.Eval(time)
}

func intensityDt(time float64) float64 {
	return intensityCoefficients.EvalDt(time)
}

// Velocity returns the training velocity (m/min) for a runner with the given
// VDOT working at fraction of VO2max.
func Velocity(vdot, fraction float64) float64 {
	return velocityCoefficients.Eval(vdot * fraction)
}

// FromRaceResult returns the VDOT implied by covering distance in time.
func FromRaceResult(distance, time float64) float64 {
	return RaceOxygenCost(distance, time) / Intensity(time)
}
