package vdot

import "math"

// Regression coefficients from Daniels & Gilbert, "Oxygen Power:
// Performance Tables for Distance Runners". The tables are fixed; the
// package-level values below are unexported so nothing can alter them.

// OxygenCostCoefficients define the quadratic VO2 cost (ml/kg/min) of
// running at v meters per minute: a·v² + b·v + c.
type OxygenCostCoefficients struct {
	A, B, C float64
}

// IntensityCoefficients define the sustainable fraction of VO2max for an
// effort lasting t minutes: p1·e^(k1·t) + p2·e^(k2·t) + p0.
type IntensityCoefficients struct {
	P0, P1, P2 float64
	K1, K2     float64
}

// VelocityCoefficients define the velocity in meters per minute produced
// by an oxygen uptake vo2: a·vo2² + b·vo2 + c.
type VelocityCoefficients struct {
	A, B, C float64
}

var (
	oxygenCostCoefficients = OxygenCostCoefficients{A: 0.000104, B: 0.182258, C: -4.60}

	intensityCoefficients = IntensityCoefficients{
		P0: 0.8,
		P1: 0.2989558,
		P2: 0.1894393,
		K1: -0.1932605,
		K2: -0.012778,
	}

	velocityCoefficients = VelocityCoefficients{A: -0.007546, B: 5.000663, C: 29.54}
)

// Coefficients returns copies of the three regression tables.
func Coefficients() (OxygenCostCoefficients, IntensityCoefficients, VelocityCoefficients) {
	return oxygenCostCoefficients, intensityCoefficients, velocityCoefficients
}

// Eval returns the VO2 cost at velocity v (m/min).
func (c OxygenCostCoefficients) Eval(v float64) float64 {
	return c.A*v*v + c.B*v + c.C
}

// EvalDt returns the derivative with respect to time of the cost of covering
// distance d in time t.
func (c OxygenCostCoefficients) EvalDt(d, t float64) float64 {
	return (-2*c.A*d*d)/(t*t*t) - (c.B*d)/(t*t)
}

// Eval returns the VO2max fraction sustainable for t minutes.
func (c IntensityCoefficients) Eval(t float64) float64 {
	return c.P1*math.Exp(c.K1*t) + c.P2*math.Exp(c.K2*t) + c.P0
}

// EvalDt returns the time derivative of Eval at t.
func (c IntensityCoefficients) EvalDt(t float64) float64 {
	return c.K1*c.P1*math.Exp(c.K1*t) + c.K2*c.P2*math.Exp(c.K2*t)
}

// Eval returns the velocity (m/min) sustained at oxygen uptake vo2.
func (c VelocityCoefficients) Eval(vo2 float64) float64 {
	return c.A*vo2*vo2 + c.B*vo2 + c.C
}
