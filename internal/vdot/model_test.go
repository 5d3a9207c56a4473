package vdot

import (
	"math"
	"testing"
)

func TestOxygenCost(t *testing.T) {
	// 280 m/min: 0.000104*280^2 + 0.182258*280 - 4.60
	want := 0.000104*280*280 + 0.182258*280 - 4.60
	if got := OxygenCost(280); math.Abs(got-want) > 1e-12 {
		t.Errorf("OxygenCost(280) = %v, want %v", got, want)
	}

	if got, want := RaceOxygenCost(5000, 20), OxygenCost(250); got != want {
		t.Errorf("RaceOxygenCost(5000, 20) = %v, want OxygenCost(250) = %v", got, want)
	}
}

func TestOxygenCostDtMatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	for _, tc := range []struct{ d, t float64 }{
		{5000, 20}, {10000, 40}, {42195, 180}, {800, 2.2},
	} {
		numeric := (RaceOxygenCost(tc.d, tc.t+h) - RaceOxygenCost(tc.d, tc.t-h)) / (2 * h)
		analytic := oxygenCostDt(tc.d, tc.t)
		if math.Abs(numeric-analytic) > 1e-4*math.Max(1, math.Abs(analytic)) {
			t.Errorf("oxygenCostDt(%v, %v) = %v, finite difference %v", tc.d, tc.t, analytic, numeric)
		}
	}
}

func TestIntensityDtMatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	for _, minutes := range []float64{1, 5, 20, 60, 180, 300} {
		numeric := (Intensity(minutes+h) - Intensity(minutes-h)) / (2 * h)
		analytic := intensityDt(minutes)
		if math.Abs(numeric-analytic) > 1e-7 {
			t.Errorf("intensityDt(%v) = %v, finite difference %v", minutes, analytic, numeric)
		}
	}
}

func TestIntensityBoundsAndMonotonicity(t *testing.T) {
	c := intensityCoefficients
	lower := c.P0 - c.P1 - c.P2
	upper := c.P0 + c.P1 + c.P2

	prev := math.Inf(1)
	for minutes := 0.1; minutes <= 600; minutes += 0.1 {
		got := Intensity(minutes)
		if got <= lower || got >= upper {
			t.Fatalf("Intensity(%v) = %v, outside (%v, %v)", minutes, got, lower, upper)
		}
		if got <= c.P0 {
			t.Fatalf("Intensity(%v) = %v, want above asymptote %v", minutes, got, c.P0)
		}
		if got >= prev {
			t.Fatalf("Intensity not decreasing at %v: %v >= %v", minutes, got, prev)
		}
		prev = got
	}

	if got := Intensity(1e6); math.Abs(got-c.P0) > 1e-12 {
		t.Errorf("Intensity(1e6) = %v, want asymptote %v", got, c.P0)
	}
}

func TestVelocityIncreasesWithFraction(t *testing.T) {
	for v := 20.0; v <= 85; v += 5 {
		prev := math.Inf(-1)
		for f := 0.5; f <= 1.1; f += 0.01 {
			got := Velocity(v, f)
			if got <= prev {
				t.Fatalf("Velocity(%v, %v) = %v, not above %v", v, f, got, prev)
			}
			prev = got
		}
	}
}

func TestFromRaceResult(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		minutes  float64
		want     float64
	}{
		{"5K in 18:22", 5000, 1102.0 / 60, 55.01},
		{"10K in 38:06", 10000, 2286.0 / 60, 54.99},
		{"marathon in 3:00:00", 42195, 180, 53.53},
		{"5K in 19:00", 5000, 19, 52.88},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromRaceResult(tt.distance, tt.minutes)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("FromRaceResult(%v, %v) = %v, want %v", tt.distance, tt.minutes, got, tt.want)
			}
		})
	}
}
