// Package units provides unit-tagged distance and speed measurements.
//
// Values are stored in SI base units (meters, meters per second) and
// converted on the way in and out, so callers never exchange bare numbers
// whose unit is ambiguous. Time uses time.Duration throughout.
package units

import (
	"fmt"
	"time"
)

const (
	metersPerKilometer = 1000.0
	metersPerMile      = 1609.344
	secondsPerMinute   = 60.0
)

// Unit identifies a distance unit
type Unit int

const (
	UnitMeters Unit = iota
	UnitKilometers
	UnitMiles
)

// String returns the short label for the unit
func (u Unit) String() string {
	switch u {
	case UnitKilometers:
		return "km"
	case UnitMiles:
		return "mi"
	default:
		return "m"
	}
}

// metersPer returns how many meters make up one of the unit
func (u Unit) metersPer() float64 {
	switch u {
	case UnitKilometers:
		return metersPerKilometer
	case UnitMiles:
		return metersPerMile
	default:
		return 1
	}
}

// Distance is a length measurement
type Distance struct {
	meters float64
}

// Meters creates a Distance from meters
func Meters(m float64) Distance { return Distance{meters: m} }

// Kilometers creates a Distance from kilometers
func Kilometers(km float64) Distance { return Distance{meters: km * metersPerKilometer} }

// Miles creates a Distance from statute miles
func Miles(mi float64) Distance { return Distance{meters: mi * metersPerMile} }

// NewDistance creates a Distance from a value in the given unit
func NewDistance(value float64, unit Unit) Distance {
	return Distance{meters: value * unit.metersPer()}
}

// Meters returns the distance in meters
func (d Distance) Meters() float64 { return d.meters }

// Kilometers returns the distance in kilometers
func (d Distance) Kilometers() float64 { return d.meters / metersPerKilometer }

// Miles returns the distance in statute miles
func (d Distance) Miles() float64 { return d.meters / metersPerMile }

// In returns the distance expressed in unit
func (d Distance) In(unit Unit) float64 { return d.meters / unit.metersPer() }

// String formats the distance in meters below one kilometer and kilometers above
func (d Distance) String() string {
	if d.meters < metersPerKilometer {
		return fmt.Sprintf("%.0f m", d.meters)
	}
	return fmt.Sprintf("%.2f km", d.Kilometers())
}

// Speed is a velocity measurement
type Speed struct {
	metersPerSecond float64
}

// MetersPerSecond creates a Speed from meters per second
func MetersPerSecond(v float64) Speed { return Speed{metersPerSecond: v} }

// MetersPerMinute creates a Speed from meters per minute
func MetersPerMinute(v float64) Speed { return Speed{metersPerSecond: v / secondsPerMinute} }

// SpeedOver creates the average Speed for covering distance in elapsed
func SpeedOver(distance Distance, elapsed time.Duration) Speed {
	if elapsed <= 0 {
		return Speed{}
	}
	return Speed{metersPerSecond: distance.meters / elapsed.Seconds()}
}

// MetersPerSecond returns the speed in meters per second
func (s Speed) MetersPerSecond() float64 { return s.metersPerSecond }

// MetersPerMinute returns the speed in meters per minute
func (s Speed) MetersPerMinute() float64 { return s.metersPerSecond * secondsPerMinute }

// Pace returns the time needed to cover distance at this speed.
// Zero or negative speeds have no meaningful pace and return 0.
func (s Speed) Pace(per Distance) time.Duration {
	if s.metersPerSecond <= 0 {
		return 0
	}
	seconds := per.meters / s.metersPerSecond
	return time.Duration(seconds * float64(time.Second))
}
