package tui

import (
	"fmt"

	"runpace/internal/config"
	"runpace/internal/units"
)

// Units provides unit conversion and formatting based on user preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// IsMiles returns true if distance unit is miles
func (u Units) IsMiles() bool {
	return u.cfg.DistanceUnit == "mi"
}

func (u Units) pacePerMile() bool {
	return u.cfg.PaceUnit == "min/mi"
}

// FormatDistance formats a distance in the user's preferred unit
func (u Units) FormatDistance(d units.Distance) string {
	unit := units.UnitKilometers
	if u.IsMiles() {
		unit = units.UnitMiles
	}
	return fmt.Sprintf("%.2f %s", d.In(unit), u.DistanceLabel())
}

// FormatPace formats a speed as time per preferred pace unit
func (u Units) FormatPace(s units.Speed) string {
	pace := s.Pace(u.paceDistance())
	if pace <= 0 {
		return "-"
	}
	return units.FormatDuration(pace)
}

// FormatPaceWithUnit formats pace with the unit label
func (u Units) FormatPaceWithUnit(s units.Speed) string {
	pace := u.FormatPace(s)
	if pace == "-" {
		return pace
	}
	return pace + "/" + u.PaceDistanceLabel()
}

func (u Units) paceDistance() units.Distance {
	if u.pacePerMile() {
		return units.Miles(1)
	}
	return units.Kilometers(1)
}

// DistanceLabel returns the short unit label ("mi" or "km")
func (u Units) DistanceLabel() string {
	if u.IsMiles() {
		return "mi"
	}
	return "km"
}

// PaceDistanceLabel returns the distance pace is quoted per ("mi" or "km")
func (u Units) PaceDistanceLabel() string {
	if u.pacePerMile() {
		return "mi"
	}
	return "km"
}

// PaceLabel returns the pace unit label ("min/mi" or "min/km")
func (u Units) PaceLabel() string {
	if u.pacePerMile() {
		return "min/mi"
	}
	return "min/km"
}
