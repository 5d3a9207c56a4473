package tui

import (
	"testing"
	"time"

	"runpace/internal/config"
	"runpace/internal/units"
)

func TestUnitsFormatting(t *testing.T) {
	// 5K in 20:00 is 4:00/km and 6:26/mi
	speed := units.SpeedOver(units.Kilometers(5), 20*time.Minute)

	tests := []struct {
		name         string
		cfg          config.DisplayConfig
		wantDistance string
		wantPace     string
		wantLabel    string
		wantUnit     string
	}{
		{"metric", config.DisplayConfig{DistanceUnit: "km", PaceUnit: "min/km"}, "5.00 km", "4:00/km", "min/km", "km"},
		{"imperial", config.DisplayConfig{DistanceUnit: "mi", PaceUnit: "min/mi"}, "3.11 mi", "6:26/mi", "min/mi", "mi"},
		{"mixed", config.DisplayConfig{DistanceUnit: "km", PaceUnit: "min/mi"}, "5.00 km", "6:26/mi", "min/mi", "km"},
		{"unset defaults to metric", config.DisplayConfig{}, "5.00 km", "4:00/km", "min/km", "km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUnits(tt.cfg)
			if got := u.FormatDistance(units.Kilometers(5)); got != tt.wantDistance {
				t.Errorf("FormatDistance() = %q, want %q", got, tt.wantDistance)
			}
			if got := u.FormatPaceWithUnit(speed); got != tt.wantPace {
				t.Errorf("FormatPaceWithUnit() = %q, want %q", got, tt.wantPace)
			}
			if got := u.PaceLabel(); got != tt.wantLabel {
				t.Errorf("PaceLabel() = %q, want %q", got, tt.wantLabel)
			}
			if got := u.DistanceLabel(); got != tt.wantUnit {
				t.Errorf("DistanceLabel() = %q, want %q", got, tt.wantUnit)
			}
		})
	}
}

func TestUnitsFormatPaceZeroSpeed(t *testing.T) {
	u := NewUnits(config.DisplayConfig{})
	if got := u.FormatPaceWithUnit(units.MetersPerSecond(0)); got != "-" {
		t.Errorf("FormatPaceWithUnit(0) = %q, want -", got)
	}
}
