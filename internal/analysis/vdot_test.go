package analysis

import (
	"testing"
	"time"

	"runpace/internal/store"
)

func TestGetVDOTLabel(t *testing.T) {
	tests := []struct {
		vdot      float64
		wantLabel string
	}{
		{80, "Elite"},
		{75, "Elite"},
		{70, "Highly Competitive"},
		{65, "Highly Competitive"},
		{60, "Competitive"},
		{55, "Competitive"},
		{50, "Advanced Recreational"},
		{45, "Advanced Recreational"},
		{42, "Intermediate"},
		{38, "Intermediate"},
		{35, "Beginner"},
		{30, "Beginner"},
		{25, "Novice"},
	}

	for _, tt := range tests {
		t.Run(tt.wantLabel, func(t *testing.T) {
			if got := GetVDOTLabel(tt.vdot); got != tt.wantLabel {
				t.Errorf("GetVDOTLabel(%v) = %v, want %v", tt.vdot, got, tt.wantLabel)
			}
		})
	}
}

func TestVDOTHistory(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }

	// Newest first, as ListRaces returns them
	races := []store.Race{
		{VDOT: 52, RacedAt: day(20)},
		{VDOT: 50, RacedAt: day(10)},
		{VDOT: 48, RacedAt: day(1)},
	}

	got := VDOTHistory(races)
	want := []float64{48, 50, 52}
	if len(got) != len(want) {
		t.Fatalf("VDOTHistory() returned %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("VDOTHistory()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if races[0].VDOT != 52 {
		t.Error("VDOTHistory() reordered its input")
	}
}

func TestStandardDistanceLabel(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{5000, "5K"},
		{5080, "5K"},
		{10040, "10K"},
		{1609, "Mile"},
		{1500, "1500m"},
		{21100, "Half Marathon"},
		{42500, "Marathon"},
		{8000, ""},
	}

	for _, tt := range tests {
		if got := StandardDistanceLabel(tt.meters); got != tt.want {
			t.Errorf("StandardDistanceLabel(%v) = %q, want %q", tt.meters, got, tt.want)
		}
	}

	if got := GetTargetLabel("half"); got != "Half Marathon" {
		t.Errorf("GetTargetLabel(half) = %q", got)
	}
	if got := GetTargetLabel("ultra"); got != "ultra" {
		t.Errorf("GetTargetLabel(ultra) = %q, want passthrough", got)
	}
}
