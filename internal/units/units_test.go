package units

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestDistanceConversions(t *testing.T) {
	tests := []struct {
		name       string
		distance   Distance
		wantMeters float64
	}{
		{"meters", Meters(400), 400},
		{"kilometers", Kilometers(5), 5000},
		{"miles", Miles(1), 1609.344},
		{"marathon in miles", Miles(26.21875), 42194.988},
		{"new distance km", NewDistance(10, UnitKilometers), 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.distance.Meters(); math.Abs(got-tt.wantMeters) > 0.01 {
				t.Errorf("Meters() = %v, want %v", got, tt.wantMeters)
			}
		})
	}

	d := Kilometers(10)
	if got := d.Miles(); math.Abs(got-6.2137) > 0.0001 {
		t.Errorf("Miles() = %v, want ~6.2137", got)
	}
	if got := d.In(UnitKilometers); got != 10 {
		t.Errorf("In(km) = %v, want 10", got)
	}
}

func TestSpeedPace(t *testing.T) {
	// 5:00/km is 200 m/min
	s := MetersPerMinute(200)
	if got := s.MetersPerSecond(); math.Abs(got-200.0/60) > 1e-12 {
		t.Errorf("MetersPerSecond() = %v, want %v", got, 200.0/60)
	}
	if got := s.Pace(Kilometers(1)).Round(time.Second); got != 5*time.Minute {
		t.Errorf("Pace(km) = %v, want 5m0s", got)
	}
	if got := s.Pace(Miles(1)).Seconds(); math.Abs(got-482.8032) > 1e-6 {
		t.Errorf("Pace(mi) = %vs, want 482.8032s", got)
	}

	if got := MetersPerSecond(0).Pace(Kilometers(1)); got != 0 {
		t.Errorf("Pace for zero speed = %v, want 0", got)
	}
}

func TestSpeedOver(t *testing.T) {
	s := SpeedOver(Kilometers(5), 25*time.Minute)
	if got := s.MetersPerMinute(); math.Abs(got-200) > 1e-9 {
		t.Errorf("MetersPerMinute() = %v, want 200", got)
	}
	if got := SpeedOver(Kilometers(5), 0); got.MetersPerSecond() != 0 {
		t.Errorf("SpeedOver with zero time = %v, want 0", got.MetersPerSecond())
	}
}

func TestParseDistance(t *testing.T) {
	tests := []struct {
		input      string
		wantMeters float64
		wantErr    bool
	}{
		{"5k", 5000, false},
		{"10K", 10000, false},
		{"half", 21097.5, false},
		{"Marathon", 42195, false},
		{"mile", 1609.344, false},
		{"3000", 3000, false},
		{"42195m", 42195, false},
		{"1.5k", 1500, false},
		{"10 mi", 16093.44, false},
		{"21.1 km", 21100, false},
		{"", 0, true},
		{"fast", 0, true},
		{"-5k", 0, true},
		{"0", 0, true},
		{"nan", 0, true},
		{"inf", 0, true},
		{"NaN km", 0, true},
		{"+Inf mi", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDistance(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDistance) {
					t.Errorf("ParseDistance(%q) error = %v, want ErrInvalidDistance", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDistance(%q) error = %v", tt.input, err)
			}
			if math.Abs(got.Meters()-tt.wantMeters) > 1e-6 {
				t.Errorf("ParseDistance(%q) = %v m, want %v m", tt.input, got.Meters(), tt.wantMeters)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"18:22", 18*time.Minute + 22*time.Second, false},
		{"1:02:03", time.Hour + 2*time.Minute + 3*time.Second, false},
		{"4:05.5", 4*time.Minute + 5500*time.Millisecond, false},
		{"38m6s", 38*time.Minute + 6*time.Second, false},
		{"", 0, true},
		{"1:75", 0, true},
		{"1:2:3:4", 0, true},
		{"abc", 0, true},
		{"0:00", 0, true},
		{"nan:00", 0, true},
		{"inf:00", 0, true},
		{"1:nan", 0, true},
		{"9999999:00:00", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDuration) {
					t.Errorf("ParseDuration(%q) error = %v, want ErrInvalidDuration", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDuration(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{1102 * time.Second, "18:22"},
		{3829 * time.Second, "1:03:49"},
		{1841*time.Second + 400*time.Millisecond, "30:41"},
		{1841*time.Second + 600*time.Millisecond, "30:42"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
