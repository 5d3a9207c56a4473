package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDistance is returned when a distance string cannot be parsed
var ErrInvalidDistance = errors.New("invalid distance")

// ErrInvalidDuration is returned when a race time string cannot be parsed
var ErrInvalidDuration = errors.New("invalid duration")

// namedDistances are the race names accepted by ParseDistance
var namedDistances = map[string]Distance{
	"mile":     Miles(1),
	"5k":       Kilometers(5),
	"10k":      Kilometers(10),
	"15k":      Kilometers(15),
	"half":     Meters(21097.5),
	"marathon": Meters(42195),
}

// ParseDistance parses distances such as "5k", "10 mi", "42195m", "half" or "marathon".
// A bare number is read as meters.
func ParseDistance(s string) (Distance, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	if raw == "" {
		return Distance{}, fmt.Errorf("%w: empty", ErrInvalidDistance)
	}
	if d, ok := namedDistances[raw]; ok {
		return d, nil
	}

	unit := UnitMeters
	number := raw
	for _, suffix := range []struct {
		text string
		unit Unit
	}{
		{"km", UnitKilometers},
		{"mi", UnitMiles},
		{"k", UnitKilometers},
		{"m", UnitMeters},
	} {
		if strings.HasSuffix(raw, suffix.text) {
			unit = suffix.unit
			number = strings.TrimSpace(strings.TrimSuffix(raw, suffix.text))
			break
		}
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return Distance{}, fmt.Errorf("%w: %q", ErrInvalidDistance, s)
	}
	if value <= 0 {
		return Distance{}, fmt.Errorf("%w: %q must be positive", ErrInvalidDistance, s)
	}
	return NewDistance(value, unit), nil
}

// maxDurationSeconds is the longest time a time.Duration can hold
const maxDurationSeconds = float64(math.MaxInt64 / int64(time.Second))

// ParseDuration parses race times written as "M:SS" or "H:MM:SS".
// Go duration syntax ("18m22s") is accepted as well.
func ParseDuration(s string) (time.Duration, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}

	if !strings.Contains(raw, ":") {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		return d, nil
	}

	parts := strings.Split(raw, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	var total float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		// Every field after the first is a base-60 digit
		if i > 0 && value >= 60 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		total = total*60 + value
	}

	if total <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidDuration, s)
	}
	if total > maxDurationSeconds {
		return 0, fmt.Errorf("%w: %q is too long", ErrInvalidDuration, s)
	}
	return time.Duration(total * float64(time.Second)), nil
}

// FormatDuration renders a duration as "M:SS" or "H:MM:SS", rounded to the second
func FormatDuration(d time.Duration) string {
	seconds := int(d.Round(time.Second) / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	sec := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
