package vdot

import (
	"fmt"
	"strings"
)

// TrainingIntensity is one of Daniels' named training zones
type TrainingIntensity int

const (
	Easy TrainingIntensity = iota
	Marathon
	Threshold
	Interval
	Repetition
)

// intensityTable maps each zone to its name and fraction of VO2max
var intensityTable = [...]struct {
	name     string
	fraction float64
}{
	Easy:       {"easy", 0.59},
	Marathon:   {"marathon", 0.75},
	Threshold:  {"threshold", 0.83},
	Interval:   {"interval", 0.97},
	Repetition: {"repetition", 1.06},
}

// Intensities returns every zone from easiest to hardest
func Intensities() []TrainingIntensity {
	return []TrainingIntensity{Easy, Marathon, Threshold, Interval, Repetition}
}

// Valid reports whether i is one of the defined zones
func (i TrainingIntensity) Valid() bool {
	return i >= Easy && i <= Repetition
}

// Fraction returns the zone's fraction of VO2max, or 0 for an undefined zone
func (i TrainingIntensity) Fraction() float64 {
	if !i.Valid() {
		return 0
	}
	return intensityTable[i].fraction
}

func (i TrainingIntensity) String() string {
	if !i.Valid() {
		return fmt.Sprintf("TrainingIntensity(%d)", int(i))
	}
	return intensityTable[i].name
}

// ParseIntensity looks a zone up by name, case-insensitively.
// The single-letter abbreviations E, M, T, I and R are accepted too.
func ParseIntensity(name string) (TrainingIntensity, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, i := range Intensities() {
		if n == intensityTable[i].name || n == intensityTable[i].name[:1] {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown training intensity %q", name)
}
