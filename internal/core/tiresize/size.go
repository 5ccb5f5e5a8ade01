// Package tiresize models nominal tire dimensions (width/profile/rim with optional
// load and speed indexes), range-checks them and derives the rolling geometry
// every fitment calculation depends on
package tiresize

import (
	"fmt"
	"math"
)

// Domain bounds for the three primary dimensions, inclusive
const (
	MinWidth    = 125
	MaxWidth    = 355
	MinProfile  = 25
	MaxProfile  = 85
	MinDiameter = 12
	MaxDiameter = 24
)

// MmPerInch converts rim inches to millimetres
const MmPerInch = 25.4

// Size is an immutable tire size value. Zero LoadIndex/SpeedIndex mean "not given"
type Size struct {
	Width      int        `json:"width" yaml:"width" example:"205"`
	Profile    int        `json:"profile" yaml:"profile" example:"55"`
	Diameter   int        `json:"diameter" yaml:"diameter" example:"16"`
	LoadIndex  *int       `json:"load_index,omitempty" yaml:"load_index,omitempty" example:"91"`
	SpeedIndex SpeedIndex `json:"speed_index,omitempty" yaml:"speed_index,omitempty" example:"V"`
}

// New builds a size without load or speed indexes
func New(width, profile, diameter int) Size {
	return Size{Width: width, Profile: profile, Diameter: diameter}
}

// WithLoadIndex returns a copy carrying the given load index
func (s Size) WithLoadIndex(li int) Size {
	s.LoadIndex = &li
	return s
}

// WithSpeedIndex returns a copy carrying the given speed rating
func (s Size) WithSpeedIndex(si SpeedIndex) Size {
	s.SpeedIndex = si
	return s
}

// HasLoadIndex reports whether a load index was given
func (s Size) HasLoadIndex() bool { return s.LoadIndex != nil }

// Load returns the load index or 0 when unset
func (s Size) Load() int {
	if s.LoadIndex == nil {
		return 0
	}
	return *s.LoadIndex
}

// Equal compares sizes by value, including optional indexes
func (s Size) Equal(o Size) bool {
	if s.Width != o.Width || s.Profile != o.Profile || s.Diameter != o.Diameter || s.SpeedIndex != o.SpeedIndex {
		return false
	}
	if s.HasLoadIndex() != o.HasLoadIndex() {
		return false
	}
	return s.Load() == o.Load()
}

// String renders the size label, see Format
func (s Size) String() string { return Format(s) }

// Validation is the outcome of Validate
type Validation struct {
	IsValid bool     `json:"is_valid" yaml:"is_valid"`
	Errors  []string `json:"errors" yaml:"errors"`
}

// Validate checks width, profile and rim diameter against the domain bounds.
// Every violation is reported; the check never stops at the first one
func Validate(s Size) Validation {
	errs := make([]string, 0, 3)
	if s.Width < MinWidth || s.Width > MaxWidth {
		errs = append(errs, fmt.Sprintf("width must be between %d and %d mm, got %d", MinWidth, MaxWidth, s.Width))
	}
	if s.Profile < MinProfile || s.Profile > MaxProfile {
		errs = append(errs, fmt.Sprintf("profile must be between %d and %d %%, got %d", MinProfile, MaxProfile, s.Profile))
	}
	if s.Diameter < MinDiameter || s.Diameter > MaxDiameter {
		errs = append(errs, fmt.Sprintf("rim diameter must be between %d and %d in, got %d", MinDiameter, MaxDiameter, s.Diameter))
	}
	return Validation{IsValid: len(errs) == 0, Errors: errs}
}

// DiameterOf returns the overall rolling diameter in mm:
// two sidewalls (width x profile%) plus the rim converted from inches.
// Both the original size and every candidate go through this one function
func DiameterOf(s Size) float64 {
	return float64(s.Width)*float64(s.Profile)/100*2 + float64(s.Diameter)*MmPerInch
}

// SidewallMm is the sidewall height in mm
func SidewallMm(s Size) float64 {
	return float64(s.Width) * float64(s.Profile) / 100
}

// CircumferenceMm is the rolling circumference in mm
func CircumferenceMm(s Size) float64 {
	return math.Pi * DiameterOf(s)
}

// RevsPerKm is the number of wheel revolutions per kilometre, 0 for a degenerate size
func RevsPerKm(s Size) float64 {
	c := CircumferenceMm(s)
	if c <= 0 {
		return 0
	}
	return 1e6 / c
}

// IsManufacturedWidth reports whether a section width is part of the produced
// size grid. Widths ending in 0 are not commonly made for this market and are
// pruned from alternative searches
func IsManufacturedWidth(width int) bool {
	return width%10 != 0
}
