package fitment

import (
	"fmt"
	"math"

	"tirefit/internal/core/tiresize"
)

// RimWidthBand holds rim-to-tire width ratios. The defaults are a workshop rule
// of thumb rather than a manufacturer table, so they stay configurable
type RimWidthBand struct {
	Min     float64 `json:"min" yaml:"min"`
	Optimal float64 `json:"optimal" yaml:"optimal"`
	Max     float64 `json:"max" yaml:"max"`
}

// DefaultRimWidthBand is 0.6 / 0.7 / 0.8 of the tire width in inches
var DefaultRimWidthBand = RimWidthBand{Min: 0.6, Optimal: 0.7, Max: 0.8}

// RimWidthRange is a rim width recommendation in inches, snapped to half inches
type RimWidthRange struct {
	Min     float64 `json:"min" yaml:"min"`
	Optimal float64 `json:"optimal" yaml:"optimal"`
	Max     float64 `json:"max" yaml:"max"`
}

// String renders "min-max" with one decimal, e.g. "5.0-6.5"
func (r RimWidthRange) String() string {
	return fmt.Sprintf("%.1f-%.1f", r.Min, r.Max)
}

// For derives the rim range for a tire section width in mm
func (b RimWidthBand) For(widthMm int) RimWidthRange {
	in := float64(widthMm) / tiresize.MmPerInch
	return RimWidthRange{
		Min:     halfInch(in * b.Min),
		Optimal: halfInch(in * b.Optimal),
		Max:     halfInch(in * b.Max),
	}
}

// normalized falls back to the default band for unusable ratios and keeps min <= optimal <= max
func (b RimWidthBand) normalized() RimWidthBand {
	if b.Min <= 0 || b.Max <= 0 {
		return DefaultRimWidthBand
	}
	if b.Min > b.Max {
		b.Min, b.Max = b.Max, b.Min
	}
	if b.Optimal < b.Min || b.Optimal > b.Max {
		b.Optimal = (b.Min + b.Max) / 2
	}
	return b
}

func halfInch(v float64) float64 { return math.Round(v*2) / 2 }
