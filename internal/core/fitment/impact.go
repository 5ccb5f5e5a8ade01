package fitment

import (
	"fmt"
	"math"
)

const (
	// DefaultIndicatedSpeed is used when no positive indicated speed is given
	DefaultIndicatedSpeed = 100.0

	// MinimalImpactPercent is the skew below which a swap is reported as minimal
	MinimalImpactPercent = 0.5

	descMinimal = "minimal impact"
)

// DefaultImpactSpeeds are the indicated speeds of an impact table when none are given
var DefaultImpactSpeeds = []float64{60, 80, 100, 120}

// Impact is the speedometer skew of mounting a candidate diameter on a vehicle
// calibrated for the original one
type Impact struct {
	IndicatedSpeed   float64 `json:"indicated_speed" yaml:"indicated_speed"`
	RealSpeed        float64 `json:"real_speed" yaml:"real_speed"`
	DeviationKmh     float64 `json:"deviation_kmh" yaml:"deviation_kmh"`
	DeviationPercent float64 `json:"deviation_percent" yaml:"deviation_percent"`
	Description      string  `json:"description" yaml:"description"`
}

// ImpactOf computes the real speed behind an indicated speed. A non-positive
// indicatedSpeed means DefaultIndicatedSpeed; a non-positive original diameter
// is reported as no skew
func ImpactOf(originalDiameter, candidateDiameter, indicatedSpeed float64) Impact {
	if indicatedSpeed <= 0 {
		indicatedSpeed = DefaultIndicatedSpeed
	}
	ratio := 1.0
	if originalDiameter > 0 {
		ratio = candidateDiameter / originalDiameter
	}
	realSpeed := indicatedSpeed * ratio

	imp := Impact{
		IndicatedSpeed:   roundSpeed(indicatedSpeed),
		RealSpeed:        roundSpeed(realSpeed),
		DeviationKmh:     roundSpeed(realSpeed - indicatedSpeed),
		DeviationPercent: roundPercent((ratio - 1) * 100),
	}
	imp.Description = describe(imp, ratio)
	return imp
}

func describe(imp Impact, ratio float64) string {
	if math.Abs(imp.DeviationPercent) < MinimalImpactPercent {
		return descMinimal
	}
	kmh := math.Abs(imp.DeviationKmh)
	if ratio > 1 {
		return fmt.Sprintf("speedometer under-reads: at %.0f km/h indicated the real speed is %.1f km/h higher",
			imp.IndicatedSpeed, kmh)
	}
	return fmt.Sprintf("speedometer over-reads: at %.0f km/h indicated the real speed is %.1f km/h lower",
		imp.IndicatedSpeed, kmh)
}

// ImpactTable evaluates ImpactOf at each speed, in the order given.
// An empty speeds slice uses DefaultImpactSpeeds
func ImpactTable(originalDiameter, candidateDiameter float64, speeds []float64) []Impact {
	if len(speeds) == 0 {
		speeds = DefaultImpactSpeeds
	}
	out := make([]Impact, 0, len(speeds))
	for _, s := range speeds {
		out = append(out, ImpactOf(originalDiameter, candidateDiameter, s))
	}
	return out
}
