// Package fitment finds dimensionally compatible alternative tire sizes.
// Given an original size it walks a bounded width x profile x rim grid, keeps
// candidates whose rolling diameter stays inside the deviation tolerance,
// ranks them by deviation and quantifies the speedometer skew of a swap.
// Everything here is pure and deterministic: identical inputs give deep-equal
// outputs and values are safe to share between goroutines
package fitment

import "tirefit/internal/core/tiresize"

// Search grid and business thresholds
const (
	// ResultCap bounds Result.Alternatives; TotalFound keeps the uncapped count
	ResultCap = 50

	// RecommendedDeviationPercent is the fixed warning threshold. It is separate
	// from Params.MaxDeviationPercent, which may be looser
	RecommendedDeviationPercent = 3.0

	// WidthChangeWarnMm triggers a clearance warning when exceeded
	WidthChangeWarnMm = 20

	WidthStepMm    = 5
	ProfileStepPct = 5
	RimStepIn      = 1

	// boundaryEpsilonMm absorbs float noise when a candidate sits exactly on the tolerance edge
	boundaryEpsilonMm = 1e-9
)

// Params describes one alternative search
type Params struct {
	Original             tiresize.Size       `json:"original_size" yaml:"original_size"`
	MaxDeviationPercent  float64             `json:"max_deviation_percent" yaml:"max_deviation_percent"`
	AllowedWidthRange    int                 `json:"allowed_width_range" yaml:"allowed_width_range"`
	AllowedDiameterRange int                 `json:"allowed_diameter_range" yaml:"allowed_diameter_range"`
	MinLoadIndex         *int                `json:"min_load_index,omitempty" yaml:"min_load_index,omitempty"`
	MinSpeedIndex        tiresize.SpeedIndex `json:"min_speed_index,omitempty" yaml:"min_speed_index,omitempty"`

	// Season and CarType are echoed back; no numeric logic reads them yet
	Season  string `json:"season,omitempty" yaml:"season,omitempty"`
	CarType string `json:"car_type,omitempty" yaml:"car_type,omitempty"`
}

// Alternative is one candidate size that passed every filter
type Alternative struct {
	Size                string              `json:"size" yaml:"size"`
	Width               int                 `json:"width" yaml:"width"`
	Profile             int                 `json:"profile" yaml:"profile"`
	Diameter            int                 `json:"diameter" yaml:"diameter"`
	CalculatedDiameter  float64             `json:"calculated_diameter" yaml:"calculated_diameter"`
	DeviationPercent    float64             `json:"deviation_percent" yaml:"deviation_percent"`
	DeviationMm         float64             `json:"deviation_mm" yaml:"deviation_mm"`
	LoadIndex           *int                `json:"load_index,omitempty" yaml:"load_index,omitempty"`
	SpeedIndex          tiresize.SpeedIndex `json:"speed_index,omitempty" yaml:"speed_index,omitempty"`
	RecommendedRimWidth string              `json:"recommended_rim_width" yaml:"recommended_rim_width"`
	IsRecommended       bool                `json:"is_recommended" yaml:"is_recommended"`
	Tier                Tier                `json:"tier" yaml:"tier"`
	Warnings            []string            `json:"warnings" yaml:"warnings"`
}

// TireSize rebuilds the candidate as a size value
func (a Alternative) TireSize() tiresize.Size {
	return tiresize.Size{
		Width:      a.Width,
		Profile:    a.Profile,
		Diameter:   a.Diameter,
		LoadIndex:  a.LoadIndex,
		SpeedIndex: a.SpeedIndex,
	}
}

// Result is the assembled answer of Calculate
type Result struct {
	OriginalDiameter float64       `json:"original_diameter" yaml:"original_diameter"`
	Alternatives     []Alternative `json:"alternatives" yaml:"alternatives"`
	SearchParams     Params        `json:"search_params" yaml:"search_params"`
	TotalFound       int           `json:"total_found" yaml:"total_found"`
}
