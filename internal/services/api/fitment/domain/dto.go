// Package domain holds DTOs for fitment http and service contracts
package domain

import (
	"tirefit/internal/core/fitment"
	"tirefit/internal/core/tiresize"
)

// SizeInput names a tire either by label or by its dimensions.
// Index fields override any index carried by the label
type SizeInput struct {
	Label      string `json:"label,omitempty" validate:"required_without=Width,omitempty,tire_size" example:"205/55 R16 91V"`
	Width      int    `json:"width,omitempty" validate:"required_without=Label" example:"205"`
	Profile    int    `json:"profile,omitempty" validate:"required_with=Width" example:"55"`
	Diameter   int    `json:"diameter,omitempty" validate:"required_with=Width" example:"16"`
	LoadIndex  *int   `json:"load_index,omitempty" validate:"omitempty,gte=0,lte=150" example:"91"`
	SpeedIndex string `json:"speed_index,omitempty" validate:"omitempty,speed_index" example:"V"`
}

// AlternativesRequest is the body of an alternative size search. Nil numeric fields take the service defaults
type AlternativesRequest struct {
	Original             SizeInput `json:"original_size"`
	MaxDeviationPercent  *float64  `json:"max_deviation_percent,omitempty" validate:"omitempty,lte=100" example:"3"`
	AllowedWidthRange    *int      `json:"allowed_width_range,omitempty" validate:"omitempty,lte=230" example:"20"`
	AllowedDiameterRange *int      `json:"allowed_diameter_range,omitempty" validate:"omitempty,lte=12" example:"1"`
	MinLoadIndex         *int      `json:"min_load_index,omitempty" validate:"omitempty,gte=0,lte=150" example:"91"`
	MinSpeedIndex        string    `json:"min_speed_index,omitempty" validate:"omitempty,speed_index" example:"H"`
	Season               string    `json:"season,omitempty" validate:"omitempty,max=32" example:"summer"`
	CarType              string    `json:"car_type,omitempty" validate:"omitempty,max=32" example:"passenger"`

	// Tiers keeps only alternatives in the named tiers, after ranking and capping
	Tiers []string `json:"tiers,omitempty" validate:"omitempty,dive,oneof=recommended attention check other" example:"recommended"`
	// Limit caps the returned list below the hard cap of 50
	Limit int `json:"limit,omitempty" validate:"omitempty,gte=1,lte=50" example:"10"`
}

// AlternativesResponse is a calculator result plus presentation extras
type AlternativesResponse struct {
	fitment.Result `yaml:",inline"`

	// Key is stable for identical resolved search parameters
	Key        string               `json:"key" yaml:"key" example:"0b4c8a52-1f0e-5a52-9a3d-2f0f5b1a1c11"`
	Returned   int                  `json:"returned" yaml:"returned" example:"26"`
	TierCounts map[fitment.Tier]int `json:"tier_counts" yaml:"tier_counts"`
}

// ImpactRequest asks for the speedometer effect of a swap, by diameters or by sizes
type ImpactRequest struct {
	OriginalDiameter  float64    `json:"original_diameter,omitempty" yaml:"original_diameter,omitempty" validate:"required_without=Original,omitempty,gt=0" example:"631.9"`
	CandidateDiameter float64    `json:"candidate_diameter,omitempty" yaml:"candidate_diameter,omitempty" validate:"required_without=Candidate,omitempty,gt=0" example:"621.4"`
	Original          *SizeInput `json:"original_size,omitempty" yaml:"original_size,omitempty"`
	Candidate         *SizeInput `json:"candidate_size,omitempty" yaml:"candidate_size,omitempty"`
	IndicatedSpeed    float64    `json:"indicated_speed,omitempty" yaml:"indicated_speed,omitempty" validate:"omitempty,gt=0,lte=500" example:"100"`
	// Speeds switches the answer to a table, one row per indicated speed
	Speeds []float64 `json:"speeds,omitempty" yaml:"speeds,omitempty" validate:"omitempty,max=32,dive,gt=0,lte=500"`
}

// ImpactResponse carries either a single impact or a table
type ImpactResponse struct {
	OriginalDiameter  float64          `json:"original_diameter" yaml:"original_diameter" example:"631.9"`
	CandidateDiameter float64          `json:"candidate_diameter" yaml:"candidate_diameter" example:"621.4"`
	Impact            *fitment.Impact  `json:"impact,omitempty" yaml:"impact,omitempty"`
	Table             []fitment.Impact `json:"table,omitempty" yaml:"table,omitempty"`
}

// CompareRequest contrasts two sizes
type CompareRequest struct {
	From   SizeInput `json:"from" yaml:"from"`
	To     SizeInput `json:"to" yaml:"to"`
	Speeds []float64 `json:"speeds,omitempty" yaml:"speeds,omitempty" validate:"omitempty,max=32,dive,gt=0,lte=500"`
}

// ValidateResponse is the outcome of validating one size
type ValidateResponse struct {
	tiresize.Validation `yaml:",inline"`

	Size string `json:"size" yaml:"size" example:"205/55 R16"`
}

// SizeInfo describes one parsed size
type SizeInfo struct {
	Label          string              `json:"label" yaml:"label" example:"205/55 R16 91V"`
	Size           tiresize.Size       `json:"size" yaml:"size"`
	Valid          tiresize.Validation `json:"validation" yaml:"validation"`
	Geometry       fitment.Geometry    `json:"geometry" yaml:"geometry"`
	LoadCapacityKg *int                `json:"load_capacity_kg,omitempty" yaml:"load_capacity_kg,omitempty" example:"615"`
	MaxSpeedKmh    *int                `json:"max_speed_kmh,omitempty" yaml:"max_speed_kmh,omitempty" example:"240"`
}
