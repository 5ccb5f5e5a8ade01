package domain

import (
	"context"

	"tirefit/internal/core/fitment"
	"tirefit/internal/core/tiresize"
)

// ServicePort defines the service contract for fitment
type ServicePort interface {
	Validate(ctx context.Context, in SizeInput) (ValidateResponse, error)
	Diameter(ctx context.Context, in SizeInput) (fitment.Geometry, error)
	Alternatives(ctx context.Context, in AlternativesRequest) (AlternativesResponse, error)
	Impact(ctx context.Context, in ImpactRequest) (ImpactResponse, error)
	Compare(ctx context.Context, in CompareRequest) (fitment.Comparison, error)
	Describe(ctx context.Context, label string) (SizeInfo, error)
	SpeedRatings(ctx context.Context) []tiresize.SpeedRating
}

// DefaultsPort exposes the resolved search defaults to other modules
type DefaultsPort interface {
	Defaults() Defaults
}

// Defaults are the values used when a request leaves a parameter out
type Defaults struct {
	MaxDeviationPercent  float64              `json:"max_deviation_percent" example:"3"`
	AllowedWidthRange    int                  `json:"allowed_width_range" example:"20"`
	AllowedDiameterRange int                  `json:"allowed_diameter_range" example:"1"`
	ImpactSpeeds         []float64            `json:"impact_speeds"`
	RimWidthBand         fitment.RimWidthBand `json:"rim_width_band"`
}
