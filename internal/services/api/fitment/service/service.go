// Package service contains fitment workflows: input resolution, domain
// validation and assembly of the calculator output into response DTOs
package service

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"tirefit/internal/core/fitment"
	"tirefit/internal/core/tiresize"
	"tirefit/internal/platform/config"
	perr "tirefit/internal/platform/errors"
	"tirefit/internal/platform/logger"
	"tirefit/internal/services/api/fitment/domain"

	"github.com/google/uuid"
)

// Service defines the service contract for fitment
type Service interface {
	domain.ServicePort
	domain.DefaultsPort
}

// keySpace namespaces result keys so they never collide with other SHA1 uuids
var keySpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:tirefit:fitment"))

// Svc implements the Service interface
type Svc struct {
	calc     *fitment.Calculator
	defaults domain.Defaults
}

var _ Service = (*Svc)(nil)

// DefaultsFromConfig reads CORE_FITMENT_* keys
func DefaultsFromConfig(cfg config.Conf) domain.Defaults {
	c := cfg.Prefix("CORE_FITMENT_")
	band := fitment.DefaultRimWidthBand
	return domain.Defaults{
		MaxDeviationPercent:  c.MayFloat64("DEFAULT_TOLERANCE", 3),
		AllowedWidthRange:    c.MayInt("DEFAULT_WIDTH_RANGE", 20),
		AllowedDiameterRange: c.MayInt("DEFAULT_RIM_RANGE", 1),
		ImpactSpeeds:         c.MayFloats("IMPACT_SPEEDS", fitment.DefaultImpactSpeeds),
		RimWidthBand: fitment.RimWidthBand{
			Min:     c.MayFloat64("RIM_BAND_MIN", band.Min),
			Optimal: c.MayFloat64("RIM_BAND_OPT", band.Optimal),
			Max:     c.MayFloat64("RIM_BAND_MAX", band.Max),
		},
	}
}

// New creates a fitment service. The rim band in d is normalized by the calculator
func New(d domain.Defaults) *Svc {
	calc := fitment.New(fitment.WithRimWidthBand(d.RimWidthBand))
	d.RimWidthBand = calc.RimWidthBand()
	d.ImpactSpeeds = slices.Clone(d.ImpactSpeeds)
	if len(d.ImpactSpeeds) == 0 {
		d.ImpactSpeeds = slices.Clone(fitment.DefaultImpactSpeeds)
	}
	return &Svc{calc: calc, defaults: d}
}

// Defaults returns a copy of the resolved defaults
func (s *Svc) Defaults() domain.Defaults {
	d := s.defaults
	d.ImpactSpeeds = slices.Clone(d.ImpactSpeeds)
	return d
}

// Validate reports every bound violation of the size. An invalid size is a result, not an error
func (s *Svc) Validate(_ context.Context, in domain.SizeInput) (domain.ValidateResponse, error) {
	sz, err := Resolve(in)
	if err != nil {
		return domain.ValidateResponse{}, err
	}
	return domain.ValidateResponse{Size: tiresize.Format(sz), Validation: tiresize.Validate(sz)}, nil
}

// Diameter returns the geometry of a valid size
func (s *Svc) Diameter(_ context.Context, in domain.SizeInput) (fitment.Geometry, error) {
	sz, err := s.valid("size", in)
	if err != nil {
		return fitment.Geometry{}, err
	}
	return s.calc.Geometry(sz), nil
}

// Alternatives validates the original size, fills in defaults and runs the calculator.
// Tier counts cover the ranked list before any tier filter or limit
func (s *Svc) Alternatives(ctx context.Context, in domain.AlternativesRequest) (domain.AlternativesResponse, error) {
	orig, err := s.valid("original_size", in.Original)
	if err != nil {
		return domain.AlternativesResponse{}, err
	}
	p, err := s.params(orig, in)
	if err != nil {
		return domain.AlternativesResponse{}, err
	}
	tiers, err := parseTiers(in.Tiers)
	if err != nil {
		return domain.AlternativesResponse{}, err
	}

	start := time.Now()
	res := s.calc.Calculate(p)
	counts := fitment.TierCounts(res.Alternatives)
	alts := fitment.FilterTiers(res.Alternatives, tiers...)
	if in.Limit > 0 && len(alts) > in.Limit {
		alts = alts[:in.Limit]
	}
	res.Alternatives = alts

	logger.C(ctx).Debug().
		Str("original", tiresize.Format(orig)).
		Int("total_found", res.TotalFound).
		Int("returned", len(alts)).
		Dur("elapsed", time.Since(start)).
		Msg("fitment calculated")

	return domain.AlternativesResponse{
		Key:        Key(p),
		Result:     res,
		Returned:   len(alts),
		TierCounts: counts,
	}, nil
}

// Impact computes the speedometer effect from diameters or sizes; sizes win when both are given
func (s *Svc) Impact(_ context.Context, in domain.ImpactRequest) (domain.ImpactResponse, error) {
	od, cd := in.OriginalDiameter, in.CandidateDiameter
	if in.Original != nil {
		sz, err := s.valid("original_size", *in.Original)
		if err != nil {
			return domain.ImpactResponse{}, err
		}
		od = tiresize.DiameterOf(sz)
	}
	if in.Candidate != nil {
		sz, err := s.valid("candidate_size", *in.Candidate)
		if err != nil {
			return domain.ImpactResponse{}, err
		}
		cd = tiresize.DiameterOf(sz)
	}
	if od <= 0 {
		return domain.ImpactResponse{}, perr.WithField(perr.InvalidArgf("original diameter must be positive"), "original_diameter")
	}
	if cd <= 0 {
		return domain.ImpactResponse{}, perr.WithField(perr.InvalidArgf("candidate diameter must be positive"), "candidate_diameter")
	}

	out := domain.ImpactResponse{
		OriginalDiameter:  fitment.RoundMm(od),
		CandidateDiameter: fitment.RoundMm(cd),
	}
	if len(in.Speeds) > 0 {
		out.Table = fitment.ImpactTable(od, cd, in.Speeds)
		return out, nil
	}
	imp := fitment.ImpactOf(od, cd, in.IndicatedSpeed)
	out.Impact = &imp
	return out, nil
}

// Compare contrasts two valid sizes, tabulating impact at the configured speeds unless given
func (s *Svc) Compare(_ context.Context, in domain.CompareRequest) (fitment.Comparison, error) {
	from, err := s.valid("from", in.From)
	if err != nil {
		return fitment.Comparison{}, err
	}
	to, err := s.valid("to", in.To)
	if err != nil {
		return fitment.Comparison{}, err
	}
	speeds := in.Speeds
	if len(speeds) == 0 {
		speeds = s.defaults.ImpactSpeeds
	}
	return s.calc.Compare(from, to, speeds), nil
}

// Describe parses a label and reports its geometry, validity and index tables.
// An unparseable label is an invalid argument
func (s *Svc) Describe(_ context.Context, label string) (domain.SizeInfo, error) {
	sz, err := tiresize.Parse(label)
	if err != nil {
		return domain.SizeInfo{}, perr.WithField(perr.Wrap(err, perr.ErrorCodeInvalidArgument, "invalid size label"), "label")
	}
	info := domain.SizeInfo{
		Label:    tiresize.Format(sz),
		Size:     sz,
		Valid:    tiresize.Validate(sz),
		Geometry: s.calc.Geometry(sz),
	}
	if sz.HasLoadIndex() {
		if kg, ok := tiresize.LoadCapacityKg(sz.Load()); ok {
			info.LoadCapacityKg = &kg
		}
	}
	if kmh, ok := sz.SpeedIndex.MaxSpeedKmh(); ok {
		info.MaxSpeedKmh = &kmh
	}
	return info, nil
}

// SpeedRatings returns the rating table in published order
func (s *Svc) SpeedRatings(context.Context) []tiresize.SpeedRating {
	return tiresize.SpeedRatings()
}

// valid resolves in and fails with every bound violation when the size is out of range
func (s *Svc) valid(field string, in domain.SizeInput) (tiresize.Size, error) {
	sz, err := Resolve(in)
	if err != nil {
		return sz, perr.WithField(err, field)
	}
	if v := tiresize.Validate(sz); !v.IsValid {
		return sz, perr.WithField(perr.Validation("invalid tire size", v.Errors), field)
	}
	return sz, nil
}

func (s *Svc) params(orig tiresize.Size, in domain.AlternativesRequest) (fitment.Params, error) {
	p := fitment.Params{
		Original:             orig,
		MaxDeviationPercent:  s.defaults.MaxDeviationPercent,
		AllowedWidthRange:    s.defaults.AllowedWidthRange,
		AllowedDiameterRange: s.defaults.AllowedDiameterRange,
		MinLoadIndex:         in.MinLoadIndex,
		Season:               in.Season,
		CarType:              in.CarType,
	}
	if in.MaxDeviationPercent != nil {
		p.MaxDeviationPercent = *in.MaxDeviationPercent
	}
	if in.AllowedWidthRange != nil {
		p.AllowedWidthRange = *in.AllowedWidthRange
	}
	if in.AllowedDiameterRange != nil {
		p.AllowedDiameterRange = *in.AllowedDiameterRange
	}
	if in.MinSpeedIndex != "" {
		si, ok := tiresize.ParseSpeedIndex(in.MinSpeedIndex)
		if !ok {
			return p, perr.WithField(perr.InvalidArgf("unknown speed rating %q", in.MinSpeedIndex), "min_speed_index")
		}
		p.MinSpeedIndex = si
	}
	return p, nil
}

func parseTiers(in []string) ([]fitment.Tier, error) {
	out := make([]fitment.Tier, 0, len(in))
	for _, s := range in {
		t, ok := fitment.ParseTier(s)
		if !ok {
			return nil, perr.WithField(perr.InvalidArgf("unknown tier %q", s), "tiers")
		}
		out = append(out, t)
	}
	return out, nil
}

// Resolve turns a size input into a size. Explicit index fields override the label's
func Resolve(in domain.SizeInput) (tiresize.Size, error) {
	var sz tiresize.Size
	if in.Label != "" {
		parsed, err := tiresize.Parse(in.Label)
		if err != nil {
			return sz, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "invalid size label")
		}
		sz = parsed
	} else {
		sz = tiresize.New(in.Width, in.Profile, in.Diameter)
	}
	if in.LoadIndex != nil {
		sz = sz.WithLoadIndex(*in.LoadIndex)
	}
	if in.SpeedIndex != "" {
		si, ok := tiresize.ParseSpeedIndex(in.SpeedIndex)
		if !ok {
			return sz, perr.InvalidArgf("unknown speed rating %q", in.SpeedIndex)
		}
		sz = sz.WithSpeedIndex(si)
	}
	return sz, nil
}

// Key is a name-based uuid of the resolved search parameters
func Key(p fitment.Params) string {
	b, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return uuid.NewSHA1(keySpace, b).String()
}
