package fitment

import (
	"fmt"
	"math"

	"tirefit/internal/core/tiresize"
)

// Search walks the width x profile x rim grid around p.Original and returns every
// candidate inside the diameter tolerance that satisfies the index constraints.
// The slice is in enumeration order, unsorted and uncapped. Negative ranges and
// tolerances are treated as zero; an empty search space yields an empty slice
func (c *Calculator) Search(p Params) []Alternative {
	out := make([]Alternative, 0)

	orig := tiresize.DiameterOf(p.Original)
	if orig <= 0 {
		return out
	}

	tol := p.MaxDeviationPercent
	if math.IsNaN(tol) || tol < 0 {
		tol = 0
	}
	minD := orig*(1-tol/100) - boundaryEpsilonMm
	maxD := orig*(1+tol/100) + boundaryEpsilonMm

	wr := max(p.AllowedWidthRange, 0)
	dr := max(p.AllowedDiameterRange, 0)
	minW := clamp(p.Original.Width-wr, tiresize.MinWidth, tiresize.MaxWidth)
	maxW := clamp(p.Original.Width+wr, tiresize.MinWidth, tiresize.MaxWidth)
	minR := clamp(p.Original.Diameter-dr, tiresize.MinDiameter, tiresize.MaxDiameter)
	maxR := clamp(p.Original.Diameter+dr, tiresize.MinDiameter, tiresize.MaxDiameter)

	for w := minW; w <= maxW; w += WidthStepMm {
		if !tiresize.IsManufacturedWidth(w) {
			continue
		}
		for pr := tiresize.MinProfile; pr <= tiresize.MaxProfile; pr += ProfileStepPct {
			for r := minR; r <= maxR; r += RimStepIn {
				cand := tiresize.Size{
					Width:      w,
					Profile:    pr,
					Diameter:   r,
					LoadIndex:  cloneInt(p.Original.LoadIndex),
					SpeedIndex: p.Original.SpeedIndex,
				}
				d := tiresize.DiameterOf(cand)
				if d < minD || d > maxD {
					continue
				}
				if !meetsIndexes(cand, p) {
					continue
				}
				out = append(out, c.alternative(p.Original, orig, cand, d))
			}
		}
	}
	return out
}

// meetsIndexes applies the optional minimum load and speed index. A candidate
// without an index never satisfies a minimum that is set
func meetsIndexes(cand tiresize.Size, p Params) bool {
	if p.MinLoadIndex != nil {
		if cand.LoadIndex == nil || *cand.LoadIndex < *p.MinLoadIndex {
			return false
		}
	}
	if p.MinSpeedIndex.IsSet() && !cand.SpeedIndex.AtLeast(p.MinSpeedIndex) {
		return false
	}
	return true
}

func (c *Calculator) alternative(original tiresize.Size, orig float64, cand tiresize.Size, d float64) Alternative {
	devMm := d - orig
	a := Alternative{
		Size:                tiresize.New(cand.Width, cand.Profile, cand.Diameter).String(),
		Width:               cand.Width,
		Profile:             cand.Profile,
		Diameter:            cand.Diameter,
		CalculatedDiameter:  roundMm(d),
		DeviationPercent:    roundPercent(devMm / orig * 100),
		DeviationMm:         roundMm(devMm),
		LoadIndex:           cand.LoadIndex,
		SpeedIndex:          cand.SpeedIndex,
		RecommendedRimWidth: c.band.For(cand.Width).String(),
		Warnings:            []string{},
	}
	a.Tier = Classify(a.DeviationPercent)
	a.IsRecommended = a.Tier == TierRecommended

	if math.Abs(a.DeviationPercent) > RecommendedDeviationPercent {
		a.Warnings = append(a.Warnings, fmt.Sprintf(
			"diameter deviation %+.2f%% exceeds the recommended %.0f%%", a.DeviationPercent, RecommendedDeviationPercent))
	}
	if dw := cand.Width - original.Width; abs(dw) > WidthChangeWarnMm {
		a.Warnings = append(a.Warnings, fmt.Sprintf(
			"width changes by %+d mm; check wheel arch and suspension clearance", dw))
	}
	return a
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
