package fitment

import "tirefit/internal/core/tiresize"

// Geometry is the derived shape of one size
type Geometry struct {
	Size            string  `json:"size" yaml:"size"`
	Diameter        float64 `json:"diameter" yaml:"diameter"`
	SidewallMm      float64 `json:"sidewall_mm" yaml:"sidewall_mm"`
	CircumferenceMm float64 `json:"circumference_mm" yaml:"circumference_mm"`
	RevsPerKm       float64 `json:"revs_per_km" yaml:"revs_per_km"`
	RimWidth        string  `json:"rim_width" yaml:"rim_width"`
}

// Comparison is the side by side of two sizes. Differences are To minus From
type Comparison struct {
	From Geometry `json:"from" yaml:"from"`
	To   Geometry `json:"to" yaml:"to"`

	WidthDiffMm         int     `json:"width_diff_mm" yaml:"width_diff_mm"`
	DiameterDiffMm      float64 `json:"diameter_diff_mm" yaml:"diameter_diff_mm"`
	DiameterDiffPercent float64 `json:"diameter_diff_percent" yaml:"diameter_diff_percent"`
	SidewallDiffMm      float64 `json:"sidewall_diff_mm" yaml:"sidewall_diff_mm"`
	RevsPerKmDiff       float64 `json:"revs_per_km_diff" yaml:"revs_per_km_diff"`

	// ClearanceChangeMm is the change in ground clearance at the axle: half the diameter change
	ClearanceChangeMm float64 `json:"clearance_change_mm" yaml:"clearance_change_mm"`

	Tier    Tier     `json:"tier" yaml:"tier"`
	Impacts []Impact `json:"impacts" yaml:"impacts"`
}

// Geometry derives the geometry of s
func (c *Calculator) Geometry(s tiresize.Size) Geometry {
	return Geometry{
		Size:            tiresize.Format(s),
		Diameter:        roundMm(tiresize.DiameterOf(s)),
		SidewallMm:      roundMm(tiresize.SidewallMm(s)),
		CircumferenceMm: roundMm(tiresize.CircumferenceMm(s)),
		RevsPerKm:       round(tiresize.RevsPerKm(s), 1),
		RimWidth:        c.band.For(s.Width).String(),
	}
}

// Compare contrasts from with to and tabulates the speedometer impact at speeds
// (DefaultImpactSpeeds when empty). Neither size is range checked
func (c *Calculator) Compare(from, to tiresize.Size, speeds []float64) Comparison {
	fd, td := tiresize.DiameterOf(from), tiresize.DiameterOf(to)
	diff := td - fd

	pct := 0.0
	if fd > 0 {
		pct = roundPercent(diff / fd * 100)
	}

	return Comparison{
		From:                c.Geometry(from),
		To:                  c.Geometry(to),
		WidthDiffMm:         to.Width - from.Width,
		DiameterDiffMm:      roundMm(diff),
		DiameterDiffPercent: pct,
		SidewallDiffMm:      roundMm(tiresize.SidewallMm(to) - tiresize.SidewallMm(from)),
		RevsPerKmDiff:       round(tiresize.RevsPerKm(to)-tiresize.RevsPerKm(from), 1),
		ClearanceChangeMm:   roundMm(diff / 2),
		Tier:                Classify(pct),
		Impacts:             ImpactTable(fd, td, speeds),
	}
}
