package fitment

import "tirefit/internal/core/tiresize"

// Calculator runs searches with a fixed rim width band. The zero value is not
// usable; build one with New. A Calculator is immutable and safe for concurrent use
type Calculator struct {
	band RimWidthBand
}

// Option configures a Calculator
type Option func(*Calculator)

// WithRimWidthBand overrides the rim-to-tire width ratios. Unusable ratios fall
// back to DefaultRimWidthBand
func WithRimWidthBand(b RimWidthBand) Option {
	return func(c *Calculator) { c.band = b.normalized() }
}

// New builds a Calculator
func New(opts ...Option) *Calculator {
	c := &Calculator{band: DefaultRimWidthBand}
	for _, o := range opts {
		if o != nil {
			o(c)
		}
	}
	return c
}

// RimWidthBand reports the band in use
func (c *Calculator) RimWidthBand() RimWidthBand { return c.band }

// RimWidth is the recommended rim range for a tire width in mm
func (c *Calculator) RimWidth(widthMm int) RimWidthRange { return c.band.For(widthMm) }

// Calculate searches, ranks and caps. The caller validates p.Original first;
// an out-of-range original still returns a well-formed, possibly empty, result
func (c *Calculator) Calculate(p Params) Result {
	ranked, total := Rank(c.Search(p), ResultCap)
	return Result{
		OriginalDiameter: roundMm(tiresize.DiameterOf(p.Original)),
		Alternatives:     ranked,
		SearchParams:     p,
		TotalFound:       total,
	}
}

var std = New()

// Search runs Calculator.Search with the default rim band
func Search(p Params) []Alternative { return std.Search(p) }

// Calculate runs Calculator.Calculate with the default rim band
func Calculate(p Params) Result { return std.Calculate(p) }

// Compare runs Calculator.Compare with the default rim band
func Compare(from, to tiresize.Size, speeds []float64) Comparison {
	return std.Compare(from, to, speeds)
}
