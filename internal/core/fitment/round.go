package fitment

import (
	"math"

	"github.com/shopspring/decimal"
)

// Output precision
const (
	mmPlaces      = 1
	percentPlaces = 2
	speedPlaces   = 1
)

// round rounds half away from zero on the shortest decimal form of v,
// so 631.9000000000001 and 631.8999999999999 both come out as 631.9
func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

func roundMm(v float64) float64 { return round(v, mmPlaces) }

func roundPercent(v float64) float64 { return round(v, percentPlaces) }

func roundSpeed(v float64) float64 { return round(v, speedPlaces) }

// RoundMm rounds a length to the precision used in results
func RoundMm(v float64) float64 { return roundMm(v) }
