package fitment

import (
	"math"
	"sort"
)

// Tier is the presentation class of a candidate by absolute deviation
type Tier string

const (
	TierRecommended Tier = "recommended" // |dev| <= 1 %
	TierAttention   Tier = "attention"   // 1 % < |dev| <= 2 %
	TierCheck       Tier = "check"       // 2 % < |dev| <= 3 %
	TierOther       Tier = "other"       // beyond 3 %
)

// Tier upper bounds in percent
const (
	recommendedMaxPct = 1.0
	attentionMaxPct   = 2.0
	checkMaxPct       = 3.0
)

// Tiers lists every tier from best to worst
var Tiers = []Tier{TierRecommended, TierAttention, TierCheck, TierOther}

// ParseTier maps a tier name to a Tier
func ParseTier(s string) (Tier, bool) {
	for _, t := range Tiers {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Classify places a deviation percentage in its tier
func Classify(deviationPercent float64) Tier {
	d := math.Abs(deviationPercent)
	switch {
	case d <= recommendedMaxPct:
		return TierRecommended
	case d <= attentionMaxPct:
		return TierAttention
	case d <= checkMaxPct:
		return TierCheck
	default:
		return TierOther
	}
}

// Rank sorts a copy of alts by absolute deviation and truncates it to limit.
// Equal deviations keep their enumeration order. The returned total is the
// count before truncation. A non-positive limit means ResultCap
func Rank(alts []Alternative, limit int) ([]Alternative, int) {
	if limit <= 0 {
		limit = ResultCap
	}
	out := make([]Alternative, len(alts))
	copy(out, alts)
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].DeviationPercent) < math.Abs(out[j].DeviationPercent)
	})
	total := len(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, total
}

// FilterTiers keeps the alternatives whose tier is listed, preserving order.
// With no tiers the input is returned as is
func FilterTiers(alts []Alternative, tiers ...Tier) []Alternative {
	if len(tiers) == 0 {
		return alts
	}
	want := make(map[Tier]struct{}, len(tiers))
	for _, t := range tiers {
		want[t] = struct{}{}
	}
	out := make([]Alternative, 0, len(alts))
	for _, a := range alts {
		if _, ok := want[a.Tier]; ok {
			out = append(out, a)
		}
	}
	return out
}

// TierCounts counts alternatives per tier; every tier is present in the map
func TierCounts(alts []Alternative) map[Tier]int {
	out := make(map[Tier]int, len(Tiers))
	for _, t := range Tiers {
		out[t] = 0
	}
	for _, a := range alts {
		out[a.Tier]++
	}
	return out
}
