package tiresize

import "strings"

// SpeedIndex is a speed rating symbol, e.g. "H" or "V". Empty means unset
type SpeedIndex string

// speedOrder is the published total order of speed ratings, slowest first
var speedOrder = []SpeedIndex{
	"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8",
	"B", "C", "D", "E", "F", "G", "J", "K",
	"L", "M", "N", "P", "Q", "R", "S", "T", "U", "H",
	"V", "W", "Y", "Z",
}

// speedKmh maps each rating to its maximum sustained speed. Z is open ended (above 240)
var speedKmh = map[SpeedIndex]int{
	"A1": 5, "A2": 10, "A3": 15, "A4": 20, "A5": 25, "A6": 30, "A7": 35, "A8": 40,
	"B": 50, "C": 60, "D": 65, "E": 70, "F": 80, "G": 90, "J": 100, "K": 110,
	"L": 120, "M": 130, "N": 140, "P": 150, "Q": 160, "R": 170, "S": 180, "T": 190,
	"U": 200, "H": 210, "V": 240, "W": 270, "Y": 300, "Z": 240,
}

var speedRank = func() map[SpeedIndex]int {
	m := make(map[SpeedIndex]int, len(speedOrder))
	for i, s := range speedOrder {
		m[s] = i + 1
	}
	return m
}()

// ParseSpeedIndex normalizes a symbol and reports whether it is a known rating
func ParseSpeedIndex(s string) (SpeedIndex, bool) {
	si := SpeedIndex(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := speedRank[si]
	return si, ok
}

// IsSet reports whether a rating was given
func (s SpeedIndex) IsSet() bool { return s != "" }

// Known reports whether s is part of the published order
func (s SpeedIndex) Known() bool {
	_, ok := speedRank[s]
	return ok
}

// Rank is the 1-based ordinal of s, 0 when unknown or unset
func (s SpeedIndex) Rank() int { return speedRank[s] }

// AtLeast reports whether s is rated at least as fast as min.
// An unset min is always satisfied; an unset or unknown s never satisfies a set min
func (s SpeedIndex) AtLeast(min SpeedIndex) bool {
	if !min.IsSet() {
		return true
	}
	if s.Rank() == 0 {
		return false
	}
	return s.Rank() >= min.Rank()
}

// MaxSpeedKmh returns the rated speed for s
func (s SpeedIndex) MaxSpeedKmh() (int, bool) {
	v, ok := speedKmh[s]
	return v, ok
}

// SpeedRating is one row of the rating table
type SpeedRating struct {
	Symbol      SpeedIndex `json:"symbol" yaml:"symbol"`
	Rank        int        `json:"rank" yaml:"rank"`
	MaxSpeedKmh int        `json:"max_speed_kmh" yaml:"max_speed_kmh"`
}

// SpeedRatings returns the full table in published order
func SpeedRatings() []SpeedRating {
	out := make([]SpeedRating, 0, len(speedOrder))
	for _, s := range speedOrder {
		out = append(out, SpeedRating{Symbol: s, Rank: s.Rank(), MaxSpeedKmh: speedKmh[s]})
	}
	return out
}
