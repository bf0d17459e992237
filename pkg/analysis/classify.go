package analysis

import "math"

type difficultyBand struct {
	min            float64
	difficulty     Difficulty
	recommendation string
}

// difficultyBands are checked top-down; the first band whose lower bound
// is reached wins.
var difficultyBands = []difficultyBand{
	{80, VeryEasy, "Perfect for general audience"},
	{60, Easy, "Good for most readers"},
	{50, FairlyDifficult, "Requires some concentration"},
	{30, Difficult, "Consider simplifying language"},
}

// Classify maps a Flesch Reading Ease score to a difficulty label and a
// recommendation.
func Classify(ease float64) (Difficulty, string) {
	for _, b := range difficultyBands {
		if ease >= b.min {
			return b.difficulty, b.recommendation
		}
	}
	return VeryDifficult, "Too complex - simplify significantly"
}

type scoreRange struct {
	lo, hi         float64
	loOpen, hiOpen bool
	score          int
}

func (r scoreRange) contains(v float64) bool {
	if r.loOpen && v <= r.lo || !r.loOpen && v < r.lo {
		return false
	}
	if r.hiOpen && v >= r.hi || !r.hiOpen && v > r.hi {
		return false
	}
	return true
}

// scoreRanges are evaluated in order, not sorted by score. The resulting
// curve is not monotonic: 85 scores 8 while 95 scores 7. Existing clients
// depend on these exact values.
var scoreRanges = []scoreRange{
	{lo: 60, hi: 80, score: 10},
	{lo: 50, hi: 60, hiOpen: true, score: 8},
	{lo: 80, hi: 90, loOpen: true, score: 8},
	{lo: 40, hi: 50, hiOpen: true, score: 6},
	{lo: 90, hi: 100, loOpen: true, score: 7},
	{lo: 30, hi: 40, hiOpen: true, score: 4},
}

// fallbackScore applies when no range matches.
const fallbackScore = 2

// NormalizedScore maps a Flesch Reading Ease score onto the 0-10 scale.
func NormalizedScore(ease float64) int {
	for _, r := range scoreRanges {
		if r.contains(ease) {
			return r.score
		}
	}
	return fallbackScore
}

// IsOptimal reports whether ease lies in the ideal [60, 80] band.
func IsOptimal(ease float64) bool {
	return ease >= 60 && ease <= 80
}

// round rounds v to the given number of decimal places. Halves round to
// even so presented values match existing clients.
func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}
