package analysis

import "testing"

func TestClassify(t *testing.T) {
	testCases := []struct {
		ease           float64
		difficulty     Difficulty
		recommendation string
	}{
		{120, VeryEasy, "Perfect for general audience"},
		{80, VeryEasy, "Perfect for general audience"},
		{79.99, Easy, "Good for most readers"},
		{60, Easy, "Good for most readers"},
		{59.9, FairlyDifficult, "Requires some concentration"},
		{50, FairlyDifficult, "Requires some concentration"},
		{49.9, Difficult, "Consider simplifying language"},
		{30, Difficult, "Consider simplifying language"},
		{29.99, VeryDifficult, "Too complex - simplify significantly"},
		{-40, VeryDifficult, "Too complex - simplify significantly"},
	}

	for _, tc := range testCases {
		d, rec := Classify(tc.ease)
		if d != tc.difficulty || rec != tc.recommendation {
			t.Errorf("Classify(%v) = (%q, %q), want (%q, %q)", tc.ease, d, rec, tc.difficulty, tc.recommendation)
		}
	}
}

func TestNormalizedScore(t *testing.T) {
	testCases := []struct {
		ease  float64
		score int
	}{
		{60, 10},
		{70, 10},
		{80, 10},
		{59.99, 8},
		{50, 8},
		{80.01, 8},
		{85, 8},
		{90, 8},
		{49.99, 6},
		{40, 6},
		{90.01, 7},
		{95, 7},
		{100, 7},
		{39.99, 4},
		{30, 4},
		{29.99, 2},
		{100.01, 2},
		{-12, 2},
	}

	for _, tc := range testCases {
		if got := NormalizedScore(tc.ease); got != tc.score {
			t.Errorf("NormalizedScore(%v) = %d, want %d", tc.ease, got, tc.score)
		}
	}
}

func TestNormalizedScore_NonMonotonic(t *testing.T) {
	// Kept on purpose: a 95 ranks below an 85.
	if NormalizedScore(95) >= NormalizedScore(85) {
		t.Errorf("expected 95 to score below 85")
	}
}

func TestIsOptimal(t *testing.T) {
	for ease, want := range map[float64]bool{59.9: false, 60: true, 80: true, 80.1: false} {
		if got := IsOptimal(ease); got != want {
			t.Errorf("IsOptimal(%v) = %v, want %v", ease, got, want)
		}
	}
}

func TestRound(t *testing.T) {
	testCases := []struct {
		v      float64
		places int
		want   float64
	}{
		{75.73298, 1, 75.7},
		{-85.425, 1, -85.4},
		{3.5714285, 2, 3.57},
		{0.125, 2, 0.12},
		{1.6666, 1, 1.7},
	}
	for _, tc := range testCases {
		if got := round(tc.v, tc.places); got != tc.want {
			t.Errorf("round(%v, %d) = %v, want %v", tc.v, tc.places, got, tc.want)
		}
	}
}
