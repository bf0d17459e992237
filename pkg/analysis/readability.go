package analysis

import (
	"unicode/utf8"

	"github.com/sanonone/readlens/pkg/textanalyzer"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinTextLength is the minimum number of characters ScoreReadability accepts.
const MinTextLength = 50

// ScoreReadability computes Flesch Reading Ease, Flesch-Kincaid Grade Level,
// sentence and word averages, and the derived difficulty label,
// recommendation and 0-10 score for text.
//
// Text shorter than MinTextLength characters fails with ErrTextTooShort.
func ScoreReadability(text string) (*ReadabilityReport, error) {
	chars := utf8.RuneCountInString(text)
	if chars < MinTextLength {
		return nil, ErrTextTooShort
	}

	stats := ComputeStatistics(text)
	ease := FleschReadingEase(stats)
	grade := FleschKincaidGrade(stats)
	difficulty, recommendation := Classify(ease)

	return &ReadabilityReport{
		Metrics: ReadabilityMetrics{
			FleschReadingEase:  round(ease, 1),
			FleschKincaidGrade: round(grade, 1),
			AvgSentenceLength:  round(ratio(stats.WordCount, stats.SentenceCount), 1),
			AvgWordLength:      round(stats.MeanWordLength, 1),
			Difficulty:         difficulty,
			Recommendation:     recommendation,
			ReadabilityScore:   NormalizedScore(ease),
		},
		Stats:       stats,
		ReadingEase: ease,
		IsOptimal:   IsOptimal(ease),
	}, nil
}

// ComputeStatistics tokenizes text and counts sentences, words, syllables
// and characters.
func ComputeStatistics(text string) TextStatistics {
	sentences := textanalyzer.SplitSentences(text)
	words := textanalyzer.SplitWords(text)

	stats := TextStatistics{
		SentenceCount:  len(sentences),
		WordCount:      len(words),
		SyllableCount:  textanalyzer.CountTextSyllables(words),
		CharacterCount: utf8.RuneCountInString(text),
	}
	if len(words) == 0 {
		return stats
	}

	lengths := make([]float64, len(words))
	for i, w := range words {
		lengths[i] = float64(utf8.RuneCountInString(w))
	}
	stats.LetterCount = int(floats.Sum(lengths))
	stats.MeanWordLength = stat.Mean(lengths, nil)
	return stats
}

// FleschReadingEase returns
// 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
// A ratio with a zero denominator counts as 0.
func FleschReadingEase(s TextStatistics) float64 {
	return 206.835 -
		1.015*ratio(s.WordCount, s.SentenceCount) -
		84.6*ratio(s.SyllableCount, s.WordCount)
}

// FleschKincaidGrade returns
// 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59.
// A ratio with a zero denominator counts as 0.
func FleschKincaidGrade(s TextStatistics) float64 {
	return 0.39*ratio(s.WordCount, s.SentenceCount) +
		11.8*ratio(s.SyllableCount, s.WordCount) -
		15.59
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
