package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sanonone/readlens/pkg/textanalyzer"
)

const (
	// rankedKeywordLimit is how many keywords are ranked and given a density.
	rankedKeywordLimit = 20
	// TopKeywordLimit is how many ranked keywords a report returns.
	TopKeywordLimit = 10

	// OptimalDensityMin and OptimalDensityMax bound the target keyword
	// density considered optimal, in percent.
	OptimalDensityMin = 0.5
	OptimalDensityMax = 2.5

	// overuseDensity is the top keyword density above which an overuse
	// warning is emitted.
	overuseDensity = 3.0
)

var keywordAnalyzer textanalyzer.Analyzer = textanalyzer.NewKeywordAnalyzer()

// AnalyzeKeywords ranks the keywords of text by frequency and reports the
// density of each target keyword.
//
// Ranked keywords come from the tokenized, stop-word filtered text; ties
// are broken by first occurrence. Target keywords are counted as raw,
// case-insensitive substring occurrences in the whole text, so a target
// that is part of a longer word is counted there too. Both densities use
// the filtered token count as denominator.
//
// An empty target keyword matches at every position, before and after each
// character, so its count is the character count plus one.
//
// Empty text fails with ErrEmptyText.
func AnalyzeKeywords(text string, targetKeywords []string) (*KeywordReport, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	lowered := textanalyzer.Lower(text)
	tokens := keywordAnalyzer.Analyze(lowered)
	total := len(tokens)

	ranked, unique := rankKeywords(tokens, rankedKeywordLimit)
	stats := make([]KeywordStat, len(ranked))
	for i, kw := range ranked {
		stats[i] = KeywordStat{
			Keyword: kw.word,
			Count:   kw.count,
			Density: round(density(kw.count, total), 2),
		}
	}

	targets := make([]TargetKeywordStat, 0, len(targetKeywords))
	for _, kw := range targetKeywords {
		count := strings.Count(lowered, textanalyzer.Lower(kw))
		d := density(count, total)
		targets = append(targets, TargetKeywordStat{
			KeywordStat: KeywordStat{
				Keyword: kw,
				Count:   count,
				Density: round(d, 2),
			},
			IsOptimal: d >= OptimalDensityMin && d <= OptimalDensityMax,
		})
	}

	top := stats
	if len(top) > TopKeywordLimit {
		top = top[:TopKeywordLimit]
	}

	richness := 0.0
	if total > 0 {
		richness = round(float64(unique)/float64(total)*100, 1)
	}

	return &KeywordReport{
		TopKeywords:    top,
		TargetKeywords: targets,
		Statistics: KeywordStatistics{
			TotalWords:         total,
			UniqueWords:        unique,
			VocabularyRichness: richness,
		},
		Recommendations: keywordRecommendations(stats),
	}, nil
}

func keywordRecommendations(ranked []KeywordStat) []string {
	recommendations := []string{}
	switch {
	case len(ranked) == 0:
		recommendations = append(recommendations, "Add more descriptive content")
	case ranked[0].Density > overuseDensity:
		recommendations = append(recommendations, fmt.Sprintf(
			"Keyword '%s' may be overused (density: %s%%)",
			ranked[0].Keyword, formatPercent(ranked[0].Density),
		))
	}
	return recommendations
}

// density returns count as a percentage of total, 0 when total is 0.
func density(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// formatPercent prints v in its shortest form, always with a fractional
// part: 100 -> "100.0", 3.33 -> "3.33".
func formatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
