package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/sanonone/readlens/pkg/analysis"
	"github.com/sanonone/readlens/pkg/loader"
)

// documentReport is one analyzed document. A rejected analysis leaves its
// section nil and records the message instead.
type documentReport struct {
	Path             string                               `json:"path"`
	Pages            int                                  `json:"pages,omitempty"`
	Readability      *analysis.ServiceReadabilityResponse `json:"readability,omitempty"`
	ReadabilityError string                               `json:"readabilityError,omitempty"`
	Keywords         *analysis.KeywordResponse            `json:"keywords,omitempty"`
	KeywordsError    string                               `json:"keywordsError,omitempty"`
	Error            string                               `json:"error,omitempty"`
}

// analyzeDocument runs both analyses on doc. Rejections are recorded on
// the report; faults are returned.
func analyzeDocument(doc *loader.Document, targets []string) (documentReport, error) {
	r := documentReport{Path: doc.Path, Pages: doc.Pages}

	readability, err := analysis.ScoreReadability(doc.Text)
	switch {
	case err == nil:
		resp := analysis.NewServiceReadabilityResponse(readability)
		r.Readability = &resp
	case analysis.IsRejected(err):
		r.ReadabilityError = err.Error()
	default:
		return r, fmt.Errorf("readability analysis of %s: %w", doc.Path, err)
	}

	keywords, err := analysis.AnalyzeKeywords(doc.Text, targets)
	switch {
	case err == nil:
		resp := analysis.NewKeywordResponse(keywords)
		r.Keywords = &resp
	case analysis.IsRejected(err):
		r.KeywordsError = err.Error()
	default:
		return r, fmt.Errorf("keyword analysis of %s: %w", doc.Path, err)
	}

	return r, nil
}

// difficultyColor maps a difficulty label to its terminal color.
func difficultyColor(d analysis.Difficulty) func(a ...interface{}) string {
	switch d {
	case analysis.VeryEasy, analysis.Easy:
		return success
	case analysis.FairlyDifficult:
		return warning
	default:
		return failure
	}
}

// writeText prints r in a human-readable layout.
func writeText(w io.Writer, r documentReport) {
	fmt.Fprintf(w, "%s %s\n", info("Document:"), r.Path)
	if r.Pages > 0 {
		fmt.Fprintf(w, "  %s\n", dim(fmt.Sprintf("%d pages", r.Pages)))
	}

	fmt.Fprintf(w, "\n%s\n", info("Readability"))
	if r.Readability == nil {
		fmt.Fprintf(w, "  %s %s\n", warning("skipped:"), r.ReadabilityError)
	} else {
		m := r.Readability.Metrics
		paint := difficultyColor(m.Difficulty)
		fmt.Fprintf(w, "  Score:              %s/10 (%s)\n", paint(m.ReadabilityScore), paint(string(m.Difficulty)))
		fmt.Fprintf(w, "  Reading ease:       %.1f\n", m.FleschReadingEase)
		fmt.Fprintf(w, "  Grade level:        %.1f\n", m.FleschKincaidGrade)
		fmt.Fprintf(w, "  Avg sentence:       %.1f words\n", m.AvgSentenceLength)
		fmt.Fprintf(w, "  Avg word:           %.1f chars\n", m.AvgWordLength)
		fmt.Fprintf(w, "  Sentences / words:  %d / %d\n", r.Readability.Analysis.SentenceCount, r.Readability.Analysis.WordCount)
		fmt.Fprintf(w, "  %s\n", dim(m.Recommendation))
	}

	fmt.Fprintf(w, "\n%s\n", info("Keywords"))
	if r.Keywords == nil {
		fmt.Fprintf(w, "  %s %s\n", warning("skipped:"), r.KeywordsError)
		return
	}
	k := r.Keywords
	fmt.Fprintf(w, "  Words: %d total, %d unique (richness %.1f%%)\n",
		k.Statistics.TotalWords, k.Statistics.UniqueWords, k.Statistics.VocabularyRichness)
	for i, kw := range k.TopKeywords {
		fmt.Fprintf(w, "  %2d. %-20s %3d  %6.2f%%\n", i+1, kw.Keyword, kw.Count, kw.Density)
	}
	if len(k.TargetKeywords) > 0 {
		fmt.Fprintf(w, "  Targets:\n")
		for _, kw := range k.TargetKeywords {
			status := warning("outside 0.5-2.5%")
			if kw.IsOptimal {
				status = success("optimal")
			}
			fmt.Fprintf(w, "    %-20s %3d  %6.2f%%  %s\n", kw.Keyword, kw.Count, kw.Density, status)
		}
	}
	for _, rec := range k.Recommendations {
		fmt.Fprintf(w, "  %s %s\n", warning("!"), rec)
	}
}

// splitKeywords parses a comma-separated flag value, dropping blanks.
func splitKeywords(values []string) []string {
	var out []string
	for _, v := range values {
		for _, kw := range strings.Split(v, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				out = append(out, kw)
			}
		}
	}
	return out
}
