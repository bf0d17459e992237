package mcp

import "github.com/sanonone/readlens/pkg/analysis"

// --- Tool Arguments ---

type ReadabilityArgs struct {
	Text string `json:"text" jsonschema:"The text to score. At least 50 characters."`
}

type KeywordsArgs struct {
	Text           string   `json:"text" jsonschema:"The text to analyze"`
	TargetKeywords []string `json:"targetKeywords,omitempty" jsonschema:"Keywords whose density should be reported"`
}

// --- Tool Results ---
// Field names match the HTTP response bodies.

// ReadabilityResult is the HTTP readability body.
type ReadabilityResult = analysis.ServiceReadabilityResponse

type TargetKeywordEntry struct {
	Keyword   string  `json:"keyword"`
	Count     int     `json:"count"`
	Density   float64 `json:"density"`
	IsOptimal bool    `json:"isOptimal"`
}

// KeywordsResult mirrors analysis.KeywordResponse with the target keyword
// entries flattened for schema inference.
type KeywordsResult struct {
	Success         bool                       `json:"success"`
	TopKeywords     []analysis.KeywordStat     `json:"topKeywords"`
	TargetKeywords  []TargetKeywordEntry       `json:"targetKeywords"`
	Statistics      analysis.KeywordStatistics `json:"statistics"`
	Recommendations []string                   `json:"recommendations"`
}
