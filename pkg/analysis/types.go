package analysis

// Request is the input accepted by every delivery wrapper.
type Request struct {
	Text           string   `json:"text"`
	TargetKeywords []string `json:"targetKeywords,omitempty"`
}

// Difficulty is a human-facing readability label.
type Difficulty string

const (
	VeryEasy        Difficulty = "Very Easy"
	Easy            Difficulty = "Easy"
	FairlyDifficult Difficulty = "Fairly Difficult"
	Difficult       Difficulty = "Difficult"
	VeryDifficult   Difficulty = "Very Difficult"
)

// ReadabilityMetrics holds the presented readability values. Float fields
// are rounded to one decimal place.
type ReadabilityMetrics struct {
	FleschReadingEase  float64    `json:"fleschReadingEase"`
	FleschKincaidGrade float64    `json:"fleschKincaidGrade"`
	AvgSentenceLength  float64    `json:"avgSentenceLength"`
	AvgWordLength      float64    `json:"avgWordLength"`
	Difficulty         Difficulty `json:"difficulty"`
	Recommendation     string     `json:"recommendation"`
	ReadabilityScore   int        `json:"readabilityScore"`
}

// TextStatistics are the raw counts a readability score is computed from.
type TextStatistics struct {
	SentenceCount  int
	WordCount      int
	SyllableCount  int
	CharacterCount int
	// LetterCount is the summed length of all words, punctuation included.
	LetterCount int
	// MeanWordLength is LetterCount/WordCount, 0 without words.
	MeanWordLength float64
}

// ReadabilityReport is the result of ScoreReadability.
type ReadabilityReport struct {
	Metrics ReadabilityMetrics
	Stats   TextStatistics
	// ReadingEase is the unrounded Flesch Reading Ease the labels were
	// derived from.
	ReadingEase float64
	// IsOptimal is true when ReadingEase lies in [60, 80].
	IsOptimal bool
}

// KeywordStat describes one ranked keyword.
type KeywordStat struct {
	Keyword string  `json:"keyword"`
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

// TargetKeywordStat describes one caller-supplied keyword.
type TargetKeywordStat struct {
	KeywordStat
	IsOptimal bool `json:"isOptimal"`
}

// KeywordStatistics summarizes the keyword token stream.
type KeywordStatistics struct {
	TotalWords         int     `json:"totalWords"`
	UniqueWords        int     `json:"uniqueWords"`
	VocabularyRichness float64 `json:"vocabularyRichness"`
}

// KeywordReport is the result of AnalyzeKeywords.
type KeywordReport struct {
	TopKeywords     []KeywordStat       `json:"topKeywords"`
	TargetKeywords  []TargetKeywordStat `json:"targetKeywords"`
	Statistics      KeywordStatistics   `json:"statistics"`
	Recommendations []string            `json:"recommendations"`
}
