package textanalyzer

// Analyzer is the interface implemented by every text analyzer that turns
// raw text into a slice of tokens.
type Analyzer interface {
	// Analyze takes a string of text and turns it into a slice of tokens.
	Analyze(text string) []string
}

// KeywordAnalyzer produces the tokens used for keyword frequency ranking:
// lowercase alphabetic words of at least MinKeywordLength letters with
// English stop words removed.
type KeywordAnalyzer struct{}

// NewKeywordAnalyzer creates a new keyword analyzer.
func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{}
}

// Analyze implements the Analyzer interface.
func (a *KeywordAnalyzer) Analyze(text string) []string {
	return FilterStopWords(Tokenize(text))
}

var _ Analyzer = (*KeywordAnalyzer)(nil)
