package textanalyzer

// englishStopWords holds the common English words excluded from keyword
// ranking. It is never mutated after package initialization.
var englishStopWords = map[string]struct{}{
	"the": {}, "be": {}, "to": {}, "of": {}, "and": {}, "a": {}, "in": {}, "that": {}, "have": {}, "i": {},
	"it": {}, "for": {}, "not": {}, "on": {}, "with": {}, "he": {}, "as": {}, "you": {}, "do": {}, "at": {},
	"this": {}, "but": {}, "his": {}, "by": {}, "from": {}, "they": {}, "we": {}, "say": {}, "her": {}, "she": {},
	"or": {}, "an": {}, "will": {}, "my": {}, "one": {}, "all": {}, "would": {}, "there": {}, "their": {}, "is": {},
}

// IsStopWord reports whether token is a stop word. Matching is exact, so
// callers pass lowercase tokens.
func IsStopWord(token string) bool {
	_, ok := englishStopWords[token]
	return ok
}

// FilterStopWords removes stop words from a slice of tokens.
func FilterStopWords(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !IsStopWord(token) {
			filtered = append(filtered, token)
		}
	}
	return filtered
}
