package textanalyzer

import (
	"regexp"
	"strings"
	"unicode"
)

// MinKeywordLength is the shortest word Tokenize keeps.
const MinKeywordLength = 3

// sentenceBreakRegex matches a run of sentence terminators.
var sentenceBreakRegex = regexp.MustCompile(`[.!?]+`)

// SplitSentences partitions text on runs of '.', '!' and '?' and returns the
// trimmed, non-empty segments in order. Abbreviations and decimals are not
// special-cased.
func SplitSentences(text string) []string {
	parts := sentenceBreakRegex.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// SplitWords splits text on whitespace runs. Case and attached punctuation
// are preserved, so "end." is a single word of length 4.
func SplitWords(text string) []string {
	return strings.Fields(text)
}

// dottedCapitalI lowercases to "i" followed by U+0307 (combining dot above)
// under full Unicode case mapping. strings.ToLower applies the simple
// mapping and yields a bare "i".
var dottedCapitalI = strings.NewReplacer("\u0130", "i\u0307")

// Lower lowercases s with full case mapping for U+0130, so "KİTD" becomes
// "ki\u0307td" and forms no keyword token. Other runes use strings.ToLower.
func Lower(s string) string {
	return strings.ToLower(dottedCapitalI.Replace(s))
}

// Tokenize lowercases text and returns its keyword tokens in order.
//
// A token is a maximal run of word characters (letters, digits, underscore)
// that consists only of the letters a-z and is at least MinKeywordLength
// long. Runs mixing in digits, underscores or non-ASCII letters are dropped
// whole rather than trimmed, so "abc123" yields nothing.
func Tokenize(text string) []string {
	text = Lower(text)

	var tokens []string
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = appendKeyword(tokens, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = appendKeyword(tokens, text[start:])
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func appendKeyword(tokens []string, run string) []string {
	if len(run) < MinKeywordLength {
		return tokens
	}
	for i := 0; i < len(run); i++ {
		if run[i] < 'a' || run[i] > 'z' {
			return tokens
		}
	}
	return append(tokens, run)
}
