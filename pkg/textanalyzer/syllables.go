package textanalyzer

import (
	"strings"
	"unicode"
)

// CountSyllables estimates the number of syllables in word.
//
// Non-letters are ignored, vowel groups are counted (y is a vowel unless it
// starts the word or follows another vowel), and a trailing silent "e" is
// dropped unless it closes a consonant+"le" ending or follows a vowel. Any
// non-empty word has at least one syllable.
func CountSyllables(word string) int {
	if word == "" {
		return 0
	}

	runes := make([]rune, 0, len(word))
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			runes = append(runes, r)
		}
	}

	count := 0
	prevVowel := false
	for i := range runes {
		v := isVowel(runes, i)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if count > 1 && hasSilentE(runes) {
		count--
	}

	if count < 1 {
		count = 1
	}
	return count
}

// CountTextSyllables sums CountSyllables over words.
func CountTextSyllables(words []string) int {
	total := 0
	for _, w := range words {
		total += CountSyllables(w)
	}
	return total
}

func isVowel(runes []rune, i int) bool {
	if i < 0 || i >= len(runes) {
		return false
	}
	switch runes[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	case 'y':
		if i == 0 {
			return false
		}
		switch runes[i-1] {
		case 'a', 'e', 'i', 'o', 'u':
			return false
		}
		return true
	}
	return false
}

func hasSilentE(runes []rune) bool {
	n := len(runes)
	if n < 2 || runes[n-1] != 'e' {
		return false
	}
	// "agree", "canoe": the e belongs to a vowel group.
	if isVowel(runes, n-2) {
		return false
	}
	// "table", "simple": consonant + le is its own syllable.
	if n >= 3 && runes[n-2] == 'l' && !isVowel(runes, n-3) {
		return false
	}
	return true
}
