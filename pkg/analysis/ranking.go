package analysis

import "github.com/tidwall/btree"

// rankedKeyword is one distinct token with its frequency. first is the
// index of its first occurrence and breaks ties between equal counts.
type rankedKeyword struct {
	word  string
	count int
	first int
}

// rankedKeywordLess orders by count descending, then first occurrence.
func rankedKeywordLess(a, b rankedKeyword) bool {
	if a.count != b.count {
		return a.count > b.count
	}
	return a.first < b.first
}

// rankKeywords counts tokens and returns up to limit of the most frequent,
// together with the number of distinct tokens.
func rankKeywords(tokens []string, limit int) ([]rankedKeyword, int) {
	counts := make(map[string]*rankedKeyword)
	for i, token := range tokens {
		if kw, ok := counts[token]; ok {
			kw.count++
			continue
		}
		counts[token] = &rankedKeyword{word: token, count: 1, first: i}
	}

	tree := btree.NewBTreeG[rankedKeyword](rankedKeywordLess)
	for _, kw := range counts {
		tree.Set(*kw)
	}

	if limit <= 0 {
		return nil, len(counts)
	}
	ranked := make([]rankedKeyword, 0, min(limit, tree.Len()))
	tree.Scan(func(kw rankedKeyword) bool {
		ranked = append(ranked, kw)
		return len(ranked) < limit
	})
	return ranked, len(counts)
}
