package search

import "strings"

// Similarity metrics between a query and a title. All three expect lowercase
// input, return values in [0, 1] and define 0.0 for empty input. Lengths are
// measured in runes so multi-byte Polish titles score like their code-point
// view.

// WordOverlap splits the query on single spaces and scores the fraction of
// tokens that occur as a substring anywhere in the title. Order-insensitive
// and substring-based, so a token matching inside a longer word still counts.
func WordOverlap(query, title string) float64 {
	if query == "" || title == "" {
		return 0
	}
	tokens := strings.Split(query, " ")
	hits := 0
	for _, tok := range tokens {
		if strings.Contains(title, tok) {
			hits++
		}
	}
	return float64(hits) / float64(len(tokens))
}

// EditSimilarity scores 1 - levenshtein(query, title) / max(len).
func EditSimilarity(query, title string) float64 {
	if query == "" || title == "" {
		return 0
	}
	q, t := []rune(query), []rune(title)
	longest := len(q)
	if len(t) > longest {
		longest = len(t)
	}
	return 1 - float64(levenshtein(q, t))/float64(longest)
}

// levenshtein is the classic single-character insert/delete/substitute edit
// distance, two-row DP.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// CommonSubstringRatio scores the longest contiguous run of characters common
// to both strings against the shorter input. Classic longest common substring
// (not subsequence); 0.0 when the strings share nothing.
func CommonSubstringRatio(query, title string) float64 {
	if query == "" || title == "" {
		return 0
	}
	q, t := []rune(query), []rune(title)
	shortest := len(q)
	if len(t) < shortest {
		shortest = len(t)
	}
	// row[j] = length of the common run ending at t[i-1], q[j-1]
	row := make([]int, len(q)+1)
	longest := 0
	for i := 1; i <= len(t); i++ {
		prevDiag := 0
		for j := 1; j <= len(q); j++ {
			cur := row[j]
			if t[i-1] == q[j-1] {
				row[j] = prevDiag + 1
				if row[j] > longest {
					longest = row[j]
				}
			} else {
				row[j] = 0
			}
			prevDiag = cur
		}
	}
	if longest == 0 {
		return 0
	}
	return float64(longest) / float64(shortest)
}
