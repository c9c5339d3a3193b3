package search

import (
	"strings"

	"github.com/Nydeyas/movie-maven/internal/catalog"
)

// FilterByTags keeps records whose tag set contains every requested tag,
// compared case-insensitively. An empty filter is a no-op. Pure; the input
// slice is never mutated.
func FilterByTags(movies []*catalog.Movie, tags []string) []*catalog.Movie {
	if len(tags) == 0 {
		return movies
	}
	want := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			want = append(want, t)
		}
	}
	if len(want) == 0 {
		return movies
	}
	out := make([]*catalog.Movie, 0, len(movies))
	for _, m := range movies {
		if hasAllTags(m, want) {
			out = append(out, m)
		}
	}
	return out
}

func hasAllTags(m *catalog.Movie, want []string) bool {
	have := make(map[string]struct{}, len(m.Tags))
	for _, t := range m.Tags {
		have[strings.ToLower(t)] = struct{}{}
	}
	for _, t := range want {
		if _, ok := have[t]; !ok {
			return false
		}
	}
	return true
}

// FilterByYears keeps records whose year is one of the requested years.
// Records without a year never match. An empty filter is a no-op.
func FilterByYears(movies []*catalog.Movie, years []int) []*catalog.Movie {
	if len(years) == 0 {
		return movies
	}
	want := make(map[int]struct{}, len(years))
	for _, y := range years {
		want[y] = struct{}{}
	}
	out := make([]*catalog.Movie, 0, len(movies))
	for _, m := range movies {
		if m.Year == nil {
			continue
		}
		if _, ok := want[*m.Year]; ok {
			out = append(out, m)
		}
	}
	return out
}
