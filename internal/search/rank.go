package search

import (
	"sort"
	"strings"

	"github.com/Nydeyas/movie-maven/internal/catalog"
	"github.com/Nydeyas/movie-maven/internal/collation"
)

// Composite match score weights. The substring run dominates so that a query
// matching a contiguous chunk of the title outranks scattered token hits.
const (
	weightOverlap   = 25
	weightEdit      = 5
	weightSubstring = 70
)

// MatchScore blends the three similarity metrics into one 0-100 score for a
// (query, title) pair. Comparison is case-insensitive.
func MatchScore(query, title string) float64 {
	q := strings.ToLower(query)
	t := strings.ToLower(title)
	if q == "" || t == "" {
		return 0
	}
	return weightOverlap*WordOverlap(q, t) +
		weightEdit*EditSimilarity(q, t) +
		weightSubstring*CommonSubstringRatio(q, t)
}

// Params drive one ranked search.
type Params struct {
	Query    string
	MaxItems int     // <= 0 means unlimited
	MinScore float64 // 0-100, applied only when Query is non-empty
	Sort     Field
	// Ascending flips the ordering; for FieldMatchScore the ranked order is
	// best-first, so Ascending=true yields worst-first.
	Ascending bool
	// LimitBeforeSort truncates to MaxItems before the final sort, keeping
	// the top-ranked candidates and reordering only those.
	LimitBeforeSort bool
	Tags            []string
	Years           []int
}

// Engine runs ranked searches and ordered views over catalog snapshots. It is
// stateless apart from the shared collation key cache and safe for concurrent
// use from any number of request handlers.
type Engine struct {
	keyer *collation.Keyer
}

func NewEngine(keyer *collation.Keyer) *Engine {
	return &Engine{keyer: keyer}
}

// Keyer exposes the shared collation keyer for callers that sort directly.
func (e *Engine) Keyer() *collation.Keyer { return e.keyer }

// Search ranks, filters, sorts and bounds the given records.
//
// With a non-empty query every record is scored and thresholded by MinScore,
// best score first (ties keep catalog order; the sort is stable). A query of
// only whitespace behaves like no query: the whole input in catalog order,
// no scores computed, MinScore ignored.
func (e *Engine) Search(movies []*catalog.Movie, p Params) ([]*catalog.Movie, error) {
	if !p.Sort.valid() {
		return nil, ErrUnknownField
	}

	query := strings.TrimSpace(p.Query)
	var candidates []*catalog.Movie
	if query != "" {
		type scored struct {
			m *catalog.Movie
			s float64
		}
		ranked := make([]scored, 0, len(movies))
		for _, m := range movies {
			if s := MatchScore(query, m.Title); s >= p.MinScore {
				ranked = append(ranked, scored{m: m, s: s})
			}
		}
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].s > ranked[j].s })
		candidates = make([]*catalog.Movie, len(ranked))
		for i, r := range ranked {
			candidates[i] = r.m
		}
	} else {
		candidates = make([]*catalog.Movie, len(movies))
		copy(candidates, movies)
	}

	candidates = FilterByTags(candidates, p.Tags)
	candidates = FilterByYears(candidates, p.Years)

	if p.LimitBeforeSort {
		candidates = truncate(candidates, p.MaxItems)
	}

	if p.Sort == FieldMatchScore {
		// Keep the step-1 ranking; nothing is re-derived from other fields.
		if p.Ascending {
			for i, j := 0, len(candidates)-1; i < j; i, j = i+1, j-1 {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			}
		}
	} else {
		var err error
		candidates, err = SortedView(e.keyer, candidates, p.Sort, 0, !p.Ascending)
		if err != nil {
			return nil, err
		}
	}

	if !p.LimitBeforeSort {
		candidates = truncate(candidates, p.MaxItems)
	}
	return candidates, nil
}

// SearchSites runs the same search against every site and concatenates the
// per-site results in site order. MaxItems bounds each site's block, matching
// how listings render one block per source.
func (e *Engine) SearchSites(sites []*catalog.Site, p Params) ([]*catalog.Movie, error) {
	var out []*catalog.Movie
	for _, site := range sites {
		res, err := e.Search(site.Movies(), p)
		if err != nil {
			return nil, err
		}
		out = append(out, res...)
	}
	return out, nil
}
