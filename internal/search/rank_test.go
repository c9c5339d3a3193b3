package search

import (
	"errors"
	"testing"

	"github.com/Nydeyas/movie-maven/internal/catalog"
	"github.com/Nydeyas/movie-maven/internal/collation"
)

func intp(v int) *int       { return &v }
func fp(v float64) *float64 { return &v }

func titles(ms []*catalog.Movie) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Title
	}
	return out
}

func sameTitles(got []*catalog.Movie, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, m := range got {
		if m.Title != want[i] {
			return false
		}
	}
	return true
}

func testCatalog() []*catalog.Movie {
	return []*catalog.Movie{
		{Title: "Matrix", Year: intp(1999), Rating: fp(8.7), Tags: []string{"Sci-Fi", "Akcja"}},
		{Title: "Matrix Reloaded", Year: intp(2003), Rating: fp(7.2), Tags: []string{"Sci-Fi"}},
		{Title: "Inception", Year: intp(2010), Rating: fp(8.8), Tags: []string{"Sci-Fi", "Thriller"}},
	}
}

func newTestEngine() *Engine { return NewEngine(collation.NewKeyer()) }

func TestSearchRankedByMatchScore(t *testing.T) {
	e := newTestEngine()
	got, err := e.Search(testCatalog(), Params{Query: "matrix", MinScore: 35, Sort: FieldMatchScore})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameTitles(got, []string{"Matrix", "Matrix Reloaded"}) {
		t.Fatalf("got %v, want [Matrix, Matrix Reloaded]", titles(got))
	}
}

func TestSearchAscendingReversesRanking(t *testing.T) {
	e := newTestEngine()
	got, err := e.Search(testCatalog(), Params{Query: "matrix", MinScore: 35, Sort: FieldMatchScore, Ascending: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameTitles(got, []string{"Matrix Reloaded", "Matrix"}) {
		t.Fatalf("got %v, want worst-first", titles(got))
	}
}

func TestSearchWhitespaceQueryReturnsAll(t *testing.T) {
	e := newTestEngine()
	// All whitespace behaves like no query: catalog order, threshold ignored.
	got, err := e.Search(testCatalog(), Params{Query: "   ", MinScore: 99, Sort: FieldMatchScore})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameTitles(got, []string{"Matrix", "Matrix Reloaded", "Inception"}) {
		t.Fatalf("got %v, want catalog order", titles(got))
	}
}

func TestSearchMinScoreBound(t *testing.T) {
	e := newTestEngine()
	got, err := e.Search(testCatalog(), Params{Query: "matrix", MinScore: 35, Sort: FieldMatchScore})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, m := range got {
		if s := MatchScore("matrix", m.Title); s < 35 {
			t.Fatalf("%q scored %v, below threshold", m.Title, s)
		}
	}
}

func TestSearchMaxItems(t *testing.T) {
	e := newTestEngine()
	got, err := e.Search(testCatalog(), Params{Query: "matrix", Sort: FieldMatchScore, MaxItems: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Matrix" {
		t.Fatalf("got %v, want just Matrix", titles(got))
	}
}

func TestSearchLimitBeforeSort(t *testing.T) {
	e := newTestEngine()
	// Keep the 2 best matches, then reorder just those by year descending.
	got, err := e.Search(testCatalog(), Params{
		Query:           "matrix",
		Sort:            FieldYear,
		MaxItems:        2,
		LimitBeforeSort: true,
		Ascending:       false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameTitles(got, []string{"Matrix Reloaded", "Matrix"}) {
		t.Fatalf("got %v, want [Matrix Reloaded, Matrix]", titles(got))
	}
}

func TestSearchUnknownSortField(t *testing.T) {
	e := newTestEngine()
	if _, err := e.Search(testCatalog(), Params{Sort: Field(42)}); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("got %v, want ErrUnknownField", err)
	}
}

func TestSearchSitesConcatenatesInSiteOrder(t *testing.T) {
	e := newTestEngine()
	sites := []*catalog.Site{
		catalog.NewSite("a", []*catalog.Movie{{Title: "Matrix", Year: intp(1999)}}),
		catalog.NewSite("b", []*catalog.Movie{{Title: "Matrix Reloaded", Year: intp(2003)}}),
	}
	got, err := e.SearchSites(sites, Params{Query: "matrix", Sort: FieldMatchScore})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameTitles(got, []string{"Matrix", "Matrix Reloaded"}) {
		t.Fatalf("got %v, want per-site order", titles(got))
	}
}
