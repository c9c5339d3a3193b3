package search

import (
	"errors"
	"testing"

	"github.com/Nydeyas/movie-maven/internal/catalog"
	"github.com/Nydeyas/movie-maven/internal/collation"
)

func TestSortedViewByYear(t *testing.T) {
	k := collation.NewKeyer()
	got, err := SortedView(k, testCatalog(), FieldYear, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameTitles(got, []string{"Matrix", "Matrix Reloaded", "Inception"}) {
		t.Fatalf("got %v, want chronological order", titles(got))
	}
}

func TestSortedViewByTitlePolishOrder(t *testing.T) {
	k := collation.NewKeyer()
	movies := []*catalog.Movie{
		{Title: "Mama"},
		{Title: "Łza"},
		{Title: "Ludzie"},
	}
	got, err := SortedView(k, movies, FieldTitle, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Ł reads after L, before M.
	if !sameTitles(got, []string{"Ludzie", "Łza", "Mama"}) {
		t.Fatalf("got %v, want [Ludzie, Łza, Mama]", titles(got))
	}

	rev, err := SortedView(k, movies, FieldTitle, 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameTitles(rev, []string{"Mama", "Łza", "Ludzie"}) {
		t.Fatalf("got %v, want reversed alphabet", titles(rev))
	}
}

func TestSortedViewReverseTieBreak(t *testing.T) {
	k := collation.NewKeyer()
	movies := []*catalog.Movie{
		{Title: "Zulu", Year: intp(2001)},
		{Title: "Alfa", Year: intp(2001)},
		{Title: "Beta", Year: intp(1995)},
	}
	asc, err := SortedView(k, movies, FieldYear, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameTitles(asc, []string{"Beta", "Alfa", "Zulu"}) {
		t.Fatalf("ascending: got %v", titles(asc))
	}
	desc, err := SortedView(k, movies, FieldYear, 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Year groups flip, titles inside a group do not.
	if !sameTitles(desc, []string{"Alfa", "Zulu", "Beta"}) {
		t.Fatalf("descending: got %v", titles(desc))
	}
}

func TestSortedViewMissingValues(t *testing.T) {
	k := collation.NewKeyer()
	movies := []*catalog.Movie{
		{Title: "Old", Year: intp(1850)},
		{Title: "Undated"},
		{Title: "New", Year: intp(2020)},
	}
	got, err := SortedView(k, movies, FieldYear, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Records without a year slot in at the 1900 substitute.
	if !sameTitles(got, []string{"Old", "Undated", "New"}) {
		t.Fatalf("got %v", titles(got))
	}

	rated := []*catalog.Movie{
		{Title: "Rated", Rating: fp(6.5)},
		{Title: "Unrated"},
	}
	byRating, err := SortedView(k, rated, FieldRating, 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Missing rating counts as 0, last even when reversed.
	if !sameTitles(byRating, []string{"Rated", "Unrated"}) {
		t.Fatalf("got %v", titles(byRating))
	}
}

func TestSortedViewDateAdded(t *testing.T) {
	k := collation.NewKeyer()
	movies := testCatalog()
	got, err := SortedView(k, movies, FieldDateAdded, 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameTitles(got, []string{"Inception", "Matrix Reloaded", "Matrix"}) {
		t.Fatalf("got %v, want newest first", titles(got))
	}
}

func TestSortedViewMaxItems(t *testing.T) {
	k := collation.NewKeyer()
	got, err := SortedView(k, testCatalog(), FieldTitle, 2, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
}

func TestSortedViewIdempotent(t *testing.T) {
	k := collation.NewKeyer()
	first, err := SortedView(k, testCatalog(), FieldRating, 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := SortedView(k, testCatalog(), FieldRating, 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameTitles(first, titles(second)) {
		t.Fatalf("orderings differ: %v vs %v", titles(first), titles(second))
	}
}

func TestSortedViewRejectsMatchScore(t *testing.T) {
	k := collation.NewKeyer()
	if _, err := SortedView(k, testCatalog(), FieldMatchScore, 0, false); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("got %v, want ErrUnknownField", err)
	}
}

func TestSortedViewDoesNotMutateInput(t *testing.T) {
	k := collation.NewKeyer()
	movies := testCatalog()
	if _, err := SortedView(k, movies, FieldTitle, 0, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameTitles(movies, []string{"Matrix", "Matrix Reloaded", "Inception"}) {
		t.Fatalf("input reordered: %v", titles(movies))
	}
}
