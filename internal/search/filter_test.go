package search

import (
	"testing"

	"github.com/Nydeyas/movie-maven/internal/catalog"
)

func TestFilterByTagsSuperset(t *testing.T) {
	movies := testCatalog()
	got := FilterByTags(movies, []string{"sci-fi", "thriller"})
	if !sameTitles(got, []string{"Inception"}) {
		t.Fatalf("got %v, want [Inception]", titles(got))
	}
	// Case-insensitive membership.
	got = FilterByTags(movies, []string{"SCI-FI"})
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
}

func TestFilterByTagsEmptyIsNoop(t *testing.T) {
	movies := testCatalog()
	if got := FilterByTags(movies, nil); len(got) != len(movies) {
		t.Fatalf("got %d records, want %d", len(got), len(movies))
	}
	if got := FilterByTags(movies, []string{" ", ""}); len(got) != len(movies) {
		t.Fatalf("blank tags filtered: got %d records", len(got))
	}
}

func TestFilterByYears(t *testing.T) {
	movies := testCatalog()
	movies = append(movies, &catalog.Movie{Title: "Undated"})
	got := FilterByYears(movies, []int{1999, 2010})
	if !sameTitles(got, []string{"Matrix", "Inception"}) {
		t.Fatalf("got %v, want [Matrix, Inception]", titles(got))
	}
}

func TestFilterComposition(t *testing.T) {
	movies := testCatalog()
	tags := []string{"sci-fi"}
	years := []int{1999, 2003}

	a := FilterByYears(FilterByTags(movies, tags), years)
	b := FilterByTags(FilterByYears(movies, years), tags)
	if !sameTitles(a, titles(b)) {
		t.Fatalf("filter order changed the result: %v vs %v", titles(a), titles(b))
	}
	if !sameTitles(a, []string{"Matrix", "Matrix Reloaded"}) {
		t.Fatalf("got %v, want [Matrix, Matrix Reloaded]", titles(a))
	}
}
