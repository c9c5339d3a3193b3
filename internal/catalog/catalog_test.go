package catalog

import "testing"

func intp(v int) *int { return &v }

func TestMovieIdentity(t *testing.T) {
	a := &Movie{Title: "Matrix", Year: intp(1999), Rating: nil}
	b := &Movie{Title: "Matrix", Year: intp(1999), Description: "different fields"}
	if !a.Same(b) {
		t.Fatal("same title and year must be the same movie")
	}
	c := &Movie{Title: "Matrix", Year: intp(2003)}
	if a.Same(c) {
		t.Fatal("different year must be a different movie")
	}
	// A record without a year is distinct from any dated record.
	d := &Movie{Title: "Matrix"}
	if a.Same(d) {
		t.Fatal("missing year must not collide with a dated record")
	}
}

func TestSiteDuplicateSuppression(t *testing.T) {
	s := NewSite("cda-hd", []*Movie{
		{Title: "Matrix", Year: intp(1999)},
		{Title: "Inception", Year: intp(2010)},
	})
	added := s.Add([]*Movie{
		{Title: "Matrix", Year: intp(1999), Description: "rescraped"},
		{Title: "Interstellar", Year: intp(2014)},
	}, false)
	if added != 1 {
		t.Fatalf("added %d, want 1", added)
	}
	if s.Len() != 3 {
		t.Fatalf("site has %d records, want 3", s.Len())
	}
}

func TestSiteAllowDuplicates(t *testing.T) {
	s := NewSite("cda-hd", nil)
	m := &Movie{Title: "Matrix", Year: intp(1999)}
	if added := s.Add([]*Movie{m, m}, true); added != 2 {
		t.Fatalf("added %d, want 2", added)
	}
}

func TestSiteKeepsInsertionOrder(t *testing.T) {
	s := NewSite("cda-hd", []*Movie{
		{Title: "Matrix", Year: intp(1999)},
		{Title: "Inception", Year: intp(2010)},
	})
	s.Add([]*Movie{{Title: "Interstellar", Year: intp(2014)}}, false)
	got := s.Movies()
	want := []string{"Matrix", "Inception", "Interstellar"}
	for i := range want {
		if got[i].Title != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, got[i].Title, want[i])
		}
	}
}

func TestLibrarySnapshotSwap(t *testing.T) {
	lib := NewLibrary()
	if len(lib.Snapshot()) != 0 {
		t.Fatal("fresh library must be empty")
	}

	first := NewSite("cda-hd", []*Movie{{Title: "Matrix", Year: intp(1999)}})
	lib.Replace([]*Site{first})

	held := lib.Snapshot()

	second := NewSite("cda-hd", []*Movie{
		{Title: "Matrix", Year: intp(1999)},
		{Title: "Inception", Year: intp(2010)},
	})
	lib.Replace([]*Site{second})

	// The old snapshot stays intact for readers that captured it.
	if len(held) != 1 || held[0].Len() != 1 {
		t.Fatal("captured snapshot changed under a concurrent swap")
	}
	if got := lib.Snapshot(); len(got) != 1 || got[0].Len() != 2 {
		t.Fatal("new snapshot not installed")
	}
}

func TestLibraryFind(t *testing.T) {
	lib := NewLibrary()
	m := &Movie{Title: "Matrix", Year: intp(1999)}
	lib.Replace([]*Site{NewSite("cda-hd", []*Movie{m})})

	got, ok := lib.Find(m.Key())
	if !ok || got != m {
		t.Fatal("movie not found by identity")
	}
	if _, ok := lib.Find(Key{Title: "Nope", Year: 2000}); ok {
		t.Fatal("found a movie that is not there")
	}
}
