package watchlist

import (
	"time"

	"github.com/Nydeyas/movie-maven/internal/catalog"
)

// StoredEntry is the persisted form of an Entry. The movie is referenced by
// identity only and resolved against the current catalog snapshot at view
// time, keeping the entry a non-owning link.
type StoredEntry struct {
	Title     string
	Year      *int
	Rating    *float64
	DateAdded time.Time
}

func (s StoredEntry) Key() catalog.Key {
	m := catalog.Movie{Title: s.Title, Year: s.Year}
	return m.Key()
}

// FromStored builds a List from persisted entries, resolving each against
// the library. Entries whose movie fell out of the catalog still list with a
// minimal record carrying just the stored identity.
func FromStored(entries []StoredEntry, lib *catalog.Library) *List {
	l := NewList()
	for _, s := range entries {
		m, ok := lib.Find(s.Key())
		if !ok {
			m = &catalog.Movie{Title: s.Title, Year: s.Year}
		}
		_ = l.Add(m, s.Rating, s.DateAdded)
	}
	return l
}
