package catalog

// Site holds the movies scraped from one source website. Insertion order is
// the date-added order, oldest first. Sites are only ever mutated by the
// refresh job, and always on a private copy before the Library swap; readers
// receive them through Library.Snapshot and must treat them as immutable.
type Site struct {
	Name   string
	movies []*Movie
	seen   map[Key]struct{}
}

// NewSite builds a site from an initial movie list, keeping input order.
func NewSite(name string, movies []*Movie) *Site {
	s := &Site{Name: name, seen: make(map[Key]struct{}, len(movies))}
	s.Add(movies, true)
	return s
}

// Add appends movies to the site. With allowDuplicates false, records whose
// (title, year) identity is already present are dropped. Returns the number
// of movies actually added.
func (s *Site) Add(movies []*Movie, allowDuplicates bool) int {
	added := 0
	for _, m := range movies {
		if m == nil {
			continue
		}
		if !allowDuplicates {
			if _, ok := s.seen[m.Key()]; ok {
				continue
			}
		}
		s.movies = append(s.movies, m)
		s.seen[m.Key()] = struct{}{}
		added++
	}
	return added
}

// Movies returns the site's records in date-added order. The slice header is
// a copy; the records themselves are shared and immutable.
func (s *Site) Movies() []*Movie {
	out := make([]*Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

// Len reports the number of records.
func (s *Site) Len() int { return len(s.movies) }

// Find returns the record matching the identity key, if present.
func (s *Site) Find(key Key) (*Movie, bool) {
	if _, ok := s.seen[key]; !ok {
		return nil, false
	}
	for _, m := range s.movies {
		if m.Key() == key {
			return m, true
		}
	}
	return nil, false
}
