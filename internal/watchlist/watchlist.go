// Package watchlist holds a user's saved movies with optional personal
// ratings. Entries reference catalog records without owning them; only the
// rating and date-added belong to the entry.
package watchlist

import (
	"errors"
	"sync"
	"time"

	"github.com/Nydeyas/movie-maven/internal/catalog"
	"github.com/Nydeyas/movie-maven/internal/search"
)

var (
	ErrDuplicate = errors.New("movie already in watchlist")
	ErrNotFound  = errors.New("movie not in watchlist")
)

// Entry associates a personal rating and a date-added with a catalog record.
// The rating is the user's own, distinct from the site rating, and may be
// absent.
type Entry struct {
	Movie     *catalog.Movie `json:"movie"`
	Rating    *float64       `json:"rating,omitempty"` // 1-10
	DateAdded time.Time      `json:"date_added"`
}

// Sortable accessors: title and year come from the movie, the rating is the
// entry's personal one.

func (e *Entry) SortTitle() string { return e.Movie.Title }

func (e *Entry) SortYear() (int, bool) { return e.Movie.SortYear() }

func (e *Entry) SortRating() (float64, bool) {
	if e.Rating == nil {
		return 0, false
	}
	return *e.Rating, true
}

// List is one user's watchlist. At most one entry exists per distinct movie
// (by title+year identity). Entries keep insertion order, which is the
// date-added order for sorted views. Safe for concurrent use.
type List struct {
	mu      sync.Mutex
	entries []*Entry
}

func NewList() *List { return &List{} }

// Add appends an entry for the movie. Returns ErrDuplicate when the movie is
// already listed.
func (l *List) Add(m *catalog.Movie, rating *float64, added time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.find(m) >= 0 {
		return ErrDuplicate
	}
	if added.IsZero() {
		added = time.Now()
	}
	l.entries = append(l.entries, &Entry{Movie: m, Rating: rating, DateAdded: added})
	return nil
}

// Remove deletes the entry for the movie, if present.
func (l *List) Remove(m *catalog.Movie) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.find(m)
	if i < 0 {
		return ErrNotFound
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return nil
}

// Has reports whether the movie is listed.
func (l *List) Has(m *catalog.Movie) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.find(m) >= 0
}

// SetRating updates the personal rating of an existing entry.
func (l *List) SetRating(m *catalog.Movie, rating float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.find(m)
	if i < 0 {
		return ErrNotFound
	}
	r := rating
	l.entries[i].Rating = &r
	return nil
}

// Entries returns a snapshot of the entries in date-added order.
func (l *List) Entries() []*Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of entries.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// SortedEntries returns the entries arranged by the given field through the
// shared ordering engine.
func (l *List) SortedEntries(e *search.Engine, field search.Field, maxItems int, reverse bool) ([]*Entry, error) {
	return search.SortedView(e.Keyer(), l.Entries(), field, maxItems, reverse)
}

// find returns the index of the entry matching the movie identity, or -1.
// Callers hold the lock.
func (l *List) find(m *catalog.Movie) int {
	for i, e := range l.entries {
		if e.Movie.Same(m) {
			return i
		}
	}
	return -1
}
