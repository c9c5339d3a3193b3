package catalog

import "sync/atomic"

// Library is the atomically swapped catalog snapshot. The refresh job builds
// a complete []*Site and installs it with Replace; request handlers capture
// the current snapshot once and iterate it freely. An in-flight search is
// never affected by a concurrent swap.
type Library struct {
	sites atomic.Pointer[[]*Site]
}

func NewLibrary() *Library {
	l := &Library{}
	empty := []*Site{}
	l.sites.Store(&empty)
	return l
}

// Replace installs a fully built snapshot.
func (l *Library) Replace(sites []*Site) {
	cp := make([]*Site, len(sites))
	copy(cp, sites)
	l.sites.Store(&cp)
}

// Snapshot returns the current catalog. Callers must not mutate the result.
func (l *Library) Snapshot() []*Site {
	return *l.sites.Load()
}

// Site returns the named site from the current snapshot.
func (l *Library) Site(name string) (*Site, bool) {
	for _, s := range l.Snapshot() {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Find looks a movie up by identity across all sites of the snapshot.
func (l *Library) Find(key Key) (*Movie, bool) {
	for _, s := range l.Snapshot() {
		if m, ok := s.Find(key); ok {
			return m, true
		}
	}
	return nil, false
}
