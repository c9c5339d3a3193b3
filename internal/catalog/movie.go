package catalog

// Movie is one scraped catalog record. Records are built once by the
// scraper/loader and never mutated afterward; a catalog refresh replaces
// them wholesale.
type Movie struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	ShowType    string   `json:"show_type,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Year        *int     `json:"year,omitempty"`
	Length      *int     `json:"length,omitempty"` // minutes
	Rating      *float64 `json:"rating,omitempty"` // 0-10 site rating
	Votes       *int     `json:"votes,omitempty"`
	Countries   string   `json:"countries,omitempty"`
	Link        string   `json:"link,omitempty"`
	ImageLink   string   `json:"image_link,omitempty"`
}

// Key identifies a movie. Two records with the same title and year are the
// same movie regardless of other fields; this is the dedup test.
type Key struct {
	Title string
	Year  int
}

// yearAbsent keeps records without a year distinct from year-zero records.
const yearAbsent = -1

// Key returns the identity key of the movie.
func (m *Movie) Key() Key {
	y := yearAbsent
	if m.Year != nil {
		y = *m.Year
	}
	return Key{Title: m.Title, Year: y}
}

// Same reports whether two records describe the same movie.
func (m *Movie) Same(other *Movie) bool {
	return other != nil && m.Key() == other.Key()
}

// Sortable accessors, see internal/search.

func (m *Movie) SortTitle() string { return m.Title }

func (m *Movie) SortYear() (int, bool) {
	if m.Year == nil {
		return 0, false
	}
	return *m.Year, true
}

func (m *Movie) SortRating() (float64, bool) {
	if m.Rating == nil {
		return 0, false
	}
	return *m.Rating, true
}
