package routes

import (
	"net/http"

	"github.com/Nydeyas/movie-maven/internal/catalog"
	"github.com/Nydeyas/movie-maven/internal/deps"
	"github.com/Nydeyas/movie-maven/internal/search"
)

type siteBlock struct {
	Site  string           `json:"site"`
	Items []*catalog.Movie `json:"items"`
}

// MoviesRecent registers GET /movies/recent — the "recently added" panel:
// one block per source site, newest first.
func MoviesRecent(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r, d.SearchRows, 100)
		if err != nil {
			writeError(w, r, asHTTPError(err))
			return
		}

		blocks := make([]siteBlock, 0, 4)
		total := 0
		for _, site := range d.Library.Snapshot() {
			items, vErr := search.SortedView(d.Engine.Keyer(), site.Movies(), search.FieldDateAdded, limit, true)
			if vErr != nil {
				writeError(w, r, asHTTPError(vErr))
				return
			}
			blocks = append(blocks, siteBlock{Site: site.Name, Items: items})
			total += len(items)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"sites": blocks,
			"count": total,
		})
	}
}
