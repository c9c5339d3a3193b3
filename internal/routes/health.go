package routes

import (
	"net/http"
	"time"

	"github.com/Nydeyas/movie-maven/internal/deps"
)

// Health returns a handler that responds with service status.
func Health(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := int64(time.Since(d.StartedAt).Seconds())
		sites := d.Library.Snapshot()
		movies := 0
		for _, s := range sites {
			movies += s.Len()
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":         "ok",
			"service":        d.Name,
			"uptime_seconds": uptime,
			"sites":          len(sites),
			"movies":         movies,
		})
	}
}
