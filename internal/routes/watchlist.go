package routes

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Nydeyas/movie-maven/internal/catalog"
	"github.com/Nydeyas/movie-maven/internal/deps"
	"github.com/Nydeyas/movie-maven/internal/search"
	"github.com/Nydeyas/movie-maven/internal/watchlist"
	pkghttpx "github.com/Nydeyas/movie-maven/pkg/httpx"
)

// WatchlistGet registers GET /users/{id}/watchlist — the user's saved movies
// arranged by the requested field (title by default, like the list panel).
func WatchlistGet(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, err := pathUserID(r)
		if err != nil {
			writeError(w, r, asHTTPError(err))
			return
		}
		limit, err := parseLimit(r, d.WatchlistRows, 100)
		if err != nil {
			writeError(w, r, asHTTPError(err))
			return
		}
		field, ascending, err := parseSort(r, search.FieldTitle)
		if err != nil {
			writeError(w, r, asHTTPError(err))
			return
		}
		if field == search.FieldMatchScore {
			writeError(w, r, pkghttpx.BadRequest("invalid sort", search.ErrUnknownField))
			return
		}

		stored, err := d.Repo.ListWatchlist(ctx, userID)
		if err != nil {
			writeError(w, r, pkghttpx.Internal("failed to load watchlist", err))
			return
		}
		list := watchlist.FromStored(stored, d.Library)

		offset := int64(0)
		if cursor := r.URL.Query().Get("cursor"); cursor != "" {
			off, dErr := d.Signer.DecodeListCursor(cursor)
			if dErr != nil || off < 0 {
				writeError(w, r, pkghttpx.BadRequest("invalid cursor", dErr))
				return
			}
			offset = off
		}

		entries, err := list.SortedEntries(d.Engine, field, 0, !ascending)
		if err != nil {
			writeError(w, r, asHTTPError(err))
			return
		}
		total := len(entries)
		if offset > int64(total) {
			offset = int64(total)
		}
		page := entries[offset:]
		var next *string
		if len(page) > limit {
			page = page[:limit]
			token := d.Signer.EncodeListCursor(offset + int64(limit))
			next = &token
		}
		if page == nil {
			page = []*watchlist.Entry{}
		}

		resp := map[string]any{
			"items": page,
			"count": len(page),
			"total": total,
		}
		if next != nil {
			resp["next_cursor"] = *next
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type watchlistAddRequest struct {
	Title       string   `json:"title"`
	Year        *int     `json:"year"`
	Rating      *float64 `json:"rating"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
}

// WatchlistAdd registers POST /users/{id}/watchlist. The movie must exist in
// the current catalog snapshot; a second add of the same movie is a conflict.
func WatchlistAdd(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, err := pathUserID(r)
		if err != nil {
			writeError(w, r, asHTTPError(err))
			return
		}
		var req watchlistAddRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, pkghttpx.BadRequest("invalid body", err))
			return
		}
		if req.Title == "" {
			writeError(w, r, pkghttpx.BadRequest("title is required", nil))
			return
		}
		if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 10) {
			writeError(w, r, pkghttpx.BadRequest("rating must be between 1 and 10", nil))
			return
		}

		key := (&catalog.Movie{Title: req.Title, Year: req.Year}).Key()
		movie, ok := d.Library.Find(key)
		if !ok {
			writeError(w, r, pkghttpx.NotFound("movie not in catalog", nil))
			return
		}

		if err := d.Repo.EnsureUser(ctx, userID, req.Name, req.DisplayName); err != nil {
			writeError(w, r, pkghttpx.Internal("failed to ensure user", err))
			return
		}
		added, err := d.Repo.AddWatchlistEntry(ctx, userID, key, req.Rating, time.Now().UTC())
		if err != nil {
			writeError(w, r, pkghttpx.Internal("failed to add watchlist entry", err))
			return
		}
		if !added {
			writeError(w, r, pkghttpx.Conflict("movie already in watchlist", nil))
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"movie":  movie,
			"rating": req.Rating,
		})
	}
}

type watchlistRatingRequest struct {
	Title  string  `json:"title"`
	Year   *int    `json:"year"`
	Rating float64 `json:"rating"`
}

// WatchlistRating registers POST /users/{id}/watchlist/rating.
func WatchlistRating(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, err := pathUserID(r)
		if err != nil {
			writeError(w, r, asHTTPError(err))
			return
		}
		var req watchlistRatingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, pkghttpx.BadRequest("invalid body", err))
			return
		}
		if req.Title == "" {
			writeError(w, r, pkghttpx.BadRequest("title is required", nil))
			return
		}
		if req.Rating < 1 || req.Rating > 10 {
			writeError(w, r, pkghttpx.BadRequest("rating must be between 1 and 10", nil))
			return
		}
		key := (&catalog.Movie{Title: req.Title, Year: req.Year}).Key()
		found, err := d.Repo.SetWatchlistRating(ctx, userID, key, req.Rating)
		if err != nil {
			writeError(w, r, pkghttpx.Internal("failed to set rating", err))
			return
		}
		if !found {
			writeError(w, r, pkghttpx.NotFound("movie not in watchlist", nil))
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"updated": true})
	}
}

// WatchlistRemove registers DELETE /users/{id}/watchlist. The movie identity
// comes from title and year query params.
func WatchlistRemove(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, err := pathUserID(r)
		if err != nil {
			writeError(w, r, asHTTPError(err))
			return
		}
		title := r.URL.Query().Get("title")
		if title == "" {
			writeError(w, r, pkghttpx.BadRequest("title is required", nil))
			return
		}
		var year *int
		if s := r.URL.Query().Get("year"); s != "" {
			y, pErr := strconv.Atoi(s)
			if pErr != nil {
				writeError(w, r, pkghttpx.BadRequest("invalid year", pErr))
				return
			}
			year = &y
		}
		key := (&catalog.Movie{Title: title, Year: year}).Key()
		removed, err := d.Repo.RemoveWatchlistEntry(ctx, userID, key)
		if err != nil {
			writeError(w, r, pkghttpx.Internal("failed to remove watchlist entry", err))
			return
		}
		if !removed {
			writeError(w, r, pkghttpx.NotFound("movie not in watchlist", nil))
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"removed": true})
	}
}

func pathUserID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkghttpx.BadRequest("invalid user id", err)
	}
	return id, nil
}
