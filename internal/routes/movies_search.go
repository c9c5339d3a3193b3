package routes

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Nydeyas/movie-maven/internal/catalog"
	"github.com/Nydeyas/movie-maven/internal/deps"
	"github.com/Nydeyas/movie-maven/internal/search"
	pkghttpx "github.com/Nydeyas/movie-maven/pkg/httpx"
)

type searchItem struct {
	Site string `json:"site"`
	*catalog.Movie
}

// MoviesSearch registers GET /movies/search. Results are ranked per site and
// concatenated in site order; pagination is offset-based with an HMAC-signed
// cursor pinned to the query parameters.
func MoviesSearch(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query().Get("q")

		limit, err := parseLimit(r, d.SearchRows, 100)
		if err != nil {
			writeError(w, r, asHTTPError(err))
			return
		}
		field, ascending, err := parseSort(r, search.FieldMatchScore)
		if err != nil {
			writeError(w, r, asHTTPError(err))
			return
		}
		minScore := d.MinScore
		if s := r.URL.Query().Get("min_score"); s != "" {
			f, pErr := strconv.ParseFloat(s, 64)
			if pErr != nil || f < 0 || f > 100 {
				writeError(w, r, pkghttpx.BadRequest("invalid min_score", pErr))
				return
			}
			minScore = f
		}
		tags := parseCSV(r, "tags")
		years, err := parseYears(r)
		if err != nil {
			writeError(w, r, asHTTPError(err))
			return
		}

		digest := paramsDigest(q,
			field.String(),
			strconv.FormatBool(ascending),
			strconv.FormatFloat(minScore, 'g', -1, 64),
			strings.Join(tags, ","),
			r.URL.Query().Get("years"),
		)
		offset := int64(0)
		if cursor := r.URL.Query().Get("cursor"); cursor != "" {
			off, dig, dErr := d.Signer.DecodeSearchCursor(cursor)
			if dErr != nil || dig != digest || off < 0 {
				writeError(w, r, pkghttpx.BadRequest("invalid cursor", dErr))
				return
			}
			offset = off
		}

		cacheKey := "search:" + strconv.FormatUint(digest, 16) + ":" +
			strconv.FormatInt(offset, 10) + ":" + strconv.Itoa(limit)
		if cached, ok := d.Cache.Get(ctx, cacheKey); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(cached))
			return
		}

		params := search.Params{
			Query:     q,
			MinScore:  minScore,
			Sort:      field,
			Ascending: ascending,
			Tags:      tags,
			Years:     years,
		}
		items := make([]searchItem, 0, limit)
		for _, site := range d.Library.Snapshot() {
			res, sErr := d.Engine.Search(site.Movies(), params)
			if sErr != nil {
				writeError(w, r, asHTTPError(sErr))
				return
			}
			for _, m := range res {
				items = append(items, searchItem{Site: site.Name, Movie: m})
			}
		}

		total := len(items)
		if offset > int64(total) {
			offset = int64(total)
		}
		page := items[offset:]
		var next *string
		if len(page) > limit {
			page = page[:limit]
			token := d.Signer.EncodeSearchCursor(offset+int64(limit), digest)
			next = &token
		}

		resp := map[string]any{
			"items": page,
			"count": len(page),
			"total": total,
		}
		if next != nil {
			resp["next_cursor"] = *next
		}
		b, _ := json.Marshal(resp)
		_ = d.Cache.Set(ctx, cacheKey, string(b), 2*time.Minute)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	}
}
