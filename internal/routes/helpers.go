package routes

import (
	"errors"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"

	"github.com/Nydeyas/movie-maven/internal/search"
	pkghttpx "github.com/Nydeyas/movie-maven/pkg/httpx"
)

// Thin aliases so handlers read the same as the rest of the package.
var (
	writeJSON  = pkghttpx.WriteJSON
	writeError = pkghttpx.WriteError
)

// asHTTPError maps any error onto the response taxonomy. Engine errors are
// caller bugs at this boundary, so they surface as bad_request.
func asHTTPError(err error) *pkghttpx.HTTPError {
	var he *pkghttpx.HTTPError
	if errors.As(err, &he) {
		return he
	}
	if errors.Is(err, search.ErrUnknownField) {
		return pkghttpx.BadRequest("invalid sort", err)
	}
	return pkghttpx.Internal("internal error", err)
}

// parseLimit reads a positive row limit with a default and an upper cap.
func parseLimit(r *http.Request, def, cap int) (int, error) {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > cap {
		return 0, pkghttpx.BadRequest("invalid limit", err)
	}
	return n, nil
}

// parseSort reads sort+order. With no explicit order, match_score and
// date_added default to their best-first/newest-first reading; the other
// fields default ascending.
func parseSort(r *http.Request, def search.Field) (search.Field, bool, error) {
	field := def
	if s := r.URL.Query().Get("sort"); s != "" {
		f, err := search.ParseField(s)
		if err != nil {
			return 0, false, pkghttpx.BadRequest("invalid sort", err)
		}
		field = f
	}
	ascending := true
	switch r.URL.Query().Get("order") {
	case "":
		if field == search.FieldMatchScore || field == search.FieldDateAdded {
			ascending = false
		}
	case "asc":
	case "desc":
		ascending = false
	default:
		return 0, false, pkghttpx.BadRequest("invalid order", nil)
	}
	return field, ascending, nil
}

// parseCSV splits a comma-separated query param, dropping empty parts.
func parseCSV(r *http.Request, name string) []string {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseYears parses the years filter.
func parseYears(r *http.Request) ([]int, error) {
	var out []int
	for _, p := range parseCSV(r, "years") {
		y, err := strconv.Atoi(p)
		if err != nil {
			return nil, pkghttpx.BadRequest("invalid years", err)
		}
		out = append(out, y)
	}
	return out, nil
}

// paramsDigest pins a pagination cursor to the query it was issued for.
func paramsDigest(parts ...string) uint64 {
	h := fnv.New64a()
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
