package search

import (
	"bytes"
	"sort"

	"github.com/Nydeyas/movie-maven/internal/collation"
)

// Sortable is anything the ordered views can arrange: catalog records
// directly, watchlist entries through their own accessors. Date-added order
// is the position in the input sequence, so it needs no accessor.
type Sortable interface {
	SortTitle() string
	SortYear() (int, bool)
	SortRating() (float64, bool)
}

// Substitution values for records missing a field. Sorting never fails on
// incomplete data.
const (
	missingRating = 0.0
	missingYear   = 1900
)

// SortedView returns the items arranged by the given field, truncated to
// maxItems when maxItems > 0.
//
// For rating and year, reverse only negates the primary numeric key; the
// secondary key (collated title) stays ascending either way. Within any
// rating or year group titles therefore remain alphabetically readable
// regardless of direction, and ties never appear to shuffle when the user
// flips the sort. Date-added reversal is a plain sequence reversal.
func SortedView[T Sortable](keyer *collation.Keyer, items []T, field Field, maxItems int, reverse bool) ([]T, error) {
	out := make([]T, len(items))
	copy(out, items)

	switch field {
	case FieldTitle:
		sort.SliceStable(out, func(i, j int) bool {
			c := bytes.Compare(keyer.Key(out[i].SortTitle()), keyer.Key(out[j].SortTitle()))
			if reverse {
				return c > 0
			}
			return c < 0
		})
	case FieldRating:
		sort.SliceStable(out, func(i, j int) bool {
			a := primaryRating(out[i], reverse)
			b := primaryRating(out[j], reverse)
			if a != b {
				return a < b
			}
			return bytes.Compare(keyer.Key(out[i].SortTitle()), keyer.Key(out[j].SortTitle())) < 0
		})
	case FieldYear:
		sort.SliceStable(out, func(i, j int) bool {
			a := primaryYear(out[i], reverse)
			b := primaryYear(out[j], reverse)
			if a != b {
				return a < b
			}
			return bytes.Compare(keyer.Key(out[i].SortTitle()), keyer.Key(out[j].SortTitle())) < 0
		})
	case FieldDateAdded:
		if reverse {
			for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
				out[i], out[j] = out[j], out[i]
			}
		}
	default:
		// FieldMatchScore is only meaningful inside Search.
		return nil, ErrUnknownField
	}

	return truncate(out, maxItems), nil
}

func primaryRating[T Sortable](item T, reverse bool) float64 {
	r, ok := item.SortRating()
	if !ok {
		r = missingRating
	}
	if reverse {
		return -r
	}
	return r
}

func primaryYear[T Sortable](item T, reverse bool) int {
	y, ok := item.SortYear()
	if !ok {
		y = missingYear
	}
	if reverse {
		return -y
	}
	return y
}

func truncate[T any](items []T, maxItems int) []T {
	if maxItems > 0 && len(items) > maxItems {
		return items[:maxItems]
	}
	return items
}
