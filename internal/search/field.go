package search

import "errors"

// Errors returned by the engine. An unknown field is a caller bug and is
// surfaced immediately; there is no fallback ordering.
var ErrUnknownField = errors.New("unknown sort field")

// Field selects one of the fixed orderings. The closed set keeps dispatch
// exhaustive instead of comparing strings in handlers.
type Field int

const (
	FieldMatchScore Field = iota
	FieldTitle
	FieldRating
	FieldYear
	FieldDateAdded
)

var fieldNames = map[string]Field{
	"match_score": FieldMatchScore,
	"title":       FieldTitle,
	"rating":      FieldRating,
	"year":        FieldYear,
	"date_added":  FieldDateAdded,
}

// ParseField maps a wire-level sort name onto a Field.
func ParseField(s string) (Field, error) {
	f, ok := fieldNames[s]
	if !ok {
		return 0, ErrUnknownField
	}
	return f, nil
}

func (f Field) String() string {
	for name, v := range fieldNames {
		if v == f {
			return name
		}
	}
	return "unknown"
}

func (f Field) valid() bool {
	return f >= FieldMatchScore && f <= FieldDateAdded
}
