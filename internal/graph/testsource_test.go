package graph

// recordSource is a tiny in-memory FieldSource used throughout this
// package's tests: a record is just a map[Name]any, absence means the key
// is missing from the map (nil values count as present — callers use the
// zero value of whatever type they need).
type recordSource struct {
	order []Name
}

func newRecordSource(order ...Name) *recordSource {
	return &recordSource{order: order}
}

func (s *recordSource) Fields(record any) []Name {
	return s.order
}

func (s *recordSource) Read(record any, name Name) (any, bool) {
	rec := record.(map[Name]any)
	v, ok := rec[name]
	return v, ok
}

// nonEmptyString is the stand-in ValuePredicate used by tests: it rejects
// "" and every non-string value, and accepts any other string, mirroring spec.md's "is a non-empty
// string" example predicate.
func nonEmptyString(v any) error {
	s, _ := v.(string)
	if s == "" {
		return errFormat("must be a non-empty string")
	}
	return nil
}

// positiveNumber is the stand-in numeric predicate from spec.md's example.
func positiveNumber(v any) error {
	switch n := v.(type) {
	case int:
		if n <= 0 {
			return errFormat("must be positive")
		}
	case float64:
		if n <= 0 {
			return errFormat("must be positive")
		}
	default:
		return errFormat("must be a number")
	}
	return nil
}

type errFormat string

func (e errFormat) Error() string { return string(e) }

func lookup(predicates map[string]PredicateFunc) PredicateLookup {
	return func(id string) (PredicateFunc, bool) {
		fn, ok := predicates[id]
		return fn, ok
	}
}

var defaultPredicates = map[string]PredicateFunc{
	"nonEmptyString": nonEmptyString,
	"positiveNumber": positiveNumber,
}
