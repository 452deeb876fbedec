package fieldgraph

import (
	"errors"
	"sync"

	"github.com/SmrutAI/fieldgraph/internal/graph"
)

// ValuePredicate checks one field's value: nil return accepts the value,
// non-nil rejects it with the given reason.
type ValuePredicate interface {
	Check(value any) error
}

// PredicateFunc adapts a plain function to ValuePredicate and is also
// what the registry stores directly, mirroring the teacher's
// ValidationFunc shape in registry.go.
type PredicateFunc func(value any) error

// Check implements ValuePredicate.
func (f PredicateFunc) Check(value any) error { return f(value) }

// PredicateLookup resolves a predicate id to its implementation.
// WithPredicateLookup accepts this type directly so callers can swap in a
// lookup that does not go through the process-wide registry at all.
type PredicateLookup func(id string) (PredicateFunc, bool)

// toWalkerLookup adapts a public PredicateLookup to graph.PredicateLookup,
// the shape internal/graph.Walker actually drives. The conversion exists
// because graph.PredicateFunc and PredicateFunc are distinct named types
// with the same underlying function signature; exported API surface
// should never need to name the internal package's type directly.
func toWalkerLookup(lookup PredicateLookup) graph.PredicateLookup {
	return func(id string) (graph.PredicateFunc, bool) {
		fn, ok := lookup(id)
		if !ok {
			return nil, false
		}
		return graph.PredicateFunc(fn), true
	}
}

var predicates sync.Map // map[string]PredicateFunc

// RegisterPredicate registers a named ValuePredicate implementation in the
// process-wide registry. Directives reference predicates by this name.
// Returns an error if name is empty or fn is nil, mirroring the teacher's
// RegisterValidation guard rails.
func RegisterPredicate(name string, fn PredicateFunc) error {
	if name == "" {
		return errors.New("fieldgraph: predicate name cannot be empty")
	}
	if fn == nil {
		return errors.New("fieldgraph: predicate function cannot be nil")
	}
	predicates.Store(name, fn)
	return nil
}

// GetPredicate retrieves a registered predicate by name.
func GetPredicate(name string) (PredicateFunc, bool) {
	if v, ok := predicates.Load(name); ok {
		return v.(PredicateFunc), true
	}
	return nil, false
}

// lookupRegistered adapts the process-wide registry to graph.PredicateLookup.
func lookupRegistered(id string) (graph.PredicateFunc, bool) {
	fn, ok := GetPredicate(id)
	if !ok {
		return nil, false
	}
	return graph.PredicateFunc(fn), true
}
