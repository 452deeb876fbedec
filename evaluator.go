package fieldgraph

import (
	"fmt"

	"github.com/SmrutAI/fieldgraph/internal/graph"
)

// Option configures an Evaluator at construction time.
type Option func(*settings)

type settings struct {
	ignore     []IgnoreToken
	only       []string
	except     []string
	predicates graph.PredicateLookup
}

// Ignoring disables one or more traversal rules for every Evaluate call
// made through this Evaluator. See IgnoreToken's constants for what each
// token relaxes.
func Ignoring(tokens ...IgnoreToken) Option {
	return func(s *settings) { s.ignore = append(s.ignore, tokens...) }
}

// OnlyContexts restricts evaluation to directives tagged with one of the
// given contexts (directives with no context are excluded).
func OnlyContexts(contexts ...string) Option {
	return func(s *settings) { s.only = append(s.only, contexts...) }
}

// IgnoreContexts excludes directives tagged with one of the given
// contexts; directives with no context are always included.
func IgnoreContexts(contexts ...string) Option {
	return func(s *settings) { s.except = append(s.except, contexts...) }
}

// WithPredicateLookup overrides the process-wide predicate registry for
// this Evaluator alone, useful for tests that want isolated predicates.
func WithPredicateLookup(lookup PredicateLookup) Option {
	return func(s *settings) { s.predicates = toWalkerLookup(lookup) }
}

func contextFilter(only, except []string) graph.ContextFilter {
	if len(only) == 0 && len(except) == 0 {
		return nil
	}
	onlySet := make(map[string]bool, len(only))
	for _, c := range only {
		onlySet[c] = true
	}
	exceptSet := make(map[string]bool, len(except))
	for _, c := range except {
		exceptSet[c] = true
	}
	return func(context string) bool {
		if len(onlySet) > 0 && !onlySet[context] {
			return false
		}
		if context == "" {
			return true
		}
		return !exceptSet[context]
	}
}

// Evaluator evaluates records of type T against a DirectiveIndex built
// once at construction time, mirroring the teacher's Validator[T]: the
// expensive setup (tag reflection, or in this case directive loading)
// happens once per type and is reused for every record evaluated.
type Evaluator[T any] struct {
	walker *graph.Walker
}

// New builds an Evaluator for T whose FieldSource also serves as its
// DirectiveLoader — the common case, satisfied by tagsource.Source.
// Panics if loader.Load() errors, since a malformed directive graph is a
// programmer error that should surface at startup, not per-record.
func New[T any](source interface {
	FieldSource
	DirectiveLoader
}, opts ...Option) *Evaluator[T] {
	eval, err := NewFromLoader[T](source, source, opts...)
	if err != nil {
		panic(fmt.Sprintf("fieldgraph: %v", err))
	}
	return eval
}

// NewFromLoader builds an Evaluator for T from separate FieldSource and
// DirectiveLoader collaborators — the shape needed when directives come
// from somewhere other than the record's own struct tags (e.g. a
// yamlsource.Loader paired with a custom FieldSource).
func NewFromLoader[T any](source FieldSource, loader DirectiveLoader, opts ...Option) (*Evaluator[T], error) {
	index, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("fieldgraph: loading directives: %w", err)
	}

	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	ignore, err := graph.NewIgnoreSet(cfg.ignore...)
	if err != nil {
		return nil, fmt.Errorf("fieldgraph: %w", err)
	}

	lookup := cfg.predicates
	if lookup == nil {
		lookup = lookupRegistered
	}

	return &Evaluator[T]{
		walker: &graph.Walker{
			Index:      index,
			Source:     source,
			Predicates: lookup,
			Ignore:     ignore,
			Contexts:   contextFilter(cfg.only, cfg.except),
		},
	}, nil
}

// Evaluate walks record's directive-bearing fields and returns the first
// Diagnostic encountered, or nil if every field passes and (when record
// implements PostValidator) the post-validation hook also passes.
func (e *Evaluator[T]) Evaluate(record *T) error {
	if diag := e.walker.Evaluate(record); diag != nil {
		return diag
	}
	if pv, ok := any(record).(PostValidator); ok {
		if err := pv.PostValidate(); err != nil {
			return &Diagnostic{Kind: PostValidation, Field: "root", Cause: err}
		}
	}
	return nil
}
