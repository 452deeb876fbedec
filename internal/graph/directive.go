// Package graph implements the field-validation traversal algorithm: how
// mandatoriness, alternatives, requirements, and conflicts compose into a
// single pass/fail decision over a record's directive-bearing fields.
//
// Everything here is domain-agnostic. It knows nothing about reflection,
// struct tags, or JSON — those live in the adapter packages (tagsource,
// yamlsource) one level up. The package is internal because its types are
// re-exported as aliases from the top-level fieldgraph package; callers
// should never need to import it directly.
package graph

import "fmt"

// Name identifies a field on a record. Names are unique within one record.
type Name = string

// Directive is the immutable per-field validation descriptor.
type Directive struct {
	Predicate    string // name of the ValuePredicate that checks this field's value
	Mandatory    bool
	Alternatives []Name // sibling fields considered when Mandatory and absent
	Requires     []Name // fields that must also validate whenever this one does
	Conflicts    []Name // fields that must not validate whenever this one does
	Context      string // optional tag used by OnlyContexts/IgnoreContexts
}

// Index maps field names to their Directive. Built once per record type
// and shared read-only across every evaluate() call for that type.
type Index struct {
	byName map[Name]Directive
}

// NewIndex builds a DirectiveIndex from a set of per-field directives.
func NewIndex(directives map[Name]Directive) *Index {
	byName := make(map[Name]Directive, len(directives))
	for name, d := range directives {
		byName[name] = d
	}
	return &Index{byName: byName}
}

// Lookup returns the Directive registered for name, if any. A false result
// means the field carries no directive — not that the field is unknown to
// the record; see Walker for how the two are distinguished.
func (ix *Index) Lookup(name Name) (Directive, bool) {
	if ix == nil {
		return Directive{}, false
	}
	d, ok := ix.byName[name]
	return d, ok
}

// Names returns every field name that carries a Directive, in unspecified
// order; callers that need deterministic order (the Evaluator) re-sort by
// consulting FieldSource enumeration order instead.
func (ix *Index) Names() []Name {
	names := make([]Name, 0, len(ix.byName))
	for n := range ix.byName {
		names = append(names, n)
	}
	return names
}

func (ix *Index) String() string {
	return fmt.Sprintf("Index(%d directives)", len(ix.byName))
}
