package graph

// FieldSource enumerates a record's named fields and reads their current
// values. It is the engine's only window into the record; the engine
// never reflects on the record itself.
type FieldSource interface {
	// Fields returns every field name the source knows about for record,
	// in the order it should be considered when two fields tie on
	// mandatoriness. This includes fields with no Directive — Walker uses
	// the full set to tell "no directive" apart from "unresolved name".
	Fields(record any) []Name
	// Read returns the field's current value and whether it is present.
	Read(record any, name Name) (value any, present bool)
}

// PredicateFunc checks one field's value. A nil return accepts the value;
// a non-nil return rejects it with the given reason (a "format" signal in
// spec terms).
type PredicateFunc func(value any) error

// PredicateLookup resolves a predicate id to its implementation. Returns
// ok=false when the id is not registered.
type PredicateLookup func(id string) (PredicateFunc, bool)
