// Package fieldgraph evaluates a record's fields against a directive
// graph: mandatoriness, alternatives, cross-field requirements, and
// conflicts, composed into a single pass/fail decision.
//
// Basic usage:
//
//	type Listing struct {
//	    ExternalID string  `json:"externalId" fieldgraph:"mandatory,predicate=nonEmptyString"`
//	    Rent       bool    `json:"rent" fieldgraph:"requires=priceRent"`
//	    PriceRent  float64 `json:"priceRent" fieldgraph:"predicate=positiveNumber"`
//	}
//
//	fieldgraph.RegisterPredicate("nonEmptyString", predicates.NonEmptyString)
//	fieldgraph.RegisterPredicate("positiveNumber", predicates.PositiveNumber)
//
//	eval := fieldgraph.New[Listing](tagsource.New[Listing]())
//	err := eval.Evaluate(&listing)
package fieldgraph

// PostValidator is implemented by record types that need one more check
// after the directive graph has otherwise passed — cross-field invariants
// too irregular to express as requires/conflicts edges.
type PostValidator interface {
	PostValidate() error
}
