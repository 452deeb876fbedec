package fieldgraph

import "github.com/SmrutAI/fieldgraph/internal/graph"

// Name identifies a field on a record.
type Name = graph.Name

// Directive is the per-field validation descriptor: what makes a field
// mandatory, what alternatives it can fall back to, what it requires or
// conflicts with, and which evaluation context it belongs to.
type Directive = graph.Directive

// Index maps field names to their Directive.
type Index = graph.Index

// NewIndex builds an Index from a set of per-field directives.
func NewIndex(directives map[Name]Directive) *Index {
	return graph.NewIndex(directives)
}

// FieldSource enumerates a record's named fields and reads their current
// values. Implementations: tagsource.Source (reflection over struct
// tags), or a caller's own adapter over a non-struct record shape.
type FieldSource = graph.FieldSource

// DirectiveLoader builds the Index an Evaluator evaluates against, once
// per record type. Implementations: tagsource.Source, yamlsource.Loader.
type DirectiveLoader interface {
	Load() (*Index, error)
}
