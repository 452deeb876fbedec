// Package tagsource is fieldgraph's default adapter: it builds a
// DirectiveIndex from a Go struct's own "fieldgraph" tags via reflection,
// and doubles as the FieldSource the Walker reads record values through.
//
// Example:
//
//	type Listing struct {
//	    ExternalID  string  `json:"externalId" fieldgraph:"mandatory,predicate=nonEmptyString"`
//	    Rent        bool    `json:"rent" fieldgraph:"requires=priceRent"`
//	    PriceRent   float64 `json:"priceRent" fieldgraph:"predicate=positiveNumber"`
//	}
//
//	src := tagsource.New[Listing]()
//	index, err := src.Load()
package tagsource

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/SmrutAI/fieldgraph/internal/graph"
	"github.com/SmrutAI/fieldgraph/internal/tags"
)

// Source is both a graph.FieldSource and a fieldgraph.DirectiveLoader for
// structs of type T. It is built once per type (the reflection walk runs
// at construction time) and is safe for concurrent use across goroutines.
type Source[T any] struct {
	typ     reflect.Type
	tagName string
	order   []graph.Name
	index   *graph.Index
}

// Option configures a Source at construction time.
type Option func(*config)

type config struct {
	tagName string
}

// WithTagName overrides the struct tag fieldgraph reads directives from.
// Defaults to tags.DefaultTagName ("fieldgraph"), letting a caller share a
// tag namespace with another validation library.
func WithTagName(name string) Option {
	return func(c *config) { c.tagName = name }
}

// New builds a Source for T, parsing every exported field's struct tag
// once. Panics if T is not a struct (or pointer to struct) or if a
// directive references a field name not found anywhere on T — this is a
// construction-time fail-fast, matching how reflection-driven validators
// in this ecosystem reject malformed tags before the first call.
func New[T any](opts ...Option) *Source[T] {
	cfg := config{tagName: tags.DefaultTagName}
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero T
	typ := reflect.TypeOf(zero)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		panic(fmt.Sprintf("tagsource: %s is not a struct", typ))
	}

	order, directives := buildDirectives(typ, cfg.tagName)
	src := &Source[T]{
		typ:     typ,
		tagName: cfg.tagName,
		order:   order,
		index:   graph.NewIndex(directives),
	}

	known := make(map[graph.Name]bool, len(order))
	for _, n := range order {
		known[n] = true
	}
	for name, d := range directives {
		for _, ref := range refsOf(d) {
			if !known[ref] {
				panic(fmt.Sprintf("tagsource: %s.%s references unknown field %q", typ.Name(), name, ref))
			}
		}
	}

	return src
}

func refsOf(d graph.Directive) []graph.Name {
	refs := make([]graph.Name, 0, len(d.Alternatives)+len(d.Requires)+len(d.Conflicts))
	refs = append(refs, d.Alternatives...)
	refs = append(refs, d.Requires...)
	refs = append(refs, d.Conflicts...)
	return refs
}

// buildDirectives walks typ's exported fields in declaration order,
// returning field names in that order alongside the Directive parsed from
// each field's tag (fields with no recognized tag are simply absent from
// the directives map, matching graph.Index.Lookup's "no directive" case).
func buildDirectives(typ reflect.Type, tagName string) ([]graph.Name, map[graph.Name]graph.Directive) {
	order := make([]graph.Name, 0, typ.NumField())
	directives := make(map[graph.Name]graph.Directive)

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name := fieldName(field)
		order = append(order, name)

		raw := tags.ParseTagWithName(field.Tag, tagName)
		if raw == nil {
			continue
		}
		directives[name] = directiveFromTag(raw)
	}

	return order, directives
}

func directiveFromTag(raw map[string]string) graph.Directive {
	var d graph.Directive
	if _, ok := raw["mandatory"]; ok {
		d.Mandatory = true
	}
	d.Predicate = raw["predicate"]
	d.Context = raw["context"]
	if v, ok := raw["alternatives"]; ok {
		d.Alternatives = tags.SplitList(v)
	}
	if v, ok := raw["requires"]; ok {
		d.Requires = tags.SplitList(v)
	}
	if v, ok := raw["conflicts"]; ok {
		d.Conflicts = tags.SplitList(v)
	}
	return d
}

// fieldName resolves the field's public name: its json tag name if
// present, otherwise its Go field name normalized to lower camel case.
func fieldName(field reflect.StructField) string {
	if jsonTag := field.Tag.Get("json"); jsonTag != "" && jsonTag != "-" {
		name, _, _ := strings.Cut(jsonTag, ",")
		if name != "" {
			return name
		}
	}
	return lowerFirst(field.Name)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// Load returns the DirectiveIndex built at construction time, satisfying
// fieldgraph.DirectiveLoader. It never errors: any malformed tag already
// panicked in New.
func (s *Source[T]) Load() (*graph.Index, error) {
	return s.index, nil
}

// Fields implements graph.FieldSource, returning every exported field's
// resolved name in struct declaration order.
func (s *Source[T]) Fields(record any) []graph.Name {
	return s.order
}

// Read implements graph.FieldSource over a *T or T record. A field is
// "present" unless it is the zero value of its type — the same
// presence rule the teacher's required-constraint machinery uses for
// deciding whether a field was supplied.
func (s *Source[T]) Read(record any, name graph.Name) (any, bool) {
	val := reflect.ValueOf(record)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, false
		}
		val = val.Elem()
	}

	for i := 0; i < s.typ.NumField(); i++ {
		field := s.typ.Field(i)
		if !field.IsExported() || fieldName(field) != name {
			continue
		}
		fv := val.Field(i)
		if fv.IsZero() {
			return nil, false
		}
		return fv.Interface(), true
	}
	return nil, false
}
