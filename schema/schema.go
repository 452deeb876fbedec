// Package schema renders a fieldgraph DirectiveIndex as a JSON Schema
// document, so the same directives that drive evaluate() can also
// document a record type for consumers that only speak JSON Schema
// (OpenAPI tooling, LLM structured-output, API gateways).
//
// Directives that JSON Schema has no native vocabulary for —
// alternatives, requires, conflicts, predicate, context — are attached as
// "x-fieldgraph-*" extension keywords on the relevant property, following
// the same $ref-free, struct-tag-driven generation the teacher lineage
// uses for its own Schema()/SchemaJSON().
package schema

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/SmrutAI/fieldgraph/internal/graph"
)

// Generate reflects T into a JSON Schema and annotates every property that
// carries a Directive in index.
func Generate[T any](index *graph.Index) *jsonschema.Schema {
	var zero T
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	root := reflector.Reflect(zero)

	actual := root
	if root.Properties == nil && len(root.Definitions) > 0 {
		for _, def := range root.Definitions {
			if def.Type == "object" && def.Properties != nil {
				actual = def
				break
			}
		}
	}
	actual.Required = nil

	typ := reflect.TypeOf(zero)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	annotate(actual, typ, index)

	return actual
}

// GenerateJSON is Generate, marshaled to indented JSON.
func GenerateJSON[T any](index *graph.Index) ([]byte, error) {
	return json.MarshalIndent(Generate[T](index), "", "  ")
}

func annotate(s *jsonschema.Schema, typ reflect.Type, index *graph.Index) {
	if typ.Kind() != reflect.Struct || s.Properties == nil {
		return
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name := jsonFieldName(field)
		if name == "" {
			continue
		}

		prop, ok := s.Properties.Get(name)
		if !ok || prop == nil {
			continue
		}

		d, hasDirective := index.Lookup(name)
		if hasDirective {
			applyDirective(s, prop, name, d)
		}

		fieldType := field.Type
		for fieldType.Kind() == reflect.Ptr {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Struct {
			prop.Required = nil
			annotate(prop, fieldType, index)
		}
	}
}

func applyDirective(parent, prop *jsonschema.Schema, name string, d graph.Directive) {
	if d.Mandatory {
		parent.Required = append(parent.Required, name)
	}

	extras := prop.Extras
	if extras == nil {
		extras = make(map[string]any)
	}
	if d.Predicate != "" {
		extras["x-fieldgraph-predicate"] = d.Predicate
	}
	if len(d.Alternatives) > 0 {
		extras["x-fieldgraph-alternatives"] = d.Alternatives
	}
	if len(d.Requires) > 0 {
		extras["x-fieldgraph-requires"] = d.Requires
	}
	if len(d.Conflicts) > 0 {
		extras["x-fieldgraph-conflicts"] = d.Conflicts
	}
	if d.Context != "" {
		extras["x-fieldgraph-context"] = d.Context
	}
	if len(extras) > 0 {
		prop.Extras = extras
	}
}

func jsonFieldName(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "-" {
		return ""
	}
	if jsonTag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(jsonTag, ",")
	if name == "" {
		return field.Name
	}
	return name
}
