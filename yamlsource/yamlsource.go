// Package yamlsource loads a DirectiveIndex from a YAML document, for
// callers who want their field-graph configuration to live outside Go
// source (a config map, a ConfigMap mount, a file shipped next to a
// service binary) rather than in struct tags.
//
// Document shape:
//
//	fields:
//	  externalId:
//	    mandatory: true
//	    predicate: nonEmptyString
//	  rent:
//	    requires: [priceRent]
//	  priceRent:
//	    predicate: positiveNumber
//	    context: create
package yamlsource

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SmrutAI/fieldgraph/internal/graph"
)

// fieldDoc mirrors one field's YAML entry.
type fieldDoc struct {
	Mandatory    bool     `yaml:"mandatory"`
	Predicate    string   `yaml:"predicate"`
	Alternatives []string `yaml:"alternatives"`
	Requires     []string `yaml:"requires"`
	Conflicts    []string `yaml:"conflicts"`
	Context      string   `yaml:"context"`
}

type document struct {
	Fields map[string]fieldDoc `yaml:"fields"`
}

// Loader is a fieldgraph.DirectiveLoader backed by an in-memory YAML document.
type Loader struct {
	data []byte
}

// New builds a Loader from raw YAML bytes. Parsing is deferred to Load so
// construction never fails; callers that want fail-fast behavior should
// call Load once at startup and handle the error there.
func New(data []byte) *Loader {
	return &Loader{data: data}
}

// FromFile reads path and builds a Loader from its contents.
func FromFile(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("yamlsource: reading %s: %w", path, err)
	}
	return New(data), nil
}

// Load parses the YAML document and builds a graph.Index. Every
// alternatives/requires/conflicts entry must name a field also present in
// the fields map — fieldgraph treats a loaded directive graph the same
// way tagsource treats reflected struct tags, so a document cannot
// reference a field it never defines.
func (l *Loader) Load() (*graph.Index, error) {
	var doc document
	if err := yaml.Unmarshal(l.data, &doc); err != nil {
		return nil, fmt.Errorf("yamlsource: parsing document: %w", err)
	}

	directives := make(map[graph.Name]graph.Directive, len(doc.Fields))
	for name, f := range doc.Fields {
		directives[name] = graph.Directive{
			Predicate:    f.Predicate,
			Mandatory:    f.Mandatory,
			Alternatives: f.Alternatives,
			Requires:     f.Requires,
			Conflicts:    f.Conflicts,
			Context:      f.Context,
		}
	}

	for name, d := range directives {
		for _, ref := range append(append(append([]string{}, d.Alternatives...), d.Requires...), d.Conflicts...) {
			if _, ok := doc.Fields[ref]; !ok {
				return nil, fmt.Errorf("yamlsource: field %q references unknown field %q", name, ref)
			}
		}
	}

	return graph.NewIndex(directives), nil
}
