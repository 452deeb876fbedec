package tags

import (
	"reflect"
	"strings"
)

// DefaultTagName is the struct tag fieldgraph's reflection-based adapters
// read directives from.
const DefaultTagName = "fieldgraph"

// ParseTag parses a struct tag using the default "fieldgraph" tag name.
// Example: fieldgraph:"mandatory,predicate=nonEmptyString,requires=a|b"
// -> map{"mandatory": "", "predicate": "nonEmptyString", "requires": "a|b"}
func ParseTag(tag reflect.StructTag) map[string]string {
	return ParseTagWithName(tag, DefaultTagName)
}

// ParseTagWithName parses a struct tag using a custom tag name, so callers
// can point the same grammar at a different tag (e.g. to read directives
// written under a validator library's own tag name).
//
// Each comma-separated token is either a bare keyword ("mandatory"), a
// key=value or key:value pair ('=' and ':' are interchangeable separators),
// or — when it contains neither separator but does contain '|' — a
// pipe-delimited alternation ("hexcolor|rgb|rgba") recorded under a
// synthesized "__or__"-prefixed key. A value itself may contain '|' —
// fieldgraph's own list-valued keys (alternatives, requires, conflicts) rely
// on this to pack multiple field names into one value, split later by
// SplitList.
func ParseTagWithName(tag reflect.StructTag, tagName string) map[string]string {
	raw, ok := tag.Lookup(tagName)
	if !ok || raw == "" {
		return nil
	}

	tokens := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value := splitDirectiveToken(part)
		tokens[key] = value
	}
	return tokens
}

// splitDirectiveToken breaks one comma-separated tag token into the key and
// value a caller should record for it.
func splitDirectiveToken(token string) (key, value string) {
	if sep := strings.IndexAny(token, "=:"); sep != -1 {
		return strings.TrimSpace(token[:sep]), strings.TrimSpace(token[sep+1:])
	}
	if strings.Contains(token, "|") {
		return "__or__" + token, ""
	}
	return token, ""
}

// SplitList splits a key=value|value|value directive value into its
// individual field names, trimming whitespace and dropping empty parts.
func SplitList(value string) []string {
	if value == "" {
		return nil
	}
	raw := strings.Split(value, "|")
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}
