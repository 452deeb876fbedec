package graph

import "fmt"

// IgnoreToken names one traversal relaxation a caller can enable.
type IgnoreToken int

const (
	// Alternatives skips alternative resolution: a mandatory, absent field
	// fails immediately instead of consulting its alternatives.
	Alternatives IgnoreToken = iota
	// Mandatory relaxes mandatoriness: a mandatory, absent field passes
	// vacuously (checked only once Alternatives has had first refusal).
	Mandatory
	// RequirementsToken skips requirement checking entirely.
	RequirementsToken
	// Conflicts skips conflict checking entirely.
	Conflicts
)

func (t IgnoreToken) String() string {
	switch t {
	case Alternatives:
		return "ALTERNATIVES"
	case Mandatory:
		return "MANDATORY"
	case RequirementsToken:
		return "REQUIREMENTS"
	case Conflicts:
		return "CONFLICTS"
	default:
		return "UNKNOWN"
	}
}

// ParseIgnoreToken resolves the string spelling of a token (as it would
// appear in configuration) to its IgnoreToken value.
func ParseIgnoreToken(s string) (IgnoreToken, bool) {
	switch s {
	case "ALTERNATIVES":
		return Alternatives, true
	case "MANDATORY":
		return Mandatory, true
	case "REQUIREMENTS":
		return RequirementsToken, true
	case "CONFLICTS":
		return Conflicts, true
	default:
		return 0, false
	}
}

// IgnoreSet is an immutable set of IgnoreTokens, supplied by the caller
// before evaluation and consulted at each relevant decision point.
type IgnoreSet struct {
	tokens map[IgnoreToken]bool
}

// NewIgnoreSet builds an IgnoreSet from the given tokens. Unknown tokens
// are rejected at construction, per spec: callers build an IgnoreSet once
// and reuse the returned error (or panic, for the chaining API) rather
// than discovering a typo mid-traversal.
func NewIgnoreSet(tokens ...IgnoreToken) (IgnoreSet, error) {
	set := make(map[IgnoreToken]bool, len(tokens))
	for _, t := range tokens {
		if _, ok := ParseIgnoreToken(t.String()); !ok {
			return IgnoreSet{}, fmt.Errorf("fieldgraph: unknown ignore token %v", t)
		}
		set[t] = true
	}
	return IgnoreSet{tokens: set}, nil
}

// Has reports whether token is in the set.
func (s IgnoreSet) Has(token IgnoreToken) bool {
	return s.tokens[token]
}
