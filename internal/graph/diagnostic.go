package graph

import "fmt"

// DiagnosticKind enumerates the fatal outcomes an evaluate() call can
// report. Exactly one kind is ever attached to a given Diagnostic.
type DiagnosticKind int

const (
	// InvalidField: the leaf predicate rejected the field, or a mandatory
	// field was absent with no viable alternative.
	InvalidField DiagnosticKind = iota
	// Requirements: at least one required field was absent or failed.
	Requirements
	// ConflictField: at least one conflicting field validated.
	ConflictField
	// CyclicRequirement: a requires edge closed a cycle on the active path.
	CyclicRequirement
	// DirectiveError: an alternative/requires/conflicts name did not
	// resolve, or a directive referenced an unregistered predicate.
	DirectiveError
	// PostValidation: the record's PostValidator hook returned an error
	// after the directive graph otherwise passed.
	PostValidation
)

func (k DiagnosticKind) String() string {
	switch k {
	case InvalidField:
		return "InvalidField"
	case Requirements:
		return "Requirements"
	case ConflictField:
		return "ConflictField"
	case CyclicRequirement:
		return "CyclicRequirement"
	case DirectiveError:
		return "DirectiveError"
	case PostValidation:
		return "PostValidation"
	default:
		return "Unknown"
	}
}

// Diagnostic is the single failure an evaluate() call reports. Field is
// the offending field (or, for CyclicRequirement, the field where the
// cycle was detected); Referents lists the related field names (the
// alternatives considered, the requirement that failed, the conflicting
// field, or the closed cycle's path).
type Diagnostic struct {
	Kind      DiagnosticKind
	Field     Name
	Referents []Name
	Cause     error // optional wrapped error, e.g. the ValuePredicate's RejectFormat reason
}

func (d *Diagnostic) Error() string {
	field := normalizeName(d.Field)
	switch d.Kind {
	case InvalidField:
		if len(d.Referents) > 0 {
			return fmt.Sprintf("%s: invalid, and no alternative among %v validated", field, normalizeAll(d.Referents))
		}
		if d.Cause != nil {
			return fmt.Sprintf("%s: %s", field, d.Cause.Error())
		}
		return fmt.Sprintf("%s: invalid", field)
	case Requirements:
		return fmt.Sprintf("%s: requires %v", field, normalizeAll(d.Referents))
	case ConflictField:
		return fmt.Sprintf("%s: conflicts with %v", field, normalizeAll(d.Referents))
	case CyclicRequirement:
		return fmt.Sprintf("cyclic requirement: %v", normalizeAll(d.Referents))
	case DirectiveError:
		return fmt.Sprintf("%s: malformed directive, unresolved reference %v", field, normalizeAll(d.Referents))
	case PostValidation:
		if d.Cause != nil {
			return fmt.Sprintf("%s: %s", field, d.Cause.Error())
		}
		return fmt.Sprintf("%s: post-validation failed", field)
	default:
		return fmt.Sprintf("%s: validation failed", field)
	}
}

func (d *Diagnostic) Unwrap() error { return d.Cause }

func newInvalidField(field Name, alternatives []Name, cause error) *Diagnostic {
	return &Diagnostic{Kind: InvalidField, Field: field, Referents: alternatives, Cause: cause}
}

func newRequirements(field Name, referents []Name) *Diagnostic {
	return &Diagnostic{Kind: Requirements, Field: field, Referents: referents}
}

func newConflictField(field, conflict Name) *Diagnostic {
	return &Diagnostic{Kind: ConflictField, Field: field, Referents: []Name{conflict}}
}

func newCyclicRequirement(path []Name) *Diagnostic {
	return &Diagnostic{Kind: CyclicRequirement, Field: path[0], Referents: path}
}

func newDirectiveError(field, reference Name) *Diagnostic {
	return &Diagnostic{Kind: DirectiveError, Field: field, Referents: []Name{reference}}
}

func newPostValidation(field Name, cause error) *Diagnostic {
	return &Diagnostic{Kind: PostValidation, Field: field, Cause: cause}
}
