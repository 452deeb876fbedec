package fieldgraph

import "github.com/SmrutAI/fieldgraph/internal/graph"

// DiagnosticKind enumerates the fatal outcomes an Evaluate call can
// report. Exactly one kind is ever attached to a given Diagnostic.
type DiagnosticKind = graph.DiagnosticKind

const (
	InvalidField      = graph.InvalidField
	Requirements      = graph.Requirements
	ConflictField     = graph.ConflictField
	CyclicRequirement = graph.CyclicRequirement
	DirectiveError    = graph.DirectiveError
	PostValidation    = graph.PostValidation
)

// Diagnostic is the single failure an Evaluate call reports. Field is the
// offending field; Referents lists related field names (the alternatives
// considered, the requirement that failed, the conflicting field, or the
// closed cycle's path). Unwrap returns the ValuePredicate's rejection
// reason when one caused the failure.
type Diagnostic = graph.Diagnostic
