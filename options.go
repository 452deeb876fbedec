package fieldgraph

import "github.com/SmrutAI/fieldgraph/internal/graph"

// IgnoreToken names one traversal relaxation a caller can enable via
// Evaluator.Ignoring.
type IgnoreToken = graph.IgnoreToken

const (
	// Alternatives skips alternative resolution: a mandatory, absent field
	// fails immediately instead of consulting its alternatives.
	Alternatives = graph.Alternatives
	// Mandatory relaxes mandatoriness: a mandatory, absent field passes
	// vacuously once Alternatives has had first refusal.
	Mandatory = graph.Mandatory
	// RequirementsIgnore skips requirement checking entirely.
	RequirementsIgnore = graph.RequirementsToken
	// Conflicts skips conflict checking entirely.
	Conflicts = graph.Conflicts
)
