package driven

import "github.com/talenta-labs/kampuskb/internal/core/domain"

// ConfigStore provides persisted configuration for the retrieval engine.
// Implementations must be safe for concurrent use.
type ConfigStore interface {
	// Weights returns the configured scoring weights. Implementations
	// return sanitised values; missing configuration yields the defaults.
	Weights() domain.ScoringWeights

	// SetWeights persists new scoring weights.
	SetWeights(w domain.ScoringWeights) error

	// DefaultFaculty returns the configured default faculty tag, or
	// empty string when unset.
	DefaultFaculty() string

	// SetDefaultFaculty persists the default faculty tag.
	SetDefaultFaculty(tag string) error
}
