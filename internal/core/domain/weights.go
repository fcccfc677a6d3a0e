package domain

// ScoringWeights names the relevance-scoring constants. The defaults are
// heuristic and unvalidated against real query logs; they are exposed here
// (and via the config file) instead of being buried as magic numbers.
type ScoringWeights struct {
	// KeywordMatch is added per chunk keyword found in the expanded query.
	KeywordMatch float64

	// FuzzyFactor multiplies the fuzzy similarity for near-miss tokens.
	FuzzyFactor float64

	// ContentMatch is added per query token found in chunk content.
	ContentMatch float64

	// StaffNameMatch is added for a plain substring match of a name part.
	StaffNameMatch float64

	// StaffDepartmentMatch is added when query and member agree on a
	// department-related keyword pair.
	StaffDepartmentMatch float64

	// StaffTitleMatch is added when a title keyword (professor, dekan,
	// ketua) matches.
	StaffTitleMatch float64

	// FuzzyThreshold is the minimum similarity for two tokens to count
	// as a fuzzy match. Below it, tokens may still contribute via plain
	// substring checks.
	FuzzyThreshold float64

	// MinTokenLength is the shortest query token considered for fuzzy
	// and content matching.
	MinTokenLength int

	// MaxContextBytes soft-caps the assembled context string. Zero means
	// uncapped; truncation is then the caller's responsibility.
	MaxContextBytes int
}

// Default retrieval limits.
const (
	// DefaultMaxChunks bounds general chunk retrieval.
	DefaultMaxChunks = 5

	// ContextMaxChunks bounds chunk retrieval during context assembly.
	ContextMaxChunks = 8

	// MaxStaffResults bounds the detailed staff listing.
	MaxStaffResults = 10
)

// DefaultScoringWeights returns the baseline weight set.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		KeywordMatch:         1.0,
		FuzzyFactor:          0.5,
		ContentMatch:         0.3,
		StaffNameMatch:       1.0,
		StaffDepartmentMatch: 0.8,
		StaffTitleMatch:      0.5,
		FuzzyThreshold:       0.70,
		MinTokenLength:       3,
		MaxContextBytes:      0,
	}
}

// Sanitised returns a copy with out-of-range fields reset to defaults.
// Weight overrides from config files pass through here so a bad file
// degrades to baseline behaviour instead of breaking scoring.
func (w ScoringWeights) Sanitised() ScoringWeights {
	def := DefaultScoringWeights()
	if w.KeywordMatch <= 0 {
		w.KeywordMatch = def.KeywordMatch
	}
	if w.FuzzyFactor <= 0 {
		w.FuzzyFactor = def.FuzzyFactor
	}
	if w.ContentMatch <= 0 {
		w.ContentMatch = def.ContentMatch
	}
	if w.StaffNameMatch <= 0 {
		w.StaffNameMatch = def.StaffNameMatch
	}
	if w.StaffDepartmentMatch <= 0 {
		w.StaffDepartmentMatch = def.StaffDepartmentMatch
	}
	if w.StaffTitleMatch <= 0 {
		w.StaffTitleMatch = def.StaffTitleMatch
	}
	if w.FuzzyThreshold <= 0 || w.FuzzyThreshold > 1 {
		w.FuzzyThreshold = def.FuzzyThreshold
	}
	if w.MinTokenLength <= 0 {
		w.MinTokenLength = def.MinTokenLength
	}
	if w.MaxContextBytes < 0 {
		w.MaxContextBytes = 0
	}
	return w
}
