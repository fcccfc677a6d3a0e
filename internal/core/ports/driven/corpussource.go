package driven

import (
	"context"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
)

// CorpusSource reads a faculty's corpus from bundled static data.
// Implementations parse eagerly into the typed domain model so schema
// drift surfaces at load time.
type CorpusSource interface {
	// Load reads and parses the corpus for the given faculty.
	// Returns domain.ErrUnknownFaculty for tags without a corpus and
	// domain.ErrCorpusUnavailable (wrapped) for missing or malformed
	// source data.
	Load(ctx context.Context, faculty domain.FacultyTag) (*domain.Corpus, error)
}
