package driving

import (
	"context"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
)

// RetrievalService selects, ranks and assembles faculty knowledge for the
// AI chat assistant. All operations are total over their inputs: empty or
// nonsensical queries degrade to sparse results, never errors.
type RetrievalService interface {
	// DetectFaculty classifies a query as belonging to exactly one
	// faculty, multiple (unclear), generic-staff (unclear), or general.
	DetectFaculty(query string) domain.FacultyTag

	// ContextForAI assembles the bounded context string handed to the
	// downstream language model for the given faculty and query.
	ContextForAI(ctx context.Context, faculty domain.FacultyTag, query string) string

	// RelevantChunks returns the top-ranked document chunks for the
	// query, at most maxChunks (<=0 selects the default of 5).
	RelevantChunks(ctx context.Context, faculty domain.FacultyTag, query string, maxChunks int) []domain.DocumentChunk

	// FacultyChunks returns a faculty's complete chunk set in
	// construction order, without ranking.
	FacultyChunks(ctx context.Context, faculty domain.FacultyTag) []domain.DocumentChunk

	// ExpandQuery augments the query with domain synonyms. The result
	// always contains every token of the input.
	ExpandQuery(query string) string

	// IsFacultyQuery is the coarse relevance gate the caller applies
	// before invoking retrieval at all.
	IsFacultyQuery(query string) bool
}
