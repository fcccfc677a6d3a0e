package services

import (
	"context"
	"strings"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
	"github.com/talenta-labs/kampuskb/internal/core/ports/driven"
	"github.com/talenta-labs/kampuskb/internal/core/ports/driving"
	"github.com/talenta-labs/kampuskb/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// RetrievalService orchestrates the retrieval pipeline: query expansion,
// faculty disambiguation, chunk and staff scoring, context assembly.
// Every operation is total over its inputs; queries that match nothing
// degrade to sparse output, never errors.
type RetrievalService struct {
	repo          *CorpusRepository
	expander      *Expander
	disambiguator *Disambiguator
	scorer        *Scorer
	assembler     *Assembler

	// fallback is used when a caller passes a non-concrete faculty tag
	// and the query itself does not resolve one.
	fallback domain.FacultyTag
}

// Option configures the retrieval service.
type Option func(*RetrievalService)

// WithWeights overrides the default scoring weights.
func WithWeights(w domain.ScoringWeights) Option {
	return func(s *RetrievalService) {
		s.scorer = NewScorer(w)
		s.assembler = NewAssembler(w.Sanitised().MaxContextBytes)
	}
}

// WithFallbackFaculty sets the faculty used when neither the caller nor
// the query pins one down. Defaults to FSKTM.
func WithFallbackFaculty(tag domain.FacultyTag) Option {
	return func(s *RetrievalService) {
		if tag.IsConcrete() {
			s.fallback = tag
		}
	}
}

// NewRetrievalService creates the retrieval service over the given
// corpus source.
func NewRetrievalService(source driven.CorpusSource, opts ...Option) *RetrievalService {
	s := &RetrievalService{
		repo:          NewCorpusRepository(source),
		expander:      NewExpander(),
		disambiguator: NewDisambiguator(),
		scorer:        NewScorer(domain.DefaultScoringWeights()),
		assembler:     NewAssembler(0),
		fallback:      domain.FacultyFSKTM,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DetectFaculty classifies a query by faculty.
func (s *RetrievalService) DetectFaculty(query string) domain.FacultyTag {
	return s.disambiguator.Detect(query)
}

// ExpandQuery augments the query with domain synonyms.
func (s *RetrievalService) ExpandQuery(query string) string {
	return s.expander.Expand(query)
}

// IsFacultyQuery is the coarse relevance gate applied before retrieval.
func (s *RetrievalService) IsFacultyQuery(query string) bool {
	return s.disambiguator.IsCampusQuery(query)
}

// RelevantChunks returns the top-ranked chunks for a query, at most
// maxChunks (<=0 selects the default).
func (s *RetrievalService) RelevantChunks(
	ctx context.Context, faculty domain.FacultyTag, query string, maxChunks int,
) []domain.DocumentChunk {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	faculty = s.resolveFaculty(faculty, query)
	expanded := s.expander.Expand(query)
	chunks := s.repo.Chunks(ctx, faculty)

	ranked := s.scorer.RankChunks(chunks, expanded, maxChunks)
	out := make([]domain.DocumentChunk, len(ranked))
	for i, sc := range ranked {
		out[i] = sc.Chunk
	}
	return out
}

// FacultyChunks returns a faculty's complete chunk set in construction
// order. Non-concrete tags resolve to the configured fallback.
func (s *RetrievalService) FacultyChunks(ctx context.Context, faculty domain.FacultyTag) []domain.DocumentChunk {
	if !faculty.IsConcrete() {
		faculty = s.fallback
	}
	return s.repo.Chunks(ctx, faculty)
}

// ContextForAI assembles the context string for the downstream language
// model. The departments section and a staff section are always present;
// everything else is conditional on the query's intent set.
func (s *RetrievalService) ContextForAI(
	ctx context.Context, faculty domain.FacultyTag, query string,
) string {
	logger.Section("Context Assembly")
	logger.Debug("Faculty: %s, Query: %q", faculty, query)

	faculty = s.resolveFaculty(faculty, query)
	corpus := s.repo.Corpus(ctx, faculty)
	chunks := s.repo.Chunks(ctx, faculty)

	expanded := s.expander.Expand(query)
	logger.Debug("Expanded query: %q", expanded)

	intents := s.assembler.DetectIntents(expanded)
	rankedChunks := s.scorer.RankChunks(chunks, expanded, domain.ContextMaxChunks)
	rankedStaff := s.scorer.RankStaff(corpus.Staff, expanded)

	// Scoring works on the expanded query, but section gating must read
	// the user's own words: injected synonyms would otherwise flip gates
	// like the postgraduate exclusion.
	context := s.assembler.BuildContext(corpus, rankedChunks, rankedStaff, query, intents)
	logger.Info("Assembled %d bytes of context for %s", len(context), faculty)
	return context
}

// ClearCache drops all cached corpora and chunk sets.
func (s *RetrievalService) ClearCache() {
	s.repo.ClearCache()
}

// resolveFaculty pins a non-concrete tag to an actual corpus: the query
// is re-classified first, then the configured fallback applies.
func (s *RetrievalService) resolveFaculty(faculty domain.FacultyTag, query string) domain.FacultyTag {
	if faculty.IsConcrete() {
		return faculty
	}
	if detected := s.disambiguator.Detect(query); detected.IsConcrete() {
		return detected
	}
	return s.fallback
}
