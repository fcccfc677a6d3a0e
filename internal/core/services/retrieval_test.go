package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
)

func newTestService() *RetrievalService {
	return NewRetrievalService(&mockCorpusSource{})
}

func TestNewRetrievalService(t *testing.T) {
	service := newTestService()

	require.NotNil(t, service)
	assert.Equal(t, domain.FacultyFSKTM, service.fallback)
}

func TestRetrievalService_DetectFaculty(t *testing.T) {
	service := newTestService()

	assert.Equal(t, domain.FacultyFSKTM, service.DetectFaculty("program sains komputer"))
	assert.Equal(t, domain.FacultyUnclear, service.DetectFaculty("siapa pensyarah"))
	assert.Equal(t, domain.FacultyGeneral, service.DetectFaculty("apa itu uthm"))
}

func TestRetrievalService_ExpandQuery(t *testing.T) {
	service := newTestService()

	expanded := service.ExpandQuery("siapa pensyarah")

	assert.Contains(t, expanded, "lecturer")
	assert.Contains(t, expanded, "who")
}

func TestRetrievalService_IsFacultyQuery(t *testing.T) {
	service := newTestService()

	assert.True(t, service.IsFacultyQuery("program fakulti"))
	assert.False(t, service.IsFacultyQuery("cuaca hari ini"))
}

func TestRetrievalService_RelevantChunks(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	chunks := service.RelevantChunks(ctx, domain.FacultyFSKTM, "siapa ahmad fikri", 3)

	require.NotEmpty(t, chunks)
	assert.LessOrEqual(t, len(chunks), 3)
	assert.Equal(t, "staff_0", chunks[0].ID)
}

func TestRetrievalService_RelevantChunks_EmptyQuery(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	assert.Nil(t, service.RelevantChunks(ctx, domain.FacultyFSKTM, "", 5))
	assert.Nil(t, service.RelevantChunks(ctx, domain.FacultyFSKTM, "   ", 5))
}

func TestRetrievalService_RelevantChunks_CrossLanguage(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	// English query against the Malay-keyed corpus: expansion bridges
	// the language gap.
	chunks := service.RelevantChunks(ctx, domain.FacultyFSKTM, "software engineering department", 5)

	require.NotEmpty(t, chunks)
	ids := make([]string, 0, len(chunks))
	for _, c := range chunks {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, "departments")
}

func TestRetrievalService_RelevantChunks_ResolvesUnclearFaculty(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	// Caller passes unclear; the query names computer science, so the
	// corpus is resolved from the query.
	chunks := service.RelevantChunks(ctx, domain.FacultyUnclear, "pensyarah sains komputer", 5)

	assert.NotEmpty(t, chunks)
}

func TestRetrievalService_ContextForAI(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	out := service.ContextForAI(ctx, domain.FacultyFSKTM, "siapa pensyarah perisian")

	assert.Contains(t, out, "JABATAN:")
	assert.Contains(t, out, "Ahmad Fikri bin Zulkifli")
}

func TestRetrievalService_ContextForAI_PostgraduateGateReadsRawQuery(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	// Expansion rewrites "sarjana" into "master pascasiswazah", but the
	// undergraduate phrase "sarjana muda" in the user's own words must
	// still suppress the postgraduate section.
	out := service.ContextForAI(ctx, domain.FacultyFSKTM, "senaraikan program sarjana muda")

	assert.Contains(t, out, "PROGRAM SARJANA MUDA:")
	assert.NotContains(t, out, "PASCASISWAZAH")
}

func TestRetrievalService_ContextForAI_PostgraduateQuery(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	out := service.ContextForAI(ctx, domain.FacultyFSKTM, "program master apa yang ada")

	assert.Contains(t, out, "PROGRAM PASCASISWAZAH:")
	assert.Contains(t, out, "Sarjana Sains Komputer")
}

func TestRetrievalService_ContextForAI_SourceFailure(t *testing.T) {
	service := NewRetrievalService(&mockCorpusSource{loadErr: errors.New("corrupt asset")})
	ctx := context.Background()

	// Retrieval never errors: a failed load degrades to the minimal
	// default corpus.
	out := service.ContextForAI(ctx, domain.FacultyFSKTM, "siapa pensyarah")

	assert.NotEmpty(t, out)
	assert.Contains(t, out, "JABATAN:")
}

func TestRetrievalService_WithWeights(t *testing.T) {
	w := domain.DefaultScoringWeights()
	w.MaxContextBytes = 50
	service := NewRetrievalService(&mockCorpusSource{}, WithWeights(w))
	ctx := context.Background()

	out := service.ContextForAI(ctx, domain.FacultyFSKTM, "senarai staf")

	assert.LessOrEqual(t, len(out), 50)
}

func TestRetrievalService_WithFallbackFaculty(t *testing.T) {
	service := NewRetrievalService(&mockCorpusSource{}, WithFallbackFaculty(domain.FacultyFKEE))

	assert.Equal(t, domain.FacultyFKEE, service.fallback)
}

func TestRetrievalService_WithFallbackFaculty_RejectsNonConcrete(t *testing.T) {
	service := NewRetrievalService(&mockCorpusSource{}, WithFallbackFaculty(domain.FacultyUnclear))

	assert.Equal(t, domain.FacultyFSKTM, service.fallback)
}

func TestRetrievalService_ResolveFaculty(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name    string
		faculty domain.FacultyTag
		query   string
		want    domain.FacultyTag
	}{
		{"concrete passes through", domain.FacultyFKEE, "program sains komputer", domain.FacultyFKEE},
		{"unclear resolved from query", domain.FacultyUnclear, "kejuruteraan awam", domain.FacultyFKAAB},
		{"general resolved from query", domain.FacultyGeneral, "pensyarah elektronik", domain.FacultyFKEE},
		{"nothing resolves falls back", domain.FacultyUnclear, "siapa pensyarah", domain.FacultyFSKTM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.resolveFaculty(tt.faculty, tt.query))
		})
	}
}

func TestRetrievalService_ClearCache(t *testing.T) {
	source := &mockCorpusSource{}
	service := NewRetrievalService(source)
	ctx := context.Background()

	service.RelevantChunks(ctx, domain.FacultyFSKTM, "pensyarah perisian", 5)
	service.ClearCache()
	service.RelevantChunks(ctx, domain.FacultyFSKTM, "pensyarah perisian", 5)

	assert.Equal(t, int32(2), source.calls.Load())
}
