package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
	"github.com/talenta-labs/kampuskb/internal/core/ports/driven"
	"github.com/talenta-labs/kampuskb/internal/logger"
)

// Hard-coded identity for the minimal default corpus substituted when
// source data is missing or malformed.
var defaultFacultyInfo = map[domain.FacultyTag]domain.FacultyInfo{
	domain.FacultyFSKTM: {
		Name:       "Fakulti Sains Komputer dan Teknologi Maklumat",
		NameEN:     "Faculty of Computer Science and Information Technology",
		Acronym:    "FSKTM",
		University: "Universiti Tun Hussein Onn Malaysia",
	},
	domain.FacultyFKAAB: {
		Name:       "Fakulti Kejuruteraan Awam dan Alam Bina",
		NameEN:     "Faculty of Civil Engineering and Built Environment",
		Acronym:    "FKAAB",
		University: "Universiti Tun Hussein Onn Malaysia",
	},
	domain.FacultyFKEE: {
		Name:       "Fakulti Kejuruteraan Elektrik dan Elektronik",
		NameEN:     "Faculty of Electrical and Electronic Engineering",
		Acronym:    "FKEE",
		University: "Universiti Tun Hussein Onn Malaysia",
	},
}

// CorpusRepository memoises per-faculty corpora and their chunk sets.
// Corpora are immutable after load and cached for the process lifetime
// with no TTL. Concurrent first-time loads for the same faculty are
// collapsed into one parse by a single-flight group, so redundant work
// never happens even under real concurrency.
type CorpusRepository struct {
	source  driven.CorpusSource
	chunker *Chunker
	group   singleflight.Group

	mu      sync.RWMutex
	corpora map[domain.FacultyTag]*domain.Corpus
	chunks  map[domain.FacultyTag][]domain.DocumentChunk
}

// NewCorpusRepository creates a repository over the given source.
func NewCorpusRepository(source driven.CorpusSource) *CorpusRepository {
	return &CorpusRepository{
		source:  source,
		chunker: NewChunker(),
		corpora: make(map[domain.FacultyTag]*domain.Corpus),
		chunks:  make(map[domain.FacultyTag][]domain.DocumentChunk),
	}
}

// Corpus returns the faculty's corpus, loading and caching it on first
// call. A missing or malformed source degrades to a minimal well-formed
// default corpus; the retrieval pipeline always receives a valid, if
// sparse, corpus.
func (r *CorpusRepository) Corpus(ctx context.Context, faculty domain.FacultyTag) *domain.Corpus {
	r.mu.RLock()
	if corpus, ok := r.corpora[faculty]; ok {
		r.mu.RUnlock()
		return corpus
	}
	r.mu.RUnlock()

	v, _, _ := r.group.Do(string(faculty), func() (any, error) {
		// Re-check under the flight: a caller that missed the cache may
		// enter here after an earlier flight already stored the corpus.
		r.mu.RLock()
		if corpus, ok := r.corpora[faculty]; ok {
			r.mu.RUnlock()
			return corpus, nil
		}
		r.mu.RUnlock()

		corpus, err := r.source.Load(ctx, faculty)
		if err != nil {
			logger.Error("Corpus load for %s failed: %v (using default)", faculty, err)
			corpus = DefaultCorpus(faculty)
		}

		r.mu.Lock()
		r.corpora[faculty] = corpus
		r.mu.Unlock()

		logger.Info("Corpus loaded for %s: %d staff, %d departments",
			faculty, len(corpus.Staff), len(corpus.Departments))
		return corpus, nil
	})

	return v.(*domain.Corpus)
}

// Chunks returns the faculty's chunk set, building and caching it on
// first call. Repeated calls return chunk sets with identical ids and
// content until the cache is explicitly cleared.
func (r *CorpusRepository) Chunks(ctx context.Context, faculty domain.FacultyTag) []domain.DocumentChunk {
	r.mu.RLock()
	if chunks, ok := r.chunks[faculty]; ok {
		r.mu.RUnlock()
		return chunks
	}
	r.mu.RUnlock()

	corpus := r.Corpus(ctx, faculty)

	key := fmt.Sprintf("chunks:%s", faculty)
	v, _, _ := r.group.Do(key, func() (any, error) {
		r.mu.RLock()
		if chunks, ok := r.chunks[faculty]; ok {
			r.mu.RUnlock()
			return chunks, nil
		}
		r.mu.RUnlock()

		chunks := r.chunker.Build(corpus)

		r.mu.Lock()
		r.chunks[faculty] = chunks
		r.mu.Unlock()

		logger.Debug("Built %d chunks for %s", len(chunks), faculty)
		return chunks, nil
	})

	return v.([]domain.DocumentChunk)
}

// ClearCache drops all cached corpora and chunk sets. The next access
// re-loads and re-builds. Exists for tests and tooling; the running
// engine never invalidates.
func (r *CorpusRepository) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.corpora = make(map[domain.FacultyTag]*domain.Corpus)
	r.chunks = make(map[domain.FacultyTag][]domain.DocumentChunk)
}

// DefaultCorpus builds the minimal well-formed corpus for a faculty:
// hard-coded identity, zero staff, empty lists.
func DefaultCorpus(faculty domain.FacultyTag) *domain.Corpus {
	info, ok := defaultFacultyInfo[faculty]
	if !ok {
		info = domain.FacultyInfo{
			Name:       "Fakulti",
			University: "Universiti Tun Hussein Onn Malaysia",
		}
	}
	return &domain.Corpus{
		Faculty:     faculty,
		Info:        info,
		Departments: []domain.Department{},
		Staff:       []domain.StaffMember{},
		Knowledge: domain.KnowledgeBase{
			QuickAnswers: map[string]string{},
		},
	}
}
