// Package embedded provides a corpus source backed by JSON assets
// compiled into the binary. The corpus is static by design: there are
// no runtime updates, so embedding removes a whole class of deployment
// and path-resolution failures.
package embedded

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
	"github.com/talenta-labs/kampuskb/internal/core/ports/driven"
)

//go:embed assets/*.json
var assets embed.FS

// Ensure Source implements the interface.
var _ driven.CorpusSource = (*Source)(nil)

// facultyFile is the on-disk JSON shape of one faculty's corpus.
type facultyFile struct {
	FacultyInfo domain.FacultyInfo   `json:"faculty_info"`
	Departments []domain.Department  `json:"departments"`
	Staff       []domain.StaffMember `json:"staff"`
	Knowledge   domain.KnowledgeBase `json:"knowledge_base"`
}

// Source reads faculty corpora from the embedded assets.
type Source struct{}

// NewSource creates an embedded corpus source.
func NewSource() *Source {
	return &Source{}
}

// Load parses the embedded JSON for the given faculty into the typed
// corpus model. Parsing is eager so schema drift surfaces here, at load,
// rather than at first access deep inside scoring.
func (s *Source) Load(_ context.Context, faculty domain.FacultyTag) (*domain.Corpus, error) {
	if !faculty.IsConcrete() {
		return nil, fmt.Errorf("load corpus for %q: %w", faculty, domain.ErrUnknownFaculty)
	}

	data, err := assets.ReadFile(fmt.Sprintf("assets/%s.json", faculty))
	if err != nil {
		return nil, fmt.Errorf("read corpus asset for %s: %w: %v", faculty, domain.ErrCorpusUnavailable, err)
	}

	var file facultyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse corpus asset for %s: %w: %v", faculty, domain.ErrCorpusUnavailable, err)
	}

	corpus := &domain.Corpus{
		Faculty:     faculty,
		Info:        file.FacultyInfo,
		Departments: file.Departments,
		Staff:       file.Staff,
		Knowledge:   file.Knowledge,
	}
	if corpus.Knowledge.QuickAnswers == nil {
		corpus.Knowledge.QuickAnswers = map[string]string{}
	}
	return corpus, nil
}
