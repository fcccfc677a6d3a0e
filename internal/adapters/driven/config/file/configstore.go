// Package file provides a TOML-backed configuration store for the
// retrieval engine: scoring weight overrides and the default faculty.
package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
	"github.com/talenta-labs/kampuskb/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// fileConfig is the TOML shape of the config file. Zero-valued weight
// fields fall back to the engine defaults at read time.
type fileConfig struct {
	DefaultFaculty string       `toml:"default_faculty,omitempty"`
	Weights        weightsTable `toml:"weights,omitempty"`
}

type weightsTable struct {
	KeywordMatch         float64 `toml:"keyword_match,omitempty"`
	FuzzyFactor          float64 `toml:"fuzzy_factor,omitempty"`
	ContentMatch         float64 `toml:"content_match,omitempty"`
	StaffNameMatch       float64 `toml:"staff_name_match,omitempty"`
	StaffDepartmentMatch float64 `toml:"staff_department_match,omitempty"`
	StaffTitleMatch      float64 `toml:"staff_title_match,omitempty"`
	FuzzyThreshold       float64 `toml:"fuzzy_threshold,omitempty"`
	MinTokenLength       int     `toml:"min_token_length,omitempty"`
	MaxContextBytes      int     `toml:"max_context_bytes,omitempty"`
}

// ConfigStore is a file-based implementation of driven.ConfigStore
// using TOML. Configuration lives in a single file within the kampuskb
// config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     fileConfig
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.kampuskb/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".kampuskb")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Weights returns the configured scoring weights, sanitised so any
// missing or out-of-range override degrades to the default value.
func (s *ConfigStore) Weights() domain.ScoringWeights {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w := s.data.Weights
	return domain.ScoringWeights{
		KeywordMatch:         w.KeywordMatch,
		FuzzyFactor:          w.FuzzyFactor,
		ContentMatch:         w.ContentMatch,
		StaffNameMatch:       w.StaffNameMatch,
		StaffDepartmentMatch: w.StaffDepartmentMatch,
		StaffTitleMatch:      w.StaffTitleMatch,
		FuzzyThreshold:       w.FuzzyThreshold,
		MinTokenLength:       w.MinTokenLength,
		MaxContextBytes:      w.MaxContextBytes,
	}.Sanitised()
}

// SetWeights persists new scoring weights.
func (s *ConfigStore) SetWeights(w domain.ScoringWeights) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Weights = weightsTable{
		KeywordMatch:         w.KeywordMatch,
		FuzzyFactor:          w.FuzzyFactor,
		ContentMatch:         w.ContentMatch,
		StaffNameMatch:       w.StaffNameMatch,
		StaffDepartmentMatch: w.StaffDepartmentMatch,
		StaffTitleMatch:      w.StaffTitleMatch,
		FuzzyThreshold:       w.FuzzyThreshold,
		MinTokenLength:       w.MinTokenLength,
		MaxContextBytes:      w.MaxContextBytes,
	}
	return s.save()
}

// DefaultFaculty returns the configured default faculty tag, or empty
// string when unset.
func (s *ConfigStore) DefaultFaculty() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.DefaultFaculty
}

// SetDefaultFaculty persists the default faculty tag.
func (s *ConfigStore) SetDefaultFaculty(tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.DefaultFaculty = tag
	return s.save()
}

// FilePath returns the path of the backing TOML file.
func (s *ConfigStore) FilePath() string {
	return s.filePath
}

// load reads the TOML file into memory. Caller must not hold the lock.
func (s *ConfigStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = cfg
	s.mu.Unlock()
	return nil
}

// save writes the in-memory config to disk. Caller must hold the lock.
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}
