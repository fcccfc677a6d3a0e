package services

import (
	"sort"
	"strings"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
	"github.com/talenta-labs/kampuskb/internal/logger"
)

// Department keyword pairs: a query domain term and the department-name
// substring it canonically belongs to. Both directions of each bilingual
// pair are listed so mixed-language queries still pair up.
var departmentTerms = map[string]string{
	"perisian":               "perisian",
	"software":               "perisian",
	"multimedia":             "multimedia",
	"keselamatan":            "keselamatan",
	"security":               "keselamatan",
	"rangkaian":              "rangkaian",
	"network":                "rangkaian",
	"teknologi maklumat":     "teknologi maklumat",
	"information technology": "teknologi maklumat",
	"struktur":               "struktur",
	"structural":             "struktur",
	"geoteknik":              "geoteknik",
	"geotechnic":             "geoteknik",
	"awam":                   "awam",
	"civil":                  "awam",
	"elektronik":             "elektronik",
	"electronic":             "elektronik",
	"kuasa":                  "kuasa",
	"power":                  "kuasa",
	"telekomunikasi":         "telekomunikasi",
	"telecommunication":      "telekomunikasi",
}

// Title keyword groups: a query mentioning any term in a group matches a
// member whose title contains any term in the same group.
var titleGroups = [][]string{
	{"profesor", "professor", "prof"},
	{"dekan", "dean"},
	{"ketua", "head"},
}

// Scorer ranks chunks and staff records against an expanded query.
// Scoring is additive, heuristic and unnormalised.
type Scorer struct {
	weights domain.ScoringWeights
}

// NewScorer creates a scorer with the given weights.
func NewScorer(weights domain.ScoringWeights) *Scorer {
	return &Scorer{weights: weights.Sanitised()}
}

// ScoreChunk computes the relevance of one chunk against the expanded
// query: KeywordMatch per keyword present as a substring of the query,
// FuzzyFactor x similarity per near-miss keyword/token pair at or above
// the threshold, and ContentMatch per query token found in the content.
func (s *Scorer) ScoreChunk(chunk domain.DocumentChunk, expandedQuery string) float64 {
	q := strings.ToLower(expandedQuery)
	tokens := queryTokens(q, s.weights.MinTokenLength)

	var score float64

	for _, kw := range chunk.Keywords {
		if strings.Contains(q, kw) {
			score += s.weights.KeywordMatch
		}
	}

	for _, token := range tokens {
		for _, kw := range chunk.Keywords {
			if sim := Similarity(token, kw); sim >= s.weights.FuzzyThreshold {
				score += s.weights.FuzzyFactor * sim
			}
		}
	}

	content := strings.ToLower(chunk.Content)
	for _, token := range tokens {
		if strings.Contains(content, token) {
			score += s.weights.ContentMatch
		}
	}

	return score
}

// RankChunks scores every chunk, discards zero scores, sorts descending
// (stable, so construction order breaks ties) and bounds the result to
// maxChunks.
func (s *Scorer) RankChunks(chunks []domain.DocumentChunk, expandedQuery string, maxChunks int) []domain.ScoredChunk {
	if maxChunks <= 0 {
		maxChunks = domain.DefaultMaxChunks
	}

	scored := make([]domain.ScoredChunk, 0, len(chunks))
	for _, chunk := range chunks {
		score := s.ScoreChunk(chunk, expandedQuery)
		if score <= 0 {
			continue
		}
		scored = append(scored, domain.ScoredChunk{Chunk: chunk, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxChunks {
		scored = scored[:maxChunks]
	}

	logger.Debug("Ranked %d chunks (of %d) for query %q", len(scored), len(chunks), expandedQuery)
	return scored
}

// ScoreStaff computes the relevance of one staff record: StaffNameMatch
// per name part found in the query (fuzzy similarity per token otherwise),
// StaffDepartmentMatch when a query domain term pairs with the member's
// department, StaffTitleMatch when a title keyword matches.
func (s *Scorer) ScoreStaff(member domain.StaffMember, expandedQuery string) float64 {
	q := strings.ToLower(expandedQuery)
	tokens := queryTokens(q, s.weights.MinTokenLength)

	var score float64

	for _, part := range nameTokens(member.Name) {
		if strings.Contains(q, part) {
			score += s.weights.StaffNameMatch
			continue
		}
		for _, token := range tokens {
			if sim := Similarity(token, part); sim >= s.weights.FuzzyThreshold {
				score += sim
			}
		}
	}

	dept := strings.ToLower(member.Department)
	for term, deptSub := range departmentTerms {
		if strings.Contains(q, term) && strings.Contains(dept, deptSub) {
			score += s.weights.StaffDepartmentMatch
			break
		}
	}

	title := strings.ToLower(member.Title)
	for _, group := range titleGroups {
		if containsAny(q, group) && containsAny(title, group) {
			score += s.weights.StaffTitleMatch
			break
		}
	}

	return score
}

// RankStaff scores the whole directory, keeps records scoring above zero,
// sorts descending (stable, so directory order breaks ties) and retains
// the top entries for detailed listing.
func (s *Scorer) RankStaff(staff []domain.StaffMember, expandedQuery string) []domain.ScoredStaff {
	scored := make([]domain.ScoredStaff, 0, len(staff))
	for _, member := range staff {
		score := s.ScoreStaff(member, expandedQuery)
		if score <= 0 {
			continue
		}
		scored = append(scored, domain.ScoredStaff{Member: member, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > domain.MaxStaffResults {
		scored = scored[:domain.MaxStaffResults]
	}

	logger.Debug("Ranked %d staff records for query %q", len(scored), expandedQuery)
	return scored
}

// queryTokens splits a lower-cased query into whitespace tokens of at
// least minLen runes. Short tokens still contribute through the plain
// substring checks.
func queryTokens(q string, minLen int) []string {
	var tokens []string
	for _, t := range strings.Fields(q) {
		if utf8Len(t) >= minLen {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
