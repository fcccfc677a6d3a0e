package services

import (
	"strings"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
)

// Faculty keyword sets cover official names, acronyms and domain
// vocabulary in Malay and English. Multi-word engineering phrases are
// kept whole ("kejuruteraan awam", "kejuruteraan elektrik") so the
// shared word "kejuruteraan" never cross-matches faculties.
var facultyKeywords = map[domain.FacultyTag][]string{
	domain.FacultyFSKTM: {
		"fsktm", "sains komputer", "computer science",
		"teknologi maklumat", "information technology",
		"perisian", "software", "multimedia",
		"keselamatan maklumat", "cyber", "siber",
		"sains data", "data science",
		"kecerdasan buatan", "artificial intelligence",
		"pengaturcaraan", "programming",
		"rangkaian komputer", "computer network",
		"pangkalan data", "database",
	},
	domain.FacultyFKAAB: {
		"fkaab", "kejuruteraan awam", "civil engineering",
		"alam bina", "built environment",
		"struktur", "structural", "geoteknik", "geotechnic",
		"pembinaan", "construction",
		"infrastruktur", "infrastructure",
		"bangunan", "building",
		"sumber air", "water resource",
		"jalan raya", "highway",
		"ukur bahan", "quantity survey",
		"seni bina", "architecture",
	},
	domain.FacultyFKEE: {
		"fkee", "kejuruteraan elektrik", "electrical engineering",
		"elektronik", "electronic",
		"kuasa elektrik", "electric power",
		"telekomunikasi", "telecommunication",
		"mekatronik", "mechatronic", "robotik", "robotic",
		"sistem kawalan", "control system",
		"mikroelektronik", "microelectronic",
		"semikonduktor", "semiconductor", "litar", "circuit",
	},
}

// Generic staff vocabulary. A query that mentions these without naming
// a faculty needs clarification, not a guess.
var genericStaffKeywords = []string{
	"pensyarah", "lecturer", "profesor", "professor", "prof",
	"dr.", "dr ", "siapa", "who",
	"staf", "staff", "kakitangan",
	"hubungi", "contact", "emel", "email", "telefon", "phone",
}

// Base campus vocabulary for the coarse relevance gate.
var campusKeywords = []string{
	"uthm", "universiti", "university", "fakulti", "faculty",
	"program", "kursus", "course", "jabatan", "department",
	"penyelidikan", "research",
}

// Disambiguator classifies which faculty (or none, or several) a query
// concerns, scoping retrieval before any scoring runs.
type Disambiguator struct{}

// NewDisambiguator creates a faculty disambiguator.
func NewDisambiguator() *Disambiguator {
	return &Disambiguator{}
}

// Detect classifies the query.
//
// Exactly one faculty keyword set matching wins. Two or more matches
// mean a cross-faculty query (unclear). Zero matches fall through to the
// generic staff vocabulary: if that matches, the query needs faculty
// context (unclear); otherwise it is faculty-agnostic (general).
func (d *Disambiguator) Detect(query string) domain.FacultyTag {
	q := strings.ToLower(query)

	var matched []domain.FacultyTag
	for _, tag := range domain.ConcreteFaculties() {
		if containsAny(q, facultyKeywords[tag]) {
			matched = append(matched, tag)
		}
	}

	switch len(matched) {
	case 1:
		return matched[0]
	case 0:
		if containsAny(q, genericStaffKeywords) {
			return domain.FacultyUnclear
		}
		return domain.FacultyGeneral
	default:
		return domain.FacultyUnclear
	}
}

// IsCampusQuery is the coarse gate applied before invoking retrieval:
// does the query concern the university domain at all?
func (d *Disambiguator) IsCampusQuery(query string) bool {
	q := strings.ToLower(query)
	if containsAny(q, campusKeywords) || containsAny(q, genericStaffKeywords) {
		return true
	}
	for _, keywords := range facultyKeywords {
		if containsAny(q, keywords) {
			return true
		}
	}
	return false
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
