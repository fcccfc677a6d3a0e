package domain

// FacultyTag classifies which faculty a query concerns.
type FacultyTag string

// Faculty classification outcomes.
const (
	// FacultyFSKTM is the Faculty of Computer Science and Information Technology.
	FacultyFSKTM FacultyTag = "fsktm"

	// FacultyFKAAB is the Faculty of Civil Engineering and Built Environment.
	FacultyFKAAB FacultyTag = "fkaab"

	// FacultyFKEE is the Faculty of Electrical and Electronic Engineering.
	FacultyFKEE FacultyTag = "fkee"

	// FacultyUnclear means the query matched multiple faculties, or used
	// generic staff vocabulary without naming a faculty. The caller should
	// ask the user to pick a faculty rather than guess.
	FacultyUnclear FacultyTag = "unclear"

	// FacultyGeneral means the query is faculty-agnostic (e.g. "what is UTHM").
	FacultyGeneral FacultyTag = "general"
)

// IsValid returns true if the tag is recognised.
func (t FacultyTag) IsValid() bool {
	switch t {
	case FacultyFSKTM, FacultyFKAAB, FacultyFKEE, FacultyUnclear, FacultyGeneral:
		return true
	default:
		return false
	}
}

// IsConcrete returns true if the tag names an actual faculty with a corpus,
// as opposed to the unclear/general classification outcomes.
func (t FacultyTag) IsConcrete() bool {
	switch t {
	case FacultyFSKTM, FacultyFKAAB, FacultyFKEE:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t FacultyTag) String() string {
	return string(t)
}

// Description returns a human-readable description of the tag.
func (t FacultyTag) Description() string {
	switch t {
	case FacultyFSKTM:
		return "Fakulti Sains Komputer dan Teknologi Maklumat (FSKTM)"
	case FacultyFKAAB:
		return "Fakulti Kejuruteraan Awam dan Alam Bina (FKAAB)"
	case FacultyFKEE:
		return "Fakulti Kejuruteraan Elektrik dan Elektronik (FKEE)"
	case FacultyUnclear:
		return "Ambiguous (needs faculty clarification)"
	case FacultyGeneral:
		return "General (faculty-agnostic)"
	default:
		return "Unknown"
	}
}

// ConcreteFaculties lists every faculty with a loadable corpus,
// in stable order.
func ConcreteFaculties() []FacultyTag {
	return []FacultyTag{FacultyFSKTM, FacultyFKAAB, FacultyFKEE}
}
