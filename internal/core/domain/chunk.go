package domain

// ChunkCategory identifies what kind of corpus material a chunk carries.
type ChunkCategory string

// Chunk categories, in deterministic construction order.
const (
	// ChunkFacultyIdentity covers official names, vision and mission.
	ChunkFacultyIdentity ChunkCategory = "faculty_identity"

	// ChunkContactInfo covers phone, email, address and website.
	ChunkContactInfo ChunkCategory = "contact_info"

	// ChunkStatistics covers student/academic/programme counts.
	ChunkStatistics ChunkCategory = "statistics"

	// ChunkDepartments lists all departments.
	ChunkDepartments ChunkCategory = "departments"

	// ChunkStaff covers a single staff member.
	ChunkStaff ChunkCategory = "staff"

	// ChunkPrograms summarises undergraduate and postgraduate programmes.
	ChunkPrograms ChunkCategory = "programs"
)

// IsValid returns true if the category is recognised.
func (c ChunkCategory) IsValid() bool {
	switch c {
	case ChunkFacultyIdentity, ChunkContactInfo, ChunkStatistics,
		ChunkDepartments, ChunkStaff, ChunkPrograms:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c ChunkCategory) String() string {
	return string(c)
}

// DocumentChunk is an atomic, independently scorable unit of retrievable
// text derived from a faculty corpus. Chunk ids are deterministic (derived
// from category and index) and unique within a faculty's chunk set.
type DocumentChunk struct {
	// ID is the deterministic chunk identifier, e.g. "identity" or "staff_3".
	ID string

	// Category identifies the kind of material this chunk carries.
	Category ChunkCategory

	// Keywords seed relevance scoring. All entries are lower-cased.
	Keywords []string

	// Content is a short formatted text block, not the raw corpus record.
	Content string
}

// ScoredChunk pairs a chunk with its relevance score. Ordering is by
// score descending with ties broken by original construction order
// (stable sort).
type ScoredChunk struct {
	Chunk DocumentChunk
	Score float64
}

// ScoredStaff pairs a staff directory entry with its relevance score.
type ScoredStaff struct {
	Member StaffMember
	Score  float64
}
