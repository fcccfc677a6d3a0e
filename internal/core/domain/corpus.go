package domain

// Corpus is the static knowledge base of one faculty, parsed eagerly from
// bundled source data. It is immutable after load and cached for the
// process lifetime.
type Corpus struct {
	// Faculty identifies which faculty this corpus describes.
	Faculty FacultyTag

	// Info holds the faculty's basic identity record.
	Info FacultyInfo

	// Departments lists the faculty's departments.
	Departments []Department

	// Staff is the faculty's staff directory. Identity is positional;
	// there is no stable cross-session staff id.
	Staff []StaffMember

	// Knowledge holds the structured knowledge base.
	Knowledge KnowledgeBase
}

// FacultyInfo is a faculty's basic identity record.
type FacultyInfo struct {
	Name       string `json:"name"`
	NameEN     string `json:"name_en"`
	Acronym    string `json:"acronym"`
	University string `json:"university"`
	TotalStaff int    `json:"total_staff"`
}

// Department is a single department within a faculty.
type Department struct {
	Name   string `json:"name"`
	NameEN string `json:"name_en"`
}

// StaffMember is one entry in the staff directory.
type StaffMember struct {
	Name           string `json:"name"`
	Title          string `json:"title"`
	Department     string `json:"department"`
	Email          string `json:"email"`
	Specialization string `json:"specialization,omitempty"`
}

// KnowledgeBase is the structured, typed knowledge block of a faculty.
// Fields are parsed eagerly at load time so schema drift surfaces at load
// rather than at first access.
type KnowledgeBase struct {
	QuickAnswers      map[string]string  `json:"quick_answers"`
	Identity          FacultyIdentity    `json:"faculty_identity"`
	AcademicPrograms  AcademicPrograms   `json:"academic_programs"`
	ResearchExpertise ResearchExpertise  `json:"research_expertise"`
	Contact           ContactInformation `json:"contact_information"`
}

// FacultyIdentity carries the official naming, vision and mission text.
type FacultyIdentity struct {
	OfficialName OfficialName `json:"official_name"`
	University   string       `json:"university"`
	Vision       string       `json:"vision"`
	Mission      string       `json:"mission"`
}

// OfficialName is the bilingual official faculty name.
type OfficialName struct {
	Malay   string `json:"malay"`
	English string `json:"english"`
	Acronym string `json:"acronym"`
}

// AcademicPrograms splits the programme lists by level.
type AcademicPrograms struct {
	Undergraduate ProgramGroup `json:"undergraduate"`
	Postgraduate  ProgramGroup `json:"postgraduate"`
}

// ProgramGroup is one level's programme list.
type ProgramGroup struct {
	Programs []Program `json:"programs"`
}

// Program is a single academic programme. Source data uses either
// "name" or "title" for the programme name; Title covers both at parse.
type Program struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	MQACode string `json:"mqa_code,omitempty"`
}

// DisplayName returns the programme name regardless of which source
// field carried it.
func (p Program) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Title
}

// ResearchExpertise groups research centres and focus groups.
type ResearchExpertise struct {
	ResearchCenters ResearchCenters `json:"research_centers"`
	FocusGroups     FocusGroups     `json:"focus_groups"`
}

// ResearchCenters is the list of research centres.
type ResearchCenters struct {
	Centers []NamedUnit `json:"centers"`
}

// FocusGroups is the list of research focus groups.
type FocusGroups struct {
	Groups []NamedUnit `json:"groups"`
}

// NamedUnit is a named organisational unit with an acronym.
type NamedUnit struct {
	Name    string `json:"name"`
	Acronym string `json:"acronym"`
}

// ContactInformation holds the faculty's contact block.
type ContactInformation struct {
	MainOffice MainOffice `json:"main_office"`
}

// MainOffice is the faculty's main office contact details.
type MainOffice struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// HasIdentity returns true if the corpus carries identity text worth
// rendering (official name or vision present).
func (c *Corpus) HasIdentity() bool {
	id := c.Knowledge.Identity
	return id.OfficialName.Malay != "" || id.OfficialName.English != "" || id.Vision != ""
}

// HasContact returns true if any main-office contact field is present.
func (c *Corpus) HasContact() bool {
	o := c.Knowledge.Contact.MainOffice
	return o.Address != "" || o.Phone != "" || o.Email != "" || o.Website != ""
}
