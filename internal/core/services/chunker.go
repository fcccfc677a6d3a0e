package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
)

// Chunker derives the fixed set of atomic document chunks from a faculty
// corpus. Construction order is deterministic: identity, contact,
// statistics, departments, one chunk per staff member, programs. Chunk
// ids are derived from category and index and are unique within a
// faculty's chunk set.
type Chunker struct{}

// NewChunker creates a chunker.
func NewChunker() *Chunker {
	return &Chunker{}
}

// Build constructs the corpus's chunk set. The result is deterministic
// for an unchanged corpus; memoisation lives in the corpus repository.
func (c *Chunker) Build(corpus *domain.Corpus) []domain.DocumentChunk {
	var chunks []domain.DocumentChunk

	if corpus.HasIdentity() {
		chunks = append(chunks, c.identityChunk(corpus))
	}
	if corpus.HasContact() {
		chunks = append(chunks, c.contactChunk(corpus))
	}
	if len(corpus.Knowledge.QuickAnswers) > 0 {
		chunks = append(chunks, c.statisticsChunk(corpus))
	}
	if len(corpus.Departments) > 0 {
		chunks = append(chunks, c.departmentsChunk(corpus))
	}
	for i := range corpus.Staff {
		chunks = append(chunks, c.staffChunk(i, corpus.Staff[i]))
	}
	if len(corpus.Knowledge.AcademicPrograms.Undergraduate.Programs) > 0 ||
		len(corpus.Knowledge.AcademicPrograms.Postgraduate.Programs) > 0 {
		chunks = append(chunks, c.programsChunk(corpus))
	}

	return chunks
}

func (c *Chunker) identityChunk(corpus *domain.Corpus) domain.DocumentChunk {
	id := corpus.Knowledge.Identity

	keywords := []string{"fakulti", "faculty", "visi", "vision", "misi", "mission", "apa itu", "what is"}
	keywords = append(keywords, nameTokens(id.OfficialName.Malay)...)
	keywords = append(keywords, nameTokens(id.OfficialName.English)...)
	if id.OfficialName.Acronym != "" {
		keywords = append(keywords, strings.ToLower(id.OfficialName.Acronym))
	}

	var b strings.Builder
	if id.OfficialName.Malay != "" {
		fmt.Fprintf(&b, "%s", id.OfficialName.Malay)
		if id.OfficialName.Acronym != "" {
			fmt.Fprintf(&b, " (%s)", id.OfficialName.Acronym)
		}
		b.WriteString("\n")
	}
	if id.OfficialName.English != "" {
		fmt.Fprintf(&b, "Nama Inggeris: %s\n", id.OfficialName.English)
	}
	if id.University != "" {
		fmt.Fprintf(&b, "Universiti: %s\n", id.University)
	}
	if id.Vision != "" {
		fmt.Fprintf(&b, "Visi: %s\n", id.Vision)
	}
	if id.Mission != "" {
		fmt.Fprintf(&b, "Misi: %s\n", id.Mission)
	}

	return domain.DocumentChunk{
		ID:       string(domain.ChunkFacultyIdentity),
		Category: domain.ChunkFacultyIdentity,
		Keywords: dedupe(keywords),
		Content:  strings.TrimRight(b.String(), "\n"),
	}
}

func (c *Chunker) contactChunk(corpus *domain.Corpus) domain.DocumentChunk {
	office := corpus.Knowledge.Contact.MainOffice

	var b strings.Builder
	if office.Phone != "" {
		fmt.Fprintf(&b, "Telefon: %s\n", office.Phone)
	}
	if office.Email != "" {
		fmt.Fprintf(&b, "Emel: %s\n", office.Email)
	}
	if office.Address != "" {
		fmt.Fprintf(&b, "Alamat: %s\n", office.Address)
	}
	if office.Website != "" {
		fmt.Fprintf(&b, "Laman web: %s\n", office.Website)
	}

	return domain.DocumentChunk{
		ID:       string(domain.ChunkContactInfo),
		Category: domain.ChunkContactInfo,
		Keywords: []string{
			"hubungi", "contact", "telefon", "phone", "emel", "email",
			"alamat", "address", "laman web", "website", "lokasi", "location",
		},
		Content: strings.TrimRight(b.String(), "\n"),
	}
}

func (c *Chunker) statisticsChunk(corpus *domain.Corpus) domain.DocumentChunk {
	var b strings.Builder
	for _, key := range sortedKeys(corpus.Knowledge.QuickAnswers) {
		fmt.Fprintf(&b, "%s: %s\n", key, corpus.Knowledge.QuickAnswers[key])
	}

	return domain.DocumentChunk{
		ID:       string(domain.ChunkStatistics),
		Category: domain.ChunkStatistics,
		Keywords: []string{
			"berapa", "how many", "jumlah", "total", "bilangan",
			"statistik", "statistics", "staf", "pelajar", "student",
		},
		Content: strings.TrimRight(b.String(), "\n"),
	}
}

func (c *Chunker) departmentsChunk(corpus *domain.Corpus) domain.DocumentChunk {
	keywords := []string{"jabatan", "department", "unit", "bahagian"}

	var b strings.Builder
	b.WriteString("Jabatan:\n")
	for _, dept := range corpus.Departments {
		fmt.Fprintf(&b, "- %s", dept.Name)
		if dept.NameEN != "" && dept.NameEN != dept.Name {
			fmt.Fprintf(&b, " (%s)", dept.NameEN)
		}
		b.WriteString("\n")
		keywords = append(keywords, nameTokens(dept.Name)...)
	}

	return domain.DocumentChunk{
		ID:       string(domain.ChunkDepartments),
		Category: domain.ChunkDepartments,
		Keywords: dedupe(keywords),
		Content:  strings.TrimRight(b.String(), "\n"),
	}
}

func (c *Chunker) staffChunk(index int, member domain.StaffMember) domain.DocumentChunk {
	keywords := nameTokens(member.Name)
	if member.Department != "" {
		keywords = append(keywords, strings.ToLower(member.Department))
	}
	keywords = append(keywords, "pensyarah", "lecturer", "staff")

	var b strings.Builder
	fmt.Fprintf(&b, "%s", member.Name)
	if member.Title != "" {
		fmt.Fprintf(&b, ", %s", member.Title)
	}
	b.WriteString("\n")
	if member.Department != "" {
		fmt.Fprintf(&b, "Jabatan: %s\n", member.Department)
	}
	if member.Email != "" {
		fmt.Fprintf(&b, "Emel: %s\n", member.Email)
	}
	if member.Specialization != "" {
		fmt.Fprintf(&b, "Kepakaran: %s\n", member.Specialization)
	}

	return domain.DocumentChunk{
		ID:       fmt.Sprintf("%s_%d", domain.ChunkStaff, index),
		Category: domain.ChunkStaff,
		Keywords: dedupe(keywords),
		Content:  strings.TrimRight(b.String(), "\n"),
	}
}

func (c *Chunker) programsChunk(corpus *domain.Corpus) domain.DocumentChunk {
	programs := corpus.Knowledge.AcademicPrograms

	var b strings.Builder
	if len(programs.Undergraduate.Programs) > 0 {
		b.WriteString("Program Sarjana Muda:\n")
		for _, p := range programs.Undergraduate.Programs {
			fmt.Fprintf(&b, "- %s\n", p.DisplayName())
		}
	}
	if len(programs.Postgraduate.Programs) > 0 {
		b.WriteString("Program Pascasiswazah:\n")
		for _, p := range programs.Postgraduate.Programs {
			fmt.Fprintf(&b, "- %s\n", p.DisplayName())
		}
	}

	return domain.DocumentChunk{
		ID:       string(domain.ChunkPrograms),
		Category: domain.ChunkPrograms,
		Keywords: []string{
			"program", "programme", "kursus", "course", "ijazah", "degree",
			"sarjana", "master", "phd", "diploma", "pengajian", "study",
		},
		Content: strings.TrimRight(b.String(), "\n"),
	}
}

// nameTokens lower-cases and tokenises a name, dropping tokens of two
// characters or fewer (initials, honorific abbreviations).
func nameTokens(name string) []string {
	var tokens []string
	for _, t := range strings.Fields(strings.ToLower(name)) {
		t = strings.Trim(t, ".,()")
		if utf8Len(t) > 2 {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// sortedKeys returns map keys in sorted order for deterministic output.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// dedupe removes duplicate keywords, keeping first occurrence order.
func dedupe(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := keywords[:0]
	for _, k := range keywords {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
