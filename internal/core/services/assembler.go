package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
	"github.com/talenta-labs/kampuskb/internal/logger"
)

// Intent vocabulary patterns, matched against the expanded lower-cased
// query. A query can carry several intents; none matching defaults to
// the general intent.
var intentPatterns = map[domain.QueryIntent]*regexp.Regexp{
	domain.IntentStaff:    regexp.MustCompile(`staf|staff|kakitangan|pekerja`),
	domain.IntentLecturer: regexp.MustCompile(`pensyarah|lecturer|profesor|professor|dr\.|siapa|who`),
	domain.IntentProgram:  regexp.MustCompile(`program|pengajian|ijazah|degree|sarjana|master|phd|diploma`),
	domain.IntentCourse:   regexp.MustCompile(`kursus|course|subjek|subject`),
	domain.IntentResearch: regexp.MustCompile(`penyelidikan|research|kajian|fokus|kepakaran|expertise`),
	domain.IntentFaculty:  regexp.MustCompile(`fakulti|faculty|fsktm|fkaab|fkee|visi|vision|misi|mission|apa itu|what is`),
	domain.IntentContact:  regexp.MustCompile(`hubungi|contact|telefon|phone|emel|email|alamat|address|laman|website|lokasi|location`),
}

// Statistics-style queries switch the quick-answer section to counts only.
var statsPattern = regexp.MustCompile(`berapa|how many|jumlah|total|bilangan`)

// Postgraduate-specific terms. "sarjana muda" is the undergraduate
// degree, so a bare "sarjana" only counts when not followed by "muda".
var postgradPattern = regexp.MustCompile(`master|msc|phd|pasca|doctorate|kedoktoran`)

// Contact-ish quick-answer keys, kept when the contact intent trims the
// quick-answer section.
var contactKeyPattern = regexp.MustCompile(`telefon|phone|emel|email|alamat|address`)

// Count-ish quick-answer keys, kept for statistics-style queries.
var countKeyPattern = regexp.MustCompile(`jumlah|bilangan|total|staf|pelajar|student|program`)

// Assembler composes ranked retrieval material plus intent-conditional
// corpus sections into the single context string handed to the language
// model. Section order is fixed; inclusion is conditional on intent.
type Assembler struct {
	maxContextBytes int
}

// NewAssembler creates an assembler. maxContextBytes soft-caps the
// output; zero leaves truncation to the caller.
func NewAssembler(maxContextBytes int) *Assembler {
	if maxContextBytes < 0 {
		maxContextBytes = 0
	}
	return &Assembler{maxContextBytes: maxContextBytes}
}

// DetectIntents derives the intent set from an expanded query. The set
// is never empty; it defaults to {general}.
func (a *Assembler) DetectIntents(expandedQuery string) domain.IntentSet {
	q := strings.ToLower(expandedQuery)

	var found []domain.QueryIntent
	for intent, pattern := range intentPatterns {
		if pattern.MatchString(q) {
			found = append(found, intent)
		}
	}

	set := domain.NewIntentSet(found...)
	logger.Debug("Intents for %q: %v", expandedQuery, set.Slice())
	return set
}

// BuildContext renders the context string from the corpus, the ranked
// chunks and staff, and the query's intent set. Sections appear in a
// fixed order; a departments section and a staff section are always
// present regardless of query content. The query must be the user's raw
// words, not the expanded form: the postgraduate and statistics gates
// misfire on injected synonyms.
func (a *Assembler) BuildContext(
	corpus *domain.Corpus,
	chunks []domain.ScoredChunk,
	staff []domain.ScoredStaff,
	query string,
	intents domain.IntentSet,
) string {
	var b strings.Builder
	q := strings.ToLower(query)

	a.writeChunkSection(&b, chunks)
	a.writeQuickAnswers(&b, corpus, q, intents)
	a.writeIdentity(&b, corpus, intents)
	a.writePrograms(&b, corpus, q, intents)
	a.writeResearch(&b, corpus, intents)
	a.writeDepartments(&b, corpus)
	a.writeStaff(&b, corpus, staff, intents)

	out := strings.TrimRight(b.String(), "\n")
	if a.maxContextBytes > 0 && len(out) > a.maxContextBytes {
		out = truncateAtRune(out, a.maxContextBytes)
		logger.Warn("Context truncated to %d bytes", a.maxContextBytes)
	}
	return out
}

func (a *Assembler) writeChunkSection(b *strings.Builder, chunks []domain.ScoredChunk) {
	if len(chunks) == 0 {
		return
	}
	b.WriteString("MAKLUMAT BERKAITAN:\n")
	for _, sc := range chunks {
		b.WriteString(sc.Chunk.Content)
		b.WriteString("\n\n")
	}
}

func (a *Assembler) writeQuickAnswers(b *strings.Builder, corpus *domain.Corpus, q string, intents domain.IntentSet) {
	answers := corpus.Knowledge.QuickAnswers
	if len(answers) == 0 {
		return
	}

	keyFilter := func(string) bool { return true }
	switch {
	case intents.Has(domain.IntentContact):
		keyFilter = func(key string) bool {
			return contactKeyPattern.MatchString(strings.ToLower(key))
		}
	case statsPattern.MatchString(q):
		keyFilter = func(key string) bool {
			return countKeyPattern.MatchString(strings.ToLower(key))
		}
	}

	var lines []string
	for _, key := range sortedKeys(answers) {
		if keyFilter(key) {
			lines = append(lines, fmt.Sprintf("%s: %s", key, answers[key]))
		}
	}
	if len(lines) == 0 {
		return
	}

	b.WriteString("JAWAPAN RINGKAS:\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (a *Assembler) writeIdentity(b *strings.Builder, corpus *domain.Corpus, intents domain.IntentSet) {
	if !intents.HasAny(domain.IntentFaculty, domain.IntentGeneral) {
		return
	}

	b.WriteString("IDENTITI FAKULTI:\n")
	fmt.Fprintf(b, "Nama: %s", corpus.Info.Name)
	if corpus.Info.Acronym != "" {
		fmt.Fprintf(b, " (%s)", corpus.Info.Acronym)
	}
	b.WriteString("\n")
	if corpus.Info.University != "" {
		fmt.Fprintf(b, "Universiti: %s\n", corpus.Info.University)
	}
	if vision := corpus.Knowledge.Identity.Vision; vision != "" {
		fmt.Fprintf(b, "Visi: %s\n", vision)
	}
	b.WriteString("\n")
}

func (a *Assembler) writePrograms(b *strings.Builder, corpus *domain.Corpus, q string, intents domain.IntentSet) {
	if !intents.HasAny(domain.IntentProgram, domain.IntentCourse) {
		return
	}
	programs := corpus.Knowledge.AcademicPrograms

	if len(programs.Undergraduate.Programs) > 0 {
		b.WriteString("PROGRAM SARJANA MUDA:\n")
		for _, p := range programs.Undergraduate.Programs {
			fmt.Fprintf(b, "- %s", p.DisplayName())
			if p.MQACode != "" {
				fmt.Fprintf(b, " [%s]", p.MQACode)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if wantsPostgraduate(q) && len(programs.Postgraduate.Programs) > 0 {
		b.WriteString("PROGRAM PASCASISWAZAH:\n")
		for _, p := range programs.Postgraduate.Programs {
			fmt.Fprintf(b, "- %s\n", p.DisplayName())
		}
		b.WriteString("\n")
	}
}

func (a *Assembler) writeResearch(b *strings.Builder, corpus *domain.Corpus, intents domain.IntentSet) {
	if !intents.Has(domain.IntentResearch) {
		return
	}
	research := corpus.Knowledge.ResearchExpertise

	if len(research.ResearchCenters.Centers) > 0 {
		b.WriteString("PUSAT PENYELIDIKAN:\n")
		for _, center := range research.ResearchCenters.Centers {
			writeNamedUnit(b, center)
		}
		b.WriteString("\n")
	}
	if len(research.FocusGroups.Groups) > 0 {
		b.WriteString("KUMPULAN FOKUS:\n")
		for _, group := range research.FocusGroups.Groups {
			writeNamedUnit(b, group)
		}
		b.WriteString("\n")
	}
}

func (a *Assembler) writeDepartments(b *strings.Builder, corpus *domain.Corpus) {
	b.WriteString("JABATAN:\n")
	if len(corpus.Departments) == 0 {
		b.WriteString("(tiada maklumat jabatan)\n\n")
		return
	}
	for _, dept := range corpus.Departments {
		fmt.Fprintf(b, "- %s", dept.Name)
		if dept.NameEN != "" && dept.NameEN != dept.Name {
			fmt.Fprintf(b, " (%s)", dept.NameEN)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (a *Assembler) writeStaff(b *strings.Builder, corpus *domain.Corpus, staff []domain.ScoredStaff, intents domain.IntentSet) {
	switch {
	case len(staff) > 0:
		b.WriteString("KAKITANGAN BERKAITAN:\n")
		limit := len(staff)
		if limit > domain.MaxStaffResults {
			limit = domain.MaxStaffResults
		}
		for _, ss := range staff[:limit] {
			member := ss.Member
			fmt.Fprintf(b, "%s", member.Name)
			if member.Title != "" {
				fmt.Fprintf(b, ", %s", member.Title)
			}
			b.WriteString("\n")
			if member.Department != "" {
				fmt.Fprintf(b, "  Jabatan: %s\n", member.Department)
			}
			if member.Email != "" {
				fmt.Fprintf(b, "  Emel: %s\n", member.Email)
			}
			if member.Specialization != "" {
				fmt.Fprintf(b, "  Kepakaran: %s\n", member.Specialization)
			}
		}

	case intents.HasAny(domain.IntentStaff, domain.IntentLecturer):
		b.WriteString("SENARAI KAKITANGAN:\n")
		for _, member := range corpus.Staff {
			fmt.Fprintf(b, "- %s", member.Name)
			if member.Title != "" {
				fmt.Fprintf(b, " (%s)", member.Title)
			}
			if member.Department != "" {
				fmt.Fprintf(b, " - %s", member.Department)
			}
			b.WriteString("\n")
		}
		if len(corpus.Staff) == 0 {
			b.WriteString("(tiada maklumat kakitangan)\n")
		}

	default:
		count := corpus.Info.TotalStaff
		if count == 0 {
			count = len(corpus.Staff)
		}
		fmt.Fprintf(b, "KAKITANGAN: %d orang. Nyatakan nama atau jabatan untuk maklumat lanjut.\n", count)
	}
}

// wantsPostgraduate reports whether the query targets postgraduate
// programmes. "sarjana muda" is excluded: that phrase is the
// undergraduate degree in Malay. Runs on the raw query so the
// exclusion cannot be masked by synonym expansion.
func wantsPostgraduate(q string) bool {
	if postgradPattern.MatchString(q) {
		return true
	}
	return strings.Contains(q, "sarjana") && !strings.Contains(q, "sarjana muda")
}

func writeNamedUnit(b *strings.Builder, unit domain.NamedUnit) {
	fmt.Fprintf(b, "- %s", unit.Name)
	if unit.Acronym != "" {
		fmt.Fprintf(b, " (%s)", unit.Acronym)
	}
	b.WriteString("\n")
}

// truncateAtRune cuts s to at most maxBytes without splitting a rune.
func truncateAtRune(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	cut := maxBytes
	for cut > 0 && (s[cut]&0xC0) == 0x80 {
		cut--
	}
	return s[:cut]
}
