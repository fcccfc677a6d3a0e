package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
)

func TestAssembler_DetectIntents(t *testing.T) {
	a := NewAssembler(0)

	tests := []struct {
		name    string
		query   string
		want    []domain.QueryIntent
		notWant []domain.QueryIntent
	}{
		{
			name:  "lecturer query",
			query: "siapa pensyarah perisian",
			want:  []domain.QueryIntent{domain.IntentLecturer},
		},
		{
			name:  "staff and lecturer",
			query: "senarai staf dan pensyarah",
			want:  []domain.QueryIntent{domain.IntentStaff, domain.IntentLecturer},
		},
		{
			name:  "program query",
			query: "program sarjana muda",
			want:  []domain.QueryIntent{domain.IntentProgram},
		},
		{
			name:  "contact query",
			query: "nombor telefon fakulti",
			want:  []domain.QueryIntent{domain.IntentContact, domain.IntentFaculty},
		},
		{
			name:  "research query",
			query: "bidang penyelidikan",
			want:  []domain.QueryIntent{domain.IntentResearch},
		},
		{
			name:    "no vocabulary defaults to general",
			query:   "hmm",
			want:    []domain.QueryIntent{domain.IntentGeneral},
			notWant: []domain.QueryIntent{domain.IntentStaff, domain.IntentProgram},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intents := a.DetectIntents(tt.query)
			for _, i := range tt.want {
				assert.True(t, intents.Has(i), "missing intent %s", i)
			}
			for _, i := range tt.notWant {
				assert.False(t, intents.Has(i), "unexpected intent %s", i)
			}
		})
	}
}

func TestAssembler_BuildContext_AlwaysHasDepartmentsAndStaff(t *testing.T) {
	a := NewAssembler(0)
	corpus := testCorpus()

	// No ranked material, no specific intent: the departments section
	// and a staff section must still appear.
	out := a.BuildContext(corpus, nil, nil, "hmm", domain.NewIntentSet())

	assert.Contains(t, out, "JABATAN:")
	assert.Contains(t, out, "Jabatan Kejuruteraan Perisian")
	assert.Contains(t, out, "KAKITANGAN:")
}

func TestAssembler_BuildContext_EmptyCorpus(t *testing.T) {
	a := NewAssembler(0)
	corpus := DefaultCorpus(domain.FacultyFSKTM)

	out := a.BuildContext(corpus, nil, nil, "hmm", domain.NewIntentSet())

	assert.Contains(t, out, "JABATAN:")
	assert.Contains(t, out, "(tiada maklumat jabatan)")
	assert.Contains(t, out, "KAKITANGAN: 0 orang")
}

func TestAssembler_BuildContext_ChunkSectionFirst(t *testing.T) {
	a := NewAssembler(0)
	corpus := testCorpus()
	chunks := []domain.ScoredChunk{
		{Chunk: domain.DocumentChunk{ID: "contact_info", Content: "Telefon: +607-453 3001"}, Score: 2.0},
	}

	out := a.BuildContext(corpus, chunks, nil, "hubungi", domain.NewIntentSet(domain.IntentContact))

	require.True(t, strings.HasPrefix(out, "MAKLUMAT BERKAITAN:\n"))
	assert.Contains(t, out, "Telefon: +607-453 3001")
}

func TestAssembler_BuildContext_ScoredStaffDetail(t *testing.T) {
	a := NewAssembler(0)
	corpus := testCorpus()
	staff := []domain.ScoredStaff{
		{Member: corpus.Staff[0], Score: 2.0},
	}

	out := a.BuildContext(corpus, nil, staff, "siapa ahmad", domain.NewIntentSet(domain.IntentLecturer))

	assert.Contains(t, out, "KAKITANGAN BERKAITAN:")
	assert.Contains(t, out, "Ahmad Fikri bin Zulkifli, Pensyarah Kanan")
	assert.Contains(t, out, "Emel: afikri@uthm.edu.my")
	assert.NotContains(t, out, "SENARAI KAKITANGAN:")
}

func TestAssembler_BuildContext_StaffIntentFullList(t *testing.T) {
	a := NewAssembler(0)
	corpus := testCorpus()

	// Staff intent but nothing scored: fall back to the compact
	// directory listing.
	out := a.BuildContext(corpus, nil, nil, "senarai staf", domain.NewIntentSet(domain.IntentStaff))

	assert.Contains(t, out, "SENARAI KAKITANGAN:")
	assert.Contains(t, out, "- Ahmad Fikri bin Zulkifli (Pensyarah Kanan)")
	assert.Contains(t, out, "- Noraini binti Hassan (Pensyarah)")
}

func TestAssembler_BuildContext_StaffCountFallback(t *testing.T) {
	a := NewAssembler(0)
	corpus := testCorpus()

	out := a.BuildContext(corpus, nil, nil, "program sarjana muda", domain.NewIntentSet(domain.IntentProgram))

	assert.Contains(t, out, "KAKITANGAN: 120 orang")
}

func TestAssembler_BuildContext_ProgramsRequireIntent(t *testing.T) {
	a := NewAssembler(0)
	corpus := testCorpus()

	withIntent := a.BuildContext(corpus, nil, nil, "program sarjana muda", domain.NewIntentSet(domain.IntentProgram))
	withoutIntent := a.BuildContext(corpus, nil, nil, "hubungi fakulti", domain.NewIntentSet(domain.IntentContact))

	assert.Contains(t, withIntent, "PROGRAM SARJANA MUDA:")
	assert.NotContains(t, withoutIntent, "PROGRAM SARJANA MUDA:")
}

func TestAssembler_BuildContext_PostgraduateGating(t *testing.T) {
	a := NewAssembler(0)
	corpus := testCorpus()
	intents := domain.NewIntentSet(domain.IntentProgram)

	undergrad := a.BuildContext(corpus, nil, nil, "program sarjana muda", intents)
	postgrad := a.BuildContext(corpus, nil, nil, "program master", intents)
	barePostgrad := a.BuildContext(corpus, nil, nil, "program sarjana", intents)

	assert.NotContains(t, undergrad, "PROGRAM PASCASISWAZAH:")
	assert.Contains(t, postgrad, "PROGRAM PASCASISWAZAH:")
	assert.Contains(t, barePostgrad, "PROGRAM PASCASISWAZAH:")
}

func TestAssembler_BuildContext_IdentityRequiresIntent(t *testing.T) {
	a := NewAssembler(0)
	corpus := testCorpus()

	withFaculty := a.BuildContext(corpus, nil, nil, "apa itu fakulti", domain.NewIntentSet(domain.IntentFaculty))
	general := a.BuildContext(corpus, nil, nil, "hmm", domain.NewIntentSet())
	contactOnly := a.BuildContext(corpus, nil, nil, "hubungi", domain.NewIntentSet(domain.IntentContact))

	assert.Contains(t, withFaculty, "IDENTITI FAKULTI:")
	assert.Contains(t, general, "IDENTITI FAKULTI:")
	assert.NotContains(t, contactOnly, "IDENTITI FAKULTI:")
}

func TestAssembler_BuildContext_QuickAnswerFilters(t *testing.T) {
	a := NewAssembler(0)
	corpus := testCorpus()
	corpus.Knowledge.QuickAnswers = map[string]string{
		"telefon_pejabat": "+607-453 3001",
		"jumlah_staf":     "120 orang",
	}

	contact := a.BuildContext(corpus, nil, nil, "hubungi fakulti", domain.NewIntentSet(domain.IntentContact))
	stats := a.BuildContext(corpus, nil, nil, "berapa jumlah staf", domain.NewIntentSet(domain.IntentStaff))

	assert.Contains(t, contact, "telefon_pejabat: +607-453 3001")
	assert.NotContains(t, contact, "jumlah_staf")
	assert.Contains(t, stats, "jumlah_staf: 120 orang")
	assert.NotContains(t, stats, "telefon_pejabat")
}

func TestAssembler_BuildContext_ByteCap(t *testing.T) {
	a := NewAssembler(100)
	corpus := testCorpus()

	out := a.BuildContext(corpus, nil, nil, "senarai staf", domain.NewIntentSet(domain.IntentStaff))

	assert.LessOrEqual(t, len(out), 100)
}

func TestTruncateAtRune(t *testing.T) {
	// Never split a multi-byte rune at the cap.
	s := "pengajian sains komputer dan teknologi maklumat"
	assert.Equal(t, s, truncateAtRune(s, len(s)))
	assert.Equal(t, s[:10], truncateAtRune(s, 10))

	multi := "ukuré" // 6 bytes, last rune is 2 bytes
	assert.Equal(t, "ukur", truncateAtRune(multi, 5))
}
