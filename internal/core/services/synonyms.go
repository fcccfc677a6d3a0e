package services

// Malay/English synonym dictionary for query expansion.
//
// Campus queries arrive in either language, often mixed ("siapa lecturer
// software engineering"). Standard substring retrieval misses the other
// language's vocabulary entirely, so every query is expanded with the
// cross-language synonyms of the terms it mentions before scoring.
//
// Entries are directed edges (word -> synonyms), not guaranteed symmetric,
// and expansion is a single pass over the dictionary. Newly appended
// synonyms are never re-expanded; transitive closure would dilute the
// relevance scores downstream.
var defaultSynonyms = map[string][]string{
	// Roles and titles
	"pensyarah":  {"lecturer", "staff", "akademik", "pengajar"},
	"lecturer":   {"pensyarah", "staff", "academic"},
	"staf":       {"staff", "kakitangan", "pekerja"},
	"staff":      {"staf", "kakitangan", "pensyarah", "lecturer"},
	"kakitangan": {"staf", "staff", "pekerja"},
	"profesor":   {"professor", "prof", "pensyarah"},
	"professor":  {"profesor", "prof", "pensyarah"},
	"dekan":      {"dean", "ketua fakulti"},
	"dean":       {"dekan", "ketua fakulti"},
	"ketua":      {"head", "pengarah"},

	// Academic vocabulary
	"program":   {"programme", "kursus", "pengajian"},
	"programme": {"program", "kursus"},
	"kursus":    {"course", "program", "subjek"},
	"course":    {"kursus", "program", "subjek"},
	"ijazah":    {"degree", "sarjana muda"},
	"degree":    {"ijazah", "sarjana muda"},
	"sarjana":   {"master", "pascasiswazah"},
	"master":    {"sarjana", "pascasiswazah"},
	"phd":       {"doktor falsafah", "kedoktoran", "doctorate"},
	"diploma":   {"diploma lepasan"},
	"pelajar":   {"student", "mahasiswa"},
	"student":   {"pelajar", "mahasiswa"},

	// Departments and units
	"jabatan":    {"department", "unit"},
	"department": {"jabatan", "unit"},
	"fakulti":    {"faculty"},
	"faculty":    {"fakulti"},

	// Domain terms
	"perisian":           {"software", "kejuruteraan perisian"},
	"software":           {"perisian", "kejuruteraan perisian"},
	"keselamatan":        {"security", "siber"},
	"security":           {"keselamatan", "siber"},
	"rangkaian":          {"network", "networking"},
	"network":            {"rangkaian", "networking"},
	"teknologi maklumat": {"information technology", "it"},
	"sains komputer":     {"computer science", "komputer"},
	"awam":               {"civil"},
	"civil":              {"awam"},
	"elektrik":           {"electrical", "electric"},
	"electrical":         {"elektrik"},
	"elektronik":         {"electronic", "electronics"},
	"electronic":         {"elektronik"},

	// Research vocabulary
	"penyelidikan": {"research", "kajian"},
	"research":     {"penyelidikan", "kajian"},
	"kajian":       {"research", "penyelidikan"},
	"pakar":        {"expert", "kepakaran", "specialization"},
	"kepakaran":    {"expertise", "specialization", "bidang"},

	// Contact vocabulary
	"hubungi": {"contact", "telefon", "emel"},
	"contact": {"hubungi", "telefon", "emel"},
	"telefon": {"phone", "tel"},
	"phone":   {"telefon", "tel"},
	"emel":    {"email", "e-mel"},
	"email":   {"emel", "e-mel"},
	"alamat":  {"address", "lokasi"},
	"address": {"alamat", "lokasi"},
	"laman":   {"website", "web"},
	"website": {"laman web", "laman"},

	// Action verbs
	"cari":    {"find", "search", "carian"},
	"find":    {"cari", "search"},
	"senarai": {"list", "senaraikan"},
	"list":    {"senarai", "senaraikan"},
	"siapa":   {"who"},
	"who":     {"siapa"},
	"berapa":  {"how many", "jumlah", "bilangan"},
	"jumlah":  {"total", "bilangan", "berapa"},
	"total":   {"jumlah", "bilangan"},
}
