package domain

// QueryIntent tags what a query is asking about. A query carries a set of
// intents; the set is never empty and defaults to IntentGeneral.
type QueryIntent string

// Intent vocabulary.
const (
	IntentStaff    QueryIntent = "staff"
	IntentLecturer QueryIntent = "lecturer"
	IntentProgram  QueryIntent = "program"
	IntentCourse   QueryIntent = "course"
	IntentResearch QueryIntent = "research"
	IntentFaculty  QueryIntent = "faculty"
	IntentContact  QueryIntent = "contact"
	IntentGeneral  QueryIntent = "general"
)

// IsValid returns true if the intent is recognised.
func (i QueryIntent) IsValid() bool {
	switch i {
	case IntentStaff, IntentLecturer, IntentProgram, IntentCourse,
		IntentResearch, IntentFaculty, IntentContact, IntentGeneral:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (i QueryIntent) String() string {
	return string(i)
}

// IntentSet is the set of intents detected for one query.
type IntentSet map[QueryIntent]bool

// NewIntentSet builds a set from the given intents. An empty argument
// list yields the default {general} set.
func NewIntentSet(intents ...QueryIntent) IntentSet {
	s := make(IntentSet, len(intents))
	for _, i := range intents {
		s[i] = true
	}
	if len(s) == 0 {
		s[IntentGeneral] = true
	}
	return s
}

// Has reports whether the set contains the given intent.
func (s IntentSet) Has(i QueryIntent) bool {
	return s[i]
}

// HasAny reports whether the set contains any of the given intents.
func (s IntentSet) HasAny(intents ...QueryIntent) bool {
	for _, i := range intents {
		if s[i] {
			return true
		}
	}
	return false
}

// Slice returns the intents in stable vocabulary order.
func (s IntentSet) Slice() []QueryIntent {
	ordered := []QueryIntent{
		IntentStaff, IntentLecturer, IntentProgram, IntentCourse,
		IntentResearch, IntentFaculty, IntentContact, IntentGeneral,
	}
	out := make([]QueryIntent, 0, len(s))
	for _, i := range ordered {
		if s[i] {
			out = append(out, i)
		}
	}
	return out
}
