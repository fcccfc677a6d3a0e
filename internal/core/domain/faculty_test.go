package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFacultyTag_IsValid tests tag validation for known and unknown values
func TestFacultyTag_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		tag   FacultyTag
		valid bool
	}{
		{"fsktm", FacultyFSKTM, true},
		{"fkaab", FacultyFKAAB, true},
		{"fkee", FacultyFKEE, true},
		{"unclear", FacultyUnclear, true},
		{"general", FacultyGeneral, true},
		{"empty", FacultyTag(""), false},
		{"unknown", FacultyTag("fkmp"), false},
		{"uppercase", FacultyTag("FSKTM"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.tag.IsValid())
		})
	}
}

// TestFacultyTag_IsConcrete tests that only actual faculties are concrete
func TestFacultyTag_IsConcrete(t *testing.T) {
	assert.True(t, FacultyFSKTM.IsConcrete())
	assert.True(t, FacultyFKAAB.IsConcrete())
	assert.True(t, FacultyFKEE.IsConcrete())
	assert.False(t, FacultyUnclear.IsConcrete())
	assert.False(t, FacultyGeneral.IsConcrete())
	assert.False(t, FacultyTag("").IsConcrete())
}

// TestFacultyTag_Description tests human-readable descriptions
func TestFacultyTag_Description(t *testing.T) {
	assert.Contains(t, FacultyFSKTM.Description(), "FSKTM")
	assert.Contains(t, FacultyFKAAB.Description(), "FKAAB")
	assert.Contains(t, FacultyFKEE.Description(), "FKEE")
	assert.Equal(t, "Unknown", FacultyTag("nope").Description())
}

// TestConcreteFaculties tests the stable faculty list
func TestConcreteFaculties(t *testing.T) {
	faculties := ConcreteFaculties()

	assert.Equal(t, []FacultyTag{FacultyFSKTM, FacultyFKAAB, FacultyFKEE}, faculties)
	for _, f := range faculties {
		assert.True(t, f.IsConcrete())
	}
}
