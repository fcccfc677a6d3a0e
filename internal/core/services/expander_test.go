package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpander_Expand_EmptyQuery(t *testing.T) {
	e := NewExpander()

	assert.Equal(t, "", e.Expand(""))
	assert.Equal(t, "", e.Expand("   \t\n  "))
}

func TestExpander_Expand_ContainsOriginalQuery(t *testing.T) {
	e := NewExpander()

	queries := []string{
		"siapa pensyarah",
		"Program Sarjana Muda",
		"contact FSKTM",
		"berapa jumlah staf",
	}

	for _, q := range queries {
		expanded := e.Expand(q)
		assert.True(t, strings.HasPrefix(expanded, strings.ToLower(strings.TrimSpace(q))), "query %q", q)
	}
}

func TestExpander_Expand_MalayToEnglish(t *testing.T) {
	e := NewExpander()

	expanded := e.Expand("siapa pensyarah perisian")

	assert.Contains(t, expanded, "who")
	assert.Contains(t, expanded, "lecturer")
	assert.Contains(t, expanded, "software")
}

func TestExpander_Expand_EnglishToMalay(t *testing.T) {
	e := NewExpander()

	expanded := e.Expand("software engineering lecturer email")

	assert.Contains(t, expanded, "perisian")
	assert.Contains(t, expanded, "pensyarah")
	assert.Contains(t, expanded, "emel")
}

func TestExpander_Expand_NoDuplicates(t *testing.T) {
	e := NewExpander()

	// "lecturer" is already present in the query, so the expansion of
	// "pensyarah" must not append it again.
	expanded := e.Expand("pensyarah lecturer")

	assert.Equal(t, 1, strings.Count(expanded, "lecturer"))
}

func TestExpander_Expand_SinglePass(t *testing.T) {
	dict := map[string][]string{
		"aaa": {"bbb"},
		"bbb": {"ccc"},
	}
	e := NewExpanderWithDictionary(dict)

	// "bbb" is appended by expanding "aaa", but appended synonyms are
	// never re-expanded, so "ccc" must not appear.
	expanded := e.Expand("aaa")

	assert.Contains(t, expanded, "bbb")
	assert.NotContains(t, expanded, "ccc")
}

func TestExpander_Expand_Deterministic(t *testing.T) {
	e := NewExpander()

	first := e.Expand("siapa pensyarah program perisian")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, e.Expand("siapa pensyarah program perisian"))
	}
}

func TestExpander_Expand_NoSynonymMatches(t *testing.T) {
	e := NewExpander()

	assert.Equal(t, "zzz qqq", e.Expand("zzz qqq"))
}
