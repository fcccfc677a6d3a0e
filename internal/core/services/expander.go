package services

import (
	"sort"
	"strings"
)

// Expander augments queries with Malay/English domain synonyms.
// This is purely a recall-boosting step, not semantic canonicalisation;
// duplicate and near-duplicate terms in the output are expected.
type Expander struct {
	dictionary map[string][]string
	keys       []string
}

// NewExpander creates an expander over the default synonym dictionary.
func NewExpander() *Expander {
	return NewExpanderWithDictionary(defaultSynonyms)
}

// NewExpanderWithDictionary creates an expander over a custom dictionary.
// Keys are visited in sorted order so expansion output is deterministic.
func NewExpanderWithDictionary(dict map[string][]string) *Expander {
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Expander{dictionary: dict, keys: keys}
}

// Expand lower-cases the query and appends the synonyms of every
// dictionary key that occurs as a substring, unless the synonym already
// occurs. Single pass: appended synonyms are not re-expanded. The result
// always contains every token of the input.
func (e *Expander) Expand(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(q)
	expanded := q

	for _, key := range e.keys {
		if !strings.Contains(q, key) {
			continue
		}
		for _, syn := range e.dictionary[key] {
			if strings.Contains(expanded, syn) {
				continue
			}
			b.WriteString(" ")
			b.WriteString(syn)
			expanded = b.String()
		}
	}

	return expanded
}
