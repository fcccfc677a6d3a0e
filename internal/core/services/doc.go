// Package services implements the driving port interfaces.
// Services contain the core retrieval logic: synonym expansion,
// fuzzy matching, faculty disambiguation, chunking, relevance
// scoring and context assembly.
//
// Services are pure Go with no external dependencies beyond the
// single-flight guard on corpus loading.
package services
