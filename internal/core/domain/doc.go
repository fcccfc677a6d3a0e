// Package domain defines the core business entities for KampusKB.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Corpus: The static per-faculty knowledge base
//   - DocumentChunk: An atomic, independently scorable retrieval unit
//   - FacultyTag: Closed enumeration of faculty classifications
//   - QueryIntent: Closed enumeration of query intent tags
//   - ScoringWeights: Named relevance-scoring constants
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
