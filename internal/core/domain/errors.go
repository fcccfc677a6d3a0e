package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// The retrieval pipeline itself is total over its inputs: corpus load
// failures are recovered locally with a minimal default corpus and never
// propagate. Errors here surface only at the adapter edges.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownFaculty indicates a faculty tag without a loadable corpus.
	ErrUnknownFaculty = errors.New("unknown faculty")

	// ErrCorpusUnavailable indicates the bundled corpus source could not
	// be read or parsed. Callers receive a minimal default corpus instead;
	// the error exists for logging at the adapter edge.
	ErrCorpusUnavailable = errors.New("corpus unavailable")
)
