package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a document format no extractor handles.
	// Such documents are skipped during ingest, never fatal.
	ErrUnsupportedType = errors.New("unsupported document type")

	// ErrStoreUnavailable indicates the page store cannot be opened or
	// read. Always surfaced to the caller; an empty result set must
	// never mask a store-access failure.
	ErrStoreUnavailable = errors.New("page store unavailable")
)
