package catalog

import "errors"

// Package errors use descriptive messages for debugging while avoiding
// implementation details. Missing keys are never errors; only structural
// failures (unreadable or malformed catalog data) surface, and only to the
// immediate caller.
var (
	// Decoding
	ErrDecodingCancelled       = errors.New("catalog decoding cancelled")
	ErrFailedToDecodeCatalog   = errors.New("failed to decode catalog data")
	ErrInvalidCatalogStructure = errors.New("invalid catalog structure")
	ErrUnsupportedFormat       = errors.New("unsupported catalog file format")

	// Loading
	ErrLoadingCancelled    = errors.New("catalog loading cancelled")
	ErrFailedToReadCatalog = errors.New("failed to read catalog file")
)
