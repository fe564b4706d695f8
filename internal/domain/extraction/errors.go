package extraction

import "errors"

var (
	ErrExtractionFailed = errors.New("ai extraction failed")
	// ErrMalformedOutput rejects the whole gateway response; candidates
	// are never partially applied.
	ErrMalformedOutput = errors.New("ai extraction returned malformed output")
)
