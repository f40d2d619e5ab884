package pipeline

import "errors"

// Sentinel errors for user-correctable failures. Anything else escaping
// the pipeline is an upstream or internal fault.
var (
	// ErrMissingInput means a required request field was absent.
	ErrMissingInput = errors.New("missing required input")

	// ErrExtractionFailed means the document was unreachable, undecodable,
	// or yielded no text (e.g. a scanned image-only PDF).
	ErrExtractionFailed = errors.New("no text extracted from PDF")

	// ErrNoTitles means the model output normalized to zero titles.
	ErrNoTitles = errors.New("no titles generated from PDF")
)
