package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Lookup errors
	ErrSeriesNotFound = errors.New("series not found")

	// Input errors
	ErrInvalidBatchRequest = errors.New("invalid batch request")
	ErrInvalidPatch        = errors.New("invalid occurrence patch")

	// Operation errors
	ErrPublishFailed = errors.New("publishing batch result failed")
)
