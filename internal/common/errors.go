package common

import "errors"

var (
	// ErrInvalidArgument marks malformed input rejected before any work is performed.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrFetchFailure marks a failed trace_filter request for a block window.
	ErrFetchFailure = errors.New("trace fetch failure")
	// ErrReceiptResolution marks a failed, missing or malformed receipt in a batch.
	ErrReceiptResolution = errors.New("receipt resolution failure")
)
