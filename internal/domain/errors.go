package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrNotFound reports a spelling absent from both dictionaries after
	// the full resolution policy has run. It is control flow, not a fault.
	ErrNotFound = errors.New("word not found")

	// ErrNotLoaded reports a query against a dictionary that has not been
	// allocated, or has been deallocated.
	ErrNotLoaded = errors.New("dictionary not loaded")
)
