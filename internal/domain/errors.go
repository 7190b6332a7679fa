package domain

import "errors"

var (
	// ErrNotLoaded signals that the epoch and sighting data are not both in memory.
	ErrNotLoaded = errors.New("data not loaded")
	// ErrInvalidDocument signals an XML document that could not be decoded.
	ErrInvalidDocument = errors.New("invalid document")
)
