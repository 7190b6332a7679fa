package isstracker

import (
	"github.com/kailas-cloud/isstracker/internal/domain"
	"github.com/kailas-cloud/isstracker/internal/source"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotLoaded       = domain.ErrNotLoaded
	ErrInvalidDocument = domain.ErrInvalidDocument
	ErrNotFound        = source.ErrNotFound
)
