// Package source abstracts where the ISS XML documents are read from.
package source

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound signals that a named document does not exist in the source.
var ErrNotFound = errors.New("source: document not found")

// Driver names a source implementation.
type Driver string

// Supported drivers.
const (
	DriverFS Driver = "fs"
	DriverS3 Driver = "s3"
)

// Source opens named XML documents.
type Source interface {
	// Open returns a reader for the named document. The caller closes it.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Ping checks that the source is reachable.
	Ping(ctx context.Context) error
	// Name describes the source for logs and load results, e.g. "fs:." or "s3://bucket/prefix".
	Name() string
}

// Op constants name source operations for error context.
const (
	OpOpen = "open"
	OpPing = "ping"
)

// Error wraps an underlying error with the operation and document name.
type Error struct {
	Op       string
	Document string
	Err      error
}

func (e *Error) Error() string {
	if e.Document == "" {
		return "source " + e.Op + ": " + e.Err.Error()
	}
	return "source " + e.Op + " " + e.Document + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
