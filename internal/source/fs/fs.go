// Package fs reads documents from a local directory.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kailas-cloud/isstracker/internal/source"
)

// Source reads documents from files under a root directory.
type Source struct {
	root string
}

var _ source.Source = (*Source)(nil)

// New creates a filesystem source rooted at dir. An empty dir means the working directory.
func New(dir string) *Source {
	if dir == "" {
		dir = "."
	}
	return &Source{root: dir}
}

// Name returns "fs:<root>".
func (s *Source) Name() string { return "fs:" + s.root }

// Open opens the named file under the root.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, &source.Error{Op: source.OpOpen, Document: name, Err: err}
	}
	p, err := s.pathFor(name)
	if err != nil {
		return nil, &source.Error{Op: source.OpOpen, Document: name, Err: err}
	}
	f, err := os.Open(filepath.Clean(p))
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, &source.Error{Op: source.OpOpen, Document: name, Err: source.ErrNotFound}
		}
		return nil, &source.Error{Op: source.OpOpen, Document: name, Err: err}
	}
	return f, nil
}

// Ping checks that the root exists and is a directory.
func (s *Source) Ping(_ context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return &source.Error{Op: source.OpPing, Err: err}
	}
	if !info.IsDir() {
		return &source.Error{Op: source.OpPing, Err: fmt.Errorf("%s is not a directory", s.root)}
	}
	return nil
}

// pathFor maps a document name to a path under the root, rejecting traversal and absolute names.
func (s *Source) pathFor(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("empty document name")
	}
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("invalid absolute document name")
	}
	clean := filepath.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid document name traversal")
	}
	return filepath.Join(s.root, clean), nil
}
