// Package feed reads the ISS ephemeris and sightings XML documents from a
// source and maps them to domain records.
package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/kailas-cloud/isstracker/internal/domain"
	"github.com/kailas-cloud/isstracker/internal/domain/epoch"
	"github.com/kailas-cloud/isstracker/internal/domain/sighting"
	"github.com/kailas-cloud/isstracker/internal/source"
)

// Default document names, relative to the source root.
const (
	DefaultEpochDocument    = "ISS.OEM_J2K_EPH.xml"
	DefaultSightingDocument = "XMLsightingData_citiesINT05.xml"
)

// Repo reads both documents from one source.
type Repo struct {
	src         source.Source
	epochDoc    string
	sightingDoc string
}

// New creates a feed repository. Empty document names fall back to the defaults.
func New(src source.Source, epochDoc, sightingDoc string) *Repo {
	if epochDoc == "" {
		epochDoc = DefaultEpochDocument
	}
	if sightingDoc == "" {
		sightingDoc = DefaultSightingDocument
	}
	return &Repo{src: src, epochDoc: epochDoc, sightingDoc: sightingDoc}
}

// SourceName describes where documents are read from.
func (r *Repo) SourceName() string { return r.src.Name() }

// Ping checks the underlying source.
func (r *Repo) Ping(ctx context.Context) error {
	if err := r.src.Ping(ctx); err != nil {
		return fmt.Errorf("ping feed source: %w", err)
	}
	return nil
}

// Epochs reads and decodes the ephemeris document.
func (r *Repo) Epochs(ctx context.Context) ([]epoch.Epoch, error) {
	var doc oemDocument
	if err := r.decode(ctx, r.epochDoc, &doc); err != nil {
		return nil, err
	}
	out := make([]epoch.Epoch, len(doc.StateVectors))
	for i, sv := range doc.StateVectors {
		out[i] = epochFromXML(sv)
	}
	return out, nil
}

// Sightings reads and decodes the sightings document.
func (r *Repo) Sightings(ctx context.Context) ([]sighting.Sighting, error) {
	var doc passesDocument
	if err := r.decode(ctx, r.sightingDoc, &doc); err != nil {
		return nil, err
	}
	out := make([]sighting.Sighting, len(doc.Passes))
	for i, p := range doc.Passes {
		out[i] = sightingFromXML(p)
	}
	return out, nil
}

func (r *Repo) decode(ctx context.Context, name string, v any) error {
	rc, err := r.src.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = rc.Close() }()

	if err := decodeXML(rc, v); err != nil {
		return fmt.Errorf("decode %s: %w: %w", name, domain.ErrInvalidDocument, err)
	}
	return nil
}

func decodeXML(rd io.Reader, v any) error {
	if err := xml.NewDecoder(rd).Decode(v); err != nil {
		return err //nolint:wrapcheck // wrapped by caller with the document name
	}
	return nil
}
