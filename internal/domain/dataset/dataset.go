package dataset

import (
	"time"

	"github.com/kailas-cloud/isstracker/internal/domain/epoch"
	"github.com/kailas-cloud/isstracker/internal/domain/sighting"
)

// Dataset is one loaded snapshot of epoch and sighting records (immutable value object).
// Readers take a whole snapshot, so both collections always come from the same load.
type Dataset struct {
	epochs    []epoch.Epoch
	sightings []sighting.Sighting
	source    string
	loadedAt  time.Time
}

// New creates a Dataset. The slices are owned by the Dataset afterwards.
func New(epochs []epoch.Epoch, sightings []sighting.Sighting, source string, loadedAt time.Time) *Dataset {
	return &Dataset{epochs: epochs, sightings: sightings, source: source, loadedAt: loadedAt}
}

// Epochs returns the epoch collection in document order.
func (d *Dataset) Epochs() []epoch.Epoch {
	if d == nil {
		return nil
	}
	return d.epochs
}

// Sightings returns the sighting collection in document order.
func (d *Dataset) Sightings() []sighting.Sighting {
	if d == nil {
		return nil
	}
	return d.sightings
}

// Source names where the snapshot was read from.
func (d *Dataset) Source() string {
	if d == nil {
		return ""
	}
	return d.source
}

// LoadedAt returns when the snapshot was built.
func (d *Dataset) LoadedAt() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.loadedAt
}

// Loaded reports whether both collections are non-empty.
// A nil Dataset is not loaded.
func (d *Dataset) Loaded() bool {
	return d != nil && len(d.epochs) > 0 && len(d.sightings) > 0
}
