package load

import (
	"context"
	"time"

	"github.com/kailas-cloud/isstracker/internal/domain/dataset"
	"github.com/kailas-cloud/isstracker/internal/domain/epoch"
	"github.com/kailas-cloud/isstracker/internal/domain/sighting"
)

// FeedReader reads and decodes both documents.
type FeedReader interface {
	Epochs(ctx context.Context) ([]epoch.Epoch, error)
	Sightings(ctx context.Context) ([]sighting.Sighting, error)
	SourceName() string
}

// SnapshotWriter swaps in new snapshots under a load lock.
type SnapshotWriter interface {
	Lock()
	Unlock()
	Replace(ds *dataset.Dataset)
}

// Recorder receives load outcomes. A nil Recorder records nothing.
type Recorder interface {
	LoadFailed(d time.Duration)
	LoadSucceeded(epochs, sightings int, d time.Duration, loadedAt time.Time)
}
