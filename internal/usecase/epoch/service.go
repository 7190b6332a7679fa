package epoch

import (
	"context"

	"github.com/kailas-cloud/isstracker/internal/domain"
	domepoch "github.com/kailas-cloud/isstracker/internal/domain/epoch"
	"github.com/kailas-cloud/isstracker/internal/domain/filter"
	"github.com/kailas-cloud/isstracker/internal/logger"
)

// Service answers epoch queries against the current snapshot.
type Service struct {
	store SnapshotReader
}

// New creates a Service.
func New(store SnapshotReader) *Service {
	return &Service{store: store}
}

// List returns every distinct EPOCH in document order.
func (s *Service) List(ctx context.Context) ([]string, error) {
	epochs, err := s.epochs()
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("returning all epochs")
	return filter.DistinctValues(epochs, domepoch.FieldEpoch), nil
}

// Get returns the state vectors recorded at the given epoch.
// An unknown epoch yields an empty slice.
func (s *Service) Get(ctx context.Context, epoch string) ([]domepoch.Epoch, error) {
	epochs, err := s.epochs()
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("returning epoch")
	return filter.Matching(epochs, domepoch.FieldEpoch, epoch), nil
}

// epochs returns the epoch collection if the snapshot is fully loaded.
func (s *Service) epochs() ([]domepoch.Epoch, error) {
	ds := s.store.Snapshot()
	if !ds.Loaded() {
		return nil, domain.ErrNotLoaded
	}
	return ds.Epochs(), nil
}
