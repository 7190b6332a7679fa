package load

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/isstracker/internal/domain/dataset"
)

// Result summarizes a completed load.
type Result struct {
	Epochs    int
	Sightings int
	Source    string
	LoadedAt  time.Time
	Duration  time.Duration
}

// Loaded reports whether the load produced a queryable snapshot.
func (r Result) Loaded() bool { return r.Epochs > 0 && r.Sightings > 0 }

// Service reads both documents and replaces the snapshot wholesale.
type Service struct {
	feed     FeedReader
	store    SnapshotWriter
	recorder Recorder
	logger   *zap.Logger
	now      func() time.Time
}

// New creates a Service.
func New(feed FeedReader, store SnapshotWriter, logger *zap.Logger) *Service {
	return &Service{feed: feed, store: store, logger: logger, now: time.Now}
}

// WithRecorder reports every load outcome to r.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

// Load decodes both documents and swaps them in as one snapshot.
// On any error the previous snapshot stays in place. Concurrent calls run one at a time.
func (s *Service) Load(ctx context.Context) (Result, error) {
	s.store.Lock()
	defer s.store.Unlock()

	start := s.now()
	src := s.feed.SourceName()

	epochs, err := s.feed.Epochs(ctx)
	if err != nil {
		return Result{}, s.fail(src, start, fmt.Errorf("load epochs: %w", err))
	}
	passes, err := s.feed.Sightings(ctx)
	if err != nil {
		return Result{}, s.fail(src, start, fmt.Errorf("load sightings: %w", err))
	}

	loadedAt := s.now()
	s.store.Replace(dataset.New(epochs, passes, src, loadedAt))

	res := Result{
		Epochs:    len(epochs),
		Sightings: len(passes),
		Source:    src,
		LoadedAt:  loadedAt,
		Duration:  loadedAt.Sub(start),
	}

	if s.recorder != nil {
		s.recorder.LoadSucceeded(res.Epochs, res.Sightings, res.Duration, loadedAt)
	}

	fields := []zap.Field{
		zap.String("source", src),
		zap.Int("epochs", res.Epochs),
		zap.Int("sightings", res.Sightings),
		zap.Duration("duration", res.Duration),
	}
	if !res.Loaded() {
		s.logger.Warn("Data read but a collection is empty; queries will report not loaded", fields...)
	} else {
		s.logger.Info("Data loaded", fields...)
	}

	return res, nil
}

func (s *Service) fail(src string, start time.Time, err error) error {
	dur := s.now().Sub(start)
	if s.recorder != nil {
		s.recorder.LoadFailed(dur)
	}
	s.logger.Error("Data load failed",
		zap.String("source", src),
		zap.Duration("duration", dur),
		zap.Error(err),
	)
	return err
}
