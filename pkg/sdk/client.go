package isstracker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domepoch "github.com/kailas-cloud/isstracker/internal/domain/epoch"
	domsighting "github.com/kailas-cloud/isstracker/internal/domain/sighting"
	datasetrepo "github.com/kailas-cloud/isstracker/internal/repository/dataset"
	"github.com/kailas-cloud/isstracker/internal/repository/feed"
	"github.com/kailas-cloud/isstracker/internal/source"
	fssource "github.com/kailas-cloud/isstracker/internal/source/fs"
	s3source "github.com/kailas-cloud/isstracker/internal/source/s3"
	epochuc "github.com/kailas-cloud/isstracker/internal/usecase/epoch"
	healthuc "github.com/kailas-cloud/isstracker/internal/usecase/health"
	loaduc "github.com/kailas-cloud/isstracker/internal/usecase/load"
	sightinguc "github.com/kailas-cloud/isstracker/internal/usecase/sighting"
)

// Internal interfaces for substitution in tests.
type epochUseCase interface {
	List(ctx context.Context) ([]string, error)
	Get(ctx context.Context, epoch string) ([]domepoch.Epoch, error)
}

type sightingUseCase interface {
	Countries(ctx context.Context) ([]string, error)
	Country(ctx context.Context, country string) ([]domsighting.Sighting, error)
	Regions(ctx context.Context, country string) ([]string, error)
	Region(ctx context.Context, country, region string) ([]domsighting.Sighting, error)
	Cities(ctx context.Context, country, region string) ([]string, error)
	City(ctx context.Context, country, region, city string) ([]domsighting.Sighting, error)
}

type loadUseCase interface {
	Load(ctx context.Context) (loaduc.Result, error)
}

type feedPinger interface {
	Ping(ctx context.Context) error
	SourceName() string
}

type loadChecker interface {
	Loaded() bool
}

// Client is the ISS tracker SDK entry point.
type Client struct {
	feed        feedPinger
	data        loadChecker
	epochSvc    epochUseCase
	sightingSvc sightingUseCase
	loadSvc     loadUseCase
	healthSvc   healthUseCase
	obs         *observer
}

// New creates a Client. Nothing is read until Load is called.
// The provided context is used to resolve S3 credentials when WithS3 is set.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	src, err := createSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}
	return wireClient(src, cfg, obs), nil
}

func createSource(ctx context.Context, cfg *clientConfig) (source.Source, error) {
	if cfg.s3 == nil {
		return fssource.New(cfg.dir), nil
	}
	s, err := s3source.New(ctx, s3source.Config{
		Bucket:    cfg.s3.Bucket,
		Prefix:    cfg.s3.Prefix,
		Region:    cfg.s3.Region,
		Endpoint:  cfg.s3.Endpoint,
		PathStyle: cfg.s3.PathStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("isstracker: create s3 source: %w", err)
	}
	return s, nil
}

func wireClient(src source.Source, cfg *clientConfig, obs *observer) *Client {
	feedRepo := feed.New(src, cfg.epochFile, cfg.sightingFile)
	store := datasetrepo.New()

	return &Client{
		feed:        feedRepo,
		data:        store,
		epochSvc:    epochuc.New(store),
		sightingSvc: sightinguc.New(store),
		loadSvc:     loaduc.New(feedRepo, store, zap.NewNop()),
		healthSvc:   healthuc.New(feedRepo, store),
		obs:         obs,
	}
}

// Source describes where documents are read from, e.g. "fs:./data" or "s3://bucket/prefix".
func (c *Client) Source() string { return c.feed.SourceName() }

// Ping checks that the document source is reachable.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.feed.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Load reads both documents and replaces the in-memory snapshot.
// On error the previous snapshot stays in place.
func (c *Client) Load(ctx context.Context) (res LoadResult, err error) {
	start := time.Now()
	defer func() {
		c.obs.observe("load", start, err, "epochs", res.Epochs, "sightings", res.Sightings)
	}()

	r, err := c.loadSvc.Load(ctx)
	if err != nil {
		return LoadResult{}, fmt.Errorf("load: %w", err)
	}
	c.obs.loaded(r.Epochs, r.Sightings)
	return loadResultFromUC(r), nil
}

// Loaded reports whether both collections are in memory and non-empty.
func (c *Client) Loaded() bool { return c.data.Loaded() }
