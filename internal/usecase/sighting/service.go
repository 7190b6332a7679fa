package sighting

import (
	"context"

	"github.com/kailas-cloud/isstracker/internal/domain"
	"github.com/kailas-cloud/isstracker/internal/domain/filter"
	domsighting "github.com/kailas-cloud/isstracker/internal/domain/sighting"
	"github.com/kailas-cloud/isstracker/internal/logger"
)

// Service answers the country → region → city sighting queries.
type Service struct {
	store SnapshotReader
}

// New creates a Service.
func New(store SnapshotReader) *Service {
	return &Service{store: store}
}

// Countries lists every distinct country.
func (s *Service) Countries(ctx context.Context) ([]string, error) {
	passes, err := s.sightings()
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("returning all countries")
	return filter.DistinctValues(passes, domsighting.FieldCountry), nil
}

// Country returns every sighting in the country.
func (s *Service) Country(ctx context.Context, country string) ([]domsighting.Sighting, error) {
	passes, err := s.sightings()
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("returning country data")
	return filter.Matching(passes, domsighting.FieldCountry, country), nil
}

// Regions lists the distinct regions of a country.
func (s *Service) Regions(ctx context.Context, country string) ([]string, error) {
	passes, err := s.sightings()
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("returning all regions")
	inCountry := filter.Matching(passes, domsighting.FieldCountry, country)
	return filter.DistinctValues(inCountry, domsighting.FieldRegion), nil
}

// Region returns every sighting in a region of a country.
func (s *Service) Region(ctx context.Context, country, region string) ([]domsighting.Sighting, error) {
	passes, err := s.sightings()
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("returning region data")
	inCountry := filter.Matching(passes, domsighting.FieldCountry, country)
	return filter.Matching(inCountry, domsighting.FieldRegion, region), nil
}

// Cities lists the distinct cities of a region of a country.
func (s *Service) Cities(ctx context.Context, country, region string) ([]string, error) {
	passes, err := s.sightings()
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("returning all cities")
	return filter.DistinctValues(inRegion(passes, country, region), domsighting.FieldCity), nil
}

// City returns every sighting in a city of a region of a country.
func (s *Service) City(ctx context.Context, country, region, city string) ([]domsighting.Sighting, error) {
	passes, err := s.sightings()
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("returning city data")
	return filter.Matching(inRegion(passes, country, region), domsighting.FieldCity, city), nil
}

// inRegion filters by country and region in one pass.
func inRegion(passes []domsighting.Sighting, country, region string) []domsighting.Sighting {
	return filter.Where(passes,
		filter.Eq(domsighting.FieldCountry, country),
		filter.Eq(domsighting.FieldRegion, region),
	)
}

// sightings returns the sighting collection if the snapshot is fully loaded.
func (s *Service) sightings() ([]domsighting.Sighting, error) {
	ds := s.store.Snapshot()
	if !ds.Loaded() {
		return nil, domain.ErrNotLoaded
	}
	return ds.Sightings(), nil
}
