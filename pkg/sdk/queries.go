package isstracker

import (
	"context"
	"time"
)

// Epochs lists every EPOCH timestamp in document order.
func (c *Client) Epochs(ctx context.Context) (_ []string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("epochs", start, err) }()

	return c.epochSvc.List(ctx)
}

// Epoch returns the state vectors recorded at epoch. Unknown epochs yield an empty slice.
func (c *Client) Epoch(ctx context.Context, epoch string) (_ []Epoch, err error) {
	start := time.Now()
	defer func() { c.obs.observe("epoch", start, err, "epoch", epoch) }()

	epochs, err := c.epochSvc.Get(ctx, epoch)
	if err != nil {
		return nil, err
	}
	return epochsFromDomain(epochs), nil
}

// Countries lists every country with a sighting, in document order.
func (c *Client) Countries(ctx context.Context) (_ []string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("countries", start, err) }()

	return c.sightingSvc.Countries(ctx)
}

// Country returns every sighting in country.
func (c *Client) Country(ctx context.Context, country string) (_ []Sighting, err error) {
	start := time.Now()
	defer func() { c.obs.observe("country", start, err, "country", country) }()

	passes, err := c.sightingSvc.Country(ctx, country)
	if err != nil {
		return nil, err
	}
	return sightingsFromDomain(passes), nil
}

// Regions lists the regions of country.
func (c *Client) Regions(ctx context.Context, country string) (_ []string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("regions", start, err, "country", country) }()

	return c.sightingSvc.Regions(ctx, country)
}

// Region returns every sighting in region of country.
func (c *Client) Region(ctx context.Context, country, region string) (_ []Sighting, err error) {
	start := time.Now()
	defer func() { c.obs.observe("region", start, err, "country", country, "region", region) }()

	passes, err := c.sightingSvc.Region(ctx, country, region)
	if err != nil {
		return nil, err
	}
	return sightingsFromDomain(passes), nil
}

// Cities lists the cities of region in country.
func (c *Client) Cities(ctx context.Context, country, region string) (_ []string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("cities", start, err, "country", country, "region", region) }()

	return c.sightingSvc.Cities(ctx, country, region)
}

// City returns every sighting in city.
func (c *Client) City(ctx context.Context, country, region, city string) (_ []Sighting, err error) {
	start := time.Now()
	defer func() {
		c.obs.observe("city", start, err, "country", country, "region", region, "city", city)
	}()

	passes, err := c.sightingSvc.City(ctx, country, region, city)
	if err != nil {
		return nil, err
	}
	return sightingsFromDomain(passes), nil
}
