package isstracker

import (
	"time"

	domepoch "github.com/kailas-cloud/isstracker/internal/domain/epoch"
	domsighting "github.com/kailas-cloud/isstracker/internal/domain/sighting"
	loaduc "github.com/kailas-cloud/isstracker/internal/usecase/load"
)

// Quantity is a numeric value kept as text, with its units ("km", "km/s").
type Quantity struct {
	Value string
	Units string
}

// Epoch is one ISS state vector.
type Epoch struct {
	Epoch string
	X     Quantity
	Y     Quantity
	Z     Quantity
	XDot  Quantity
	YDot  Quantity
	ZDot  Quantity
}

// Sighting is one visible pass over a city. Fields absent from the feed are empty.
type Sighting struct {
	Country         string
	Region          string
	City            string
	Spacecraft      string
	SightingDate    string
	DurationMinutes string
	MaxElevation    string
	Enters          string
	Exits           string
	UTCOffset       string
	UTCTime         string
	UTCDate         string
}

// LoadResult summarizes a completed load.
type LoadResult struct {
	Epochs    int
	Sightings int
	Source    string
	LoadedAt  time.Time
	Duration  time.Duration
}

func loadResultFromUC(r loaduc.Result) LoadResult {
	return LoadResult{
		Epochs:    r.Epochs,
		Sightings: r.Sightings,
		Source:    r.Source,
		LoadedAt:  r.LoadedAt,
		Duration:  r.Duration,
	}
}

func quantityFromDomain(q domepoch.Quantity) Quantity {
	return Quantity{Value: q.Value(), Units: q.Units()}
}

func epochsFromDomain(epochs []domepoch.Epoch) []Epoch {
	out := make([]Epoch, len(epochs))
	for i, e := range epochs {
		out[i] = Epoch{
			Epoch: e.Epoch(),
			X:     quantityFromDomain(e.X()),
			Y:     quantityFromDomain(e.Y()),
			Z:     quantityFromDomain(e.Z()),
			XDot:  quantityFromDomain(e.XDot()),
			YDot:  quantityFromDomain(e.YDot()),
			ZDot:  quantityFromDomain(e.ZDot()),
		}
	}
	return out
}

func sightingsFromDomain(passes []domsighting.Sighting) []Sighting {
	out := make([]Sighting, len(passes))
	for i, s := range passes {
		p := s.Params()
		out[i] = Sighting{
			Country:         p.Country,
			Region:          p.Region,
			City:            p.City,
			Spacecraft:      p.Spacecraft,
			SightingDate:    p.SightingDate,
			DurationMinutes: p.DurationMinutes,
			MaxElevation:    p.MaxElevation,
			Enters:          p.Enters,
			Exits:           p.Exits,
			UTCOffset:       p.UTCOffset,
			UTCTime:         p.UTCTime,
			UTCDate:         p.UTCDate,
		}
	}
	return out
}
