package feed

import (
	"encoding/xml"
	"strings"

	"github.com/kailas-cloud/isstracker/internal/domain/epoch"
	"github.com/kailas-cloud/isstracker/internal/domain/sighting"
)

// oemDocument is the CCSDS Orbit Ephemeris Message wrapped in an <ndm> root.
type oemDocument struct {
	XMLName      xml.Name         `xml:"ndm"`
	StateVectors []stateVectorXML `xml:"oem>body>segment>data>stateVector"`
}

// stateVectorXML is one <stateVector> entry.
type stateVectorXML struct {
	Epoch string      `xml:"EPOCH"`
	X     quantityXML `xml:"X"`
	Y     quantityXML `xml:"Y"`
	Z     quantityXML `xml:"Z"`
	XDot  quantityXML `xml:"X_DOT"`
	YDot  quantityXML `xml:"Y_DOT"`
	ZDot  quantityXML `xml:"Z_DOT"`
}

// quantityXML is a value element with a units attribute, e.g. <X units="km">-4945.2</X>.
type quantityXML struct {
	Units string `xml:"units,attr"`
	Value string `xml:",chardata"`
}

// passesDocument is the visible sightings feed.
type passesDocument struct {
	XMLName xml.Name         `xml:"visible_passes"`
	Passes  []visiblePassXML `xml:"visible_pass"`
}

// visiblePassXML is one <visible_pass> entry.
type visiblePassXML struct {
	Country         string `xml:"country"`
	Region          string `xml:"region"`
	City            string `xml:"city"`
	Spacecraft      string `xml:"spacecraft"`
	SightingDate    string `xml:"sighting_date"`
	DurationMinutes string `xml:"duration_minutes"`
	MaxElevation    string `xml:"max_elevation"`
	Enters          string `xml:"enters"`
	Exits           string `xml:"exits"`
	UTCOffset       string `xml:"utc_offset"`
	UTCTime         string `xml:"utc_time"`
	UTCDate         string `xml:"utc_date"`
}

func (q quantityXML) toDomain() epoch.Quantity {
	return epoch.NewQuantity(strings.TrimSpace(q.Value), strings.TrimSpace(q.Units))
}

// epochFromXML maps a state vector to the domain Epoch.
func epochFromXML(sv stateVectorXML) epoch.Epoch {
	return epoch.New(
		strings.TrimSpace(sv.Epoch),
		[3]epoch.Quantity{sv.X.toDomain(), sv.Y.toDomain(), sv.Z.toDomain()},
		[3]epoch.Quantity{sv.XDot.toDomain(), sv.YDot.toDomain(), sv.ZDot.toDomain()},
	)
}

// sightingFromXML maps a visible pass to the domain Sighting.
func sightingFromXML(p visiblePassXML) sighting.Sighting {
	return sighting.New(sighting.Params{
		Country:         strings.TrimSpace(p.Country),
		Region:          strings.TrimSpace(p.Region),
		City:            strings.TrimSpace(p.City),
		Spacecraft:      strings.TrimSpace(p.Spacecraft),
		SightingDate:    strings.TrimSpace(p.SightingDate),
		DurationMinutes: strings.TrimSpace(p.DurationMinutes),
		MaxElevation:    strings.TrimSpace(p.MaxElevation),
		Enters:          strings.TrimSpace(p.Enters),
		Exits:           strings.TrimSpace(p.Exits),
		UTCOffset:       strings.TrimSpace(p.UTCOffset),
		UTCTime:         strings.TrimSpace(p.UTCTime),
		UTCDate:         strings.TrimSpace(p.UTCDate),
	})
}
