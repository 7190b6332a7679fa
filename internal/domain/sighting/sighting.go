package sighting

// Field keys of a sighting record, as named in the visible passes feed.
const (
	FieldCountry         = "country"
	FieldRegion          = "region"
	FieldCity            = "city"
	FieldSpacecraft      = "spacecraft"
	FieldSightingDate    = "sighting_date"
	FieldDurationMinutes = "duration_minutes"
	FieldMaxElevation    = "max_elevation"
	FieldEnters          = "enters"
	FieldExits           = "exits"
	FieldUTCOffset       = "utc_offset"
	FieldUTCTime         = "utc_time"
	FieldUTCDate         = "utc_date"
)

// Params holds the raw values of a visible pass.
type Params struct {
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

// Sighting is a predicted visible ISS pass over a city (immutable value object).
type Sighting struct {
	p Params
}

// New creates a Sighting. No validation: values are kept as published.
func New(p Params) Sighting {
	return Sighting{p: p}
}

// Country returns the country name.
func (s Sighting) Country() string { return s.p.Country }

// Region returns the region (state, province) name.
func (s Sighting) Region() string { return s.p.Region }

// City returns the city name.
func (s Sighting) City() string { return s.p.City }

// Spacecraft returns the spacecraft name.
func (s Sighting) Spacecraft() string { return s.p.Spacecraft }

// SightingDate returns the local sighting date and time.
func (s Sighting) SightingDate() string { return s.p.SightingDate }

// DurationMinutes returns the pass duration in minutes.
func (s Sighting) DurationMinutes() string { return s.p.DurationMinutes }

// MaxElevation returns the maximum elevation in degrees.
func (s Sighting) MaxElevation() string { return s.p.MaxElevation }

// Enters returns where the pass appears.
func (s Sighting) Enters() string { return s.p.Enters }

// Exits returns where the pass disappears.
func (s Sighting) Exits() string { return s.p.Exits }

// UTCOffset returns the local UTC offset in hours.
func (s Sighting) UTCOffset() string { return s.p.UTCOffset }

// UTCTime returns the pass time in UTC.
func (s Sighting) UTCTime() string { return s.p.UTCTime }

// UTCDate returns the pass date in UTC.
func (s Sighting) UTCDate() string { return s.p.UTCDate }

// Params returns a copy of the raw values.
func (s Sighting) Params() Params { return s.p }

// Field returns the value of the named field. Empty values count as absent.
func (s Sighting) Field(key string) (string, bool) {
	var v string
	switch key {
	case FieldCountry:
		v = s.p.Country
	case FieldRegion:
		v = s.p.Region
	case FieldCity:
		v = s.p.City
	case FieldSpacecraft:
		v = s.p.Spacecraft
	case FieldSightingDate:
		v = s.p.SightingDate
	case FieldDurationMinutes:
		v = s.p.DurationMinutes
	case FieldMaxElevation:
		v = s.p.MaxElevation
	case FieldEnters:
		v = s.p.Enters
	case FieldExits:
		v = s.p.Exits
	case FieldUTCOffset:
		v = s.p.UTCOffset
	case FieldUTCTime:
		v = s.p.UTCTime
	case FieldUTCDate:
		v = s.p.UTCDate
	default:
		return "", false
	}
	return v, v != ""
}
