package chi

import (
	"github.com/kailas-cloud/isstracker/internal/domain/epoch"
	"github.com/kailas-cloud/isstracker/internal/domain/sighting"
)

// ErrorResponseCode is a machine-readable error code.
type ErrorResponseCode string

// Error codes.
const (
	ErrorResponseCodeBadRequest    ErrorResponseCode = "bad_request"
	ErrorResponseCodeInternalError ErrorResponseCode = "internal_error"
)

// ErrorResponse is the JSON body of an error response.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// HealthResponse is the JSON body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// QuantityResponse mirrors an XML element with a units attribute: {"@units": "km", "#text": "-4945.2"}.
type QuantityResponse struct {
	Units string `json:"@units,omitempty"`
	Text  string `json:"#text"`
}

// EpochResponse is one state vector, keyed by the OEM element names.
type EpochResponse struct {
	Epoch string           `json:"EPOCH"`
	X     QuantityResponse `json:"X"`
	Y     QuantityResponse `json:"Y"`
	Z     QuantityResponse `json:"Z"`
	XDot  QuantityResponse `json:"X_DOT"`
	YDot  QuantityResponse `json:"Y_DOT"`
	ZDot  QuantityResponse `json:"Z_DOT"`
}

// SightingResponse is one visible pass, keyed by the feed element names.
// Elements absent from the feed are omitted.
type SightingResponse struct {
	Country         string `json:"country,omitempty"`
	Region          string `json:"region,omitempty"`
	City            string `json:"city,omitempty"`
	Spacecraft      string `json:"spacecraft,omitempty"`
	SightingDate    string `json:"sighting_date,omitempty"`
	DurationMinutes string `json:"duration_minutes,omitempty"`
	MaxElevation    string `json:"max_elevation,omitempty"`
	Enters          string `json:"enters,omitempty"`
	Exits           string `json:"exits,omitempty"`
	UTCOffset       string `json:"utc_offset,omitempty"`
	UTCTime         string `json:"utc_time,omitempty"`
	UTCDate         string `json:"utc_date,omitempty"`
}

func quantityToResponse(q epoch.Quantity) QuantityResponse {
	return QuantityResponse{Units: q.Units(), Text: q.Value()}
}

func epochsToResponse(epochs []epoch.Epoch) []EpochResponse {
	out := make([]EpochResponse, len(epochs))
	for i, e := range epochs {
		out[i] = EpochResponse{
			Epoch: e.Epoch(),
			X:     quantityToResponse(e.X()),
			Y:     quantityToResponse(e.Y()),
			Z:     quantityToResponse(e.Z()),
			XDot:  quantityToResponse(e.XDot()),
			YDot:  quantityToResponse(e.YDot()),
			ZDot:  quantityToResponse(e.ZDot()),
		}
	}
	return out
}

func sightingsToResponse(passes []sighting.Sighting) []SightingResponse {
	out := make([]SightingResponse, len(passes))
	for i, s := range passes {
		p := s.Params()
		out[i] = SightingResponse{
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
