package feed

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/kailas-cloud/isstracker/internal/source"
)

const oemFixture = `<?xml version="1.0" encoding="UTF-8"?>
<ndm xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <oem id="CCSDS_OEM_VERS" version="2.0">
    <header>
      <CREATION_DATE>2022-042T21:18:10.145Z</CREATION_DATE>
      <ORIGINATOR>JSC</ORIGINATOR>
    </header>
    <body>
      <segment>
        <metadata>
          <OBJECT_NAME>ISS</OBJECT_NAME>
          <CENTER_NAME>EARTH</CENTER_NAME>
        </metadata>
        <data>
          <COMMENT>Units are in kg and m^2</COMMENT>
          <stateVector>
            <EPOCH>2022-042T12:00:00.000Z</EPOCH>
            <X units="km">-4945.2</X>
            <Y units="km">2843.6</Y>
            <Z units="km">-3794.9</Z>
            <X_DOT units="km/s">-5.46</X_DOT>
            <Y_DOT units="km/s">-5.42</Y_DOT>
            <Z_DOT units="km/s">2.91</Z_DOT>
          </stateVector>
          <stateVector>
            <EPOCH>2022-042T12:04:00.000Z</EPOCH>
            <X units="km">-5998.9</X>
            <Y units="km">391.8</Y>
            <Z units="km">-3022.3</Z>
            <X_DOT units="km/s">-3.08</X_DOT>
            <Y_DOT units="km/s">-6.60</Y_DOT>
            <Z_DOT units="km/s">5.33</Z_DOT>
          </stateVector>
        </data>
      </segment>
    </body>
  </oem>
</ndm>`

const passesFixture = `<?xml version="1.0" encoding="UTF-8"?>
<visible_passes>
  <visible_pass>
    <country>United_States</country>
    <region>Texas</region>
    <city>Austin</city>
    <spacecraft>ISS</spacecraft>
    <sighting_date>Thu Feb 17/06:30 AM</sighting_date>
    <duration_minutes>4</duration_minutes>
    <max_elevation>37</max_elevation>
    <enters>10 above SW</enters>
    <exits>18 above NE</exits>
    <utc_offset>-6.0</utc_offset>
    <utc_time>12:30</utc_time>
    <utc_date>Feb 17, 2022</utc_date>
  </visible_pass>
  <visible_pass>
    <country>Canada</country>
    <region>Ontario</region>
    <city>Ottawa</city>
    <spacecraft>ISS</spacecraft>
  </visible_pass>
</visible_passes>`

// --- Mock ---

type mockSource struct {
	docs    map[string]string
	openErr error
	pingErr error
	opened  []string
}

func (m *mockSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	m.opened = append(m.opened, name)
	if m.openErr != nil {
		return nil, m.openErr
	}
	body, ok := m.docs[name]
	if !ok {
		return nil, &source.Error{Op: source.OpOpen, Document: name, Err: source.ErrNotFound}
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func (m *mockSource) Ping(_ context.Context) error { return m.pingErr }

func (m *mockSource) Name() string { return "mock" }

func newFixtureSource() *mockSource {
	return &mockSource{docs: map[string]string{
		DefaultEpochDocument:    oemFixture,
		DefaultSightingDocument: passesFixture,
	}}
}

var errBoom = errors.New("boom")
