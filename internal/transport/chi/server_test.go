package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/isstracker/internal/repository/dataset"
	"github.com/kailas-cloud/isstracker/internal/repository/feed"
	"github.com/kailas-cloud/isstracker/internal/source/fs"
	epochuc "github.com/kailas-cloud/isstracker/internal/usecase/epoch"
	healthuc "github.com/kailas-cloud/isstracker/internal/usecase/health"
	loaduc "github.com/kailas-cloud/isstracker/internal/usecase/load"
	sightinguc "github.com/kailas-cloud/isstracker/internal/usecase/sighting"
)

const testOEM = `<?xml version="1.0" encoding="UTF-8"?>
<ndm>
  <oem id="CCSDS_OEM_VERS" version="2.0">
    <body>
      <segment>
        <data>
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

const testPasses = `<?xml version="1.0" encoding="UTF-8"?>
<visible_passes>
  <visible_pass>
    <country>US</country><region>CA</region><city>Los_Angeles</city>
    <spacecraft>ISS</spacecraft><sighting_date>Thu Feb 17/06:30 AM</sighting_date>
    <duration_minutes>4</duration_minutes><max_elevation>37</max_elevation>
    <enters>10 above SW</enters><exits>18 above NE</exits>
    <utc_offset>-8.0</utc_offset><utc_time>14:30</utc_time><utc_date>Feb 17, 2022</utc_date>
  </visible_pass>
  <visible_pass>
    <country>US</country><region>TX</region><city>Austin</city><spacecraft>ISS</spacecraft>
  </visible_pass>
  <visible_pass>
    <country>US</country><region>CA</region><city>San_Francisco</city><spacecraft>ISS</spacecraft>
  </visible_pass>
  <visible_pass>
    <country>US</country><region>CA</region><city>Los_Angeles</city><spacecraft>ISS</spacecraft>
  </visible_pass>
  <visible_pass>
    <country>US</country><region>NY</region><city>New York</city><spacecraft>ISS</spacecraft>
  </visible_pass>
  <visible_pass>
    <country>Mexico</country><region>CA</region><city>Tijuana</city><spacecraft>ISS</spacecraft>
  </visible_pass>
</visible_passes>`

type testEnv struct {
	dir    string
	store  *dataset.Store
	router http.Handler
}

func writeDocs(t *testing.T, dir string) {
	t.Helper()
	writeDocsWith(t, dir, testPasses)
}

func writeDocsWith(t *testing.T, dir, passes string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, feed.DefaultEpochDocument), []byte(testOEM), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, feed.DefaultSightingDocument), []byte(passes), 0o600); err != nil {
		t.Fatal(err)
	}
}

func newTestEnv(t *testing.T, dir string) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	store := dataset.New()
	repo := feed.New(fs.New(dir), "", "")

	server := NewServer(
		epochuc.New(store),
		sightinguc.New(store),
		loaduc.New(repo, store, logger),
		healthuc.New(repo, store),
		store,
		logger,
	).WithLoadTimeout(5 * time.Second)

	return &testEnv{dir: dir, store: store, router: NewRouter(server, logger)}
}

func (e *testEnv) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) mustLoad(t *testing.T) {
	t.Helper()
	w := e.do(http.MethodPost, "/load")
	if w.Code != http.StatusOK {
		t.Fatalf("load: expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func loadedEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	writeDocs(t, dir)
	env := newTestEnv(t, dir)
	env.mustLoad(t)
	return env
}

func decodeStrings(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q (body %q)", ct, w.Body.String())
	}
	var out []string
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func decodeSightings(t *testing.T, w *httptest.ResponseRecorder) []SightingResponse {
	t.Helper()
	var out []SightingResponse
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestQueryRoutes_NotLoaded(t *testing.T) {
	env := newTestEnv(t, t.TempDir())

	routes := []string{
		"/epochs",
		"/epochs/2022-042T12:00:00.000Z",
		"/countries",
		"/countries/US",
		"/countries/US/regions",
		"/countries/US/regions/CA",
		"/countries/US/regions/CA/cities",
		"/countries/US/regions/CA/cities/Los_Angeles",
		"/epochs/%25",
		"/countries/100%25",
		"/countries/100%25/regions/%2541/cities/A%2FB",
	}
	for _, route := range routes {
		t.Run(route, func(t *testing.T) {
			w := env.do(http.MethodGet, route)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if w.Body.String() != notLoadedText {
				t.Errorf("expected warning, got %q", w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
				t.Errorf("expected text/plain, got %q", ct)
			}
		})
	}
}

func TestHelp(t *testing.T) {
	env := newTestEnv(t, t.TempDir())

	w := env.do(http.MethodGet, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"ISS TRACKER", "/load", "/epochs/<epoch>", "/countries/<country>/regions/<region>/cities/<city>"} {
		if !strings.Contains(body, want) {
			t.Errorf("help text missing %q", want)
		}
	}
}

func TestLoad_GETInstructions(t *testing.T) {
	env := newTestEnv(t, t.TempDir())

	w := env.do(http.MethodGet, "/load")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != loadWithGETText {
		t.Errorf("unexpected body %q", w.Body.String())
	}
	if env.store.Loaded() {
		t.Error("GET /load must not load data")
	}
}

func TestLoad_POST(t *testing.T) {
	dir := t.TempDir()
	writeDocs(t, dir)
	env := newTestEnv(t, dir)

	w := env.do(http.MethodPost, "/load")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != loadedText {
		t.Errorf("unexpected body %q", w.Body.String())
	}
	if !env.store.Loaded() {
		t.Error("expected data loaded")
	}
}

func TestLoad_MissingDocuments(t *testing.T) {
	env := newTestEnv(t, t.TempDir())

	w := env.do(http.MethodPost, "/load")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrorResponseCodeInternalError {
		t.Errorf("expected internal_error, got %q", resp.Code)
	}
	if env.store.Loaded() {
		t.Error("failed load must not mark data loaded")
	}
}

func TestLoad_FailureKeepsPreviousSnapshot(t *testing.T) {
	env := loadedEnv(t)

	if err := os.WriteFile(filepath.Join(env.dir, feed.DefaultSightingDocument), []byte("<visible_passes>"), 0o600); err != nil {
		t.Fatal(err)
	}
	w := env.do(http.MethodPost, "/load")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	got := decodeStrings(t, env.do(http.MethodGet, "/countries"))
	if !reflect.DeepEqual(got, []string{"US", "Mexico"}) {
		t.Errorf("previous snapshot lost: %v", got)
	}
}

func TestEpochs(t *testing.T) {
	env := loadedEnv(t)

	got := decodeStrings(t, env.do(http.MethodGet, "/epochs"))
	want := []string{"2022-042T12:00:00.000Z", "2022-042T12:04:00.000Z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEpoch_Found(t *testing.T) {
	env := loadedEnv(t)

	w := env.do(http.MethodGet, "/epochs/2022-042T12:00:00.000Z")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var raw []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected 1 record, got %d", len(raw))
	}
	if raw[0]["EPOCH"] != "2022-042T12:00:00.000Z" {
		t.Errorf("unexpected EPOCH %v", raw[0]["EPOCH"])
	}
	x, ok := raw[0]["X"].(map[string]any)
	if !ok {
		t.Fatalf("expected X object, got %T", raw[0]["X"])
	}
	if x["@units"] != "km" || x["#text"] != "-4945.2" {
		t.Errorf("unexpected X %v", x)
	}
	zdot, _ := raw[0]["Z_DOT"].(map[string]any)
	if zdot["@units"] != "km/s" || zdot["#text"] != "2.91" {
		t.Errorf("unexpected Z_DOT %v", zdot)
	}
}

func TestEpoch_Unknown(t *testing.T) {
	env := loadedEnv(t)

	w := env.do(http.MethodGet, "/epochs/nope")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("expected [], got %q", w.Body.String())
	}
}

func TestCountries(t *testing.T) {
	env := loadedEnv(t)

	got := decodeStrings(t, env.do(http.MethodGet, "/countries"))
	if !reflect.DeepEqual(got, []string{"US", "Mexico"}) {
		t.Errorf("got %v", got)
	}
}

func TestCountry(t *testing.T) {
	env := loadedEnv(t)

	got := decodeSightings(t, env.do(http.MethodGet, "/countries/Mexico"))
	if len(got) != 1 || got[0].City != "Tijuana" {
		t.Errorf("unexpected sightings %+v", got)
	}
}

func TestRegions(t *testing.T) {
	env := loadedEnv(t)

	got := decodeStrings(t, env.do(http.MethodGet, "/countries/US/regions"))
	if !reflect.DeepEqual(got, []string{"CA", "TX", "NY"}) {
		t.Errorf("got %v", got)
	}
}

func TestRegion(t *testing.T) {
	env := loadedEnv(t)

	got := decodeSightings(t, env.do(http.MethodGet, "/countries/US/regions/CA"))
	if len(got) != 3 {
		t.Fatalf("expected 3 sightings, got %d", len(got))
	}
	for _, s := range got {
		if s.Country != "US" || s.Region != "CA" {
			t.Errorf("sighting outside US/CA: %+v", s)
		}
	}
	if got[0].DurationMinutes != "4" || got[0].UTCDate != "Feb 17, 2022" {
		t.Errorf("record fields not carried through: %+v", got[0])
	}
}

func TestCities_Hierarchical(t *testing.T) {
	env := loadedEnv(t)

	got := decodeStrings(t, env.do(http.MethodGet, "/countries/US/regions/CA/cities"))
	want := []string{"Los_Angeles", "San_Francisco"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCities_RegionScopedToCountry(t *testing.T) {
	env := loadedEnv(t)

	got := decodeStrings(t, env.do(http.MethodGet, "/countries/Mexico/regions/CA/cities"))
	if !reflect.DeepEqual(got, []string{"Tijuana"}) {
		t.Errorf("got %v", got)
	}
}

func TestCity(t *testing.T) {
	env := loadedEnv(t)

	got := decodeSightings(t, env.do(http.MethodGet, "/countries/US/regions/CA/cities/Los_Angeles"))
	if len(got) != 2 {
		t.Fatalf("expected 2 sightings, got %d", len(got))
	}
}

func TestCity_PercentEncoded(t *testing.T) {
	env := loadedEnv(t)

	got := decodeSightings(t, env.do(http.MethodGet, "/countries/US/regions/NY/cities/New%20York"))
	if len(got) != 1 || got[0].City != "New York" {
		t.Errorf("unexpected sightings %+v", got)
	}
}

const escapedPasses = `<visible_passes>
  <visible_pass><country>US</country><region>CA</region><city>Atown</city></visible_pass>
  <visible_pass><country>US</country><region>CA</region><city>%41town</city></visible_pass>
  <visible_pass><country>US</country><region>CA</region><city>100%</city></visible_pass>
  <visible_pass><country>A/B</country><region>CA</region><city>Slash</city></visible_pass>
</visible_passes>`

func TestCity_DecodedExactlyOnce(t *testing.T) {
	dir := t.TempDir()
	writeDocsWith(t, dir, escapedPasses)
	env := newTestEnv(t, dir)
	env.mustLoad(t)

	tests := []struct {
		target string
		city   string
	}{
		{"/countries/US/regions/CA/cities/%2541town", "%41town"},
		{"/countries/US/regions/CA/cities/%41town", "Atown"},
		{"/countries/US/regions/CA/cities/Atown", "Atown"},
		{"/countries/US/regions/CA/cities/100%25", "100%"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got := decodeSightings(t, env.do(http.MethodGet, tt.target))
			if len(got) != 1 || got[0].City != tt.city {
				t.Errorf("expected one sighting in %q, got %+v", tt.city, got)
			}
		})
	}
}

func TestCountry_EncodedSlash(t *testing.T) {
	dir := t.TempDir()
	writeDocsWith(t, dir, escapedPasses)
	env := newTestEnv(t, dir)
	env.mustLoad(t)

	got := decodeSightings(t, env.do(http.MethodGet, "/countries/A%2FB"))
	if len(got) != 1 || got[0].City != "Slash" {
		t.Errorf("unexpected sightings %+v", got)
	}
}

func TestSighting_AbsentElementsOmitted(t *testing.T) {
	env := loadedEnv(t)

	w := env.do(http.MethodGet, "/countries/US/regions/TX/cities/Austin")
	var raw []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected 1 record, got %d", len(raw))
	}
	if raw[0]["city"] != "Austin" || raw[0]["spacecraft"] != "ISS" {
		t.Errorf("unexpected record %v", raw[0])
	}
	for _, key := range []string{"sighting_date", "utc_date", "max_elevation"} {
		if _, ok := raw[0][key]; ok {
			t.Errorf("absent element %q must be omitted", key)
		}
	}
}

func TestUnknownKeysReturnEmptyArray(t *testing.T) {
	env := loadedEnv(t)

	routes := []string{
		"/countries/Atlantis",
		"/countries/Atlantis/regions",
		"/countries/US/regions/ZZ",
		"/countries/US/regions/ZZ/cities",
		"/countries/US/regions/CA/cities/Nowhere",
	}
	for _, route := range routes {
		t.Run(route, func(t *testing.T) {
			w := env.do(http.MethodGet, route)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if strings.TrimSpace(w.Body.String()) != "[]" {
				t.Errorf("expected [], got %q", w.Body.String())
			}
		})
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, t.TempDir())

	w := env.do(http.MethodGet, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected ok, got %q", resp.Status)
	}
	if resp.Checks["source"] != "ok" || resp.Checks["dataset"] != "not_loaded" {
		t.Errorf("unexpected checks %v", resp.Checks)
	}
}

func TestHealth_SourceDown(t *testing.T) {
	env := newTestEnv(t, filepath.Join(t.TempDir(), "missing"))

	w := env.do(http.MethodGet, "/health")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := loadedEnv(t)
	env.do(http.MethodGet, "/countries")

	w := env.do(http.MethodGet, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "isstracker_http_requests_total") {
		t.Error("expected http request metrics in exposition")
	}
}

func TestRouterDefaults(t *testing.T) {
	env := newTestEnv(t, t.TempDir())

	if w := env.do(http.MethodGet, "/satellites"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if w := env.do(http.MethodPut, "/load"); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestJSONRecoverer(t *testing.T) {
	h := JSONRecoverer(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrorResponseCodeInternalError {
		t.Errorf("expected internal_error, got %q", resp.Code)
	}
}

func TestWideEvent_CanonicalLine(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	env := newTestEnv(t, t.TempDir())
	server := NewServer(
		epochuc.New(env.store),
		sightinguc.New(env.store),
		loaduc.New(feed.New(fs.New(env.dir), "", ""), env.store, logger),
		healthuc.New(nil, env.store),
		env.store,
		logger,
	)
	router := NewRouter(server, logger)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/epochs", nil))

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 canonical line, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/epochs" || fields["method"] != http.MethodGet {
		t.Errorf("unexpected fields %v", fields)
	}
	if fields["request_id"] == "" || fields["request_id"] == nil {
		t.Error("expected request_id field")
	}
	if fields["status"] != int64(http.StatusOK) {
		t.Errorf("expected status 200, got %v", fields["status"])
	}
}
