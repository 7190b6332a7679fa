package chi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/isstracker/internal/domain"
	logpkg "github.com/kailas-cloud/isstracker/internal/logger"
	"github.com/kailas-cloud/isstracker/internal/source"
	epochuc "github.com/kailas-cloud/isstracker/internal/usecase/epoch"
	healthuc "github.com/kailas-cloud/isstracker/internal/usecase/health"
	loaduc "github.com/kailas-cloud/isstracker/internal/usecase/load"
	sightinguc "github.com/kailas-cloud/isstracker/internal/usecase/sighting"
)

const defaultLoadTimeout = 30 * time.Second

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// LoadChecker reports whether a complete snapshot is in memory.
type LoadChecker interface {
	Loaded() bool
}

// Server serves the ISS tracker routes.
type Server struct {
	epochs        *epochuc.Service
	sightings     *sightinguc.Service
	loader        *loaduc.Service
	health        *healthuc.Service
	data          LoadChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
	loadTimeout   time.Duration
}

// NewServer creates an HTTP API server.
func NewServer(
	epochs *epochuc.Service,
	sightings *sightinguc.Service,
	loader *loaduc.Service,
	health *healthuc.Service,
	data LoadChecker,
	logger *zap.Logger,
) *Server {
	s := &Server{
		epochs:      epochs,
		sightings:   sightings,
		loader:      loader,
		health:      health,
		data:        data,
		logger:      logger,
		loadTimeout: defaultLoadTimeout,
	}
	s.errorHandlers = []errorHandler{
		notLoadedHandler,
	}
	return s
}

// WithLoadTimeout bounds how long POST /load may spend reading documents.
func (s *Server) WithLoadTimeout(d time.Duration) *Server {
	if d > 0 {
		s.loadTimeout = d
	}
	return s
}

// Routes registers every route on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Help)
	r.Get("/load", s.LoadInstructions)
	r.Post("/load", s.Load)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/epochs", func(r chi.Router) {
		r.Use(s.requireLoaded)
		r.Get("/", s.ListEpochs)
		r.Get("/{epoch}", s.GetEpoch)
	})

	r.Route("/countries", func(r chi.Router) {
		r.Use(s.requireLoaded)
		r.Get("/", s.ListCountries)
		r.Route("/{country}", func(r chi.Router) {
			r.Get("/", s.GetCountry)
			r.Route("/regions", func(r chi.Router) {
				r.Get("/", s.ListRegions)
				r.Route("/{region}", func(r chi.Router) {
					r.Get("/", s.GetRegion)
					r.Route("/cities", func(r chi.Router) {
						r.Get("/", s.ListCities)
						r.Get("/{city}", s.GetCity)
					})
				})
			})
		})
	})
}

// requireLoaded answers with the not-loaded warning before any path parameter is looked at.
// The query services check the snapshot they read as well.
func (s *Server) requireLoaded(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.data.Loaded() {
			writeText(w, http.StatusOK, notLoadedText)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Help handles GET /.
func (s *Server) Help(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, helpText)
}

// LoadInstructions handles GET /load.
func (s *Server) LoadInstructions(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, loadWithGETText)
}

// Load handles POST /load.
func (s *Server) Load(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.loadTimeout)
	defer cancel()

	if _, err := s.loader.Load(ctx); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeText(w, http.StatusOK, loadedText)
}

// ListEpochs handles GET /epochs.
func (s *Server) ListEpochs(w http.ResponseWriter, r *http.Request) {
	names, err := s.epochs.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// GetEpoch handles GET /epochs/{epoch}.
func (s *Server) GetEpoch(w http.ResponseWriter, r *http.Request) {
	r, epoch, ok := s.pathParams(w, r, "epoch")
	if !ok {
		return
	}
	result, err := s.epochs.Get(r.Context(), epoch[0])
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, epochsToResponse(result))
}

// ListCountries handles GET /countries.
func (s *Server) ListCountries(w http.ResponseWriter, r *http.Request) {
	names, err := s.sightings.Countries(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// GetCountry handles GET /countries/{country}.
func (s *Server) GetCountry(w http.ResponseWriter, r *http.Request) {
	r, p, ok := s.pathParams(w, r, "country")
	if !ok {
		return
	}
	passes, err := s.sightings.Country(r.Context(), p[0])
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sightingsToResponse(passes))
}

// ListRegions handles GET /countries/{country}/regions.
func (s *Server) ListRegions(w http.ResponseWriter, r *http.Request) {
	r, p, ok := s.pathParams(w, r, "country")
	if !ok {
		return
	}
	names, err := s.sightings.Regions(r.Context(), p[0])
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// GetRegion handles GET /countries/{country}/regions/{region}.
func (s *Server) GetRegion(w http.ResponseWriter, r *http.Request) {
	r, p, ok := s.pathParams(w, r, "country", "region")
	if !ok {
		return
	}
	passes, err := s.sightings.Region(r.Context(), p[0], p[1])
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sightingsToResponse(passes))
}

// ListCities handles GET /countries/{country}/regions/{region}/cities.
func (s *Server) ListCities(w http.ResponseWriter, r *http.Request) {
	r, p, ok := s.pathParams(w, r, "country", "region")
	if !ok {
		return
	}
	names, err := s.sightings.Cities(r.Context(), p[0], p[1])
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// GetCity handles GET /countries/{country}/regions/{region}/cities/{city}.
func (s *Server) GetCity(w http.ResponseWriter, r *http.Request) {
	r, p, ok := s.pathParams(w, r, "country", "region", "city")
	if !ok {
		return
	}
	passes, err := s.sightings.City(r.Context(), p[0], p[1], p[2])
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sightingsToResponse(passes))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// pathParams binds the named path parameters in order and attaches them to the request logger.
// Writes a 400 and returns false when any of them is malformed.
func (s *Server) pathParams(w http.ResponseWriter, r *http.Request, names ...string) (*http.Request, []string, bool) {
	out := make([]string, len(names))
	for i, name := range names {
		err := runtime.BindStyledParameterWithOptions("simple", name, escapedURLParam(r, name), &out[i],
			runtime.BindStyledParameterOptions{
				ParamLocation: runtime.ParamLocationPath,
				Explode:       false,
				Required:      true,
			})
		if err != nil {
			s.logger.Debug("invalid path parameter", zap.String("param", name), zap.Error(err))
			writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "invalid path parameter "+name)
			return r, nil, false
		}
	}
	return r.WithContext(logpkg.WithPathParams(r.Context(), names, out)), out, true
}

// escapedURLParam returns the raw path segment for name. chi routes on the
// escaped RawPath when it is set and on the decoded Path otherwise, so the
// decoded form is escaped again and the binder unescapes exactly once.
func escapedURLParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath != "" {
		return v
	}
	return url.PathEscape(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotLoaded,
		domain.ErrInvalidDocument,
		source.ErrNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "load timed out"
	}
	return "internal error"
}

// notLoadedHandler answers queries made before the first load with the plain-text warning.
func notLoadedHandler(w http.ResponseWriter, err error, _ string) bool {
	if !errors.Is(err, domain.ErrNotLoaded) {
		return false
	}
	writeText(w, http.StatusOK, notLoadedText)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorResponseCodeInternalError, msg)
}
