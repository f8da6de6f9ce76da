// Package mockservice is an in-process stand-in for the citizen registration
// service. It answers with the same status codes and feedback bodies the real
// service has been observed to return, so the suite can run without network access.
package mockservice

import (
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	contract "regsuite/contracts/registration"
	"regsuite/internal/platform/health"
	"regsuite/internal/platform/middleware"
	"regsuite/internal/registration/feedback"
	"regsuite/internal/registration/models"
	"regsuite/pkg/domain"
	dErrors "regsuite/pkg/domain-errors"
	"regsuite/pkg/platform/httputil"
)

// ServiceName identifies the fake in health responses.
const ServiceName = "mock-registration"

// Service stores registrations in memory keyed by citizen ID.
type Service struct {
	logger   *slog.Logger
	now      func() time.Time
	latency  time.Duration
	registry *prometheus.Registry

	registrations *prometheus.CounterVec
	stored        prometheus.Gauge

	draining atomic.Bool

	mu      sync.RWMutex
	records map[domain.CitizenID]contract.Registration
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock replaces time.Now for age checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLatency delays every registration response, for exercising client timeouts.
func WithLatency(d time.Duration) Option {
	return func(s *Service) {
		s.latency = d
	}
}

// New creates an empty Service.
func New(opts ...Option) *Service {
	s := &Service{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
		registry: prometheus.NewRegistry(),
		records:  make(map[domain.CitizenID]contract.Registration),
	}
	for _, opt := range opts {
		opt(s)
	}

	factory := promauto.With(s.registry)
	s.registrations = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "mock_registration_attempts_total",
		Help: "Registration attempts by outcome (accepted or the rejection reason)",
	}, []string{"outcome"})
	s.stored = factory.NewGauge(prometheus.GaugeOpts{
		Name: "mock_registration_records",
		Help: "Current number of stored registrations",
	})
	return s
}

// Router returns the HTTP handler for the service.
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(s.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.BodyLimit(middleware.DefaultMaxBodyBytes))
	r.Use(middleware.Logger(s.logger))

	r.Route(contract.PathRegistration, func(r chi.Router) {
		r.Use(s.simulateLatency)
		r.Post("/", s.handleRegister)
		r.Get("/{citizen_id}", s.handleGet)
		r.Delete("/{citizen_id}", s.handleDelete)
	})
	h := health.New(ServiceName, contract.ContractVersion, s.now)
	h.RegisterCheck("registrations", s.acceptingRegistrations)
	h.Register(r)
	r.Handle(contract.PathMetrics, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// Len returns the number of stored registrations.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Has reports whether id is registered.
func (s *Service) Has(id domain.CitizenID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[id]
	return ok
}

// Drain marks the service as shutting down. Readiness fails from then on
// while in-flight and new requests are still answered.
func (s *Service) Drain() {
	s.draining.Store(true)
}

func (s *Service) acceptingRegistrations() error {
	if s.draining.Load() {
		return dErrors.New(dErrors.CodeUnavailable, "draining")
	}
	return nil
}

// Reset drops every registration.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[domain.CitizenID]contract.Registration)
	s.stored.Set(0)
}

func (s *Service) simulateLatency(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.latency > 0 {
			timer := time.NewTimer(s.latency)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-r.Context().Done():
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Service) handleRegister(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if reason := validate(q, s.now()); reason != "" {
		s.registrations.WithLabelValues(reason).Inc()
		httputil.WriteBody(w, http.StatusOK, feedback.Golden(reason))
		return
	}

	// The remote's handling of a malformed is_risk was never observed; store false.
	rawRisk := q.Get(contract.ParamIsRisk)
	risk, err := models.ParseBool(rawRisk)
	if err != nil && rawRisk != "" {
		s.logger.DebugContext(r.Context(), "unparseable is_risk stored as false",
			"is_risk", rawRisk,
		)
	}
	rec := contract.Registration{
		Name:        q.Get(contract.ParamName),
		Surname:     q.Get(contract.ParamSurname),
		CitizenID:   q.Get(contract.ParamCitizenID),
		BirthDate:   q.Get(contract.ParamBirthDate),
		Occupation:  q.Get(contract.ParamOccupation),
		Address:     q.Get(contract.ParamAddress),
		PhoneNumber: q.Get(contract.ParamPhoneNumber),
		IsRisk:      risk,
	}

	s.mu.Lock()
	s.records[domain.CitizenID(rec.CitizenID)] = rec
	s.stored.Set(float64(len(s.records)))
	s.mu.Unlock()

	s.registrations.WithLabelValues("accepted").Inc()
	httputil.WriteBody(w, http.StatusCreated, feedback.Success())
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	id := domain.CitizenID(chi.URLParam(r, "citizen_id"))

	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()

	if !ok {
		httputil.WriteBody(w, http.StatusNotFound, feedback.Encode("citizen not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rec)
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := domain.CitizenID(chi.URLParam(r, "citizen_id"))

	s.mu.Lock()
	_, ok := s.records[id]
	delete(s.records, id)
	s.stored.Set(float64(len(s.records)))
	s.mu.Unlock()

	if !ok {
		httputil.WriteBody(w, http.StatusNotFound, feedback.Encode("citizen not found"))
		return
	}
	httputil.WriteBody(w, http.StatusOK, feedback.Encode("registration removed"))
}
