// Package httphandler is the JSON API driving adapter.
package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ericfisherdev/guestwifi/internal/application"
	"github.com/ericfisherdev/guestwifi/internal/domain/model"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	passwordSvc *application.PasswordService
	gatherer    prometheus.Gatherer
	logger      *slog.Logger
}

// NewHandler creates a Handler. gatherer may be nil, in which case /metrics
// is not registered.
func NewHandler(
	passwordSvc *application.PasswordService,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		passwordSvc: passwordSvc,
		gatherer:    gatherer,
		logger:      logger,
	}
}

// RegisterAPIRoutes registers all JSON API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("GET /api/v1/password", NoStore(h.CurrentPassword))
	mux.HandleFunc("GET /api/v1/wifi", NoStore(h.WiFi))

	if h.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}
}

// NewServeMux creates an http.Handler with the API routes registered and
// wrapped with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterAPIRoutes(mux, h)
	return ApplyMiddleware(mux, logger)
}

// Health reports that the process is serving requests.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// CurrentPassword returns today's password. Lookup failures are returned as
// display data with status 200; the guest page renders them as states.
func (h *Handler) CurrentPassword(w http.ResponseWriter, r *http.Request) {
	result := h.passwordSvc.CurrentPassword(r.Context())
	h.logErrorState(r, result)
	writeJSON(w, http.StatusOK, toPasswordResponse(result))
}

// WiFi returns the guest network description and today's QR payload.
func (h *Handler) WiFi(w http.ResponseWriter, r *http.Request) {
	result := h.passwordSvc.CurrentPassword(r.Context())
	h.logErrorState(r, result)
	writeJSON(w, http.StatusOK, toWiFiResponse(h.passwordSvc.Network(), result))
}

func (h *Handler) logErrorState(r *http.Request, result model.LookupResult) {
	if !result.HasError() {
		return
	}
	h.logger.Info("served lookup error state",
		"path", r.URL.Path,
		"state", result.ErrorState,
		"date", result.Date,
	)
}
