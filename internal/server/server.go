// Package server exposes the filter over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vrfilter/internal/deathrecord"
	"vrfilter/internal/diagnostic"
	"vrfilter/internal/mapping"
	"vrfilter/internal/message"
)

// maxBodyBytes bounds the size of one envelope.
const maxBodyBytes = 4 << 20

// Envelope is the envelope type served by the handler.
type Envelope = message.Envelope[deathrecord.DeathRecord]

// Filter defines the filter operations the handler needs.
type Filter interface {
	FilterWithDiagnostics(env Envelope) (Envelope, diagnostic.Diagnostics)
	AllowedProperties() mapping.AllowedPropertySet
}

// Handler wires the filter endpoints to a Filter.
type Handler struct {
	filter   Filter
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// New constructs a Handler. gatherer may be nil to disable /metrics.
func New(filter Filter, logger *slog.Logger, gatherer prometheus.Gatherer) *Handler {
	return &Handler{
		filter:   filter,
		logger:   logger,
		gatherer: gatherer,
	}
}

// Router returns a chi router with all endpoints mounted.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	h.Register(r)

	return r
}

// Register mounts the endpoints on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.HandleHealth)
	r.Get("/v1/allowed", h.HandleAllowed)
	r.Post("/v1/filter", h.HandleFilter)

	if h.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}
}

// NewHTTPServer builds an HTTP server with sane defaults for this project.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// HandleHealth handles GET /healthz.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleAllowed handles GET /v1/allowed.
func (h *Handler) HandleAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"paths": h.filter.AllowedProperties().Strings()})
}

// HandleFilter handles POST /v1/filter.
func (h *Handler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	w.Header().Set("X-Request-ID", requestID)

	var env Envelope

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&env); err != nil {
		status := http.StatusBadRequest

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		} else if errors.Is(err, io.EOF) {
			err = errors.New("empty request body")
		}

		h.logger.WarnContext(ctx, "invalid envelope", "request_id", requestID, "error", err)
		writeError(w, status, err)

		return
	}

	if err := env.Validate(); err != nil {
		h.logger.WarnContext(ctx, "invalid envelope", "request_id", requestID, "error", err)
		writeError(w, http.StatusUnprocessableEntity, err)

		return
	}

	out, diags := h.filter.FilterWithDiagnostics(env)
	if diags.Len() > 0 {
		w.Header().Set("X-Filter-Skipped-Paths", strconv.Itoa(diags.Len()))
	}

	h.logger.InfoContext(ctx, "envelope filtered",
		"request_id", requestID,
		"message_id", env.ID,
		"kind", env.Kind.String(),
		"skipped_paths", diags.Len(),
	)

	writeJSON(w, http.StatusOK, out)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
