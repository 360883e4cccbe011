package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rickgao/playerdata-source/internal/database"
	"github.com/rickgao/playerdata-source/internal/source"
)

const pingTimeout = 5 * time.Second

// RequestIDHeader carries the request ID. Incoming values are kept;
// otherwise a new one is generated.
const RequestIDHeader = "X-Request-Id"

type loggerKey struct{}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves health, metrics and record routes.
type Handler struct {
	db      Pinger
	sources *source.Sources
	logger  *slog.Logger
	mux     *http.ServeMux
}

// NewHandler builds the HTTP handler. Metrics are served from gatherer at
// metricsPath.
func NewHandler(db Pinger, sources *source.Sources, gatherer prometheus.Gatherer, metricsPath string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	h := &Handler{
		db:      db,
		sources: sources,
		logger:  logger,
		mux:     http.NewServeMux(),
	}

	h.mux.HandleFunc("GET /health", h.health)
	h.mux.HandleFunc("GET /v1/players", h.allPlayers)
	h.mux.HandleFunc("GET /v1/players/{kind}", h.players)
	h.mux.Handle("GET "+metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(RequestIDHeader, id)

	log := h.logger.With("request_id", id, "path", r.URL.Path)
	h.mux.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), loggerKey{}, log)))
}

func (h *Handler) requestLogger(r *http.Request) *slog.Logger {
	if log, ok := r.Context().Value(loggerKey{}).(*slog.Logger); ok {
		return log
	}
	return h.logger
}

type healthResponse struct {
	Status     string         `json:"status"`
	Components map[string]any `json:"components"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	health := healthResponse{
		Status:     "healthy",
		Components: make(map[string]any),
	}

	if err := h.db.Ping(ctx); err != nil {
		health.Status = "unhealthy"
		health.Components["mysql"] = map[string]string{
			"status": "disconnected",
			"error":  err.Error(),
		}
	} else {
		health.Components["mysql"] = "connected"
	}

	status := http.StatusOK
	if health.Status == "unhealthy" {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, r, status, health)
}

func (h *Handler) players(w http.ResponseWriter, r *http.Request) {
	kind, err := source.ParseKind(r.PathValue("kind"))
	if err != nil {
		h.writeError(w, r, http.StatusNotFound, err)
		return
	}

	records, err := h.sources.Fetch(r.Context(), kind)
	if err != nil {
		h.writeError(w, r, statusFor(err), err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, records)
}

func (h *Handler) allPlayers(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sources.FetchAll(r.Context())
	if err != nil {
		h.writeError(w, r, statusFor(err), err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, snap)
}

// statusFor maps a fetch error to a response status.
func statusFor(err error) int {
	if errors.Is(err, database.ErrConnection) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.requestLogger(r).Error("request failed", "status", status, "error", err)
	}
	h.writeJSON(w, r, status, map[string]string{"error": err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.requestLogger(r).Warn("failed to write response", "error", err)
	}
}
