// Package api implements the HTTP surface of the daemon: scans, webhooks,
// cached library listings and the poster image proxy.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vmunix/rustizarr/internal/plex"
	"github.com/vmunix/rustizarr/internal/processor"
	"github.com/vmunix/rustizarr/internal/webhook"
)

// imageCacheControl lets browsers keep proxied thumbnails for a year.
const imageCacheControl = "public, max-age=31536000"

// Config holds API server configuration.
type Config struct {
	LibraryID      string
	ShowsLibraryID string
	Parallel       int
}

// Server is the HTTP API server.
type Server struct {
	deps ServerDeps
	cfg  Config
	log  *slog.Logger
}

// New creates a new API server.
func New(cfg Config, deps ServerDeps) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}
	return &Server{deps: deps, cfg: cfg, log: log.With("component", "api")}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.root)

	// Scans
	mux.HandleFunc("GET /scan", s.scanMovies)
	mux.HandleFunc("GET /scan-shows", s.scanShows)

	// Webhook
	mux.HandleFunc("POST /webhook", s.receiveWebhook)

	// Catalog
	mux.HandleFunc("GET /api/library", s.listMovies)
	mux.HandleFunc("GET /api/shows", s.listShows)
	mux.HandleFunc("POST /api/library/refresh", s.refreshMovies)
	mux.HandleFunc("POST /api/shows/refresh", s.refreshShows)

	// Images
	mux.HandleFunc("GET /api/image/{ratingKey}", s.image)
}

// Handler returns the routes wrapped with CORS and request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return logRequests(cors(mux), s.log)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func writeText(w http.ResponseWriter, code int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(text))
}

func (s *Server) root(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "Rustizarr is running\n")
}

// Scans

func (s *Server) scanMovies(w http.ResponseWriter, r *http.Request) {
	s.scan(w, r, s.deps.Scanner.ScanMovies, s.cfg.LibraryID)
}

func (s *Server) scanShows(w http.ResponseWriter, r *http.Request) {
	s.scan(w, r, s.deps.Scanner.ScanShows, s.cfg.ShowsLibraryID)
}

type scanFunc func(ctx context.Context, libraryID string, parallel int, force bool) (*processor.Report, error)

func (s *Server) scan(w http.ResponseWriter, r *http.Request, run scanFunc, libraryID string) {
	report, err := run(r.Context(), libraryID, s.cfg.Parallel, false)
	if err != nil {
		s.log.Error("scan failed", "library", libraryID, "error", err)
		writeText(w, http.StatusBadGateway, fmt.Sprintf("Plex error: %v\n", err))
		return
	}
	if report.Processed() > 0 {
		s.deps.Catalog.InvalidateAll()
	}
	writeText(w, http.StatusOK, report.String())
}

// Webhook

type webhookResponse struct {
	Status string `json:"status"`
	TaskID string `json:"task_id,omitempty"`
}

func (s *Server) receiveWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := webhook.ParseRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PAYLOAD", err.Error())
		return
	}

	if !payload.Actionable() {
		s.log.Debug("webhook ignored", "event", payload.Event, "type", payload.Metadata.Type)
		writeJSON(w, http.StatusOK, webhookResponse{Status: "ignored"})
		return
	}

	id, ok := s.deps.Webhooks.Dispatch(payload)
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "SHUTTING_DOWN", "server is shutting down")
		return
	}
	s.log.Info("webhook accepted", "task_id", id, "key", payload.Metadata.RatingKey, "type", payload.Metadata.Type)
	writeJSON(w, http.StatusAccepted, webhookResponse{Status: "queued", TaskID: id})
}

// Catalog

func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	s.list(w, r, s.cfg.LibraryID)
}

func (s *Server) listShows(w http.ResponseWriter, r *http.Request) {
	s.list(w, r, s.cfg.ShowsLibraryID)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request, libraryID string) {
	items, err := s.deps.Catalog.Load(r.Context(), libraryID)
	if err != nil {
		s.log.Error("library listing failed", "library", libraryID, "error", err)
		writeError(w, http.StatusBadGateway, "PLEX_ERROR", err.Error())
		return
	}
	if items == nil {
		items = []plex.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

type refreshResponse struct {
	Success   bool   `json:"success"`
	Total     int    `json:"total"`
	Processed int    `json:"processed"`
	Message   string `json:"message"`
}

type refreshError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) refreshMovies(w http.ResponseWriter, r *http.Request) {
	s.refresh(w, r, s.cfg.LibraryID)
}

func (s *Server) refreshShows(w http.ResponseWriter, r *http.Request) {
	s.refresh(w, r, s.cfg.ShowsLibraryID)
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request, libraryID string) {
	items, err := s.deps.Catalog.Refresh(r.Context(), libraryID)
	if err != nil {
		s.log.Error("library refresh failed", "library", libraryID, "error", err)
		writeJSON(w, http.StatusBadGateway, refreshError{Success: false, Error: err.Error()})
		return
	}

	processed := 0
	for i := range items {
		if items[i].HasLabel(processor.ProcessedLabel) {
			processed++
		}
	}
	writeJSON(w, http.StatusOK, refreshResponse{
		Success:   true,
		Total:     len(items),
		Processed: processed,
		Message:   "cache refreshed",
	})
}

// Images

func (s *Server) image(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("ratingKey")

	thumb, err := s.deps.Thumbs.Thumb(r.Context(), key)
	if err != nil {
		if errors.Is(err, plex.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "image not found")
			return
		}
		s.log.Warn("thumbnail proxy failed", "key", key, "error", err)
		writeError(w, http.StatusBadGateway, "PLEX_ERROR", err.Error())
		return
	}

	contentType := thumb.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", imageCacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(thumb.Data)
}
