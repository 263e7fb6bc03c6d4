// Package http provides the local review web server. It exposes a JSON API
// for listing draft folders, previewing them, and triggering publication,
// plus multipart upload and article generation endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gold9-app/autopress"
)

// Server serves the review UI API. Each request owns its own resources;
// concurrent publishes of different drafts are safe but not coordinated.
type Server struct {
	router chi.Router
	server *http.Server

	Drafts    autopress.DraftStore
	Publisher autopress.Publisher
	Inspector autopress.Inspector
	Converter autopress.Converter

	// Generator and History are optional; their endpoints return
	// EUNAVAILABLE when unset.
	Generator autopress.Generator
	History   autopress.HistoryService

	// SiteName feeds the SEO preview.
	SiteName string

	// UIPassword, when set, must match the X-App-Password header on every
	// /api request.
	UIPassword string

	Logger *slog.Logger
}

// NewServer creates a Server with its routes registered. Service fields
// must be set before serving.
func NewServer() *Server {
	s := &Server{router: chi.NewRouter()}

	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handleIndex)
	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Group(func(r chi.Router) {
		r.Use(s.requirePassword)

		r.Get("/api/folders", s.handleListFolders)
		r.Get("/api/folders/{name}/preview", s.handlePreviewFolder)
		r.Post("/api/publish", s.handlePublish)
		r.Post("/api/upload", s.handleUpload)
		r.Post("/api/generate", s.handleGenerate)
		r.Get("/api/history", s.handleHistory)
	})

	return s
}

// Router returns the handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe serves the API on addr until Close is called.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.server.ListenAndServe()
}

// Close shuts the server down gracefully.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// requirePassword enforces the optional app-level password on API routes.
func (s *Server) requirePassword(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.UIPassword != "" && r.Header.Get("X-App-Password") != s.UIPassword {
			s.writeError(w, autopress.Errorf(autopress.EUNAUTHORIZED, "invalid app password"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// errorStatusCodes maps domain error codes to HTTP status codes.
var errorStatusCodes = map[string]int{
	autopress.EINVALID:      http.StatusBadRequest,
	autopress.ENOTFOUND:     http.StatusNotFound,
	autopress.EUNAUTHORIZED: http.StatusUnauthorized,
	autopress.EUNAVAILABLE:  http.StatusInternalServerError,
	autopress.EINTERNAL:     http.StatusInternalServerError,
}

func errorStatus(err error) int {
	if code, ok := errorStatusCodes[autopress.ErrorCode(err)]; ok {
		return code
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// writeError reports a failure as {ok:false, error} with the mapped status.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	if s.Logger != nil && errorStatus(err) >= 500 {
		s.Logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, errorStatus(err), errorResponse{OK: false, Error: autopress.ErrorMessage(err)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && s.Logger != nil {
		s.Logger.Error("encode response", "err", err)
	}
}
