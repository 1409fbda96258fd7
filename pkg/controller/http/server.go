package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"
	"github.com/talentops/hireboard/pkg/domain/interfaces"
	"github.com/talentops/hireboard/pkg/utils/apperr"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router  chi.Router
	handler *AnalyticsHandler
}

// NewServer creates a new HTTP server mounting the analytics dashboard
func NewServer(ctx context.Context, addr string, analyticsUC interfaces.Analytics) (*Server, error) {
	if analyticsUC == nil {
		return nil, goerr.New("analytics use case is required")
	}

	router := chi.NewRouter()
	handler := NewAnalyticsHandler(analyticsUC)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/analytics", http.StatusFound)
	})
	router.Get("/analytics", handler.HandlePage)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Use(CORS)
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/", handler.HandleDashboard)
			r.Get("/view", handler.HandleView)
			r.Get("/export.xlsx", handler.HandleExport)
		})
	})

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:  router,
		handler: handler,
	}

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "hireboard",
	})
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		apperr.Handle(r.Context(), goerr.Wrap(err, "failed to encode JSON response"),
			"path", r.URL.Path,
		)
	}
}

// writeError logs err and writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	apperr.Handle(r.Context(), err, "path", r.URL.Path, "status", status)

	message := err.Error()
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	}
	writeJSON(w, r, status, map[string]string{
		"error": message,
	})
}
