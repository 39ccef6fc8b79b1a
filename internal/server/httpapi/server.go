// Package httpapi exposes the gateway's public HTTP/JSON API: health,
// authentication, and read access to the document collections.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Guru-25/FreeFusion/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type HTTPServer struct {
	address        string
	allowedOrigins []string
	logger         logging.Logger
	accounts       AccountService
	documents      DocumentService
}

func NewHTTPServer(address string, allowedOrigins []string, l logging.Logger, as AccountService, ds DocumentService) *HTTPServer {
	return &HTTPServer{
		address:        address,
		allowedOrigins: allowedOrigins,
		logger:         l.With("module", "http_server"),
		accounts:       as,
		documents:      ds,
	}
}

// Router builds the chi router with middleware and all routes registered.
func (s *HTTPServer) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Post("/auth/signin", s.handleSignIn)
	r.Post("/auth/signup", s.handleSignUp)
	r.With(s.bearerAuth).Post("/auth/signout", s.handleSignOut)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.bearerAuth)
		r.Get("/collections/{name}/documents", s.handleDocuments)
	})

	return r
}

// Run starts the HTTP server and blocks until ctx is cancelled or the server
// fails. Cancellation triggers a graceful shutdown.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
