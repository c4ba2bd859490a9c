// Package httpapi exposes the reference store over the YouQuote REST
// contract.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/youquote/internal/logging"
	"github.com/dmitrijs2005/youquote/internal/server/store"
	"github.com/dmitrijs2005/youquote/internal/validation"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address       string
	store         *store.Store
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
	validate      *validation.Validator
}

func NewServer(a string, l logging.Logger, st *store.Store, secretKey string, tokenValidity time.Duration) *Server {
	return &Server{
		address:       a,
		logger:        l.With("module", "http_server"),
		store:         st,
		jwtSecret:     []byte(secretKey),
		tokenValidity: tokenValidity,
		validate:      validation.New(),
	}
}

// Routes builds the router. Everything under /admin requires a bearer
// token of an admin account.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found.", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed.", nil)
	})

	r.Post("/login", s.login)
	r.Post("/register", s.register)

	r.Get("/quotes", s.listQuotes)
	r.Get("/quotes/{id}", s.getQuote)
	r.Get("/authors", s.listAuthors)
	r.Get("/authors/{id}", s.getAuthor)

	r.Route("/admin", func(r chi.Router) {
		r.Use(s.authenticate)
		r.Use(s.requireAdmin)

		r.Get("/users", s.listUsers)
		r.Patch("/users/{id}/role", s.changeRole)
		r.Delete("/users/{id}", s.deleteUser)

		r.Get("/quotes", s.listActive)
		r.Get("/quotes/deleted", s.listDeleted)
		r.Post("/quotes/restore-all", s.restoreAll)
		r.Delete("/quotes/force-delete-all", s.purgeAll)
		r.Delete("/quotes/{id}", s.deleteQuote)
		r.Post("/quotes/{id}/restore", s.restoreQuote)
		r.Delete("/quotes/{id}/force", s.purgeQuote)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
