package server

import (
	"context"
	"net/http"
	"time"

	"naturalli/internal/costs"
	"naturalli/internal/score"
)

// Server is the HTTP status server of a scoring run.
type Server struct {
	// server: embedded HTTP server, fully configured.
	server *http.Server
}

// ListenAndServe blocks serving requests. Returns http.ErrServerClosed after Shutdown.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the request handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// NewServer creates a status server listening on address.
func NewServer(address string, accumulator *score.Accumulator, vector *costs.Vector) *Server {
	router := NewApiV1Router(accumulator, vector)
	s := Server{&http.Server{
		Addr:           address,
		Handler:        router.Mux(),
		ReadTimeout:    time.Second * 3,
		WriteTimeout:   time.Second * 3,
		MaxHeaderBytes: 1024 * 10,
	}}

	return &s
}
