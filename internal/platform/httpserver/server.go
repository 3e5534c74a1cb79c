// Package httpserver builds the *http.Server with the timeouts the service runs with.
package httpserver

import (
	"net/http"
	"time"
)

// Option configures the server.
type Option func(*http.Server)

// WithWriteTimeout bounds writing a response. It must exceed the request
// timeout so a slow pipeline still gets to write its error.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *http.Server) {
		s.WriteTimeout = d
	}
}

// New creates an HTTP server for handler on addr.
func New(addr string, handler http.Handler, opts ...Option) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	for _, opt := range opts {
		opt(srv)
	}
	return srv
}
