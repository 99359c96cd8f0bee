package server

import (
	"context"
	"net/http"
	"time"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout is a var so tests can shorten it.
var shutdownTimeout = 10 * time.Second

// httpServer is the slice of *http.Server the lifecycle code depends on.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

type netHTTPServer struct {
	srv *http.Server
}

// newPageServer serves browser traffic. Page renders wait on the league API, so the
// write timeout covers the upstream timeout plus rendering.
func newPageServer(port string, handler http.Handler, upstreamTimeout time.Duration) netHTTPServer {
	wt := writeTimeout
	if upstreamTimeout+time.Second > wt {
		wt = upstreamTimeout + time.Second
	}
	return netHTTPServer{srv: &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: readTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      wt,
		IdleTimeout:       idleTimeout,
	}}
}

// newScrapeServer serves the Prometheus handler on its own port.
func newScrapeServer(port string, handler http.Handler) netHTTPServer {
	return netHTTPServer{srv: &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: readTimeout,
	}}
}

func (s netHTTPServer) ListenAndServe() error              { return s.srv.ListenAndServe() }
func (s netHTTPServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s netHTTPServer) Addr() string                       { return s.srv.Addr }
func (s netHTTPServer) Handler() http.Handler              { return s.srv.Handler }
