package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNetHTTPServerListenAndServeStopsOnShutdown(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	s := netHTTPServer{srv: srv}
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	time.Sleep(50 * time.Millisecond)
	_ = s.Shutdown(context.Background())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listen did not return after shutdown")
	}
}

func TestNewPageServerCoversUpstreamTimeout(t *testing.T) {
	handler := http.NewServeMux()

	s := newPageServer("4000", handler, 30*time.Second)
	assert.Equal(t, ":4000", s.Addr())
	assert.Equal(t, 31*time.Second, s.srv.WriteTimeout)

	s = newPageServer("4000", handler, time.Second)
	assert.Equal(t, writeTimeout, s.srv.WriteTimeout)
}

func TestNetHTTPServerAccessors(t *testing.T) {
	handler := http.NewServeMux()
	s := netHTTPServer{srv: &http.Server{Addr: ":1234", Handler: handler}}

	assert.Equal(t, ":1234", s.Addr())
	assert.Same(t, handler, s.Handler())
}
