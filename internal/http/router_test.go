package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/preston-bernstein/league-admin/internal/http/handlers"
	"github.com/preston-bernstein/league-admin/internal/metrics"
	"github.com/preston-bernstein/league-admin/internal/navigation"
	"github.com/preston-bernstein/league-admin/internal/session"
	"github.com/preston-bernstein/league-admin/internal/store"
	"github.com/preston-bernstein/league-admin/internal/teamlist"
	"github.com/preston-bernstein/league-admin/internal/testutil"
	"github.com/preston-bernstein/league-admin/internal/upstream/fixture"
)

func newTestRouter(t *testing.T) (http.Handler, *navigation.Events, *metrics.Recorder) {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	ctrl := teamlist.NewController(fixture.New(), store.NewMemoryStore(time.Minute), logger)
	h := handlers.NewHandler(ctrl, session.StaticProvider{Token: "tok"}, navigation.NewIndicator(), "/", logger)
	events := navigation.NewEvents()
	recorder := metrics.NewRecorder()
	return NewRouter(h, logger, recorder, events), events, recorder
}

func TestRouterServesHealth(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rr := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRouterStripsTrailingSlash(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rr := testutil.Serve(router, http.MethodGet, "/teams/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRouterUnknownRoute(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rr := testutil.Serve(router, http.MethodGet, "/unknown", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRouterEmitsNavigationForPagesOnly(t *testing.T) {
	router, events, _ := newTestRouter(t)
	var got []navigation.Signal
	release := navigation.Observe(events, map[navigation.Signal]navigation.Handler{
		navigation.RouteChangeStart:    func(string) { got = append(got, navigation.RouteChangeStart) },
		navigation.RouteChangeComplete: func(string) { got = append(got, navigation.RouteChangeComplete) },
		navigation.RouteChangeError:    func(string) { got = append(got, navigation.RouteChangeError) },
	})
	defer release()

	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/health", nil), http.StatusOK)
	assert.Empty(t, got)

	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/teams", nil), http.StatusOK)
	assert.Equal(t, []navigation.Signal{navigation.RouteChangeStart, navigation.RouteChangeComplete}, got)
}

func TestRouterRendersSettledProgressBar(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	events := navigation.NewEvents()
	indicator := navigation.NewIndicator()
	release := indicator.Mount(events)
	defer release()
	ctrl := teamlist.NewController(fixture.New(), store.NewMemoryStore(time.Minute), logger)
	h := handlers.NewHandler(ctrl, session.StaticProvider{Token: "tok"}, indicator, "/", logger)
	router := NewRouter(h, logger, metrics.NewRecorder(), events)

	rr := testutil.Serve(router, http.MethodGet, "/teams", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Contains(t, rr.Body.String(), `data-visible="false"`)
	assert.Contains(t, rr.Body.String(), "width: 100%; margin-left: 0")
	assert.False(t, indicator.InTransition())
}

func TestRouterRecordsRoutePattern(t *testing.T) {
	router, _, recorder := newTestRouter(t)

	rr := testutil.Serve(router, http.MethodDelete, "/teams/1?page=missing", nil)
	testutil.AssertStatus(t, rr, http.StatusSeeOther)
	assert.Equal(t, 1, recorder.HTTPRequests("/teams/{id}"))
}
