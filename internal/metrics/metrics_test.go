package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecorderTracksUpstreamCallsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordUpstreamCall("list", 10*time.Millisecond, nil)
	rec.RecordUpstreamCall("list", 15*time.Millisecond, errors.New("boom"))
	rec.RecordUpstreamCall("create", time.Millisecond, nil)

	snap := rec.Snapshot("list")
	assert.Equal(t, 2, snap.Calls)
	assert.Equal(t, 1, snap.Errors)
	assert.Equal(t, 15*time.Millisecond, snap.LastCallLatency)
	assert.Equal(t, 1, rec.Snapshot("create").Calls)
	assert.Equal(t, Snapshot{}, rec.Snapshot("delete"))
}

func TestRecorderCountsNavigations(t *testing.T) {
	rec := NewRecorder()
	rec.RecordNavigation("routeChangeStart")
	rec.RecordNavigation("routeChangeStart")
	rec.RecordNavigation("routeChangeError")

	assert.Equal(t, 2, rec.Navigations("routeChangeStart"))
	assert.Equal(t, 1, rec.Navigations("routeChangeError"))
	assert.Zero(t, rec.Navigations("routeChangeComplete"))
}

func TestRecorderCountsHTTPRequestsByRoute(t *testing.T) {
	rec := NewRecorder()
	rec.RecordHTTPRequest("GET", "/teams", 200, time.Millisecond)
	rec.RecordHTTPRequest("DELETE", "/teams/{id}", 303, time.Millisecond)
	rec.RecordHTTPRequest("DELETE", "/teams/{id}", 200, time.Millisecond)

	assert.Equal(t, 1, rec.HTTPRequests("/teams"))
	assert.Equal(t, 2, rec.HTTPRequests("/teams/{id}"))
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	assert.NotPanics(t, func() {
		rec.RecordUpstreamCall("list", time.Millisecond, nil)
		rec.RecordNavigation("routeChangeStart")
		rec.RecordHTTPRequest("GET", "/teams", 200, time.Millisecond)
	})
	assert.Equal(t, Snapshot{}, rec.Snapshot("list"))
	assert.Zero(t, rec.Navigations("routeChangeStart"))
	assert.Zero(t, rec.HTTPRequests("/teams"))
}
