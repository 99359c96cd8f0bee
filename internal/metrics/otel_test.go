package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})

	require.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Nil(t, handler)
	assert.NotNil(t, shutdown)
}

func TestSetupEnabledServesPrometheus(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "league-admin-test",
	})
	require.NoError(t, err)
	require.NotNil(t, handler)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	rec.RecordHTTPRequest(http.MethodGet, "/teams", http.StatusOK, time.Millisecond)
	rec.RecordUpstreamCall("list", time.Millisecond, errors.New("boom"))
	rec.RecordNavigation("routeChangeStart")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "upstream_calls_total")
	assert.Contains(t, body, "upstream_errors_total")
	assert.Contains(t, body, "navigation_transitions_total")
}

func TestSetupPropagatesPrometheusFailure(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry exploded")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	assert.EqualError(t, err, "registry exploded")
}

func TestSetupPropagatesOTLPFailure(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })
	otlpReaderFactory = func(context.Context, string, bool) (sdkmetric.Reader, error) {
		return nil, errors.New("otlp down")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "localhost:4318"})
	assert.EqualError(t, err, "otlp down")
}
