package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/preston-bernstein/league-admin/internal/metrics"
	"github.com/preston-bernstein/league-admin/internal/navigation"
)

func TestMountNavigationDrivesIndicatorAndMetrics(t *testing.T) {
	events := navigation.NewEvents()
	indicator := navigation.NewIndicator()
	recorder := metrics.NewRecorder()
	release := mountNavigation(events, indicator, recorder)

	events.Emit(navigation.RouteChangeStart, "/teams")
	assert.True(t, indicator.InTransition())
	events.Emit(navigation.RouteChangeError, "/teams")
	assert.False(t, indicator.InTransition())

	assert.Equal(t, 1, recorder.Navigations(string(navigation.RouteChangeStart)))
	assert.Equal(t, 1, recorder.Navigations(string(navigation.RouteChangeError)))

	release()
	release()
	for _, signal := range navigation.Signals {
		assert.Zero(t, events.Observers(signal))
	}
	events.Emit(navigation.RouteChangeStart, "/teams")
	assert.False(t, indicator.InTransition())
	assert.Equal(t, 1, recorder.Navigations(string(navigation.RouteChangeStart)))
}
