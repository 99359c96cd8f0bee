package server

import (
	"github.com/preston-bernstein/league-admin/internal/metrics"
	"github.com/preston-bernstein/league-admin/internal/navigation"
)

// mountNavigation attaches the progress indicator and the metrics observer to the
// route-change events. The returned func detaches both.
func mountNavigation(events *navigation.Events, indicator *navigation.Indicator, recorder *metrics.Recorder) func() {
	releaseIndicator := indicator.Mount(events)

	count := func(signal navigation.Signal) navigation.Handler {
		return func(string) { recorder.RecordNavigation(string(signal)) }
	}
	handlers := make(map[navigation.Signal]navigation.Handler, len(navigation.Signals))
	for _, signal := range navigation.Signals {
		handlers[signal] = count(signal)
	}
	releaseMetrics := navigation.Observe(events, handlers)

	return func() {
		releaseMetrics()
		releaseIndicator()
	}
}
