package navigation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitReachesOnlyMatchingObservers(t *testing.T) {
	events := NewEvents()
	var started, completed []string
	events.On(RouteChangeStart, func(p string) { started = append(started, p) })
	events.On(RouteChangeComplete, func(p string) { completed = append(completed, p) })

	events.Emit(RouteChangeStart, "/teams")
	events.Emit(RouteChangeError, "/teams")

	assert.Equal(t, []string{"/teams"}, started)
	assert.Empty(t, completed)
}

func TestOffRemovesExactlyOneObserver(t *testing.T) {
	events := NewEvents()
	calls := 0
	first := events.On(RouteChangeStart, func(string) { calls++ })
	events.On(RouteChangeStart, func(string) { calls += 10 })

	first.Off()
	first.Off()
	events.Emit(RouteChangeStart, "/")

	assert.Equal(t, 10, calls)
	assert.Equal(t, 1, events.Observers(RouteChangeStart))
}

func TestZeroSubscriptionOffIsSafe(t *testing.T) {
	assert.NotPanics(t, func() { Subscription{}.Off() })
}

func TestObserverMayUnsubscribeDuringEmit(t *testing.T) {
	events := NewEvents()
	var sub Subscription
	sub = events.On(RouteChangeComplete, func(string) { sub.Off() })

	assert.NotPanics(t, func() { events.Emit(RouteChangeComplete, "/") })
	assert.Zero(t, events.Observers(RouteChangeComplete))
}

func TestConcurrentEmitAndSubscribe(t *testing.T) {
	events := NewEvents()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			events.On(RouteChangeStart, func(string) {}).Off()
		}()
		go func() {
			defer wg.Done()
			events.Emit(RouteChangeStart, "/teams")
		}()
	}
	wg.Wait()
	assert.Zero(t, events.Observers(RouteChangeStart))
}
