package navigation

import "sync"

// Bar is the render state of the progress bar.
type Bar struct {
	Visible    bool   `json:"visible"`
	Width      string `json:"width"`
	MarginLeft string `json:"marginLeft"`
}

// Indicator is a fixed-position progress bar driven by a single "in transition" flag.
// Errors hide the bar exactly like completions; there is no debounce or minimum display time.
type Indicator struct {
	mu           sync.RWMutex
	inTransition bool
}

// NewIndicator returns a hidden indicator.
func NewIndicator() *Indicator {
	return &Indicator{}
}

// Mount subscribes the indicator to the three lifecycle signals and returns a
// release func that unsubscribes all of them. Release may be called more than once.
func (i *Indicator) Mount(events *Events) (release func()) {
	return Observe(events, map[Signal]Handler{
		RouteChangeStart:    func(string) { i.set(true) },
		RouteChangeComplete: func(string) { i.set(false) },
		RouteChangeError:    func(string) { i.set(false) },
	})
}

// InTransition reports whether a navigation is in progress.
func (i *Indicator) InTransition() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.inTransition
}

// Bar returns the current render state. Entering a transition resets the fill
// to the start position, from where the CSS transition animates it.
func (i *Indicator) Bar() Bar {
	if i.InTransition() {
		return Bar{Visible: true, Width: "0%", MarginLeft: "100%"}
	}
	return IdleBar()
}

// IdleBar is the render state outside any transition: hidden with the fill at rest.
func IdleBar() Bar {
	return Bar{Visible: false, Width: "100%", MarginLeft: "0"}
}

func (i *Indicator) set(v bool) {
	i.mu.Lock()
	i.inTransition = v
	i.mu.Unlock()
}

// Observe registers each handler on events for the lifetime of the returned release func.
func Observe(events *Events, handlers map[Signal]Handler) (release func()) {
	subs := make([]Subscription, 0, len(handlers))
	for signal, h := range handlers {
		subs = append(subs, events.On(signal, h))
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			for _, s := range subs {
				s.Off()
			}
		})
	}
}
