package middleware

import (
	"net/http"

	"github.com/preston-bernstein/league-admin/internal/navigation"
)

// Navigation emits the route-change lifecycle around page requests: start before
// the handler runs, then complete for responses below 500 and error otherwise.
// A panic counts as an error and is re-raised for the recovery middleware.
func Navigation(events *navigation.Events) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if events == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			events.Emit(navigation.RouteChangeStart, path)

			ww := wrap(w)
			defer func() {
				if rec := recover(); rec != nil {
					events.Emit(navigation.RouteChangeError, path)
					panic(rec)
				}
				if ww.status >= http.StatusInternalServerError {
					events.Emit(navigation.RouteChangeError, path)
					return
				}
				events.Emit(navigation.RouteChangeComplete, path)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
