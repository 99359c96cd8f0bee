package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/preston-bernstein/league-admin/internal/logging"
)

// Recover turns a panic into a 500 and logs it on the request logger. It stands in
// for chi's middleware.Recoverer, which writes its stack trace to stderr instead of slog.
func Recover(fallback *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger := logging.FromContext(r.Context(), fallback)
				if logger != nil {
					logger.Error("panic recovered",
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())),
					)
				}
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
