package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime"
)

const recoverStackSize = 4096

// Recover turns a panic into a logged error and a generic JSON 500.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recover(logger *slog.Logger) func(next http.Handler) http.Handler {
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

				stack := make([]byte, recoverStackSize)
				stack = stack[:runtime.Stack(stack, false)]
				logger.ErrorContext(r.Context(), "panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(stack),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
