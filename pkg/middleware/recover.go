package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// Recover middleware answers a panicking handler with onPanic; other
// requests are unaffected.
func Recover(logger *zap.Logger, onPanic http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					logger.Error("PANIC recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Stack("stack"),
					)

					onPanic(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
