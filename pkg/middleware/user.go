package middleware

import (
	"net/http"

	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

// CurrentUser puts the configured user id into every request context. The
// application has no login; every visitor acts as this user.
func CurrentUser(userID int, logger *zap.Logger) func(http.Handler) http.Handler {
	logger.Debug("Acting as configured user", zap.Int("user_id", userID))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
