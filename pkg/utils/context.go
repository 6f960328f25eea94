package utils

import (
	"context"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
)

// GetUserIDFromContext returns the acting user set by middleware.CurrentUser.
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return 0, false
	}

	userID, ok := userIDVal.(int)
	if !ok || userID < 1 {
		return 0, false
	}

	return userID, true
}

func SetUserContext(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}
