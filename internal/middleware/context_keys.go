package middleware

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDCtxKey = contextKey("userID")
	roleCtxKey   = contextKey("role")
)

// GetLoggerFromCtx retrieves the request-scoped logger from the context,
// falling back to the default logger.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetUserIDFromCtx retrieves the authenticated user id, if any.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetRoleFromCtx retrieves the caller's resolved role, defaulting to "user".
func GetRoleFromCtx(ctx context.Context) string {
	if role, ok := ctx.Value(roleCtxKey).(string); ok && role != "" {
		return role
	}
	return "user"
}
