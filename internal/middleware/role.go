package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mdrafsun/Advance-tracker/internal/utils"
)

// RoleHeader is the legacy header the frontend sends when no token is held.
const RoleHeader = "X-Role"

// RoleResolver resolves the caller's role and user id into the request
// context. A valid Bearer token wins; otherwise the X-Role header is trusted
// as-is (the original frontend contract), defaulting to "user".
func RoleResolver(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetHeader(RoleHeader)
		userID := ""

		authHeader := c.GetHeader("Authorization")
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
			if err != nil {
				GetLoggerFromCtx(c.Request.Context()).Warn("Invalid bearer token, falling back to header role",
					slog.String("error", err.Error()))
			} else {
				role = claims.Role
				userID = claims.Subject
			}
		}
		if role == "" {
			role = "user"
		}

		ctx := context.WithValue(c.Request.Context(), roleCtxKey, role)
		if userID != "" {
			ctx = context.WithValue(ctx, userIDCtxKey, userID)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
