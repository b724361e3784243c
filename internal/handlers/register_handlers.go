package handlers

import (
	portssvc "github.com/mdrafsun/Advance-tracker/internal/core/ports/services"
	"github.com/mdrafsun/Advance-tracker/internal/middleware"
	"github.com/mdrafsun/Advance-tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// The role resolver covers the whole v1 group; routes that need no caller
	// identity simply ignore the resolved values.
	v1 := r.Group("/api/v1", middleware.RoleResolver(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerAuthRoutes(v1, service.User)
	registerUserRoutes(v1, service.User)
	registerTransactionRoutes(v1, service.Finance)
	registerReportRoutes(v1, service.Report)
	registerNotificationRoutes(v1, service.Notification)
	registerAdminRoutes(v1, service.Admin)
}
