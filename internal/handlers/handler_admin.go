package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mdrafsun/Advance-tracker/internal/core/ports/services"
	"github.com/mdrafsun/Advance-tracker/internal/core/services"
	"github.com/mdrafsun/Advance-tracker/internal/dto"
	"github.com/mdrafsun/Advance-tracker/internal/middleware"
)

// adminHandler wraps the admin service in a role-checking proxy per request,
// using the role resolved by the middleware for the current caller.
type adminHandler struct {
	adminService portssvc.AdminSvc
}

func newAdminHandler(as portssvc.AdminSvc) *adminHandler {
	return &adminHandler{adminService: as}
}

func registerAdminRoutes(rg *gin.RouterGroup, as portssvc.AdminSvc) {
	h := newAdminHandler(as)
	admin := rg.Group("/admin")
	{
		admin.GET("/users", h.listUsers)
		admin.DELETE("/users/:id", h.deleteUser)
		admin.POST("/broadcast", h.broadcast)
	}
}

func (h *adminHandler) proxyFor(c *gin.Context) portssvc.AdminSvc {
	role := middleware.GetRoleFromCtx(c.Request.Context())
	return services.NewAdminProxy(h.adminService, role)
}

func (h *adminHandler) listUsers(c *gin.Context) {
	users, err := h.proxyFor(c).ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

func (h *adminHandler) deleteUser(c *gin.Context) {
	if err := h.proxyFor(c).DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *adminHandler) broadcast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind broadcast request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	delivered, err := h.proxyFor(c).Broadcast(c.Request.Context(), req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BroadcastResponse{OK: true, Message: req.Message, Delivered: delivered})
}
