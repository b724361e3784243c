package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mdrafsun/Advance-tracker/internal/core/ports/services"
	"github.com/mdrafsun/Advance-tracker/internal/dto"
)

type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

func registerNotificationRoutes(rg *gin.RouterGroup, ns portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(ns)
	notifs := rg.Group("/notifications")
	{
		notifs.GET("", h.listNotifications)
		notifs.POST("/:id/read", h.markRead)
		notifs.DELETE("/:id", h.deleteNotification)
	}
}

func (h *notificationHandler) listNotifications(c *gin.Context) {
	notifications, err := h.notificationService.ListForUser(c.Request.Context(), c.Query("userId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListNotificationsResponse(notifications))
}

func (h *notificationHandler) markRead(c *gin.Context) {
	if err := h.notificationService.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *notificationHandler) deleteNotification(c *gin.Context) {
	if err := h.notificationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
