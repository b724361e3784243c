package dto

import (
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

// NotificationResponse is the wire shape for a notification record.
type NotificationResponse struct {
	NotificationID string `json:"notificationId"`
	UserID         string `json:"userId"`
	Event          string `json:"event"`
	Message        string `json:"message"`
	At             string `json:"at"`
	Read           bool   `json:"read"`
	RefID          string `json:"refId,omitempty"`
}

// ListNotificationsResponse wraps a user's notifications.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToListNotificationsResponse converts domain notifications to the list wire shape.
func ToListNotificationsResponse(notifications []domain.Notification) ListNotificationsResponse {
	out := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		out[i] = NotificationResponse{
			NotificationID: n.NotificationID,
			UserID:         n.UserID,
			Event:          n.Event,
			Message:        n.Message,
			At:             n.At,
			Read:           n.Read,
			RefID:          n.RefID,
		}
	}
	return ListNotificationsResponse{Notifications: out}
}

// BroadcastRequest is the admin broadcast payload.
type BroadcastRequest struct {
	Message string `json:"message" binding:"required"`
}

// BroadcastResponse reports how many users received the broadcast.
type BroadcastResponse struct {
	OK        bool   `json:"ok"`
	Message   string `json:"message"`
	Delivered int    `json:"delivered"`
}
