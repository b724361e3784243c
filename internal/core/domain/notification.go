package domain

// EventAdminBroadcast tags notifications fanned out by an admin broadcast.
const EventAdminBroadcast = "admin:broadcast"

// Notification is a persisted per-user event record. Rows are append-only
// except for the Read flag.
type Notification struct {
	NotificationID string `json:"notificationId"`
	UserID         string `json:"userId"`
	Event          string `json:"event"`
	Message        string `json:"message"`
	At             string `json:"at"` // local timestamp, YYYY-MM-DDTHH:MM:SS
	Read           bool   `json:"read"`
	RefID          string `json:"refId,omitempty"`
}
