package model

// Notification is an in-app notification for the current user.
type Notification struct {
	ID                int64  `json:"id"`
	Message           string `json:"message"`
	IsRead            bool   `json:"is_read"`
	CreatedAt         string `json:"created_at"`
	RelatedVehicleID  *int64 `json:"related_vehicle_id,omitempty"`
	NotificationType  string `json:"notification_type"`
	RelatedEntityType string `json:"related_entity_type,omitempty"`
	RelatedEntityID   *int64 `json:"related_entity_id,omitempty"`
}

// NotificationCreate is the payload for POST /notifications/.
type NotificationCreate struct {
	Message          string `json:"message"`
	RelatedVehicleID *int64 `json:"related_vehicle_id,omitempty"`
}
