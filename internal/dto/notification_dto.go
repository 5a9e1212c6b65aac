package dto

type NotificationCheckResponse struct {
	NotificationType string `json:"notification_type"`
	Enabled          bool   `json:"enabled"`
}

type SendTestRequest struct {
	NotificationType string `json:"notification_type" validate:"required"`
}

type NotificationHistoryEntry struct {
	Id               int    `json:"id"`
	NotificationType string `json:"notification_type"`
	Channel          string `json:"channel"`
	Subject          string `json:"subject"`
	SentAt           string `json:"sent_at"`
	Status           string `json:"status"`
}
