package model

// WebhookPayload is the notification body posted by the marketplace, e.g.
// {"resource": "/items/MLB123", "topic": "items", "user_id": 456}.
type WebhookPayload struct {
	Resource string `json:"resource" validate:"required"`
	Topic    string `json:"topic" validate:"required"`
	UserID   int64  `json:"user_id" validate:"required"`
}
