package shared

import "github.com/google/uuid"

// Background task types routed through asynq.
const (
	TypeContactNotify = "contact:notify"
	TypeStaleDrafts   = "article:stale_drafts"
)

// ContactNotifyPayload is the task body for a new contact message
// notification.
type ContactNotifyPayload struct {
	MessageID uuid.UUID `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Service   string    `json:"service"`
}
