package notification

import "time"

// Notification is one entry in a recipient's mailbox. It is owned exclusively
// by the recipient; only the read flag ever changes after creation.
type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Tag         string    `json:"tag,omitempty"`
	ActionRoute string    `json:"actionRoute,omitempty"`
	Read        bool      `json:"read"`
	From        string    `json:"from"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateRequest is the payload for POST /api/notifications
type CreateRequest struct {
	Recipient   string `json:"recipient" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Message     string `json:"message" binding:"required"`
	Tag         string `json:"tag"`
	ActionRoute string `json:"actionRoute"`
}

// UpdateRequest is the payload for PATCH /api/notifications/:id. Read is a
// pointer so that explicitly sending false is distinguishable from omitting
// the field.
type UpdateRequest struct {
	Read *bool `json:"read" binding:"required"`
}
