package models

import (
	"time"
)

// Message statuses. Archived is terminal; nothing ever moves a message
// back to new.
const (
	MessageStatusNew      = "new"
	MessageStatusRead     = "read"
	MessageStatusArchived = "archived"
)

type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // new, read, archived
	CreatedAt time.Time `json:"createdAt"`
	Reply     *Reply    `json:"reply,omitempty"`
}

// Reply is immutable once attached; at most one per message.
type Reply struct {
	ID        string    `json:"id"`
	MessageID string    `json:"messageId"`
	AdminName string    `json:"adminName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
