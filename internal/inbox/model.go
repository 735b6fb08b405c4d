package inbox

import (
	"time"

	"github.com/google/uuid"
)

// MessageType tags the system event that produced a message.
type MessageType string

const (
	TypeWelcome  MessageType = "welcome"
	TypeFavorite MessageType = "favorite"
	TypeSystem   MessageType = "system"
)

const systemSender = "SupplierScout"

// Message is one inbox entry. Only the read flag mutates after creation.
type Message struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"-"`
	Subject   string      `json:"subject"`
	Body      string      `json:"body"`
	Sender    string      `json:"sender"`
	Type      MessageType `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
	Read      bool        `json:"read"`
}
