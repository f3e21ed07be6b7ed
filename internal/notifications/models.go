package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CheckoutNotification is the message published to Kafka for every
// checkout outcome. Consumers fan it out to email or in-app channels.
type CheckoutNotification struct {
	ID        uuid.UUID              `json:"id"`
	Kind      string                 `json:"kind"` // info, success, error
	UserID    string                 `json:"user_id"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

func NewCheckoutNotification(kind, userID, message string, fields map[string]interface{}) *CheckoutNotification {
	return &CheckoutNotification{
		ID:        uuid.New(),
		Kind:      kind,
		UserID:    userID,
		Message:   message,
		Fields:    fields,
		CreatedAt: time.Now(),
	}
}

func (n *CheckoutNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// GetPartitionKey routes all of a user's notifications to the same partition
// so consumers see them in order.
func (n *CheckoutNotification) GetPartitionKey() string {
	return n.UserID
}
