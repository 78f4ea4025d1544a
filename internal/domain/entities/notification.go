package entities

// NotificationOrigin tells the recipient which entity a notification is about.

type NotificationOrigin string

const (
	NotificationOriginQuotation NotificationOrigin = "QUOTATION"
	NotificationOriginProject   NotificationOrigin = "PROJECT"
)

// Notification is the event payload handed to the emitter after a workflow
// operation commits. Delivery is fire-and-forget, at-least-once at best; the
// core never blocks on it.

type Notification struct {
	Title           string             `json:"title"`
	Body            string             `json:"body"`
	OriginType      NotificationOrigin `json:"origin_type"`
	OriginID        string             `json:"origin_id"`
	RecipientUserID string             `json:"recipient_user_id"`
}
