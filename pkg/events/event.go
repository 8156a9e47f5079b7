package events

import "time"

const (
	TypeSessionCreated   = "SESSION_CREATED"
	TypeSelectionChanged = "SELECTION_CHANGED"
	TypeDashboardViewed  = "DASHBOARD_VIEWED"
	TypeExportGenerated  = "EXPORT_GENERATED"
)

// Event defines the contract for dashboard activity events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SESSION_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the envelope published on the activity topic.
type BaseEvent struct {
	Id         string                 `json:"id"`
	Type       string                 `json:"type"`
	SessionId  string                 `json:"session_id,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
