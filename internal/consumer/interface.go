package consumer

import "context"

// Event types published by the catalog service on the bestiary topic.
const (
	EventCreated   = "created"
	EventUpdated   = "updated"
	EventPublished = "published"
	EventDeleted   = "deleted"
)

// BestiaryEvent is consumed whenever a bestiary changes in the catalog.
type BestiaryEvent struct {
	Type       string `json:"type"`
	BestiaryID int64  `json:"bestiary_id"`
	Timestamp  int64  `json:"timestamp"`
}

// BestiaryEventHandler handles incoming bestiary events.
type BestiaryEventHandler interface {
	HandleBestiaryEvent(ctx context.Context, event *BestiaryEvent) error
}

// BestiaryEventConsumer defines the interface for consuming bestiary events.
type BestiaryEventConsumer interface {
	Start(ctx context.Context) error
	Close() error
}
