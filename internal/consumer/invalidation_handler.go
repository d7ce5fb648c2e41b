package consumer

import (
	"context"
	"errors"
)

// Invalidator drops cached search state for a bestiary.
type Invalidator interface {
	Invalidate(ctx context.Context, id int64) error
}

// InvalidationHandler turns bestiary events into cache invalidations.
type InvalidationHandler struct {
	invalidator Invalidator
}

// NewInvalidationHandler creates a handler backed by invalidator.
func NewInvalidationHandler(invalidator Invalidator) *InvalidationHandler {
	return &InvalidationHandler{invalidator: invalidator}
}

// HandleBestiaryEvent invalidates on every event type, unknown ones included.
func (h *InvalidationHandler) HandleBestiaryEvent(ctx context.Context, event *BestiaryEvent) error {
	if event == nil {
		return errors.New("nil bestiary event")
	}
	return h.invalidator.Invalidate(ctx, event.BestiaryID)
}
