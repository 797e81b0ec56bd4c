// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"sanayi_portal_backend/internal/inventory/domain"
	"sanayi_portal_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Inventory Domain Events
// =============================================================================

// DatasetLoaded is published after the CSV sources have been parsed and
// enriched. Subscribers receive the full dataset snapshot; the snapshot is
// immutable by convention.
type DatasetLoaded struct {
	BaseEvent
	Dataset *domain.Dataset `json:"-"`
}

func (e DatasetLoaded) EventName() string { return "inventory.dataset.loaded" }
