// Package eventbus wires notification events from the core services to any
// number of subscribed listeners, typically a presentation shell.
package eventbus

import (
	"context"

	"github.com/olekv/atmsim/pkg/domain/events"
)

// EventBus defines the contract for publishing and subscribing to domain events.
type EventBus interface {
	Publish(ctx context.Context, event events.Event) error
	Subscribe(eventType string, handler func(context.Context, events.Event))
}
