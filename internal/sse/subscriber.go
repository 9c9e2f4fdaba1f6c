package sse

import (
	"context"
	"log/slog"

	"github.com/dagwood-games/hotdog-tycoon/internal/event"
)

// streamedTypes are the bus event types forwarded to SSE clients. Per-unit
// production events are deliberately excluded; clients poll /state for
// counters and only need the notable moments pushed.
var streamedTypes = []event.Type{
	event.ProductionStarted,
	event.ProductionStopped,
	event.QueueFull,
	event.HotdogSold,
	event.UpgradePurchased,
	event.MilestoneReached,
	event.PrestigeCompleted,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all streamed event types
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(streamedTypes))
	for _, t := range streamedTypes {
		s.bus.Subscribe(t, s.handleEvent)
		types = append(types, string(t))
	}

	slog.Info(LogMsgSubscriberReady, "types", types)
}

// handleEvent forwards a bus event to the hub. Payloads are already typed,
// JSON-tagged structs, so they go over the wire as-is.
func (s *Subscriber) handleEvent(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)

	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "seq", evt.Seq)
	return nil
}
