package metrics

import (
	"context"

	"github.com/dagwood-games/hotdog-tycoon/internal/event"
	"github.com/dagwood-games/hotdog-tycoon/internal/ledger"
	"github.com/dagwood-games/hotdog-tycoon/internal/logger"
)

// EventMetricsCollector subscribes to simulation events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events the collector cares about
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.HotdogProduced,
		event.HotdogSold,
		event.QueueFull,
		event.TransactionCompleted,
		event.UpgradePurchased,
		event.MilestoneReached,
		event.PrestigeCompleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.HotdogProduced:
		HotdogsProduced.Inc()

	case event.HotdogSold:
		payload, ok := evt.Payload.(event.HotdogSoldPayloadV1)
		if !ok {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
			return nil
		}
		HotdogsSold.Add(float64(payload.Units))

	case event.QueueFull:
		QueueRejections.Inc()

	case event.TransactionCompleted:
		payload, ok := evt.Payload.(event.TransactionCompletedPayloadV1)
		if !ok {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
			return nil
		}
		if payload.Kind == ledger.KindCredit {
			MoneyEarned.WithLabelValues(payload.Reason).Add(payload.Amount)
		} else {
			MoneySpent.WithLabelValues(payload.Reason).Add(payload.Amount)
		}

	case event.UpgradePurchased:
		payload, ok := evt.Payload.(event.UpgradePurchasedPayloadV1)
		if !ok {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
			return nil
		}
		UpgradesPurchased.WithLabelValues(payload.UpgradeID, payload.Category).Inc()

	case event.MilestoneReached:
		MilestonesReached.Inc()

	case event.PrestigeCompleted:
		PrestigesCompleted.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
