package event

import (
	"context"
	"time"
)

// Type represents the type of an event
type Type string

// Common event types emitted by the simulation core
const (
	// Production event types
	ProductionStarted Type = "production.started"
	ProductionStopped Type = "production.stopped"
	HotdogProduced    Type = "production.hotdog_produced"
	QueueFull         Type = "production.queue_full"

	// Economy event types
	MoneyChanged         Type = "economy.money_changed"
	TransactionCompleted Type = "economy.transaction_completed"
	InsufficientFunds    Type = "economy.insufficient_funds"
	HotdogSold           Type = "economy.hotdog_sold"

	// Upgrade / balance event types
	UpgradePurchased Type = "upgrade.purchased"
	MilestoneReached Type = "balance.milestone_reached"

	// Prestige event types
	PrestigeCompleted Type = "prestige.completed"
)

// Event represents a generic event in the system.
// Events are immutable once created; Seq is a process-wide monotonic counter
// assigned by the bus at publish time.
type Event struct {
	Version   string      `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type        `json:"type"`
	Seq       uint64      `json:"seq"`
	Timestamp int64       `json:"timestamp"` // Unix nanoseconds at publish
	Payload   interface{} `json:"payload"`
}

// Typed event payloads for type safety

// HotdogProducedPayloadV1 is the typed payload for hotdog produced events
type HotdogProducedPayloadV1 struct {
	TotalProduced int64 `json:"total_produced"`
	QueueSize     int   `json:"queue_size"`
	Inventory     int   `json:"inventory"`
}

// ProductionStoppedPayloadV1 is the typed payload for production stopped events
type ProductionStoppedPayloadV1 struct {
	TotalProduced int64  `json:"total_produced"`
	Reason        string `json:"reason"` // "queue_empty" or "paused"
}

// QueueFullPayloadV1 is the typed payload for queue full rejections
type QueueFullPayloadV1 struct {
	QueueSize int `json:"queue_size"`
	Capacity  int `json:"capacity"`
}

// MoneyChangedPayloadV1 is the typed payload for balance changes
type MoneyChangedPayloadV1 struct {
	Balance float64 `json:"balance"`
	Delta   float64 `json:"delta"`
	Reason  string  `json:"reason"`
}

// TransactionCompletedPayloadV1 is the typed payload for completed ledger transactions
type TransactionCompletedPayloadV1 struct {
	Kind             string  `json:"kind"` // "credit" or "debit"
	Amount           float64 `json:"amount"`
	Reason           string  `json:"reason"`
	TransactionCount int64   `json:"transaction_count"`
}

// InsufficientFundsPayloadV1 is the typed payload for rejected debits
type InsufficientFundsPayloadV1 struct {
	Required  float64 `json:"required"`
	Available float64 `json:"available"`
	Reason    string  `json:"reason"`
}

// HotdogSoldPayloadV1 is the typed payload for unit sales
type HotdogSoldPayloadV1 struct {
	UnitPrice float64 `json:"unit_price"`
	Units     int     `json:"units"`
	Revenue   float64 `json:"revenue"`
}

// UpgradePurchasedPayloadV1 is the typed payload for upgrade purchases
type UpgradePurchasedPayloadV1 struct {
	UpgradeID string  `json:"upgrade_id"`
	Category  string  `json:"category"`
	NewLevel  int     `json:"new_level"`
	Cost      float64 `json:"cost"`
}

// MilestoneReachedPayloadV1 is the typed payload for milestone crossings
type MilestoneReachedPayloadV1 struct {
	Index     int     `json:"index"`
	Threshold float64 `json:"threshold"`
	Reward    float64 `json:"reward"`
	Name      string  `json:"name,omitempty"`
}

// PrestigeCompletedPayloadV1 is the typed payload for prestige completion
type PrestigeCompletedPayloadV1 struct {
	NewLevel         int     `json:"new_level"`
	CurrencyEarned   float64 `json:"currency_earned"`
	LifetimeEarned   float64 `json:"lifetime_earned"`
	NewMultiplier    float64 `json:"new_multiplier"`
	ResetTotalEarned float64 `json:"reset_total_earned"`
}

// Type-safe event constructors

// NewHotdogProducedEvent creates a new hotdog produced event
func NewHotdogProducedEvent(totalProduced int64, queueSize, inventory int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HotdogProduced,
		Payload: HotdogProducedPayloadV1{
			TotalProduced: totalProduced,
			QueueSize:     queueSize,
			Inventory:     inventory,
		},
	}
}

// NewProductionStoppedEvent creates a new production stopped event
func NewProductionStoppedEvent(totalProduced int64, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProductionStopped,
		Payload: ProductionStoppedPayloadV1{
			TotalProduced: totalProduced,
			Reason:        reason,
		},
	}
}

// NewQueueFullEvent creates a new queue full event
func NewQueueFullEvent(queueSize, capacity int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QueueFull,
		Payload: QueueFullPayloadV1{
			QueueSize: queueSize,
			Capacity:  capacity,
		},
	}
}

// NewMoneyChangedEvent creates a new money changed event
func NewMoneyChangedEvent(balance, delta float64, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MoneyChanged,
		Payload: MoneyChangedPayloadV1{
			Balance: balance,
			Delta:   delta,
			Reason:  reason,
		},
	}
}

// NewTransactionCompletedEvent creates a new transaction completed event
func NewTransactionCompletedEvent(kind string, amount float64, reason string, count int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TransactionCompleted,
		Payload: TransactionCompletedPayloadV1{
			Kind:             kind,
			Amount:           amount,
			Reason:           reason,
			TransactionCount: count,
		},
	}
}

// NewInsufficientFundsEvent creates a new insufficient funds event
func NewInsufficientFundsEvent(required, available float64, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    InsufficientFunds,
		Payload: InsufficientFundsPayloadV1{
			Required:  required,
			Available: available,
			Reason:    reason,
		},
	}
}

// NewHotdogSoldEvent creates a new hotdog sold event
func NewHotdogSoldEvent(unitPrice float64, units int, revenue float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HotdogSold,
		Payload: HotdogSoldPayloadV1{
			UnitPrice: unitPrice,
			Units:     units,
			Revenue:   revenue,
		},
	}
}

// NewUpgradePurchasedEvent creates a new upgrade purchased event
func NewUpgradePurchasedEvent(upgradeID, category string, newLevel int, cost float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UpgradePurchased,
		Payload: UpgradePurchasedPayloadV1{
			UpgradeID: upgradeID,
			Category:  category,
			NewLevel:  newLevel,
			Cost:      cost,
		},
	}
}

// NewMilestoneReachedEvent creates a new milestone reached event
func NewMilestoneReachedEvent(index int, threshold, reward float64, name string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MilestoneReached,
		Payload: MilestoneReachedPayloadV1{
			Index:     index,
			Threshold: threshold,
			Reward:    reward,
			Name:      name,
		},
	}
}

// NewPrestigeCompletedEvent creates a new prestige completed event
func NewPrestigeCompletedEvent(newLevel int, currencyEarned, lifetimeEarned, newMultiplier, resetTotalEarned float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PrestigeCompleted,
		Payload: PrestigeCompletedPayloadV1{
			NewLevel:         newLevel,
			CurrencyEarned:   currencyEarned,
			LifetimeEarned:   lifetimeEarned,
			NewMultiplier:    newMultiplier,
			ResetTotalEarned: resetTotalEarned,
		},
	}
}

// Handler is a function that handles an event.
// Returning ErrUnsubscribe removes the handler from the bus; any other error is
// counted and reported by the dispatching Publish/Flush call.
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	// Publish enqueues an event for the next Flush. When the bus was created
	// with queuing disabled it dispatches synchronously instead.
	Publish(ctx context.Context, event Event) error
	// PublishImmediate dispatches synchronously regardless of queuing mode.
	PublishImmediate(ctx context.Context, event Event) error
	// Subscribe registers a handler and returns its generated listener id.
	// An empty id is returned when the event type is empty or the handler nil.
	Subscribe(eventType Type, handler Handler) string
	// SubscribeAs registers a handler under a caller-chosen listener id.
	SubscribeAs(listenerID string, eventType Type, handler Handler) string
	// Unsubscribe removes a listener by id; reports whether anything was removed.
	Unsubscribe(listenerID string) bool
	// UnsubscribeAll clears one event type bucket, or every bucket when the
	// type is empty.
	UnsubscribeAll(eventType Type)
	// Flush drains pending queued events in emission order.
	Flush(ctx context.Context)
	// Stats returns dispatch diagnostics.
	Stats() Stats
}

// Stats holds bus diagnostics counters
type Stats struct {
	Emitted       uint64 `json:"emitted"`
	Processed     uint64 `json:"processed"`
	HandlerErrors uint64 `json:"handler_errors"`
	Listeners     int    `json:"listeners"`
	Queued        int    `json:"queued"`
	HistorySize   int    `json:"history_size"`
}

// stamp fills in the bus-assigned fields of an event before dispatch/queueing
func stamp(e Event, seq uint64) Event {
	e.Seq = seq
	e.Timestamp = time.Now().UnixNano()
	if e.Version == "" {
		e.Version = EventSchemaVersion
	}
	return e
}
