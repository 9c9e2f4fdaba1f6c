package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dagwood-games/hotdog-tycoon/internal/logger"
)

// ErrUnsubscribe can be returned by a Handler to remove itself from the bus.
// It is pruned lazily during the dispatch that observed it and is not treated
// as a handler failure.
var ErrUnsubscribe = errors.New("unsubscribe handler")

// subscriber pairs a listener id with its handler. Subscribers are kept in a
// slice so dispatch runs in insertion order; that order is an implementation
// detail, not a contract - listeners must not depend on cross-listener ordering.
type subscriber struct {
	id      string
	handler Handler
}

// MemoryBus is an in-memory implementation of the Event Bus with optional
// queuing, a bounded history ring, and listener lifecycle management.
type MemoryBus struct {
	mu sync.Mutex

	registry map[Type][]subscriber
	pending  []pendingEvent
	history  []Event

	queuing        bool
	maxHistorySize int

	seq           uint64
	emitted       uint64
	processed     uint64
	handlerErrors uint64

	deadLetter *DeadLetterWriter // optional; receives handler failures
}

// pendingEvent captures the subscriber set at emit time, so listeners
// registered while an event sits in the queue do not receive it
// (snapshot-at-emit semantics).
type pendingEvent struct {
	event       Event
	subscribers []subscriber
}

// Option configures a MemoryBus
type Option func(*MemoryBus)

// WithQueuing enables queued publishing; events are held until Flush
func WithQueuing() Option {
	return func(b *MemoryBus) { b.queuing = true }
}

// WithHistorySize overrides the bounded history ring size
func WithHistorySize(n int) Option {
	return func(b *MemoryBus) {
		if n >= 0 {
			b.maxHistorySize = n
		}
	}
}

// WithDeadLetter attaches a dead-letter writer for handler failures
func WithDeadLetter(w *DeadLetterWriter) Option {
	return func(b *MemoryBus) { b.deadLetter = w }
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus(opts ...Option) *MemoryBus {
	b := &MemoryBus{
		registry:       make(map[Type][]subscriber),
		maxHistorySize: DefaultMaxHistorySize,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish publishes an event. In queuing mode the event is appended to the
// pending queue for the next Flush; otherwise it dispatches synchronously.
// Invalid events (empty type) are logged and dropped, never an error.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	if event.Type == "" {
		logger.FromContext(ctx).Warn(LogMsgEmptyEventType)
		return nil
	}

	b.mu.Lock()
	b.seq++
	b.emitted++
	event = stamp(event, b.seq)
	b.appendHistory(event)

	if b.queuing {
		subs := b.snapshotSubscribers(event.Type)
		b.pending = append(b.pending, pendingEvent{event: event, subscribers: subs})
		b.mu.Unlock()
		return nil
	}

	subs := b.snapshotSubscribers(event.Type)
	b.mu.Unlock()

	return b.dispatch(ctx, event, subs)
}

// PublishImmediate dispatches synchronously regardless of queuing mode
func (b *MemoryBus) PublishImmediate(ctx context.Context, event Event) error {
	if event.Type == "" {
		logger.FromContext(ctx).Warn(LogMsgEmptyEventType)
		return nil
	}

	b.mu.Lock()
	b.seq++
	b.emitted++
	event = stamp(event, b.seq)
	b.appendHistory(event)
	subs := b.snapshotSubscribers(event.Type)
	b.mu.Unlock()

	return b.dispatch(ctx, event, subs)
}

// Flush drains all pending queued events in strict FIFO emission order.
// Each event is dispatched to the subscriber set captured when it was emitted.
func (b *MemoryBus) Flush(ctx context.Context) {
	b.mu.Lock()
	pending := b.pending
	b.pending = nil
	b.mu.Unlock()

	for _, p := range pending {
		if err := b.dispatch(ctx, p.event, p.subscribers); err != nil {
			logger.FromContext(ctx).Warn(LogMsgFlushHandlerFailed,
				"event_type", p.event.Type, "error", err)
		}
	}
}

// dispatch invokes each subscriber with the event. Handlers returning
// ErrUnsubscribe are removed from the registry and skipped; other errors are
// collected and also forwarded to the dead-letter writer when configured.
func (b *MemoryBus) dispatch(ctx context.Context, event Event, subs []subscriber) error {
	var errs []error
	for _, sub := range subs {
		err := sub.handler(ctx, event)
		if err == nil {
			continue
		}
		if errors.Is(err, ErrUnsubscribe) {
			b.Unsubscribe(sub.id)
			continue
		}
		errs = append(errs, err)
	}

	b.mu.Lock()
	b.processed++
	b.handlerErrors += uint64(len(errs))
	dlw := b.deadLetter
	b.mu.Unlock()

	if len(errs) > 0 {
		if dlw != nil {
			_ = dlw.Write(event, 1, errors.Join(errs...))
		}
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type and returns a generated
// listener id. An empty id is returned for an empty type or nil handler.
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) string {
	return b.SubscribeAs(uuid.NewString(), eventType, handler)
}

// SubscribeAs subscribes a handler under a caller-chosen listener id.
// Re-using an id already registered for the same event type is a logged no-op
// returning the existing id (idempotent per unique id).
func (b *MemoryBus) SubscribeAs(listenerID string, eventType Type, handler Handler) string {
	if eventType == "" || handler == nil || listenerID == "" {
		logger.FromContext(context.Background()).Warn(LogMsgInvalidSubscription,
			"event_type", eventType, "listener_id", listenerID)
		return ""
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.registry[eventType] {
		if sub.id == listenerID {
			return listenerID
		}
	}
	b.registry[eventType] = append(b.registry[eventType], subscriber{id: listenerID, handler: handler})
	return listenerID
}

// Unsubscribe removes the first listener matching the id across all event
// buckets and prunes the bucket when it becomes empty.
func (b *MemoryBus) Unsubscribe(listenerID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for eventType, subs := range b.registry {
		for i, sub := range subs {
			if sub.id != listenerID {
				continue
			}
			subs = append(subs[:i], subs[i+1:]...)
			if len(subs) == 0 {
				delete(b.registry, eventType)
			} else {
				b.registry[eventType] = subs
			}
			return true
		}
	}
	return false
}

// UnsubscribeAll clears one event type bucket, or the whole registry when the
// event type is empty.
func (b *MemoryBus) UnsubscribeAll(eventType Type) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if eventType == "" {
		b.registry = make(map[Type][]subscriber)
		return
	}
	delete(b.registry, eventType)
}

// Stats returns dispatch diagnostics
func (b *MemoryBus) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := 0
	for _, subs := range b.registry {
		listeners += len(subs)
	}
	return Stats{
		Emitted:       b.emitted,
		Processed:     b.processed,
		HandlerErrors: b.handlerErrors,
		Listeners:     listeners,
		Queued:        len(b.pending),
		HistorySize:   len(b.history),
	}
}

// History returns a copy of the bounded event history, oldest first
func (b *MemoryBus) History() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Event, len(b.history))
	copy(out, b.history)
	return out
}

// appendHistory appends to the ring, evicting the oldest beyond the limit.
// Caller must hold b.mu.
func (b *MemoryBus) appendHistory(e Event) {
	if b.maxHistorySize == 0 {
		return
	}
	b.history = append(b.history, e)
	if len(b.history) > b.maxHistorySize {
		b.history = b.history[len(b.history)-b.maxHistorySize:]
	}
}

// snapshotSubscribers copies the current subscriber slice for a type.
// Caller must hold b.mu.
func (b *MemoryBus) snapshotSubscribers(eventType Type) []subscriber {
	subs := b.registry[eventType]
	if len(subs) == 0 {
		return nil
	}
	out := make([]subscriber, len(subs))
	copy(out, subs)
	return out
}
