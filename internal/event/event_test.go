package event

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishDispatchesSynchronouslyWithoutQueuing(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	var received []Event
	id := bus.Subscribe(HotdogProduced, func(_ context.Context, e Event) error {
		received = append(received, e)
		return nil
	})
	require.NotEmpty(t, id)

	err := bus.Publish(ctx, NewHotdogProducedEvent(1, 0, 1))
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.Equal(t, HotdogProduced, received[0].Type)
	assert.Equal(t, uint64(1), received[0].Seq)
	assert.Equal(t, EventSchemaVersion, received[0].Version)
}

func TestMemoryBus_QueuedEventsFlushInEmissionOrder(t *testing.T) {
	bus := NewMemoryBus(WithQueuing())
	ctx := context.Background()

	var order []Type
	record := func(_ context.Context, e Event) error {
		order = append(order, e.Type)
		return nil
	}
	bus.Subscribe(HotdogProduced, record)
	bus.Subscribe(MoneyChanged, record)
	bus.Subscribe(MilestoneReached, record)

	require.NoError(t, bus.Publish(ctx, NewHotdogProducedEvent(1, 0, 1)))
	require.NoError(t, bus.Publish(ctx, NewMoneyChangedEvent(5, 5, "sale")))
	require.NoError(t, bus.Publish(ctx, NewMilestoneReachedEvent(0, 5, 1, "first")))

	// Nothing dispatched until flush
	assert.Empty(t, order)
	assert.Equal(t, 3, bus.Stats().Queued)

	bus.Flush(ctx)

	assert.Equal(t, []Type{HotdogProduced, MoneyChanged, MilestoneReached}, order)
	assert.Equal(t, 0, bus.Stats().Queued)
}

func TestMemoryBus_SnapshotAtEmit(t *testing.T) {
	// A listener registered after an event is queued must not receive it
	bus := NewMemoryBus(WithQueuing())
	ctx := context.Background()

	var early, late int
	bus.Subscribe(HotdogProduced, func(context.Context, Event) error {
		early++
		return nil
	})

	require.NoError(t, bus.Publish(ctx, NewHotdogProducedEvent(1, 0, 1)))

	bus.Subscribe(HotdogProduced, func(context.Context, Event) error {
		late++
		return nil
	})

	bus.Flush(ctx)

	assert.Equal(t, 1, early)
	assert.Equal(t, 0, late, "listener registered after emission received a queued event")
}

func TestMemoryBus_EmptyEventTypeIsDroppedSilently(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), Event{Type: ""})
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), bus.Stats().Emitted)
}

func TestMemoryBus_SubscribeValidation(t *testing.T) {
	bus := NewMemoryBus()

	tests := []struct {
		name       string
		listenerID string
		eventType  Type
		handler    Handler
	}{
		{name: "empty event type", listenerID: "a", eventType: "", handler: func(context.Context, Event) error { return nil }},
		{name: "nil handler", listenerID: "a", eventType: HotdogProduced, handler: nil},
		{name: "empty listener id", listenerID: "", eventType: HotdogProduced, handler: func(context.Context, Event) error { return nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, bus.SubscribeAs(tt.listenerID, tt.eventType, tt.handler))
		})
	}
	assert.Equal(t, 0, bus.Stats().Listeners)
}

func TestMemoryBus_SubscribeAsIsIdempotentPerID(t *testing.T) {
	bus := NewMemoryBus()
	handler := func(context.Context, Event) error { return nil }

	require.Equal(t, "listener-1", bus.SubscribeAs("listener-1", HotdogProduced, handler))
	require.Equal(t, "listener-1", bus.SubscribeAs("listener-1", HotdogProduced, handler))

	assert.Equal(t, 1, bus.Stats().Listeners)
}

func TestMemoryBus_UnsubscribePrunesEmptyBucket(t *testing.T) {
	bus := NewMemoryBus()
	id := bus.Subscribe(MoneyChanged, func(context.Context, Event) error { return nil })

	assert.True(t, bus.Unsubscribe(id))
	assert.False(t, bus.Unsubscribe(id), "second unsubscribe should find nothing")
	assert.Equal(t, 0, bus.Stats().Listeners)

	_, exists := bus.registry[MoneyChanged]
	assert.False(t, exists, "empty bucket should be pruned from the registry")
}

func TestMemoryBus_UnsubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	handler := func(context.Context, Event) error { return nil }
	bus.Subscribe(MoneyChanged, handler)
	bus.Subscribe(MoneyChanged, handler)
	bus.Subscribe(HotdogProduced, handler)

	bus.UnsubscribeAll(MoneyChanged)
	assert.Equal(t, 1, bus.Stats().Listeners)

	bus.UnsubscribeAll("")
	assert.Equal(t, 0, bus.Stats().Listeners)
}

func TestMemoryBus_HandlerReturningErrUnsubscribeIsPrunedLazily(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	var calls int32
	bus.Subscribe(HotdogProduced, func(context.Context, Event) error {
		atomic.AddInt32(&calls, 1)
		return ErrUnsubscribe
	})

	require.NoError(t, bus.Publish(ctx, NewHotdogProducedEvent(1, 0, 1)))
	require.NoError(t, bus.Publish(ctx, NewHotdogProducedEvent(2, 0, 2)))

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 0, bus.Stats().Listeners)
}

func TestMemoryBus_HandlerErrorsAreCollectedNotFatal(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	boom := errors.New("boom")
	var secondCalled bool
	bus.Subscribe(HotdogProduced, func(context.Context, Event) error { return boom })
	bus.Subscribe(HotdogProduced, func(context.Context, Event) error {
		secondCalled = true
		return nil
	})

	err := bus.Publish(ctx, NewHotdogProducedEvent(1, 0, 1))
	require.Error(t, err)
	assert.True(t, secondCalled, "a failing handler must not stop later handlers")
	assert.Equal(t, uint64(1), bus.Stats().HandlerErrors)
}

func TestMemoryBus_HistoryIsBoundedDropOldest(t *testing.T) {
	bus := NewMemoryBus(WithHistorySize(3))
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, bus.Publish(ctx, NewHotdogProducedEvent(int64(i), 0, i)))
	}

	history := bus.History()
	require.Len(t, history, 3)
	assert.Equal(t, uint64(3), history[0].Seq)
	assert.Equal(t, uint64(5), history[2].Seq)
}

func TestMemoryBus_StatsCounters(t *testing.T) {
	bus := NewMemoryBus(WithQueuing())
	ctx := context.Background()
	bus.Subscribe(HotdogProduced, func(context.Context, Event) error { return nil })

	require.NoError(t, bus.Publish(ctx, NewHotdogProducedEvent(1, 0, 1)))
	require.NoError(t, bus.PublishImmediate(ctx, NewHotdogProducedEvent(2, 0, 2)))

	stats := bus.Stats()
	assert.Equal(t, uint64(2), stats.Emitted)
	assert.Equal(t, uint64(1), stats.Processed) // queued event not flushed yet
	assert.Equal(t, 1, stats.Queued)
	assert.Equal(t, 1, stats.Listeners)
	assert.Equal(t, 2, stats.HistorySize)
}

func TestDecodePayload(t *testing.T) {
	t.Run("direct type assertion", func(t *testing.T) {
		in := HotdogSoldPayloadV1{UnitPrice: 2.5, Units: 3, Revenue: 7.5}
		out, err := DecodePayload[HotdogSoldPayloadV1](in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("json fallback from map", func(t *testing.T) {
		in := map[string]interface{}{"unit_price": 2.5, "units": 3, "revenue": 7.5}
		out, err := DecodePayload[HotdogSoldPayloadV1](in)
		require.NoError(t, err)
		assert.Equal(t, 2.5, out.UnitPrice)
		assert.Equal(t, 3, out.Units)
	})
}
