package sse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dagwood-games/hotdog-tycoon/internal/event"
	"github.com/dagwood-games/hotdog-tycoon/internal/testing/leaktest"
)

func waitForEvent(t *testing.T, ch chan Event) Event {
	t.Helper()
	select {
	case evt := <-ch:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d clients, got %d", n, hub.ClientCount())
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c1 := hub.Register(nil)
	c2 := hub.Register(nil)
	waitForClients(t, hub, 2)

	hub.Broadcast(string(event.HotdogSold), event.HotdogSoldPayloadV1{Units: 3})

	for _, c := range []*Client{c1, c2} {
		evt := waitForEvent(t, c.EventChannel)
		assert.Equal(t, string(event.HotdogSold), evt.Type)
		payload, ok := evt.Payload.(event.HotdogSoldPayloadV1)
		require.True(t, ok)
		assert.Equal(t, 3, payload.Units)
	}
}

func TestHub_EventFilter(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	filtered := hub.Register([]string{string(event.MilestoneReached)})
	waitForClients(t, hub, 1)

	hub.Broadcast(string(event.HotdogSold), nil)
	hub.Broadcast(string(event.MilestoneReached), nil)

	evt := waitForEvent(t, filtered.EventChannel)
	assert.Equal(t, string(event.MilestoneReached), evt.Type)

	select {
	case extra := <-filtered.EventChannel:
		t.Fatalf("unexpected event past filter: %s", extra.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	hub.Unregister(client.ID)
	waitForClients(t, hub, 0)

	_, open := <-client.EventChannel
	assert.False(t, open)
}

func TestHub_StopLeavesNoGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		hub := NewHub()
		hub.Start()
		hub.Register(nil)
		hub.Broadcast(string(event.HotdogSold), nil)
		hub.Stop()
	})
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	require.NoError(t, bus.Publish(context.Background(),
		event.NewMilestoneReachedEvent(0, 100, 25, "First Taste")))

	evt := waitForEvent(t, client.EventChannel)
	assert.Equal(t, string(event.MilestoneReached), evt.Type)
	payload, ok := evt.Payload.(event.MilestoneReachedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "First Taste", payload.Name)
}

func TestSubscriber_DoesNotStreamPerUnitEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	require.NoError(t, bus.Publish(context.Background(),
		event.NewHotdogProducedEvent(1, 0, 1)))

	select {
	case evt := <-client.EventChannel:
		t.Fatalf("per-unit event should not be streamed: %s", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{
		ID:        "abc",
		Type:      "economy.hotdog_sold",
		Timestamp: 123,
		Payload:   map[string]interface{}{"units": 3},
	})
	require.NoError(t, err)

	out := string(msg)
	assert.Contains(t, out, "id: abc\n")
	assert.Contains(t, out, "event: economy.hotdog_sold\n")
	assert.Contains(t, out, `"units":3`)
	assert.True(t, len(out) > 4 && out[len(out)-2:] == "\n\n")
}
