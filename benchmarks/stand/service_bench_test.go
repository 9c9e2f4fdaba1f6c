package stand_bench

import (
	"context"
	"testing"
	"time"

	"github.com/dagwood-games/hotdog-tycoon/internal/balance"
	"github.com/dagwood-games/hotdog-tycoon/internal/event"
	"github.com/dagwood-games/hotdog-tycoon/internal/stand"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

// StubBus implements event.Bus without dispatching anything
type StubBus struct{}

func (b *StubBus) Publish(ctx context.Context, e event.Event) error          { return nil }
func (b *StubBus) PublishImmediate(ctx context.Context, e event.Event) error { return nil }
func (b *StubBus) Subscribe(eventType event.Type, handler event.Handler) string {
	return "stub"
}
func (b *StubBus) SubscribeAs(listenerID string, eventType event.Type, handler event.Handler) string {
	return listenerID
}
func (b *StubBus) Unsubscribe(listenerID string) bool  { return false }
func (b *StubBus) UnsubscribeAll(eventType event.Type) {}
func (b *StubBus) Flush(ctx context.Context)           {}
func (b *StubBus) Stats() event.Stats                  { return event.Stats{} }

func newBenchStand(b *testing.B) stand.Service {
	b.Helper()
	svc, err := stand.NewService(balance.Default(), &StubBus{})
	if err != nil {
		b.Fatalf("NewService failed: %v", err)
	}
	return svc
}

// --- Benchmark Functions ---

// BenchmarkAdvance_FullQueue measures one tick with a full production queue.
func BenchmarkAdvance_FullQueue(b *testing.B) {
	ctx := context.Background()
	svc := newBenchStand(b)

	for {
		if err := svc.Enqueue(ctx); err != nil {
			break
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.Advance(ctx, 50*time.Millisecond)
		// Top the queue back up so the drain always has work
		_ = svc.Enqueue(ctx)
	}
}

// BenchmarkAdvance_Idle measures the no-op tick cost with an empty queue.
func BenchmarkAdvance_Idle(b *testing.B) {
	ctx := context.Background()
	svc := newBenchStand(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.Advance(ctx, 50*time.Millisecond)
	}
}

// BenchmarkState_Cached measures the read-model hot path.
func BenchmarkState_Cached(b *testing.B) {
	ctx := context.Background()
	svc := newBenchStand(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = svc.State(ctx)
	}
}

// BenchmarkSnapshot measures the persistence export path.
func BenchmarkSnapshot(b *testing.B) {
	ctx := context.Background()
	svc := newBenchStand(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = svc.Snapshot(ctx)
	}
}
