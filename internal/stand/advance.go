package stand

import (
	"context"
	"time"

	"github.com/dagwood-games/hotdog-tycoon/internal/event"
	"github.com/dagwood-games/hotdog-tycoon/internal/ledger"
	"github.com/dagwood-games/hotdog-tycoon/internal/logger"
)

// Advance runs one simulation step. The per-tick sequence is fixed:
// drain, produced events, sales step, money events, milestone checks,
// milestone events. Deterministic for a given starting state and delta.
func (s *service) Advance(ctx context.Context, delta time.Duration) {
	s.mu.Lock()

	report := s.queue.Advance(delta.Seconds())

	// Drain: each produced unit lands in inventory and raises its own event,
	// matching the unit-granular accounting rule. The queue already holds its
	// post-drain size, so each event reconstructs the in-flight size from the
	// units still to be reported.
	for i := 0; i < report.Produced; i++ {
		s.inventory++
		remaining := report.Produced - 1 - i
		_ = s.bus.Publish(ctx, event.NewHotdogProducedEvent(
			s.queue.TotalProduced()-int64(remaining),
			s.queue.Size()+remaining,
			s.inventory,
		))
	}
	if report.Stopped {
		_ = s.bus.Publish(ctx, event.NewProductionStoppedEvent(s.queue.TotalProduced(), string(report.Reason)))
	}

	// Sales step: every available unit sells at the current effective price,
	// one credit per unit so the ledger totals stay exact.
	if s.inventory > 0 {
		price := s.unitPrice()
		units := s.inventory
		var revenue float64
		for i := 0; i < units; i++ {
			if _, err := s.credit(ctx, price, ledger.ReasonSale); err != nil {
				logger.FromContext(ctx).Error(LogMsgSaleCreditFailed, "error", err)
				break
			}
			revenue += price
		}
		s.inventory = 0
		_ = s.bus.Publish(ctx, event.NewHotdogSoldEvent(price, units, revenue))
	}

	// Milestone check: rewards are credits themselves, so keep walking until
	// no new threshold is crossed by a reward payout.
	for {
		crossed := s.milestones.Check(s.prestige.LifetimeEarned)
		if len(crossed) == 0 {
			break
		}
		for _, c := range crossed {
			if _, err := s.credit(ctx, c.Milestone.Reward, ledger.ReasonMilestone); err != nil {
				logger.FromContext(ctx).Error(LogMsgMilestoneCreditFailed, "error", err)
			}
			s.prestige.MilestoneIndex = s.milestones.Index()
			_ = s.bus.Publish(ctx, event.NewMilestoneReachedEvent(
				c.Index, c.Milestone.Threshold, c.Milestone.Reward, c.Milestone.Name))
		}
	}

	s.invalidateState()
	s.mu.Unlock()

	s.bus.Flush(ctx)
}
