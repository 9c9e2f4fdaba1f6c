package stand

import (
	"context"

	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
	"github.com/dagwood-games/hotdog-tycoon/internal/event"
	"github.com/dagwood-games/hotdog-tycoon/internal/ledger"
	"github.com/dagwood-games/hotdog-tycoon/internal/logger"
	"github.com/dagwood-games/hotdog-tycoon/internal/production"
)

// Enqueue adds one hot dog of work to the production queue
func (s *service) Enqueue(ctx context.Context) error {
	s.mu.Lock()

	wasIdle := s.queue.State() == production.StateIdle
	ok := s.queue.Enqueue()
	if !ok {
		_ = s.bus.Publish(ctx, event.NewQueueFullEvent(s.queue.Size(), s.queue.Capacity()))
		s.mu.Unlock()
		s.bus.Flush(ctx)
		return domain.ErrQueueFull
	}

	if wasIdle && s.queue.State() == production.StateProducing {
		_ = s.bus.Publish(ctx, event.Event{Type: event.ProductionStarted})
	}
	s.invalidateState()
	s.mu.Unlock()

	s.bus.Flush(ctx)
	return nil
}

// Purchase buys the next level of an upgrade, debiting its cost and applying
// the effect to the targeted parameter.
func (s *service) Purchase(ctx context.Context, upgradeID string) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	s.mu.Lock()

	def, cost, err := s.engine.ValidatePurchase(upgradeID)
	if err != nil {
		s.mu.Unlock()
		log.Info(LogMsgPurchaseRejected, "upgrade_id", upgradeID, "error", err)
		return nil, err
	}

	entry, err := s.ledger.Debit(cost, ledger.ReasonUpgrade)
	if err != nil {
		_ = s.bus.Publish(ctx, event.NewInsufficientFundsEvent(cost, s.ledger.Balance(), ledger.ReasonUpgrade))
		s.mu.Unlock()
		s.bus.Flush(ctx)
		log.Info(LogMsgPurchaseRejected, "upgrade_id", upgradeID, "error", err)
		return nil, err
	}

	newLevel := s.engine.ApplyPurchase(upgradeID)
	s.applyModifiers()

	s.queueEntryEvents(ctx, entry, -entry.Amount)
	_ = s.bus.Publish(ctx, event.NewUpgradePurchasedEvent(def.ID, string(def.Category), newLevel, cost))
	s.invalidateState()

	result := &PurchaseResult{
		UpgradeID: def.ID,
		Category:  string(def.Category),
		NewLevel:  newLevel,
		Cost:      cost,
		Balance:   entry.Balance,
	}
	s.mu.Unlock()

	s.bus.Flush(ctx)
	log.Info(LogMsgUpgradePurchased, "upgrade_id", def.ID, "new_level", newLevel, "cost", cost)
	return result, nil
}

// PerformPrestige resets all run progress for a permanent multiplier.
// The reset is atomic: eligibility is checked first and every mutation happens
// under the lock, so an ineligible call changes nothing at all.
func (s *service) PerformPrestige(ctx context.Context) (*PrestigeResult, error) {
	log := logger.FromContext(ctx)
	s.mu.Lock()

	runEarned := s.ledger.TotalEarned()
	if !s.cfg.Prestige.Eligible(s.prestige.Level, runEarned) {
		s.mu.Unlock()
		log.Info(LogMsgPrestigeRejected,
			"total_earned", runEarned,
			"required", s.cfg.Prestige.Requirement(s.prestige.Level))
		return nil, domain.ErrPrestigeIneligible
	}

	currency := s.cfg.Prestige.CurrencyFor(runEarned)
	s.prestige.Level++
	s.prestige.Currency += currency
	s.prestige.MilestoneIndex = s.milestones.Index()
	s.prestige.LastPrestigeUnix = s.now().Unix()

	s.queue.ResetForPrestige()
	s.ledger.ResetForPrestige(s.cfg.Production.StartingBalance)
	s.engine.ResetForPrestige()
	s.inventory = 0
	s.applyModifiers()

	multiplier := s.cfg.Prestige.Multiplier(s.prestige.Level)
	result := &PrestigeResult{
		NewLevel:       s.prestige.Level,
		CurrencyEarned: currency,
		NewMultiplier:  multiplier,
		LifetimeEarned: s.prestige.LifetimeEarned,
	}

	_ = s.bus.Publish(ctx, event.NewPrestigeCompletedEvent(
		s.prestige.Level, currency, s.prestige.LifetimeEarned, multiplier, runEarned))
	s.invalidateState()
	s.mu.Unlock()

	s.bus.Flush(ctx)
	log.Info(LogMsgPrestigeCompleted, "new_level", result.NewLevel, "currency_earned", currency)
	return result, nil
}

// Pause stops draining without losing queue contents
func (s *service) Pause(ctx context.Context) bool {
	s.mu.Lock()

	paused := s.queue.Pause()
	if paused {
		_ = s.bus.Publish(ctx, event.NewProductionStoppedEvent(
			s.queue.TotalProduced(), string(production.StopReasonPaused)))
		s.invalidateState()
	}
	s.mu.Unlock()

	s.bus.Flush(ctx)
	return paused
}

// Resume re-arms draining after a Pause
func (s *service) Resume(ctx context.Context) bool {
	s.mu.Lock()

	resumed := s.queue.Resume()
	if resumed && s.queue.State() == production.StateProducing {
		_ = s.bus.Publish(ctx, event.Event{Type: event.ProductionStarted})
	}
	if resumed {
		s.invalidateState()
	}
	s.mu.Unlock()

	s.bus.Flush(ctx)
	return resumed
}
