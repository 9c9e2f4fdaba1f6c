package stand

import (
	"context"
	"fmt"

	"github.com/dagwood-games/hotdog-tycoon/internal/balance"
	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
	"github.com/dagwood-games/hotdog-tycoon/internal/logger"
)

// State returns the current read model. Served from a short-TTL cache so
// frequent polls do not contend with the simulation mutex; every mutation
// invalidates the cache eagerly.
func (s *service) State(_ context.Context) *State {
	if cached, ok := s.stateCache.Get(stateCacheKey); ok {
		return cached
	}

	s.mu.Lock()
	state := s.buildState()
	s.mu.Unlock()

	s.stateCache.Add(stateCacheKey, state)
	return state
}

// buildState assembles the read model. Must hold s.mu.
func (s *service) buildState() *State {
	runEarned := s.ledger.TotalEarned()
	return &State{
		QueueSize:       s.queue.Size(),
		Capacity:        s.queue.Capacity(),
		Rate:            s.queue.Rate(),
		ProductionState: string(s.queue.State()),
		Paused:          s.queue.Paused(),
		Inventory:       s.inventory,
		TotalProduced:   s.queue.TotalProduced(),

		Balance:          s.ledger.Balance(),
		TotalEarned:      runEarned,
		TotalSpent:       s.ledger.TotalSpent(),
		TransactionCount: s.ledger.TransactionCount(),
		UnitPrice:        s.unitPrice(),

		Prestige:            s.prestige,
		PrestigeMultiplier:  s.cfg.Prestige.Multiplier(s.prestige.Level),
		PrestigeRequirement: s.cfg.Prestige.Requirement(s.prestige.Level),
		PrestigeEligible:    s.cfg.Prestige.Eligible(s.prestige.Level, runEarned),
	}
}

// Upgrades lists all upgrades with current levels and purchase info
func (s *service) Upgrades(_ context.Context) []UpgradeView {
	s.mu.Lock()
	defer s.mu.Unlock()

	defs := s.engine.Definitions()
	views := make([]UpgradeView, 0, len(defs))
	for _, def := range defs {
		level := s.engine.Level(def.ID)
		cost := balance.CostAtLevel(def, level)

		unlocked := true
		for _, prereq := range def.Prerequisites {
			if s.engine.Level(prereq) == 0 {
				unlocked = false
				break
			}
		}

		views = append(views, UpgradeView{
			ID:            def.ID,
			Name:          def.Name,
			Category:      string(def.Category),
			Level:         level,
			MaxLevel:      def.MaxLevel,
			NextCost:      cost,
			Affordable:    level < def.MaxLevel && unlocked && s.ledger.CanAfford(cost),
			Prerequisites: def.Prerequisites,
			Unlocked:      unlocked,
		})
	}
	return views
}

// Snapshot exports the full mutable state for the persistence collaborator
func (s *service) Snapshot(_ context.Context) *domain.StandSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &domain.StandSnapshot{
		SchemaVersion: domain.SnapshotSchemaVersion,
		TakenAt:       s.now(),

		QueueSize:     s.queue.Size(),
		Inventory:     s.inventory,
		TotalProduced: s.queue.TotalProduced(),
		DrainCarry:    s.queue.Carry(),
		Paused:        s.queue.Paused(),

		Balance:          s.ledger.Balance(),
		TotalEarned:      s.ledger.TotalEarned(),
		TotalSpent:       s.ledger.TotalSpent(),
		TransactionCount: s.ledger.TransactionCount(),

		UpgradeLevels: s.engine.Levels(),
		Prestige:      s.prestige,
	}
}

// Restore rehydrates the stand from a snapshot without re-emitting any
// historical events. Upgrade levels apply before production state so the
// restored queue size is clamped against the upgraded capacity.
func (s *service) Restore(ctx context.Context, snap *domain.StandSnapshot) error {
	if snap == nil {
		return domain.ErrInvalidInput
	}
	if snap.SchemaVersion != domain.SnapshotSchemaVersion {
		return fmt.Errorf("%w: snapshot schema %q, expected %q",
			domain.ErrInvalidInput, snap.SchemaVersion, domain.SnapshotSchemaVersion)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.prestige = snap.Prestige
	s.milestones.SetIndex(snap.Prestige.MilestoneIndex)

	s.engine.ResetForPrestige()
	for id, level := range snap.UpgradeLevels {
		s.engine.SetLevel(id, level)
	}
	s.applyModifiers()

	s.queue.Restore(snap.QueueSize, snap.TotalProduced, snap.DrainCarry, snap.Paused)
	s.ledger.Restore(snap.Balance, snap.TotalEarned, snap.TotalSpent, snap.TransactionCount)
	s.inventory = snap.Inventory
	if s.inventory < 0 {
		s.inventory = 0
	}
	s.invalidateState()

	logger.FromContext(ctx).Info(LogMsgStateRestored,
		"taken_at", snap.TakenAt,
		"queue_size", s.queue.Size(),
		"balance", s.ledger.Balance(),
		"prestige_level", s.prestige.Level)
	return nil
}
