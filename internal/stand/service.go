package stand

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dagwood-games/hotdog-tycoon/internal/balance"
	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
	"github.com/dagwood-games/hotdog-tycoon/internal/event"
	"github.com/dagwood-games/hotdog-tycoon/internal/ledger"
	"github.com/dagwood-games/hotdog-tycoon/internal/production"
)

// PurchaseResult contains the outcome of a successful upgrade purchase
type PurchaseResult struct {
	UpgradeID string  `json:"upgrade_id"`
	Category  string  `json:"category"`
	NewLevel  int     `json:"new_level"`
	Cost      float64 `json:"cost"`
	Balance   float64 `json:"balance"`
}

// PrestigeResult contains the outcome of a completed prestige
type PrestigeResult struct {
	NewLevel       int     `json:"new_level"`
	CurrencyEarned float64 `json:"currency_earned"`
	NewMultiplier  float64 `json:"new_multiplier"`
	LifetimeEarned float64 `json:"lifetime_earned"`
}

// UpgradeView is the read model of one upgrade for listings
type UpgradeView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Level         int      `json:"level"`
	MaxLevel      int      `json:"max_level"`
	NextCost      float64  `json:"next_cost"`
	Affordable    bool     `json:"affordable"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Unlocked      bool     `json:"unlocked"` // all prerequisites owned
}

// State is the read model of the whole stand
type State struct {
	QueueSize       int     `json:"queue_size"`
	Capacity        int     `json:"capacity"`
	Rate            float64 `json:"rate"`
	ProductionState string  `json:"production_state"`
	Paused          bool    `json:"paused"`
	Inventory       int     `json:"inventory"`
	TotalProduced   int64   `json:"total_produced"`

	Balance          float64 `json:"balance"`
	TotalEarned      float64 `json:"total_earned"`
	TotalSpent       float64 `json:"total_spent"`
	TransactionCount int64   `json:"transaction_count"`
	UnitPrice        float64 `json:"unit_price"`

	Prestige            domain.PrestigeState `json:"prestige"`
	PrestigeMultiplier  float64              `json:"prestige_multiplier"`
	PrestigeRequirement float64              `json:"prestige_requirement"`
	PrestigeEligible    bool                 `json:"prestige_eligible"`
}

// Service defines the interface for the hot dog stand simulation.
//
// All commands are synchronous and serialized on one internal mutex: the HTTP
// layer and the tick driver run on different goroutines but never mutate
// concurrently. Events raised by a command are queued on the bus during the
// mutation and flushed after the lock is released, so listeners observe the
// exact in-tick ordering (drain, sales, milestones) without being able to
// re-enter the simulation while it is mid-mutation.
type Service interface {
	// Enqueue adds one hot dog of work. Returns domain.ErrQueueFull when the
	// queue is at capacity (a queue_full event is emitted as the diagnostic).
	Enqueue(ctx context.Context) error

	// Advance runs one simulation step covering the elapsed wall time:
	// drain, sales, milestone checks, in that order.
	Advance(ctx context.Context, delta time.Duration)

	// Purchase buys the next level of an upgrade.
	Purchase(ctx context.Context, upgradeID string) (*PurchaseResult, error)

	// PerformPrestige resets the run in exchange for a permanent multiplier.
	// Returns domain.ErrPrestigeIneligible without touching any state when the
	// requirement is not met.
	PerformPrestige(ctx context.Context) (*PrestigeResult, error)

	// Pause stops draining without losing queue contents; Resume continues
	// where draining left off.
	Pause(ctx context.Context) bool
	Resume(ctx context.Context) bool

	// State returns the current read model (briefly cached).
	State(ctx context.Context) *State

	// Upgrades lists all upgrades with current levels and next costs.
	Upgrades(ctx context.Context) []UpgradeView

	// Snapshot exports the full mutable state for persistence.
	Snapshot(ctx context.Context) *domain.StandSnapshot

	// Restore rehydrates state from a snapshot without re-emitting events.
	Restore(ctx context.Context, snap *domain.StandSnapshot) error
}

type service struct {
	mu sync.Mutex

	cfg        *balance.Config
	queue      *production.Queue
	ledger     *ledger.Ledger
	engine     *balance.Engine
	milestones *balance.MilestoneTracker
	prestige   domain.PrestigeState

	inventory int

	bus event.Bus
	now func() time.Time

	// stateCache keeps the hot GET /state path off the simulation mutex;
	// entries expire quickly and every mutation invalidates eagerly.
	stateCache *expirable.LRU[string, *State]
}

// NewService creates a stand simulation from a validated balance config.
// The bus should be created with queuing enabled (see Service docs).
func NewService(cfg *balance.Config, bus event.Bus) (Service, error) {
	engine, err := balance.NewEngine(cfg.Upgrades)
	if err != nil {
		return nil, err
	}
	milestones, err := balance.NewMilestoneTracker(cfg.Milestones)
	if err != nil {
		return nil, err
	}

	s := &service{
		cfg: cfg,
		queue: production.NewQueue(production.Params{
			BaseCapacity: cfg.Production.BaseCapacity,
			BaseRate:     cfg.Production.BaseRate,
		}),
		ledger:     ledger.New(cfg.Production.StartingBalance),
		engine:     engine,
		milestones: milestones,
		bus:        bus,
		now:        time.Now,
		stateCache: expirable.NewLRU[string, *State](StateCacheSize, nil, StateCacheTTL),
	}
	s.applyModifiers()
	return s, nil
}

// applyModifiers recomputes the queue's derived parameters from upgrade and
// prestige state. Must be called with s.mu held after any level change.
func (s *service) applyModifiers() {
	effects := s.engine.CurrentEffects()
	prestigeMult := s.cfg.Prestige.Multiplier(s.prestige.Level)
	s.queue.SetModifiers(production.Modifiers{
		CapacityBonus:  effects.CapacityBonus,
		RateMult:       effects.RateMult * prestigeMult,
		EfficiencyMult: effects.EfficiencyMult,
	})
}

// unitPrice returns the effective sale price: base price adjusted by the
// price upgrades (the satisfaction side) and the prestige multiplier (the
// demand side).
func (s *service) unitPrice() float64 {
	effects := s.engine.CurrentEffects()
	return s.cfg.Production.UnitPrice * effects.PriceMult * s.cfg.Prestige.Multiplier(s.prestige.Level)
}

// credit books a credit on the ledger, tracks lifetime earnings for
// milestones/prestige, and queues the matching events. Must hold s.mu.
func (s *service) credit(ctx context.Context, amount float64, reason string) (ledger.Entry, error) {
	entry, err := s.ledger.Credit(amount, reason)
	if err != nil {
		return entry, err
	}
	s.prestige.LifetimeEarned += amount
	s.queueEntryEvents(ctx, entry, amount)
	return entry, nil
}

// queueEntryEvents queues money_changed and transaction_completed for one
// completed ledger entry. Must hold s.mu.
func (s *service) queueEntryEvents(ctx context.Context, entry ledger.Entry, delta float64) {
	_ = s.bus.Publish(ctx, event.NewMoneyChangedEvent(entry.Balance, delta, entry.Reason))
	_ = s.bus.Publish(ctx, event.NewTransactionCompletedEvent(entry.Kind, entry.Amount, entry.Reason, entry.TransactionCount))
}

// invalidateState drops the cached read model. Must hold s.mu.
func (s *service) invalidateState() {
	s.stateCache.Remove(stateCacheKey)
}
