package balance

import (
	"fmt"
	"math"

	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
)

// Category is the simulation parameter an upgrade targets
type Category string

const (
	CategoryRate       Category = "rate"
	CategoryCapacity   Category = "capacity"
	CategoryEfficiency Category = "efficiency"
	CategoryPrice      Category = "price"
)

// EffectType determines how an upgrade's levels convert into an effect value
type EffectType string

const (
	EffectAdditive       EffectType = "additive"
	EffectMultiplicative EffectType = "multiplicative"
	EffectUnlock         EffectType = "unlock"
)

// UpgradeDef is the immutable configuration of one purchasable upgrade.
// Loaded from configs/balance.yaml and validated on load.
type UpgradeDef struct {
	ID             string     `yaml:"id" validate:"required"`
	Name           string     `yaml:"name"`
	Category       Category   `yaml:"category" validate:"required,oneof=rate capacity efficiency price"`
	BaseCost       float64    `yaml:"base_cost" validate:"required,gt=0"`
	CostMultiplier float64    `yaml:"cost_multiplier" validate:"required,gt=1"`
	MaxLevel       int        `yaml:"max_level" validate:"required,gt=0"`
	EffectType     EffectType `yaml:"effect_type" validate:"required,oneof=additive multiplicative unlock"`
	EffectValue    float64    `yaml:"effect_value"`
	Prerequisites  []string   `yaml:"prerequisites"`
}

// CostAtLevel returns the purchase cost of the next level when the upgrade is
// currently at the given level: base_cost * cost_multiplier^level.
func CostAtLevel(def UpgradeDef, level int) float64 {
	if level < 0 {
		level = 0
	}
	return def.BaseCost * math.Pow(def.CostMultiplier, float64(level))
}

// EffectAtLevel returns the effect contribution of an upgrade at a level.
// additive: effect_value * level; multiplicative: 1 + effect_value * level;
// unlock: 1 when owned, 0 otherwise.
func EffectAtLevel(def UpgradeDef, level int) float64 {
	if level <= 0 {
		if def.EffectType == EffectMultiplicative {
			return 1
		}
		return 0
	}
	switch def.EffectType {
	case EffectAdditive:
		return def.EffectValue * float64(level)
	case EffectMultiplicative:
		return 1 + def.EffectValue*float64(level)
	case EffectUnlock:
		return 1
	default:
		return 0
	}
}

// Effects are the aggregate upgrade contributions per simulation parameter.
// Multipliers start at 1; additive capacity contributions are whole slots.
type Effects struct {
	RateMult       float64
	CapacityBonus  int
	EfficiencyMult float64
	PriceMult      float64
}

// NeutralEffects returns the effect set with no upgrades owned
func NeutralEffects() Effects {
	return Effects{RateMult: 1, EfficiencyMult: 1, PriceMult: 1}
}

// Engine pairs the immutable upgrade definitions with the mutable per-upgrade
// levels and answers purchase/effect queries.
// Engine is not safe for concurrent use; the owning aggregate serializes access.
type Engine struct {
	defs   map[string]UpgradeDef
	order  []string // definition order, for stable listings
	levels map[string]int
}

// NewEngine creates an engine from validated definitions
func NewEngine(defs []UpgradeDef) (*Engine, error) {
	e := &Engine{
		defs:   make(map[string]UpgradeDef, len(defs)),
		levels: make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		if _, dup := e.defs[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate upgrade id %q", domain.ErrInvalidInput, def.ID)
		}
		e.defs[def.ID] = def
		e.order = append(e.order, def.ID)
	}
	// Prerequisites must reference known upgrades
	for _, def := range defs {
		for _, prereq := range def.Prerequisites {
			if _, ok := e.defs[prereq]; !ok {
				return nil, fmt.Errorf("%w: upgrade %q references unknown prerequisite %q",
					domain.ErrInvalidInput, def.ID, prereq)
			}
		}
	}
	return e, nil
}

// Definition returns the definition for an id
func (e *Engine) Definition(id string) (UpgradeDef, bool) {
	def, ok := e.defs[id]
	return def, ok
}

// Definitions returns all definitions in configuration order
func (e *Engine) Definitions() []UpgradeDef {
	out := make([]UpgradeDef, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.defs[id])
	}
	return out
}

// Level returns the current level of an upgrade (0 when never purchased)
func (e *Engine) Level(id string) int {
	return e.levels[id]
}

// Levels returns a copy of all non-zero upgrade levels, for snapshots
func (e *Engine) Levels() map[string]int {
	out := make(map[string]int, len(e.levels))
	for id, level := range e.levels {
		if level > 0 {
			out[id] = level
		}
	}
	return out
}

// NextCost returns the cost of the next level of an upgrade
func (e *Engine) NextCost(id string) (float64, error) {
	def, ok := e.defs[id]
	if !ok {
		return 0, domain.ErrUpgradeNotFound
	}
	return CostAtLevel(def, e.levels[id]), nil
}

// ValidatePurchase checks everything except affordability: the upgrade exists,
// is below max level, and all prerequisites are owned. The ledger debit is the
// caller's job so money invariants stay in one place.
func (e *Engine) ValidatePurchase(id string) (UpgradeDef, float64, error) {
	def, ok := e.defs[id]
	if !ok {
		return UpgradeDef{}, 0, domain.ErrUpgradeNotFound
	}

	level := e.levels[id]
	if level >= def.MaxLevel {
		return UpgradeDef{}, 0, domain.ErrMaxLevelReached
	}
	for _, prereq := range def.Prerequisites {
		if e.levels[prereq] == 0 {
			return UpgradeDef{}, 0, fmt.Errorf("%w: %s", domain.ErrPrerequisiteLocked, prereq)
		}
	}
	return def, CostAtLevel(def, level), nil
}

// ApplyPurchase increments the level after a successful debit and returns the
// new level.
func (e *Engine) ApplyPurchase(id string) int {
	e.levels[id]++
	return e.levels[id]
}

// CurrentEffects aggregates owned upgrade levels into per-parameter effects.
// Within a category, additive contributions add onto the multiplier (capacity
// adds whole slots instead) and multiplicative contributions multiply.
func (e *Engine) CurrentEffects() Effects {
	effects := NeutralEffects()
	for _, id := range e.order {
		def := e.defs[id]
		level := e.levels[id]
		if level == 0 || def.EffectType == EffectUnlock {
			continue
		}
		value := EffectAtLevel(def, level)

		switch def.Category {
		case CategoryCapacity:
			if def.EffectType == EffectAdditive {
				effects.CapacityBonus += int(value)
			} else {
				effects.CapacityBonus += int(math.Round(value)) - 1
			}
		case CategoryRate:
			effects.RateMult = applyEffect(effects.RateMult, def.EffectType, value)
		case CategoryEfficiency:
			effects.EfficiencyMult = applyEffect(effects.EfficiencyMult, def.EffectType, value)
		case CategoryPrice:
			effects.PriceMult = applyEffect(effects.PriceMult, def.EffectType, value)
		}
	}
	return effects
}

func applyEffect(current float64, effectType EffectType, value float64) float64 {
	if effectType == EffectAdditive {
		return current + value
	}
	return current * value
}

// SetLevel force-sets a level, used by snapshot restore. Unknown ids are
// ignored (the config may have dropped an upgrade since the snapshot).
func (e *Engine) SetLevel(id string, level int) {
	def, ok := e.defs[id]
	if !ok {
		return
	}
	if level < 0 {
		level = 0
	}
	if level > def.MaxLevel {
		level = def.MaxLevel
	}
	if level == 0 {
		delete(e.levels, id)
		return
	}
	e.levels[id] = level
}

// ResetForPrestige clears every upgrade level
func (e *Engine) ResetForPrestige() {
	e.levels = make(map[string]int, len(e.defs))
}
