package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
)

func testDefs() []UpgradeDef {
	return []UpgradeDef{
		{ID: "grill", Category: CategoryRate, BaseCost: 10, CostMultiplier: 1.5,
			MaxLevel: 5, EffectType: EffectMultiplicative, EffectValue: 0.25},
		{ID: "counter", Category: CategoryCapacity, BaseCost: 15, CostMultiplier: 1.8,
			MaxLevel: 3, EffectType: EffectAdditive, EffectValue: 5},
		{ID: "mustard", Category: CategoryPrice, BaseCost: 25, CostMultiplier: 2.0,
			MaxLevel: 2, EffectType: EffectMultiplicative, EffectValue: 0.2},
		{ID: "license", Category: CategoryPrice, BaseCost: 500, CostMultiplier: 3.0,
			MaxLevel: 1, EffectType: EffectUnlock, Prerequisites: []string{"mustard"}},
	}
}

func TestCostAtLevel(t *testing.T) {
	def := UpgradeDef{BaseCost: 10, CostMultiplier: 1.5}

	assert.InDelta(t, 10.0, CostAtLevel(def, 0), 1e-9)
	assert.InDelta(t, 15.0, CostAtLevel(def, 1), 1e-9)
	assert.InDelta(t, 22.5, CostAtLevel(def, 2), 1e-9)
}

func TestCostAtLevel_Monotonic(t *testing.T) {
	def := UpgradeDef{BaseCost: 3, CostMultiplier: 1.15}
	for level := 0; level < 50; level++ {
		assert.Greater(t, CostAtLevel(def, level+1), CostAtLevel(def, level),
			"cost must strictly increase at level %d", level)
	}
}

func TestEffectAtLevel(t *testing.T) {
	tests := []struct {
		name     string
		def      UpgradeDef
		level    int
		expected float64
	}{
		{"additive level 0", UpgradeDef{EffectType: EffectAdditive, EffectValue: 5}, 0, 0},
		{"additive level 3", UpgradeDef{EffectType: EffectAdditive, EffectValue: 5}, 3, 15},
		{"multiplicative level 0", UpgradeDef{EffectType: EffectMultiplicative, EffectValue: 0.25}, 0, 1},
		{"multiplicative level 4", UpgradeDef{EffectType: EffectMultiplicative, EffectValue: 0.25}, 4, 2},
		{"unlock unowned", UpgradeDef{EffectType: EffectUnlock}, 0, 0},
		{"unlock owned", UpgradeDef{EffectType: EffectUnlock}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EffectAtLevel(tt.def, tt.level), 1e-9)
		})
	}
}

func TestNewEngine_RejectsDuplicateIDs(t *testing.T) {
	defs := testDefs()
	defs = append(defs, defs[0])
	_, err := NewEngine(defs)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewEngine_RejectsUnknownPrerequisite(t *testing.T) {
	defs := []UpgradeDef{
		{ID: "a", Category: CategoryRate, BaseCost: 1, CostMultiplier: 2, MaxLevel: 1,
			EffectType: EffectAdditive, Prerequisites: []string{"ghost"}},
	}
	_, err := NewEngine(defs)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEngine_ValidatePurchase(t *testing.T) {
	engine, err := NewEngine(testDefs())
	require.NoError(t, err)

	t.Run("unknown id", func(t *testing.T) {
		_, _, err := engine.ValidatePurchase("ghost")
		assert.ErrorIs(t, err, domain.ErrUpgradeNotFound)
	})

	t.Run("prerequisite locked", func(t *testing.T) {
		_, _, err := engine.ValidatePurchase("license")
		assert.ErrorIs(t, err, domain.ErrPrerequisiteLocked)
	})

	t.Run("cost follows level", func(t *testing.T) {
		_, cost, err := engine.ValidatePurchase("grill")
		require.NoError(t, err)
		assert.InDelta(t, 10.0, cost, 1e-9)

		engine.ApplyPurchase("grill")
		_, cost, err = engine.ValidatePurchase("grill")
		require.NoError(t, err)
		assert.InDelta(t, 15.0, cost, 1e-9)
	})

	t.Run("max level reached", func(t *testing.T) {
		for engine.Level("mustard") < 2 {
			engine.ApplyPurchase("mustard")
		}
		_, _, err := engine.ValidatePurchase("mustard")
		assert.ErrorIs(t, err, domain.ErrMaxLevelReached)
	})

	t.Run("prerequisite satisfied after purchase", func(t *testing.T) {
		_, cost, err := engine.ValidatePurchase("license")
		require.NoError(t, err)
		assert.InDelta(t, 500.0, cost, 1e-9)
	})
}

func TestEngine_CurrentEffects(t *testing.T) {
	engine, err := NewEngine(testDefs())
	require.NoError(t, err)

	assert.Equal(t, NeutralEffects(), engine.CurrentEffects())

	engine.ApplyPurchase("grill")   // rate x1.25
	engine.ApplyPurchase("grill")   // rate x1.5
	engine.ApplyPurchase("counter") // +5 slots
	engine.ApplyPurchase("mustard") // price x1.2

	effects := engine.CurrentEffects()
	assert.InDelta(t, 1.5, effects.RateMult, 1e-9)
	assert.Equal(t, 5, effects.CapacityBonus)
	assert.InDelta(t, 1.2, effects.PriceMult, 1e-9)
	assert.InDelta(t, 1.0, effects.EfficiencyMult, 1e-9)
}

func TestEngine_SetLevelAndSnapshot(t *testing.T) {
	engine, err := NewEngine(testDefs())
	require.NoError(t, err)

	engine.SetLevel("grill", 3)
	engine.SetLevel("counter", 99) // clamped to max level
	engine.SetLevel("ghost", 5)    // unknown ids ignored

	assert.Equal(t, 3, engine.Level("grill"))
	assert.Equal(t, 3, engine.Level("counter"))
	assert.Equal(t, map[string]int{"grill": 3, "counter": 3}, engine.Levels())
}

func TestEngine_ResetForPrestige(t *testing.T) {
	engine, err := NewEngine(testDefs())
	require.NoError(t, err)
	engine.ApplyPurchase("grill")
	engine.ApplyPurchase("counter")

	engine.ResetForPrestige()

	assert.Empty(t, engine.Levels())
	assert.Equal(t, NeutralEffects(), engine.CurrentEffects())
}
