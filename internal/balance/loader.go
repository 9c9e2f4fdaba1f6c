package balance

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dagwood-games/hotdog-tycoon/internal/logger"
)

// ConfigSchemaVersion is the balance config version this build understands
const ConfigSchemaVersion = "1.0"

// ProductionConfig holds the base simulation parameters before upgrades
type ProductionConfig struct {
	BaseCapacity    int     `yaml:"base_capacity" validate:"required,gt=0"`
	BaseRate        float64 `yaml:"base_rate" validate:"required,gt=0"`
	UnitPrice       float64 `yaml:"unit_price" validate:"required,gt=0"`
	StartingBalance float64 `yaml:"starting_balance" validate:"gte=0"`
}

// Config is the full balance configuration loaded from configs/balance.yaml
type Config struct {
	Version    string           `yaml:"version" validate:"required"`
	Production ProductionConfig `yaml:"production" validate:"required"`
	Upgrades   []UpgradeDef     `yaml:"upgrades" validate:"required,min=1,dive"`
	Milestones []Milestone      `yaml:"milestones" validate:"dive"`
	Prestige   PrestigeConfig   `yaml:"prestige" validate:"required"`
}

// Load reads and validates a balance config from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadConfigFailed, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseConfigFailed, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	logger.FromContext(context.Background()).Info(LogMsgConfigLoaded,
		"path", path,
		"upgrades", len(cfg.Upgrades),
		"milestones", len(cfg.Milestones))
	return &cfg, nil
}

// Validate checks a config beyond struct tags: version match and curve sanity
// that the tag language cannot express.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	if cfg.Version != ConfigSchemaVersion {
		return fmt.Errorf("%s: expected %s, got %s", ErrMsgVersionMismatch, ConfigSchemaVersion, cfg.Version)
	}
	// NewMilestoneTracker and NewEngine re-validate ordering and references;
	// run them here so a bad file fails at load time, not at first use.
	if _, err := NewEngine(cfg.Upgrades); err != nil {
		return err
	}
	if _, err := NewMilestoneTracker(cfg.Milestones); err != nil {
		return err
	}
	return nil
}

// Default returns the built-in balance used when no config file is supplied
// (tests, cmd/simulate, and local development).
func Default() *Config {
	return &Config{
		Version: ConfigSchemaVersion,
		Production: ProductionConfig{
			BaseCapacity:    10,
			BaseRate:        1.0,
			UnitPrice:       2.0,
			StartingBalance: 0,
		},
		Upgrades: []UpgradeDef{
			{
				ID: "faster_grill", Name: "Faster Grill",
				Category: CategoryRate, BaseCost: 10, CostMultiplier: 1.5,
				MaxLevel: 25, EffectType: EffectMultiplicative, EffectValue: 0.25,
			},
			{
				ID: "longer_counter", Name: "Longer Counter",
				Category: CategoryCapacity, BaseCost: 15, CostMultiplier: 1.8,
				MaxLevel: 20, EffectType: EffectAdditive, EffectValue: 5,
			},
			{
				ID: "premium_mustard", Name: "Premium Mustard",
				Category: CategoryPrice, BaseCost: 25, CostMultiplier: 2.0,
				MaxLevel: 15, EffectType: EffectMultiplicative, EffectValue: 0.2,
			},
			{
				ID: "assembly_line", Name: "Assembly Line",
				Category: CategoryEfficiency, BaseCost: 100, CostMultiplier: 2.5,
				MaxLevel: 10, EffectType: EffectMultiplicative, EffectValue: 0.5,
				Prerequisites: []string{"faster_grill"},
			},
			{
				ID: "franchise_license", Name: "Franchise License",
				Category: CategoryPrice, BaseCost: 500, CostMultiplier: 3.0,
				MaxLevel: 1, EffectType: EffectUnlock,
				Prerequisites: []string{"premium_mustard"},
			},
		},
		Milestones: []Milestone{
			{Name: "First Taste", Threshold: 100, Reward: 25},
			{Name: "Corner Favorite", Threshold: 1000, Reward: 200},
			{Name: "Neighborhood Staple", Threshold: 10000, Reward: 1500},
			{Name: "City Legend", Threshold: 100000, Reward: 12000},
		},
		Prestige: PrestigeConfig{
			BaseRequirement: 50000,
			BonusPerLevel:   0.1,
			CurrencyDivisor: 1000,
		},
	}
}
