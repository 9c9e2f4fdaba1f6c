package balance

import "math"

// PrestigeConfig tunes the prestige loop
type PrestigeConfig struct {
	// BaseRequirement is the lifetime earnings needed for the first prestige;
	// the requirement doubles with every completed prestige.
	BaseRequirement float64 `yaml:"base_requirement" validate:"required,gt=0"`

	// BonusPerLevel is the permanent multiplier gained per prestige level
	BonusPerLevel float64 `yaml:"bonus_per_level" validate:"required,gt=0"`

	// CurrencyDivisor scales the sqrt currency grant:
	// currency = floor(sqrt(run earnings / divisor))
	CurrencyDivisor float64 `yaml:"currency_divisor" validate:"required,gt=0"`
}

// Requirement returns the earnings threshold for the next prestige at the
// given prestige level: base * 2^level.
func (c PrestigeConfig) Requirement(level int) float64 {
	if level < 0 {
		level = 0
	}
	return c.BaseRequirement * math.Pow(2, float64(level))
}

// Eligible reports whether a run with the given earnings may prestige
func (c PrestigeConfig) Eligible(level int, totalEarned float64) bool {
	return totalEarned >= c.Requirement(level)
}

// CurrencyFor converts one run's earnings into prestige currency.
// Monotonic and sub-linear so later prestiges always pay more absolute
// currency but chasing ever-longer runs has diminishing returns.
func (c PrestigeConfig) CurrencyFor(totalEarned float64) float64 {
	if totalEarned <= 0 {
		return 0
	}
	return math.Floor(math.Sqrt(totalEarned / c.CurrencyDivisor))
}

// Multiplier returns the persistent rate/price multiplier for a prestige
// level: 1 + level * bonus_per_level.
func (c PrestigeConfig) Multiplier(level int) float64 {
	if level < 0 {
		level = 0
	}
	return 1 + float64(level)*c.BonusPerLevel
}
