package domain

import "time"

// SnapshotSchemaVersion is the current version of the persisted stand snapshot.
// Increment when the StandSnapshot structure changes so stale rows are rejected
// on restore instead of silently loading partial state.
const SnapshotSchemaVersion = "1.0"

// StandSnapshot is the full serializable state of one hot dog stand simulation.
// The persistence layer stores it as-is and feeds it back through
// stand.Service.Restore; restoring never re-emits historical events.
type StandSnapshot struct {
	SchemaVersion string    `json:"schema_version"`
	TakenAt       time.Time `json:"taken_at"`

	// Production state
	QueueSize     int     `json:"queue_size"`
	Inventory     int     `json:"inventory"`
	TotalProduced int64   `json:"total_produced"`
	DrainCarry    float64 `json:"drain_carry"`
	Paused        bool    `json:"paused"`

	// Ledger state
	Balance          float64 `json:"balance"`
	TotalEarned      float64 `json:"total_earned"`
	TotalSpent       float64 `json:"total_spent"`
	TransactionCount int64   `json:"transaction_count"`

	// Upgrade levels keyed by upgrade id
	UpgradeLevels map[string]int `json:"upgrade_levels"`

	// Prestige state survives resets and is carried verbatim
	Prestige PrestigeState `json:"prestige"`
}

// PrestigeState holds the progress that persists across prestige resets.
type PrestigeState struct {
	Level            int     `json:"level"`
	Currency         float64 `json:"currency"`
	LifetimeEarned   float64 `json:"lifetime_earned"`
	MilestoneIndex   int     `json:"milestone_index"`
	LastPrestigeUnix int64   `json:"last_prestige_unix,omitempty"`
}
