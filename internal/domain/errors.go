package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Production errors
	ErrMsgQueueFull        = "production queue is full"
	ErrMsgProductionPaused = "production is paused"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "amount must be positive"

	// Upgrade errors
	ErrMsgUpgradeNotFound     = "upgrade not found"
	ErrMsgMaxLevelReached     = "upgrade already at max level"
	ErrMsgPrerequisiteLocked  = "prerequisite upgrade is locked"

	// Prestige errors
	ErrMsgPrestigeIneligible = "prestige requirement not met"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Persistence errors
	ErrMsgSnapshotNotFound = "snapshot not found"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Production errors
	ErrQueueFull        = errors.New(ErrMsgQueueFull)
	ErrProductionPaused = errors.New(ErrMsgProductionPaused)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	// Upgrade errors
	ErrUpgradeNotFound    = errors.New(ErrMsgUpgradeNotFound)
	ErrMaxLevelReached    = errors.New(ErrMsgMaxLevelReached)
	ErrPrerequisiteLocked = errors.New(ErrMsgPrerequisiteLocked)

	// Prestige errors
	ErrPrestigeIneligible = errors.New(ErrMsgPrestigeIneligible)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Persistence errors
	ErrSnapshotNotFound = errors.New(ErrMsgSnapshotNotFound)
)
