package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed = "Method not allowed"
	ErrMsgInvalidRequest   = "Invalid request body"

	// Stand operation error messages
	ErrMsgEnqueueFailed    = "Failed to enqueue hot dog"
	ErrMsgPurchaseFailed   = "Failed to purchase upgrade"
	ErrMsgPrestigeFailed   = "Failed to prestige"
	ErrMsgSaveFailed       = "Failed to save stand state"
	ErrMsgGetEventsFailed  = "Failed to retrieve events"
	ErrMsgUpgradeIDMissing = "upgrade_id is required"

	ErrMsgPersistenceDisabled = "Persistence is not configured"
)

// Success messages for API responses
const (
	MsgEnqueuedSuccess = "Hot dog queued"
	MsgPausedSuccess   = "Production paused"
	MsgResumedSuccess  = "Production resumed"
	MsgAlreadyPaused   = "Production already paused"
	MsgAlreadyRunning  = "Production already running"
	MsgSavedSuccess    = "Stand state saved"
)
