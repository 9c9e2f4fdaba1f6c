package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Bus configuration defaults
const (
	// DefaultMaxHistorySize is the default bound of the event history ring
	DefaultMaxHistorySize = 256
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Log message constants
const (
	LogMsgEmptyEventType      = "Dropping event with empty type"
	LogMsgInvalidSubscription = "Ignoring invalid subscription"
	LogMsgFlushHandlerFailed  = "Handler failed during flush"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
