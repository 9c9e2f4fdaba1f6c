package bootstrap

// Worker pool sizing. One worker is enough for the tick and autosave jobs;
// the queue bound lets a slow tick drop instead of piling up.
const (
	WorkerCount     = 1
	WorkerQueueSize = 4
)

// DeadLetterFileName is the dead-letter log written under the log directory
const DeadLetterFileName = "events_deadletter.jsonl"

// Log messages for startup and shutdown
const (
	LogMsgBalanceLoaded       = "Balance config loaded"
	LogMsgBalanceDefaults     = "Balance config missing, using built-in defaults"
	LogMsgDatabaseConnected   = "Database connected"
	LogMsgPersistenceDisabled = "Persistence disabled, running in-memory only"
	LogMsgStateRestored       = "Restored stand from latest snapshot"
	LogMsgNoSnapshotFound     = "No saved snapshot, starting fresh"
	LogMsgAnnouncerDisabled   = "Discord announcer disabled"
	LogMsgShutdownStarted     = "Shutdown started"
	LogMsgShutdownComplete    = "Shutdown complete"
	LogMsgFinalSaveFailed     = "Final snapshot save failed"
)
