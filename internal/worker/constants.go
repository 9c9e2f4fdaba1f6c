package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Tick Worker
// ============================================================================

const (
	LogMsgTickSkipped = "Tick skipped, queue full"
)

// ============================================================================
// Log Messages - Autosave Worker
// ============================================================================

const (
	LogMsgAutosaveCompleted = "Autosave completed"
	LogMsgAutosaveFailed    = "Autosave failed"
	LogMsgAutosavePruned    = "Old snapshots pruned"
)

// ============================================================================
// Autosave Configuration
// ============================================================================

// AutosaveKeepSnapshots is how many snapshot rows the autosave worker retains
const AutosaveKeepSnapshots = 20
