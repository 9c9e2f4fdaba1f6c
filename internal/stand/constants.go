package stand

import "time"

const (
	// State cache configuration. The cache only ever holds one entry; the TTL
	// bounds staleness between a mutation on another goroutine and the next read.
	stateCacheKey  = "stand_state"
	StateCacheSize = 1
	StateCacheTTL  = 250 * time.Millisecond
)

// Log messages
const (
	LogMsgSaleCreditFailed      = "failed to credit sale"
	LogMsgMilestoneCreditFailed = "failed to credit milestone reward"
	LogMsgPurchaseRejected      = "upgrade purchase rejected"
	LogMsgUpgradePurchased      = "upgrade purchased"
	LogMsgPrestigeRejected      = "prestige rejected"
	LogMsgPrestigeCompleted     = "prestige completed"
	LogMsgStateRestored         = "stand state restored from snapshot"
)
