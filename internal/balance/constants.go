package balance

// Error messages for config loading
const (
	ErrMsgReadConfigFailed  = "failed to read balance config"
	ErrMsgParseConfigFailed = "failed to parse balance config"
	ErrMsgInvalidConfig     = "invalid balance config"
	ErrMsgVersionMismatch   = "balance config version mismatch"
)

// Log messages
const (
	LogMsgConfigLoaded = "Balance config loaded"
)
