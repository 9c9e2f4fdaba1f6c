package postgres

// Error Messages - Snapshot Storage
const (
	ErrMsgMarshalSnapshotFailed   = "failed to marshal snapshot"
	ErrMsgUnmarshalSnapshotFailed = "failed to unmarshal snapshot"
	ErrMsgSaveSnapshotFailed      = "failed to save snapshot"
	ErrMsgLoadSnapshotFailed      = "failed to load snapshot"
	ErrMsgPruneSnapshotsFailed    = "failed to prune snapshots"
)
