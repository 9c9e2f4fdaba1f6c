package repository

import (
	"context"

	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
)

// Snapshot defines the interface for stand snapshot storage
type Snapshot interface {
	// Save persists a snapshot. Later saves win; history is kept for debugging.
	Save(ctx context.Context, snap *domain.StandSnapshot) error

	// Latest returns the most recently saved snapshot, or
	// domain.ErrSnapshotNotFound when none has been saved yet.
	Latest(ctx context.Context) (*domain.StandSnapshot, error)

	// Prune removes all but the newest n snapshots and returns how many rows
	// were deleted.
	Prune(ctx context.Context, keep int) (int64, error)
}
