package worker

import (
	"context"
	"fmt"

	"github.com/dagwood-games/hotdog-tycoon/internal/logger"
	"github.com/dagwood-games/hotdog-tycoon/internal/repository"
	"github.com/dagwood-games/hotdog-tycoon/internal/stand"
)

// AutosaveJob snapshots the stand and persists it, keeping a bounded history
type AutosaveJob struct {
	svc  stand.Service
	repo repository.Snapshot
	keep int
}

// NewAutosaveJob creates an autosave job
func NewAutosaveJob(svc stand.Service, repo repository.Snapshot) *AutosaveJob {
	return &AutosaveJob{
		svc:  svc,
		repo: repo,
		keep: AutosaveKeepSnapshots,
	}
}

// Process saves the current snapshot and prunes old ones
func (j *AutosaveJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	snap := j.svc.Snapshot(ctx)
	if err := j.repo.Save(ctx, snap); err != nil {
		log.Error(LogMsgAutosaveFailed, "error", err)
		return fmt.Errorf("autosave: %w", err)
	}

	pruned, err := j.repo.Prune(ctx, j.keep)
	if err != nil {
		// The save succeeded; a failed prune is worth a warning, not a retry
		log.Warn(LogMsgAutosavePruned, "error", err)
		return nil
	}
	if pruned > 0 {
		log.Debug(LogMsgAutosavePruned, "deleted", pruned)
	}

	log.Debug(LogMsgAutosaveCompleted, "taken_at", snap.TakenAt, "balance", snap.Balance)
	return nil
}
