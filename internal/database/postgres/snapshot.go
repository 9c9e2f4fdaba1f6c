package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
	"github.com/dagwood-games/hotdog-tycoon/internal/repository"
)

type snapshotRepository struct {
	db *pgxpool.Pool
}

// NewSnapshotRepository creates a new PostgreSQL snapshot repository
func NewSnapshotRepository(db *pgxpool.Pool) repository.Snapshot {
	return &snapshotRepository{db: db}
}

// Save persists a snapshot as a JSONB row. Rows are append-only; Latest reads
// the newest one and Prune trims old history.
func (r *snapshotRepository) Save(ctx context.Context, snap *domain.StandSnapshot) error {
	if snap == nil {
		return domain.ErrInvalidInput
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMarshalSnapshotFailed, err)
	}

	query := `
		INSERT INTO stand_snapshots (schema_version, taken_at, state)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.Exec(ctx, query, snap.SchemaVersion, snap.TakenAt, data); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveSnapshotFailed, err)
	}
	return nil
}

// Latest returns the most recently saved snapshot
func (r *snapshotRepository) Latest(ctx context.Context) (*domain.StandSnapshot, error) {
	query := `
		SELECT state
		FROM stand_snapshots
		ORDER BY taken_at DESC, id DESC
		LIMIT 1
	`

	var data []byte
	err := r.db.QueryRow(ctx, query).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadSnapshotFailed, err)
	}

	var snap domain.StandSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUnmarshalSnapshotFailed, err)
	}
	return &snap, nil
}

// Prune removes all but the newest keep snapshots
func (r *snapshotRepository) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	query := `
		DELETE FROM stand_snapshots
		WHERE id NOT IN (
			SELECT id FROM stand_snapshots
			ORDER BY taken_at DESC, id DESC
			LIMIT $1
		)
	`
	tag, err := r.db.Exec(ctx, query, keep)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgPruneSnapshotsFailed, err)
	}
	return tag.RowsAffected(), nil
}
