package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
	"github.com/dagwood-games/hotdog-tycoon/internal/stand"
)

// MockStandService mocks the stand.Service interface
type MockStandService struct {
	mock.Mock
}

func (m *MockStandService) Enqueue(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStandService) Advance(ctx context.Context, delta time.Duration) {
	m.Called(ctx, delta)
}

func (m *MockStandService) Purchase(ctx context.Context, upgradeID string) (*stand.PurchaseResult, error) {
	args := m.Called(ctx, upgradeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stand.PurchaseResult), args.Error(1)
}

func (m *MockStandService) PerformPrestige(ctx context.Context) (*stand.PrestigeResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stand.PrestigeResult), args.Error(1)
}

func (m *MockStandService) Pause(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockStandService) Resume(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockStandService) State(ctx context.Context) *stand.State {
	args := m.Called(ctx)
	return args.Get(0).(*stand.State)
}

func (m *MockStandService) Upgrades(ctx context.Context) []stand.UpgradeView {
	args := m.Called(ctx)
	return args.Get(0).([]stand.UpgradeView)
}

func (m *MockStandService) Snapshot(ctx context.Context) *domain.StandSnapshot {
	args := m.Called(ctx)
	return args.Get(0).(*domain.StandSnapshot)
}

func (m *MockStandService) Restore(ctx context.Context, snap *domain.StandSnapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

// MockSnapshotRepo mocks the repository.Snapshot interface
type MockSnapshotRepo struct {
	mock.Mock
}

func (m *MockSnapshotRepo) Save(ctx context.Context, snap *domain.StandSnapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

func (m *MockSnapshotRepo) Latest(ctx context.Context) (*domain.StandSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StandSnapshot), args.Error(1)
}

func (m *MockSnapshotRepo) Prune(ctx context.Context, keep int) (int64, error) {
	args := m.Called(ctx, keep)
	return args.Get(0).(int64), args.Error(1)
}
