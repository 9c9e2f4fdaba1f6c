package balance

import (
	"fmt"
	"sort"

	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
)

// Milestone is a one-time cumulative-earnings threshold paired with a reward
type Milestone struct {
	Name      string  `yaml:"name"`
	Threshold float64 `yaml:"threshold" validate:"required,gt=0"`
	Reward    float64 `yaml:"reward" validate:"required,gt=0"`
}

// Crossed describes one milestone fired by a Check call
type Crossed struct {
	Index     int
	Milestone Milestone
}

// MilestoneTracker walks a sorted ascending threshold list exactly once.
// Each crossed threshold fires once, in order; passed milestones never
// re-trigger on later credits.
type MilestoneTracker struct {
	milestones []Milestone
	index      int
}

// NewMilestoneTracker creates a tracker from config. Thresholds must be
// strictly increasing; equal or descending thresholds are a config error.
func NewMilestoneTracker(milestones []Milestone) (*MilestoneTracker, error) {
	sorted := sort.SliceIsSorted(milestones, func(i, j int) bool {
		return milestones[i].Threshold < milestones[j].Threshold
	})
	if !sorted {
		return nil, fmt.Errorf("%w: milestone thresholds must be ascending", domain.ErrInvalidInput)
	}
	for i := 1; i < len(milestones); i++ {
		if milestones[i].Threshold == milestones[i-1].Threshold {
			return nil, fmt.Errorf("%w: duplicate milestone threshold %.2f",
				domain.ErrInvalidInput, milestones[i].Threshold)
		}
	}
	return &MilestoneTracker{milestones: milestones}, nil
}

// Check walks forward from the current index and returns every milestone whose
// threshold the cumulative earnings now meet, advancing past each one.
func (t *MilestoneTracker) Check(totalEarned float64) []Crossed {
	var crossed []Crossed
	for t.index < len(t.milestones) && totalEarned >= t.milestones[t.index].Threshold {
		crossed = append(crossed, Crossed{Index: t.index, Milestone: t.milestones[t.index]})
		t.index++
	}
	return crossed
}

// Index returns the next un-fired milestone index, for snapshots
func (t *MilestoneTracker) Index() int { return t.index }

// Remaining returns how many milestones have not fired yet
func (t *MilestoneTracker) Remaining() int { return len(t.milestones) - t.index }

// SetIndex restores the tracker position from a snapshot, clamped to range.
// The index belongs to the prestige state: milestones are keyed on lifetime
// earnings and deliberately survive prestige resets.
func (t *MilestoneTracker) SetIndex(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(t.milestones) {
		index = len(t.milestones)
	}
	t.index = index
}
