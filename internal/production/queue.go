package production

// State is the production queue lifecycle state
type State string

const (
	// StateIdle means no work is queued (or production is paused)
	StateIdle State = "idle"

	// StateProducing means queued work is being drained on each Advance
	StateProducing State = "producing"
)

// StopReason explains a Producing -> Idle transition
type StopReason string

const (
	StopReasonQueueEmpty StopReason = "queue_empty"
	StopReasonPaused     StopReason = "paused"
)

// Params are the base production parameters before upgrades apply
type Params struct {
	BaseCapacity int     // queue slots before bonuses
	BaseRate     float64 // hot dogs per second before multipliers
}

// Modifiers are the upgrade- and prestige-derived adjustments applied on top of
// the base parameters. They are recomputed by the owning aggregate whenever an
// upgrade is purchased or a prestige completes, never by the queue itself.
type Modifiers struct {
	CapacityBonus  int     // additive slots
	RateMult       float64 // multiplicative, >= 1
	EfficiencyMult float64 // multiplicative, >= 1
}

// DefaultModifiers returns the neutral modifier set
func DefaultModifiers() Modifiers {
	return Modifiers{RateMult: 1, EfficiencyMult: 1}
}

// Report describes what one Advance call did
type Report struct {
	Produced int        // units drained this advance
	Stopped  bool       // Producing -> Idle transition happened
	Reason   StopReason // set when Stopped
}

// Queue is a bounded production queue drained at the effective rate.
//
// Draining is unit-granular with a fractional time carry: elapsed time
// accumulates and one unit is produced per full production interval
// (1 / effective rate). This keeps totals exact under variable timesteps at the
// cost of never producing partial units, which is the accounting rule the whole
// simulation relies on.
//
// Queue is not safe for concurrent use; the owning aggregate serializes access.
type Queue struct {
	params Params
	mods   Modifiers

	size          int
	totalProduced int64
	carry         float64 // seconds accumulated toward the next unit
	state         State
	paused        bool
}

// NewQueue creates an idle queue with the given base parameters
func NewQueue(params Params) *Queue {
	if params.BaseCapacity < MinCapacity {
		params.BaseCapacity = MinCapacity
	}
	if params.BaseRate <= 0 {
		params.BaseRate = MinRate
	}
	return &Queue{
		params: params,
		mods:   DefaultModifiers(),
		state:  StateIdle,
	}
}

// Enqueue adds one unit of work. It reports false when the queue is at
// capacity; a successful enqueue while idle (and not paused) starts production.
func (q *Queue) Enqueue() bool {
	if q.size >= q.Capacity() {
		return false
	}
	q.size++
	if q.state == StateIdle && !q.paused {
		q.state = StateProducing
	}
	return true
}

// Advance drains the queue for the given elapsed seconds and returns a report
// of what happened. A paused or idle queue accumulates no carry.
func (q *Queue) Advance(deltaSeconds float64) Report {
	if deltaSeconds <= 0 || q.state != StateProducing {
		return Report{}
	}

	q.carry += deltaSeconds
	interval := q.Interval()

	var produced int
	for q.carry >= interval && q.size > 0 {
		q.carry -= interval
		q.size--
		q.totalProduced++
		produced++
		// Rate upgrades land between Advance calls, but recompute anyway so a
		// restored carry never drains at a stale interval.
		interval = q.Interval()
	}

	report := Report{Produced: produced}
	if q.size == 0 {
		q.state = StateIdle
		q.carry = 0
		if produced > 0 {
			report.Stopped = true
			report.Reason = StopReasonQueueEmpty
		}
	}
	return report
}

// Pause forces Producing -> Idle without losing queue contents or the
// fractional carry, so Resume continues where draining left off.
func (q *Queue) Pause() bool {
	if q.paused {
		return false
	}
	q.paused = true
	q.state = StateIdle
	return true
}

// Resume re-arms draining after a Pause. Production restarts only when work
// is still queued.
func (q *Queue) Resume() bool {
	if !q.paused {
		return false
	}
	q.paused = false
	if q.size > 0 {
		q.state = StateProducing
	}
	return true
}

// SetModifiers recomputes the derived rate and capacity from upgrade state.
// Values are clamped to sane bounds so the interval computation can never
// divide by a near-zero rate.
func (q *Queue) SetModifiers(mods Modifiers) {
	if mods.RateMult < MinMultiplier {
		mods.RateMult = MinMultiplier
	}
	if mods.EfficiencyMult < MinMultiplier {
		mods.EfficiencyMult = MinMultiplier
	}
	if mods.CapacityBonus < 0 {
		mods.CapacityBonus = 0
	}
	q.mods = mods
}

// Rate returns the effective drain rate in hot dogs per second
func (q *Queue) Rate() float64 {
	rate := q.params.BaseRate * q.mods.RateMult * q.mods.EfficiencyMult
	if rate > MaxRate {
		rate = MaxRate
	}
	if rate < MinRate {
		rate = MinRate
	}
	return rate
}

// Interval returns the seconds per produced unit at the effective rate
func (q *Queue) Interval() float64 {
	return 1 / q.Rate()
}

// Capacity returns the effective queue capacity
func (q *Queue) Capacity() int {
	return q.params.BaseCapacity + q.mods.CapacityBonus
}

// Size returns the current queue occupancy
func (q *Queue) Size() int { return q.size }

// TotalProduced returns the monotonic produced counter
func (q *Queue) TotalProduced() int64 { return q.totalProduced }

// State returns the current lifecycle state
func (q *Queue) State() State { return q.state }

// Paused reports whether the queue was explicitly paused
func (q *Queue) Paused() bool { return q.paused }

// Carry returns the fractional drain accumulator, exposed for persistence
func (q *Queue) Carry() float64 { return q.carry }

// Restore rehydrates queue state from a snapshot without emitting anything.
// Out-of-range values are clamped rather than rejected so an old snapshot
// taken before a capacity downgrade still loads.
func (q *Queue) Restore(size int, totalProduced int64, carry float64, paused bool) {
	if size < 0 {
		size = 0
	}
	if size > q.Capacity() {
		size = q.Capacity()
	}
	if totalProduced < 0 {
		totalProduced = 0
	}
	if carry < 0 {
		carry = 0
	}
	q.size = size
	q.totalProduced = totalProduced
	q.carry = carry
	q.paused = paused
	if size > 0 && !paused {
		q.state = StateProducing
	} else {
		q.state = StateIdle
	}
}

// ResetForPrestige clears all mutable production progress while keeping the
// base parameters. The caller reapplies modifiers afterwards.
func (q *Queue) ResetForPrestige() {
	q.size = 0
	q.totalProduced = 0
	q.carry = 0
	q.paused = false
	q.state = StateIdle
	q.mods = DefaultModifiers()
}
