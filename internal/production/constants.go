package production

// Parameter bounds
//
// MaxRate exists purely to keep the per-unit interval well away from zero;
// at 1000 hot dogs per second the interval is still a millisecond of sim time.
const (
	MinCapacity = 1
	MinRate     = 0.001
	MaxRate     = 1000.0

	// MinMultiplier is the floor for rate/efficiency modifiers so a broken
	// upgrade definition can never stall or reverse production
	MinMultiplier = 0.01
)
