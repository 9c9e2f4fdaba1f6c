package ledger

// Well-known transaction reasons
const (
	ReasonSale      = "sale"
	ReasonUpgrade   = "upgrade"
	ReasonMilestone = "milestone"
)
