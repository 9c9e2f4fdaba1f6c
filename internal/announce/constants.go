package announce

// Listener IDs used for bus subscriptions, one per event type so Stop can
// detach every registration
const (
	MilestoneListenerID = "discord-announcer-milestone"
	PrestigeListenerID  = "discord-announcer-prestige"
)

// Announcement message templates
const (
	MsgMilestoneReached  = "🌭 **Milestone reached!** %s: lifetime earnings crossed $%s (bonus $%s)"
	MsgPrestigeCompleted = "⭐ **Franchise sold!** Prestige level %d, income multiplier now x%.2f"
)

// Log messages
const (
	LogMsgAnnouncerStarted  = "Discord announcer started"
	LogMsgAnnouncerStopped  = "Discord announcer stopped"
	LogMsgAnnounceFailed    = "Failed to post announcement"
	LogMsgUnexpectedPayload = "Unexpected announcement payload"
)
