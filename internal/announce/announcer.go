// Package announce posts milestone and prestige announcements to a Discord
// channel. It is optional; the stand runs fine without it.
package announce

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dagwood-games/hotdog-tycoon/internal/event"
	"github.com/dagwood-games/hotdog-tycoon/internal/logger"
)

// Sender is the slice of the Discord session the announcer needs
type Sender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer forwards celebration-worthy events to a Discord channel
type Announcer struct {
	session   *discordgo.Session
	sender    Sender
	channelID string
	bus       event.Bus
	printer   *message.Printer
}

// New creates an announcer with its own Discord session
func New(token, channelID string, bus event.Bus) (*Announcer, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	a := NewWithSender(s, channelID, bus)
	a.session = s
	return a, nil
}

// NewWithSender creates an announcer over an existing sender
func NewWithSender(sender Sender, channelID string, bus event.Bus) *Announcer {
	return &Announcer{
		sender:    sender,
		channelID: channelID,
		bus:       bus,
		printer:   message.NewPrinter(language.English),
	}
}

// Start opens the Discord connection (when the announcer owns one) and
// subscribes to the events worth announcing
func (a *Announcer) Start(ctx context.Context) error {
	if a.session != nil {
		if err := a.session.Open(); err != nil {
			return fmt.Errorf("error opening connection: %w", err)
		}
	}

	a.bus.SubscribeAs(MilestoneListenerID, event.MilestoneReached, a.handleEvent)
	a.bus.SubscribeAs(PrestigeListenerID, event.PrestigeCompleted, a.handleEvent)

	logger.FromContext(ctx).Info(LogMsgAnnouncerStarted, "channel_id", a.channelID)
	return nil
}

// Stop detaches from the bus and closes the session
func (a *Announcer) Stop(ctx context.Context) {
	a.bus.Unsubscribe(MilestoneListenerID)
	a.bus.Unsubscribe(PrestigeListenerID)
	if a.session != nil {
		a.session.Close()
	}
	logger.FromContext(ctx).Info(LogMsgAnnouncerStopped)
}

func (a *Announcer) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	var content string
	switch p := evt.Payload.(type) {
	case event.MilestoneReachedPayloadV1:
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("Milestone %d", p.Index)
		}
		content = fmt.Sprintf(MsgMilestoneReached, name, a.formatMoney(p.Threshold), a.formatMoney(p.Reward))
	case event.PrestigeCompletedPayloadV1:
		content = fmt.Sprintf(MsgPrestigeCompleted, p.NewLevel, p.NewMultiplier)
	default:
		log.Warn(LogMsgUnexpectedPayload, "event_type", evt.Type)
		return nil
	}

	if _, err := a.sender.ChannelMessageSend(a.channelID, content); err != nil {
		log.Error(LogMsgAnnounceFailed, "event_type", evt.Type, "error", err)
		return fmt.Errorf("announce: %w", err)
	}
	return nil
}

func (a *Announcer) formatMoney(amount float64) string {
	return a.printer.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
