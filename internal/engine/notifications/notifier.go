package notifications

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/davidmokos/coolify/internal/platform/models"
)

// Notifier is the entry point the deployment pipeline calls. It fans an event
// out to every enabled channel; nothing it does propagates back to the
// caller, so notification failures can never fail a deployment.
type Notifier struct {
	resolver *Resolver
	channels map[Channel]NotificationChannel
}

func NewNotifier(resolver *Resolver, channels ...NotificationChannel) *Notifier {
	byName := make(map[Channel]NotificationChannel, len(channels))
	for _, ch := range channels {
		byName[ch.Name()] = ch
	}
	return &Notifier{resolver: resolver, channels: byName}
}

// Notify dispatches the event to every enabled channel in order. Each
// channel's render and dispatch is independent: a failure is logged and the
// remaining channels are still attempted.
func (n *Notifier) Notify(ctx context.Context, team *models.Team, ev Event) {
	enabled := n.resolver.EnabledChannels(team.ID, ev.Name)

	log.Info().
		Str("team_id", team.ID).
		Str("event", ev.Name).
		Int("channels", len(enabled)).
		Msg("dispatching notification")

	for _, name := range enabled {
		channel, ok := n.channels[name]
		if !ok {
			continue
		}
		if err := channel.Send(ctx, team, ev); err != nil {
			log.Error().Err(err).
				Str("team_id", team.ID).
				Str("channel", string(name)).
				Str("event", ev.Name).
				Msg("channel dispatch failed")
		}
	}
}

// SendTest delivers a test notification over one channel synchronously. This
// is the single path where a send failure reaches the caller.
func (n *Notifier) SendTest(ctx context.Context, team *models.Team, channel Channel) error {
	ch, ok := n.channels[channel]
	if !ok {
		return fmt.Errorf("unknown notification channel %q", channel)
	}
	return ch.SendTest(ctx, team)
}
