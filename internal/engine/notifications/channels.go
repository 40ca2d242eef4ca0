package notifications

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/davidmokos/coolify/internal/platform/models"
)

// ErrNotConfigured marks a test send against a channel that has no usable
// configuration. Regular dispatch treats the same condition as a silent
// no-op; only the synchronous test path surfaces it.
var ErrNotConfigured = errors.New("channel is not configured")

func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}

type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelDiscord  Channel = "discord"
	ChannelTelegram Channel = "telegram"
	ChannelSlack    Channel = "slack"
	ChannelPushover Channel = "pushover"
	ChannelWebhook  Channel = "webhook"
)

// channelOrder is the fixed declaration order channels are resolved and
// dispatched in.
var channelOrder = []Channel{
	ChannelEmail,
	ChannelDiscord,
	ChannelTelegram,
	ChannelSlack,
	ChannelPushover,
	ChannelWebhook,
}

// alwaysSendEvents bypass the per-event override once a channel is enabled.
var alwaysSendEvents = map[string]struct{}{
	EventServerForceEnabled:    {},
	EventServerForceDisabled:   {},
	EventGeneral:               {},
	EventTest:                  {},
	EventSSLCertificateRenewal: {},
}

// SettingsStore is the read surface the dispatch path needs from the settings
// repository. Getters return (nil, nil) when a team has no row for a channel.
type SettingsStore interface {
	Channel(teamID, channel string) (models.ChannelSettings, error)
	GetWebhook(teamID string) (*models.WebhookSettings, error)
	GetDiscord(teamID string) (*models.DiscordSettings, error)
	GetSlack(teamID string) (*models.SlackSettings, error)
	GetTelegram(teamID string) (*models.TelegramSettings, error)
	GetPushover(teamID string) (*models.PushoverSettings, error)
	GetEmail(teamID string) (*models.EmailSettings, error)
}

// NotificationChannel is one delivery mechanism. Send renders and dispatches
// asynchronously; SendTest delivers synchronously and returns the failure.
type NotificationChannel interface {
	Name() Channel
	Send(ctx context.Context, team *models.Team, ev Event) error
	SendTest(ctx context.Context, team *models.Team) error
}

// Resolver computes which channels fire for a team and event.
type Resolver struct {
	settings SettingsStore
}

func NewResolver(settings SettingsStore) *Resolver {
	return &Resolver{settings: settings}
}

// EnabledChannels returns the channels to notify, in fixed declaration order.
// A channel fires when its settings row exists, is enabled, and either the
// event is in the always-send set or the per-event override is on. Missing
// rows, missing flags and lookup errors all resolve to "disabled".
func (r *Resolver) EnabledChannels(teamID, event string) []Channel {
	var enabled []Channel
	for _, ch := range channelOrder {
		// Email is reserved for targeted mail, never generic broadcast.
		if event == EventGeneral && ch == ChannelEmail {
			continue
		}

		settings, err := r.settings.Channel(teamID, string(ch))
		if err != nil {
			log.Error().Err(err).
				Str("team_id", teamID).
				Str("channel", string(ch)).
				Msg("failed to load channel settings")
			continue
		}
		if settings == nil || !settings.IsEnabled() {
			continue
		}

		if _, always := alwaysSendEvents[event]; !always && !settings.EventEnabled(event) {
			continue
		}

		enabled = append(enabled, ch)
	}
	return enabled
}
