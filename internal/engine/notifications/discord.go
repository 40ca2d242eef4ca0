package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/davidmokos/coolify/internal/engine/delivery"
	"github.com/davidmokos/coolify/internal/platform/models"
)

type discordChannel struct {
	settings SettingsStore
	queue    TaskQueue
}

func NewDiscordChannel(settings SettingsStore, queue TaskQueue) NotificationChannel {
	return &discordChannel{settings: settings, queue: queue}
}

func (c *discordChannel) Name() Channel { return ChannelDiscord }

func (c *discordChannel) Send(ctx context.Context, team *models.Team, ev Event) error {
	settings, err := c.settings.GetDiscord(team.ID)
	if err != nil {
		return err
	}
	if settings == nil || !settings.Enabled || strings.TrimSpace(settings.WebhookURL) == "" {
		log.Warn().
			Str("team_id", team.ID).
			Str("channel", string(ChannelDiscord)).
			Str("event", ev.Name).
			Msg("discord channel not configured, skipping notification")
		return nil
	}

	task, err := c.buildTask(team, ev, settings)
	if err != nil {
		return err
	}

	c.queue.Enqueue(task)
	return nil
}

func (c *discordChannel) SendTest(ctx context.Context, team *models.Team) error {
	settings, err := c.settings.GetDiscord(team.ID)
	if err != nil {
		return err
	}
	if settings == nil || !settings.Enabled || strings.TrimSpace(settings.WebhookURL) == "" {
		return fmt.Errorf("discord: %w", ErrNotConfigured)
	}

	task, err := c.buildTask(team, Event{Name: EventTest}, settings)
	if err != nil {
		return err
	}
	return c.queue.Deliver(ctx, task)
}

func (c *discordChannel) buildTask(team *models.Team, ev Event, settings *models.DiscordSettings) (delivery.Task, error) {
	payload, err := json.Marshal(map[string]string{"content": summaryText(ev)})
	if err != nil {
		return delivery.Task{}, err
	}

	return delivery.Task{
		Channel: string(ChannelDiscord),
		TeamID:  team.ID,
		URL:     settings.WebhookURL,
		Payload: payload,
	}, nil
}
