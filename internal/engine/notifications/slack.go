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

type slackChannel struct {
	settings SettingsStore
	queue    TaskQueue
}

func NewSlackChannel(settings SettingsStore, queue TaskQueue) NotificationChannel {
	return &slackChannel{settings: settings, queue: queue}
}

func (c *slackChannel) Name() Channel { return ChannelSlack }

func (c *slackChannel) Send(ctx context.Context, team *models.Team, ev Event) error {
	settings, err := c.settings.GetSlack(team.ID)
	if err != nil {
		return err
	}
	if settings == nil || !settings.Enabled || strings.TrimSpace(settings.WebhookURL) == "" {
		log.Warn().
			Str("team_id", team.ID).
			Str("channel", string(ChannelSlack)).
			Str("event", ev.Name).
			Msg("slack channel not configured, skipping notification")
		return nil
	}

	task, err := c.buildTask(team, ev, settings)
	if err != nil {
		return err
	}

	c.queue.Enqueue(task)
	return nil
}

func (c *slackChannel) SendTest(ctx context.Context, team *models.Team) error {
	settings, err := c.settings.GetSlack(team.ID)
	if err != nil {
		return err
	}
	if settings == nil || !settings.Enabled || strings.TrimSpace(settings.WebhookURL) == "" {
		return fmt.Errorf("slack: %w", ErrNotConfigured)
	}

	task, err := c.buildTask(team, Event{Name: EventTest}, settings)
	if err != nil {
		return err
	}
	return c.queue.Deliver(ctx, task)
}

func (c *slackChannel) buildTask(team *models.Team, ev Event, settings *models.SlackSettings) (delivery.Task, error) {
	payload, err := json.Marshal(map[string]string{"text": summaryText(ev)})
	if err != nil {
		return delivery.Task{}, err
	}

	return delivery.Task{
		Channel: string(ChannelSlack),
		TeamID:  team.ID,
		URL:     settings.WebhookURL,
		Payload: payload,
	}, nil
}
