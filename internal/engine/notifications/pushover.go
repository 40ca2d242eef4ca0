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

const pushoverMessagesURL = "https://api.pushover.net/1/messages.json"

type pushoverChannel struct {
	settings SettingsStore
	queue    TaskQueue
	apiURL   string
}

func NewPushoverChannel(settings SettingsStore, queue TaskQueue) NotificationChannel {
	return &pushoverChannel{settings: settings, queue: queue, apiURL: pushoverMessagesURL}
}

func (c *pushoverChannel) Name() Channel { return ChannelPushover }

func (c *pushoverChannel) Send(ctx context.Context, team *models.Team, ev Event) error {
	settings, err := c.settings.GetPushover(team.ID)
	if err != nil {
		return err
	}
	if !pushoverConfigured(settings) {
		log.Warn().
			Str("team_id", team.ID).
			Str("channel", string(ChannelPushover)).
			Str("event", ev.Name).
			Msg("pushover channel not configured, skipping notification")
		return nil
	}

	task, err := c.buildTask(team, ev, settings)
	if err != nil {
		return err
	}

	c.queue.Enqueue(task)
	return nil
}

func (c *pushoverChannel) SendTest(ctx context.Context, team *models.Team) error {
	settings, err := c.settings.GetPushover(team.ID)
	if err != nil {
		return err
	}
	if !pushoverConfigured(settings) {
		return fmt.Errorf("pushover: %w", ErrNotConfigured)
	}

	task, err := c.buildTask(team, Event{Name: EventTest}, settings)
	if err != nil {
		return err
	}
	return c.queue.Deliver(ctx, task)
}

func (c *pushoverChannel) buildTask(team *models.Team, ev Event, settings *models.PushoverSettings) (delivery.Task, error) {
	title := ev.Title
	if title == "" {
		title = "Deployment notification"
	}

	payload, err := json.Marshal(map[string]string{
		"token":   settings.Token,
		"user":    settings.UserKey,
		"title":   title,
		"message": summaryText(ev),
	})
	if err != nil {
		return delivery.Task{}, err
	}

	return delivery.Task{
		Channel: string(ChannelPushover),
		TeamID:  team.ID,
		URL:     c.apiURL,
		Payload: payload,
	}, nil
}

func pushoverConfigured(s *models.PushoverSettings) bool {
	return s != nil && s.Enabled &&
		strings.TrimSpace(s.Token) != "" && strings.TrimSpace(s.UserKey) != ""
}
