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

const telegramAPIBase = "https://api.telegram.org"

type telegramChannel struct {
	settings SettingsStore
	queue    TaskQueue
	apiBase  string
}

func NewTelegramChannel(settings SettingsStore, queue TaskQueue) NotificationChannel {
	return &telegramChannel{settings: settings, queue: queue, apiBase: telegramAPIBase}
}

func (c *telegramChannel) Name() Channel { return ChannelTelegram }

func (c *telegramChannel) Send(ctx context.Context, team *models.Team, ev Event) error {
	settings, err := c.settings.GetTelegram(team.ID)
	if err != nil {
		return err
	}
	if !telegramConfigured(settings) {
		log.Warn().
			Str("team_id", team.ID).
			Str("channel", string(ChannelTelegram)).
			Str("event", ev.Name).
			Msg("telegram channel not configured, skipping notification")
		return nil
	}

	task, err := c.buildTask(team, ev, settings)
	if err != nil {
		return err
	}

	c.queue.Enqueue(task)
	return nil
}

func (c *telegramChannel) SendTest(ctx context.Context, team *models.Team) error {
	settings, err := c.settings.GetTelegram(team.ID)
	if err != nil {
		return err
	}
	if !telegramConfigured(settings) {
		return fmt.Errorf("telegram: %w", ErrNotConfigured)
	}

	task, err := c.buildTask(team, Event{Name: EventTest}, settings)
	if err != nil {
		return err
	}
	return c.queue.Deliver(ctx, task)
}

func (c *telegramChannel) buildTask(team *models.Team, ev Event, settings *models.TelegramSettings) (delivery.Task, error) {
	payload, err := json.Marshal(map[string]string{
		"chat_id": settings.ChatID,
		"text":    summaryText(ev),
	})
	if err != nil {
		return delivery.Task{}, err
	}

	return delivery.Task{
		Channel: string(ChannelTelegram),
		TeamID:  team.ID,
		URL:     fmt.Sprintf("%s/bot%s/sendMessage", c.apiBase, settings.Token),
		Payload: payload,
	}, nil
}

func telegramConfigured(s *models.TelegramSettings) bool {
	return s != nil && s.Enabled &&
		strings.TrimSpace(s.Token) != "" && strings.TrimSpace(s.ChatID) != ""
}
