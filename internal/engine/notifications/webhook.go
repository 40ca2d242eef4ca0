package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/davidmokos/coolify/internal/engine/delivery"
	"github.com/davidmokos/coolify/internal/platform/models"
)

// TaskQueue is the asynchronous delivery subsystem the channels hand their
// work to. Deliver is the synchronous single-attempt path for test sends.
type TaskQueue interface {
	Enqueue(t delivery.Task) bool
	Deliver(ctx context.Context, t delivery.Task) error
}

type webhookChannel struct {
	settings SettingsStore
	queue    TaskQueue
	renderer *WebhookRenderer
	source   string
	now      func() time.Time
}

func NewWebhookChannel(settings SettingsStore, queue TaskQueue, renderer *WebhookRenderer, source string) NotificationChannel {
	return &webhookChannel{
		settings: settings,
		queue:    queue,
		renderer: renderer,
		source:   source,
		now:      time.Now,
	}
}

func (c *webhookChannel) Name() Channel { return ChannelWebhook }

// Send validates configuration and enqueues delivery work. A missing or
// disabled settings row, or an empty URL, is "channel not configured" and a
// silent no-op, not an error.
func (c *webhookChannel) Send(ctx context.Context, team *models.Team, ev Event) error {
	settings, err := c.settings.GetWebhook(team.ID)
	if err != nil {
		return err
	}
	if settings == nil || !settings.Enabled || strings.TrimSpace(settings.URL) == "" {
		log.Warn().
			Str("team_id", team.ID).
			Str("channel", string(ChannelWebhook)).
			Str("event", ev.Name).
			Msg("webhook channel not configured, skipping notification")
		return nil
	}

	task, err := c.buildTask(team, ev, settings)
	if err != nil {
		return err
	}

	c.queue.Enqueue(task)
	return nil
}

// SendTest delivers a test payload synchronously so a misconfigured or
// unreachable endpoint surfaces to the invoking UI action.
func (c *webhookChannel) SendTest(ctx context.Context, team *models.Team) error {
	settings, err := c.settings.GetWebhook(team.ID)
	if err != nil {
		return err
	}
	if settings == nil || !settings.Enabled || strings.TrimSpace(settings.URL) == "" {
		return fmt.Errorf("webhook: %w", ErrNotConfigured)
	}

	task, err := c.buildTask(team, Event{Name: EventTest}, settings)
	if err != nil {
		return err
	}

	return c.queue.Deliver(ctx, task)
}

func (c *webhookChannel) buildTask(team *models.Team, ev Event, settings *models.WebhookSettings) (delivery.Task, error) {
	msg, err := c.renderer.Render(ev)
	if err != nil {
		return delivery.Task{}, err
	}

	payload, err := json.Marshal(msg.Payload(c.now(), c.source))
	if err != nil {
		return delivery.Task{}, err
	}

	return delivery.Task{
		Channel: string(ChannelWebhook),
		TeamID:  team.ID,
		URL:     settings.URL,
		APIKey:  settings.APIKey,
		Payload: payload,
	}, nil
}
