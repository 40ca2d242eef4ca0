package notifications

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/davidmokos/coolify/internal/platform/models"
)

// Mailer is the boundary to the mail subsystem. Message templating and SMTP
// transport live behind it.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer is the default Mailer: it records the send instead of delivering.
// Deployments without a mail transport still get resolver coverage for the
// email channel.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, to, subject, body string) error {
	log.Info().
		Str("channel", string(ChannelEmail)).
		Str("subject", subject).
		Msg("mail transport not configured, logging instead of sending")
	return nil
}

type emailChannel struct {
	settings SettingsStore
	mailer   Mailer
}

func NewEmailChannel(settings SettingsStore, mailer Mailer) NotificationChannel {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &emailChannel{settings: settings, mailer: mailer}
}

func (c *emailChannel) Name() Channel { return ChannelEmail }

func (c *emailChannel) Send(ctx context.Context, team *models.Team, ev Event) error {
	settings, err := c.settings.GetEmail(team.ID)
	if err != nil {
		return err
	}
	if settings == nil || !settings.Enabled || strings.TrimSpace(settings.RecipientAddress) == "" {
		log.Warn().
			Str("team_id", team.ID).
			Str("channel", string(ChannelEmail)).
			Str("event", ev.Name).
			Msg("email channel not configured, skipping notification")
		return nil
	}

	subject := ev.Title
	if subject == "" {
		subject = fmt.Sprintf("Deployment notification: %s", ev.Name)
	}

	return c.mailer.Send(ctx, settings.RecipientAddress, subject, summaryText(ev))
}

func (c *emailChannel) SendTest(ctx context.Context, team *models.Team) error {
	settings, err := c.settings.GetEmail(team.ID)
	if err != nil {
		return err
	}
	if settings == nil || !settings.Enabled || strings.TrimSpace(settings.RecipientAddress) == "" {
		return fmt.Errorf("email: %w", ErrNotConfigured)
	}

	return c.mailer.Send(ctx, settings.RecipientAddress, "Test notification", summaryText(Event{Name: EventTest}))
}
