package repositories

import (
	"database/sql"
	"fmt"

	"github.com/davidmokos/coolify/internal/platform/models"
)

// SettingsRepository owns the per-team, per-channel notification settings
// rows. Every channel has its own table and at most one row per team; an
// absent row reads as "channel disabled".
type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Channel returns the settings row for the named channel, or nil when no row
// exists. The concrete type depends on the channel.
func (r *SettingsRepository) Channel(teamID, channel string) (models.ChannelSettings, error) {
	switch channel {
	case "webhook":
		s, err := r.GetWebhook(teamID)
		if s == nil {
			return nil, err
		}
		return s, err
	case "discord":
		s, err := r.GetDiscord(teamID)
		if s == nil {
			return nil, err
		}
		return s, err
	case "slack":
		s, err := r.GetSlack(teamID)
		if s == nil {
			return nil, err
		}
		return s, err
	case "telegram":
		s, err := r.GetTelegram(teamID)
		if s == nil {
			return nil, err
		}
		return s, err
	case "pushover":
		s, err := r.GetPushover(teamID)
		if s == nil {
			return nil, err
		}
		return s, err
	case "email":
		s, err := r.GetEmail(teamID)
		if s == nil {
			return nil, err
		}
		return s, err
	default:
		return nil, fmt.Errorf("unknown notification channel %q", channel)
	}
}

// EnsureDefaults lazily creates missing settings rows for every channel of a
// team: channel off, deployment success/failure overrides on.
func (r *SettingsRepository) EnsureDefaults(teamID string) error {
	tables := []string{
		"webhook_notification_settings",
		"discord_notification_settings",
		"slack_notification_settings",
		"telegram_notification_settings",
		"pushover_notification_settings",
		"email_notification_settings",
	}
	for _, table := range tables {
		query := fmt.Sprintf(`INSERT INTO %s (team_id) SELECT ? WHERE NOT EXISTS (SELECT 1 FROM %s WHERE team_id = ?)`, table, table)
		if _, err := r.db.Exec(query, teamID, teamID); err != nil {
			return fmt.Errorf("ensure %s: %w", table, err)
		}
	}
	return nil
}

func (r *SettingsRepository) GetWebhook(teamID string) (*models.WebhookSettings, error) {
	s := &models.WebhookSettings{}
	var url, apiKey sql.NullString

	err := r.db.QueryRow(`
		SELECT team_id, enabled, url, api_key,
		       deployment_success_webhook_notifications, deployment_failure_webhook_notifications
		FROM webhook_notification_settings WHERE team_id = ?
	`, teamID).Scan(&s.TeamID, &s.Enabled, &url, &apiKey, &s.DeploymentSuccess, &s.DeploymentFailure)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	s.URL = url.String
	s.APIKey = apiKey.String
	return s, nil
}

func (r *SettingsRepository) UpdateWebhook(s *models.WebhookSettings) error {
	_, err := r.db.Exec(`
		UPDATE webhook_notification_settings
		SET enabled = ?, url = ?, api_key = ?,
		    deployment_success_webhook_notifications = ?, deployment_failure_webhook_notifications = ?
		WHERE team_id = ?
	`, s.Enabled, s.URL, s.APIKey, s.DeploymentSuccess, s.DeploymentFailure, s.TeamID)
	return err
}

func (r *SettingsRepository) GetDiscord(teamID string) (*models.DiscordSettings, error) {
	s := &models.DiscordSettings{}
	var webhookURL sql.NullString

	err := r.db.QueryRow(`
		SELECT team_id, enabled, webhook_url,
		       deployment_success_discord_notifications, deployment_failure_discord_notifications
		FROM discord_notification_settings WHERE team_id = ?
	`, teamID).Scan(&s.TeamID, &s.Enabled, &webhookURL, &s.DeploymentSuccess, &s.DeploymentFailure)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	s.WebhookURL = webhookURL.String
	return s, nil
}

func (r *SettingsRepository) UpdateDiscord(s *models.DiscordSettings) error {
	_, err := r.db.Exec(`
		UPDATE discord_notification_settings
		SET enabled = ?, webhook_url = ?,
		    deployment_success_discord_notifications = ?, deployment_failure_discord_notifications = ?
		WHERE team_id = ?
	`, s.Enabled, s.WebhookURL, s.DeploymentSuccess, s.DeploymentFailure, s.TeamID)
	return err
}

func (r *SettingsRepository) GetSlack(teamID string) (*models.SlackSettings, error) {
	s := &models.SlackSettings{}
	var webhookURL sql.NullString

	err := r.db.QueryRow(`
		SELECT team_id, enabled, webhook_url,
		       deployment_success_slack_notifications, deployment_failure_slack_notifications
		FROM slack_notification_settings WHERE team_id = ?
	`, teamID).Scan(&s.TeamID, &s.Enabled, &webhookURL, &s.DeploymentSuccess, &s.DeploymentFailure)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	s.WebhookURL = webhookURL.String
	return s, nil
}

func (r *SettingsRepository) UpdateSlack(s *models.SlackSettings) error {
	_, err := r.db.Exec(`
		UPDATE slack_notification_settings
		SET enabled = ?, webhook_url = ?,
		    deployment_success_slack_notifications = ?, deployment_failure_slack_notifications = ?
		WHERE team_id = ?
	`, s.Enabled, s.WebhookURL, s.DeploymentSuccess, s.DeploymentFailure, s.TeamID)
	return err
}

func (r *SettingsRepository) GetTelegram(teamID string) (*models.TelegramSettings, error) {
	s := &models.TelegramSettings{}
	var token, chatID sql.NullString

	err := r.db.QueryRow(`
		SELECT team_id, enabled, token, chat_id,
		       deployment_success_telegram_notifications, deployment_failure_telegram_notifications
		FROM telegram_notification_settings WHERE team_id = ?
	`, teamID).Scan(&s.TeamID, &s.Enabled, &token, &chatID, &s.DeploymentSuccess, &s.DeploymentFailure)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	s.Token = token.String
	s.ChatID = chatID.String
	return s, nil
}

func (r *SettingsRepository) UpdateTelegram(s *models.TelegramSettings) error {
	_, err := r.db.Exec(`
		UPDATE telegram_notification_settings
		SET enabled = ?, token = ?, chat_id = ?,
		    deployment_success_telegram_notifications = ?, deployment_failure_telegram_notifications = ?
		WHERE team_id = ?
	`, s.Enabled, s.Token, s.ChatID, s.DeploymentSuccess, s.DeploymentFailure, s.TeamID)
	return err
}

func (r *SettingsRepository) GetPushover(teamID string) (*models.PushoverSettings, error) {
	s := &models.PushoverSettings{}
	var token, userKey sql.NullString

	err := r.db.QueryRow(`
		SELECT team_id, enabled, token, user_key,
		       deployment_success_pushover_notifications, deployment_failure_pushover_notifications
		FROM pushover_notification_settings WHERE team_id = ?
	`, teamID).Scan(&s.TeamID, &s.Enabled, &token, &userKey, &s.DeploymentSuccess, &s.DeploymentFailure)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	s.Token = token.String
	s.UserKey = userKey.String
	return s, nil
}

func (r *SettingsRepository) UpdatePushover(s *models.PushoverSettings) error {
	_, err := r.db.Exec(`
		UPDATE pushover_notification_settings
		SET enabled = ?, token = ?, user_key = ?,
		    deployment_success_pushover_notifications = ?, deployment_failure_pushover_notifications = ?
		WHERE team_id = ?
	`, s.Enabled, s.Token, s.UserKey, s.DeploymentSuccess, s.DeploymentFailure, s.TeamID)
	return err
}

func (r *SettingsRepository) GetEmail(teamID string) (*models.EmailSettings, error) {
	s := &models.EmailSettings{}
	var recipient sql.NullString

	err := r.db.QueryRow(`
		SELECT team_id, enabled, recipient_address,
		       deployment_success_email_notifications, deployment_failure_email_notifications
		FROM email_notification_settings WHERE team_id = ?
	`, teamID).Scan(&s.TeamID, &s.Enabled, &recipient, &s.DeploymentSuccess, &s.DeploymentFailure)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	s.RecipientAddress = recipient.String
	return s, nil
}

func (r *SettingsRepository) UpdateEmail(s *models.EmailSettings) error {
	_, err := r.db.Exec(`
		UPDATE email_notification_settings
		SET enabled = ?, recipient_address = ?,
		    deployment_success_email_notifications = ?, deployment_failure_email_notifications = ?
		WHERE team_id = ?
	`, s.Enabled, s.RecipientAddress, s.DeploymentSuccess, s.DeploymentFailure, s.TeamID)
	return err
}
