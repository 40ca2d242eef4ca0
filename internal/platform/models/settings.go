package models

// ChannelSettings is the common surface the enablement resolver needs from a
// per-channel settings row. EventEnabled answers the per-event override flag
// (`<event>_<channel>_notifications` in storage); events a channel has no flag
// for report false.
type ChannelSettings interface {
	IsEnabled() bool
	EventEnabled(event string) bool
}

type WebhookSettings struct {
	TeamID            string `json:"team_id"`
	Enabled           bool   `json:"enabled"`
	URL               string `json:"url"`
	APIKey            string `json:"api_key,omitempty"`
	DeploymentSuccess bool   `json:"deployment_success_webhook_notifications"`
	DeploymentFailure bool   `json:"deployment_failure_webhook_notifications"`
}

func (s *WebhookSettings) IsEnabled() bool { return s.Enabled }

func (s *WebhookSettings) EventEnabled(event string) bool {
	switch event {
	case "deployment_success":
		return s.DeploymentSuccess
	case "deployment_failure":
		return s.DeploymentFailure
	default:
		return false
	}
}

type DiscordSettings struct {
	TeamID            string `json:"team_id"`
	Enabled           bool   `json:"enabled"`
	WebhookURL        string `json:"webhook_url"`
	DeploymentSuccess bool   `json:"deployment_success_discord_notifications"`
	DeploymentFailure bool   `json:"deployment_failure_discord_notifications"`
}

func (s *DiscordSettings) IsEnabled() bool { return s.Enabled }

func (s *DiscordSettings) EventEnabled(event string) bool {
	switch event {
	case "deployment_success":
		return s.DeploymentSuccess
	case "deployment_failure":
		return s.DeploymentFailure
	default:
		return false
	}
}

type SlackSettings struct {
	TeamID            string `json:"team_id"`
	Enabled           bool   `json:"enabled"`
	WebhookURL        string `json:"webhook_url"`
	DeploymentSuccess bool   `json:"deployment_success_slack_notifications"`
	DeploymentFailure bool   `json:"deployment_failure_slack_notifications"`
}

func (s *SlackSettings) IsEnabled() bool { return s.Enabled }

func (s *SlackSettings) EventEnabled(event string) bool {
	switch event {
	case "deployment_success":
		return s.DeploymentSuccess
	case "deployment_failure":
		return s.DeploymentFailure
	default:
		return false
	}
}

type TelegramSettings struct {
	TeamID            string `json:"team_id"`
	Enabled           bool   `json:"enabled"`
	Token             string `json:"token,omitempty"`
	ChatID            string `json:"chat_id"`
	DeploymentSuccess bool   `json:"deployment_success_telegram_notifications"`
	DeploymentFailure bool   `json:"deployment_failure_telegram_notifications"`
}

func (s *TelegramSettings) IsEnabled() bool { return s.Enabled }

func (s *TelegramSettings) EventEnabled(event string) bool {
	switch event {
	case "deployment_success":
		return s.DeploymentSuccess
	case "deployment_failure":
		return s.DeploymentFailure
	default:
		return false
	}
}

type PushoverSettings struct {
	TeamID            string `json:"team_id"`
	Enabled           bool   `json:"enabled"`
	Token             string `json:"token,omitempty"`
	UserKey           string `json:"user_key"`
	DeploymentSuccess bool   `json:"deployment_success_pushover_notifications"`
	DeploymentFailure bool   `json:"deployment_failure_pushover_notifications"`
}

func (s *PushoverSettings) IsEnabled() bool { return s.Enabled }

func (s *PushoverSettings) EventEnabled(event string) bool {
	switch event {
	case "deployment_success":
		return s.DeploymentSuccess
	case "deployment_failure":
		return s.DeploymentFailure
	default:
		return false
	}
}

type EmailSettings struct {
	TeamID            string `json:"team_id"`
	Enabled           bool   `json:"enabled"`
	RecipientAddress  string `json:"recipient_address"`
	DeploymentSuccess bool   `json:"deployment_success_email_notifications"`
	DeploymentFailure bool   `json:"deployment_failure_email_notifications"`
}

func (s *EmailSettings) IsEnabled() bool { return s.Enabled }

func (s *EmailSettings) EventEnabled(event string) bool {
	switch event {
	case "deployment_success":
		return s.DeploymentSuccess
	case "deployment_failure":
		return s.DeploymentFailure
	default:
		return false
	}
}
