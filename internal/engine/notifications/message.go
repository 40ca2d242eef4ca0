package notifications

import (
	"time"

	"github.com/davidmokos/coolify/internal/platform/config"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// WebhookMessage is the rendered, channel-agnostic payload for the webhook
// channel. Metadata holds structured event attributes; fields accumulate
// ad-hoc key/value pairs via AddField. Never persisted.
type WebhookMessage struct {
	Title       string
	Description string
	Status      string
	Metadata    map[string]interface{}
	Critical    bool

	fields map[string]string
}

func NewWebhookMessage(title, description, status string, metadata map[string]interface{}) *WebhookMessage {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	return &WebhookMessage{
		Title:       title,
		Description: description,
		Status:      status,
		Metadata:    metadata,
		fields:      map[string]string{},
	}
}

func (m *WebhookMessage) AddField(name, value string) *WebhookMessage {
	m.fields[name] = value
	return m
}

func (m *WebhookMessage) Field(name string) (string, bool) {
	v, ok := m.fields[name]
	return v, ok
}

// Payload serializes the message to the flat delivery envelope.
func (m *WebhookMessage) Payload(now time.Time, source string) map[string]interface{} {
	data := make(map[string]string, len(m.fields))
	for k, v := range m.fields {
		data[k] = v
	}

	return map[string]interface{}{
		"title":       m.Title,
		"description": m.Description,
		"status":      m.Status,
		"timestamp":   now.Format(time.RFC3339),
		"metadata":    m.Metadata,
		"data":        data,
		"critical":    m.Critical,
		"source":      source,
	}
}

// Source names the installation emitting the payload, e.g. "Coolify v4.0.0"
// or "Coolify Cloud" for the hosted edition.
func Source(cfg config.InstanceConfig) string {
	if cfg.Cloud {
		return cfg.Name + " Cloud"
	}
	return cfg.Name + " v" + cfg.Version
}
